package translator

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var translationFS embed.FS

var (
	Translator *i18n.Bundle

	matcher   language.Matcher
	supported []string
)

const (
	LanguageFr = "fr"
	LanguageEn = "en"
	// Add more language constants as needed, e.g., "de", "es", etc.
)

// InitTranslator loads the embedded translation files and builds the
// Accept-Language matcher. English is the fallback and must stay first in
// the matcher so unknown languages resolve to it.
func InitTranslator() {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(translationFS, "translation")
	if err != nil {
		zap.L().Error("failed to list embedded translations", zap.Error(err))
		return
	}

	tags := []language.Tag{language.English}
	codes := []string{LanguageEn}
	for _, f := range entries {
		if f.IsDir() {
			continue
		}

		// Load the message file into the Translator bundle
		if _, err := Translator.LoadMessageFileFS(translationFS, "translation/"+f.Name()); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
			continue
		}

		code := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		if code == LanguageEn {
			continue
		}
		tag, err := language.Parse(code)
		if err != nil {
			zap.L().Warn("translation file has no usable language code", zap.String("file", f.Name()), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}

	matcher = language.NewMatcher(tags)
	supported = codes
}

// MatchLanguage negotiates the closest supported language for an
// Accept-Language header value. Empty or unusable headers resolve to en.
func MatchLanguage(acceptLanguage string) string {
	if matcher == nil || acceptLanguage == "" {
		return LanguageEn
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return LanguageEn
	}

	_, i, _ := matcher.Match(desired...)
	if i < 0 || i >= len(supported) {
		return LanguageEn
	}
	return supported[i]
}
