package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tasklist/internal/adapter/http/middleware"
	"tasklist/pkg/translator"
)

func TestLanguageMiddleware_NegotiatesHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header defaults to english", "", translator.LanguageEn},
		{"french header", "fr", translator.LanguageFr},
		{"regional french variant", "fr-CA,en;q=0.8", translator.LanguageFr},
		{"unsupported language falls back", "de", translator.LanguageEn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestGin()
			router.Use(middleware.LanguageMiddleware())

			var got string
			router.GET("/test", func(c *gin.Context) {
				got = middleware.GetLang(c)
				c.Status(http.StatusOK)
			})

			req, _ := http.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if got != tt.want {
				t.Errorf("expected language %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGetLang_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if got := middleware.GetLang(c); got != translator.LanguageEn {
		t.Errorf("expected fallback %q, got %q", translator.LanguageEn, got)
	}
}
