package apimessages_test

import (
	"testing"

	"tasklist/pkg/apimessages"
	"tasklist/pkg/translator"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	translator.InitTranslator()
	m.Run()
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apimessages.CreateError(404, apimessages.MsgTaskNotFound, "en")
	assert.Equal(t, 404, err.ErrDetails.Code)
	assert.Equal(t, "task not found", err.ErrDetails.Message)
}

func TestCreateError_TranslatesToFrench(t *testing.T) {
	err := apimessages.CreateError(404, apimessages.MsgTaskNotFound, "fr")
	assert.Equal(t, "tâche introuvable", err.ErrDetails.Message)
}

func TestGetMessage_ReturnsTranslation(t *testing.T) {
	msg := apimessages.GetMessage(apimessages.MsgTaskAdded, "fr")
	assert.Equal(t, "Tâche ajoutée.", msg)
}

func TestGetMessage_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := apimessages.GetMessage("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestGetMessage_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	msg := apimessages.GetMessage(apimessages.MsgTaskDeleted, "de")
	assert.Equal(t, "Task deleted.", msg)
}

func TestGetCountMessage_PluralForms(t *testing.T) {
	one := apimessages.GetCountMessage(apimessages.MsgCompletedCleared, "en", 1)
	assert.Equal(t, "Cleared 1 completed task.", one)

	many := apimessages.GetCountMessage(apimessages.MsgCompletedCleared, "en", 3)
	assert.Equal(t, "Cleared 3 completed tasks.", many)

	french := apimessages.GetCountMessage(apimessages.MsgCompletedCleared, "fr", 3)
	assert.Equal(t, "3 tâches terminées supprimées.", french)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apimessages.CreateError(500, apimessages.MsgInternalError, "en")
	assert.Equal(t, "Code: 500, Message: Something went wrong.", err.Error())
}
