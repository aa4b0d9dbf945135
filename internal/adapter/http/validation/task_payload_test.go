package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/validation"
)

func TestBuildTaskUpdate(t *testing.T) {
	title := "New title"
	description := "New description"

	tests := []struct {
		name    string
		req     dto.UpdateTaskRequest
		body    string
		wantErr bool
	}{
		{"title only", dto.UpdateTaskRequest{Title: &title}, `{"title":"New title"}`, false},
		{"description only", dto.UpdateTaskRequest{Description: &description}, `{"description":"New description"}`, false},
		{"both fields", dto.UpdateTaskRequest{Title: &title, Description: &description}, `{"title":"New title","description":"New description"}`, false},
		{"no editable fields", dto.UpdateTaskRequest{}, `{}`, true},
		{"unknown fields only", dto.UpdateTaskRequest{}, `{"completed":true}`, true},
		{"explicit null title", dto.UpdateTaskRequest{}, `{"title":null}`, true},
		{"explicit null description", dto.UpdateTaskRequest{}, `{"description":null}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(tt.body), &raw))

			patch, err := validation.BuildTaskUpdate(tt.req, raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Title, patch.Title)
			assert.Equal(t, tt.req.Description, patch.Description)
		})
	}
}
