package validation

import (
	"encoding/json"
	"errors"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildTaskUpdate turns an update request into a domain patch. The raw
// message map tells absent fields apart from fields sent as JSON null;
// null is rejected because neither title nor description is clearable
// that way. Title content rules are the store's job, not ours.
func BuildTaskUpdate(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskUpdate, error) {
	if !hasJSONField(raw, "title") && !hasJSONField(raw, "description") {
		return domain.TaskUpdate{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.TaskUpdate{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "description") && req.Description == nil {
		return domain.TaskUpdate{}, ErrInvalidTaskPayload
	}

	return domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
