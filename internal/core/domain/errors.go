package domain

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title too long (max 100 characters)")
	ErrEmptyUpdate  = errors.New("update has no fields")
)
