package domain

import "time"

// TitleMaxLen is the maximum title length counted in characters, not bytes.
const TitleMaxLen = 100

type Task struct {
	ID          uint64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// TaskUpdate carries a partial edit. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
}

func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil
}

type TaskStats struct {
	Completed int
	Pending   int
	Total     int
}

func (s TaskStats) Empty() bool {
	return s.Total == 0
}
