package ports

import (
	"tasklist/internal/core/domain"
)

// TaskStore holds the task list. Implementations are not required to be
// safe for concurrent use; serialization is the caller's job.
type TaskStore interface {
	Add(title, description string) (domain.Task, error)
	All() []domain.Task
	Get(id uint64) (domain.Task, bool)
	Update(id uint64, patch domain.TaskUpdate) (domain.Task, error)
	ToggleCompleted(id uint64) (domain.Task, error)
	Remove(id uint64) (domain.Task, error)
	Search(query string) []domain.Task
	ClearCompleted() int
	CompletedCount() int
	PendingCount() int
	TotalCount() int
	IsEmpty() bool
}

// TaskService wraps the store with outcome classification. Mutations come
// back as a domain.Result carrying a message key for the caller to render.
type TaskService interface {
	AddTask(title, description string) domain.Result
	UpdateTask(id uint64, patch domain.TaskUpdate) domain.Result
	ToggleTask(id uint64) domain.Result
	DeleteTask(id uint64) domain.Result
	ClearCompleted() domain.Result
	ListTasks(query string) []domain.Task
	GetTask(id uint64) (domain.Task, bool)
	Stats() domain.TaskStats
}
