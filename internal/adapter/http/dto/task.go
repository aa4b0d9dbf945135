package dto

type TaskItem struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

// CreateTaskRequest carries no binding rules on purpose. Title validation
// lives in the store so every caller gets the same rules and messages.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// MutationResponse reports what a mutation did. Task is present when the
// outcome concerns a single task, Cleared when a sweep removed tasks.
type MutationResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Task    *TaskItem `json:"task,omitempty"`
	Cleared int       `json:"cleared,omitempty"`
}

type StatsResponse struct {
	Completed int  `json:"completed"`
	Pending   int  `json:"pending"`
	Total     int  `json:"total"`
	Empty     bool `json:"empty"`
}
