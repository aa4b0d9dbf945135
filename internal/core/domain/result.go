package domain

// ResultStatus classifies every mutating operation's outcome. Success means
// state changed, Error means it was refused, Info means there was nothing
// to do and the call was a no-op.
type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultError   ResultStatus = "error"
	ResultInfo    ResultStatus = "info"
)

// Result is the outcome of a mutating operation. MessageKey names a
// translatable message describing what happened. Task is set on outcomes
// that concern a single task, Cleared on bulk removals, Err on refusals.
type Result struct {
	Status     ResultStatus
	MessageKey string
	Task       *Task
	Cleared    int
	Err        error
}

func SuccessResult(key string, task Task) Result {
	return Result{Status: ResultSuccess, MessageKey: key, Task: &task}
}

func ClearedResult(key string, cleared int) Result {
	return Result{Status: ResultSuccess, MessageKey: key, Cleared: cleared}
}

func ErrorResult(key string, err error) Result {
	return Result{Status: ResultError, MessageKey: key, Err: err}
}

func InfoResult(key string) Result {
	return Result{Status: ResultInfo, MessageKey: key}
}
