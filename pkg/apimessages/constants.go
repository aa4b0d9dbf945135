package apimessages

const (
	MsgTaskAdded          = "taskAdded"
	MsgTaskUpdated        = "taskUpdated"
	MsgTaskCompleted      = "taskCompleted"
	MsgTaskReopened       = "taskReopened"
	MsgTaskDeleted        = "taskDeleted"
	MsgCompletedCleared   = "completedCleared"
	MsgNothingToClear     = "nothingToClear"
	MsgEmptyTitle         = "emptyTitle"
	MsgTitleTooLong       = "titleTooLong"
	MsgEmptyUpdate        = "emptyUpdate"
	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgRateLimited        = "rateLimited"
	MsgInternalError      = "internalError"
)
