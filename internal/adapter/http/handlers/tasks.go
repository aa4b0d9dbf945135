package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/mapper"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/adapter/http/validation"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apimessages"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns tasks in store order, filtered by the optional q query.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks := h.taskService.ListTasks(c.Query("q"))
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, found := h.taskService.GetTask(taskID)
	if !found {
		c.JSON(
			http.StatusNotFound,
			apimessages.CreateError(http.StatusNotFound, apimessages.MsgTaskNotFound, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apimessages.CreateError(http.StatusBadRequest, apimessages.MsgInvalidTaskPayload, lang),
		)
		return
	}

	res := h.taskService.AddTask(req.Title, req.Description)
	h.writeMutation(c, res, http.StatusCreated, lang)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	// Bind twice from the same body: the typed request plus the raw field
	// set, so absent fields can be told apart from explicit nulls.
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apimessages.CreateError(http.StatusBadRequest, apimessages.MsgInvalidTaskPayload, lang),
		)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apimessages.CreateError(http.StatusBadRequest, apimessages.MsgInvalidTaskPayload, lang),
		)
		return
	}

	patch, err := validation.BuildTaskUpdate(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apimessages.CreateError(http.StatusBadRequest, apimessages.MsgInvalidTaskPayload, lang),
		)
		return
	}

	res := h.taskService.UpdateTask(taskID, patch)
	h.writeMutation(c, res, http.StatusOK, lang)
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	res := h.taskService.ToggleTask(taskID)
	h.writeMutation(c, res, http.StatusOK, lang)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	res := h.taskService.DeleteTask(taskID)
	h.writeMutation(c, res, http.StatusOK, lang)
}

func (h *TaskHandler) ClearCompleted(c *gin.Context) {
	lang := middleware.GetLang(c)

	res := h.taskService.ClearCompleted()
	h.writeMutation(c, res, http.StatusOK, lang)
}

func (h *TaskHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToStatsResponse(h.taskService.Stats()))
}

// writeMutation renders a domain.Result. Success and Info become the message
// envelope, Error becomes the shared error shape with a matching HTTP status.
func (h *TaskHandler) writeMutation(c *gin.Context, res domain.Result, successStatus int, lang string) {
	switch res.Status {
	case domain.ResultSuccess:
		c.JSON(successStatus, mapper.ToMutationResponse(res, messageFor(res, lang)))
	case domain.ResultInfo:
		c.JSON(http.StatusOK, mapper.ToMutationResponse(res, messageFor(res, lang)))
	case domain.ResultError:
		status := statusCodeFor(res.Err)
		if status == http.StatusInternalServerError {
			zap.L().Error("task operation failed", zap.Error(res.Err))
		}
		c.JSON(status, apimessages.CreateError(status, res.MessageKey, lang))
	default:
		zap.L().Error("unhandled result status", zap.String("status", string(res.Status)))
		c.JSON(
			http.StatusInternalServerError,
			apimessages.CreateError(http.StatusInternalServerError, apimessages.MsgInternalError, lang),
		)
	}
}

func messageFor(res domain.Result, lang string) string {
	if res.MessageKey == apimessages.MsgCompletedCleared {
		return apimessages.GetCountMessage(res.MessageKey, lang, res.Cleared)
	}
	return apimessages.GetMessage(res.MessageKey, lang)
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrTitleTooLong),
		errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func parseTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apimessages.CreateError(http.StatusBadRequest, apimessages.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}
