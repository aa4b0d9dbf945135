package service

import (
	"errors"
	"sync"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apimessages"
)

// TaskService classifies every mutation into a domain.Result and serializes
// access to the store, which is not safe for concurrent use on its own.
type TaskService struct {
	mu    sync.Mutex
	store ports.TaskStore
}

func NewTaskService(store ports.TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) AddTask(title, description string) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.store.Add(title, description)
	if err != nil {
		return domain.ErrorResult(messageKeyFor(err), err)
	}
	return domain.SuccessResult(apimessages.MsgTaskAdded, task)
}

func (s *TaskService) UpdateTask(id uint64, patch domain.TaskUpdate) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.store.Update(id, patch)
	if err != nil {
		return domain.ErrorResult(messageKeyFor(err), err)
	}
	return domain.SuccessResult(apimessages.MsgTaskUpdated, task)
}

func (s *TaskService) ToggleTask(id uint64) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.store.ToggleCompleted(id)
	if err != nil {
		return domain.ErrorResult(messageKeyFor(err), err)
	}
	if task.Completed {
		return domain.SuccessResult(apimessages.MsgTaskCompleted, task)
	}
	return domain.SuccessResult(apimessages.MsgTaskReopened, task)
}

func (s *TaskService) DeleteTask(id uint64) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.store.Remove(id)
	if err != nil {
		return domain.ErrorResult(messageKeyFor(err), err)
	}
	return domain.SuccessResult(apimessages.MsgTaskDeleted, task)
}

// ClearCompleted reports Info rather than Success when the sweep found
// nothing to remove.
func (s *TaskService) ClearCompleted() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := s.store.ClearCompleted()
	if cleared == 0 {
		return domain.InfoResult(apimessages.MsgNothingToClear)
	}
	return domain.ClearedResult(apimessages.MsgCompletedCleared, cleared)
}

// ListTasks returns tasks matching query in store order. A blank query
// returns the whole list.
func (s *TaskService) ListTasks(query string) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Search(query)
}

func (s *TaskService) GetTask(id uint64) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Get(id)
}

func (s *TaskService) Stats() domain.TaskStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.TaskStats{
		Completed: s.store.CompletedCount(),
		Pending:   s.store.PendingCount(),
		Total:     s.store.TotalCount(),
	}
}

func messageKeyFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return apimessages.MsgTaskNotFound
	case errors.Is(err, domain.ErrEmptyTitle):
		return apimessages.MsgEmptyTitle
	case errors.Is(err, domain.ErrTitleTooLong):
		return apimessages.MsgTitleTooLong
	case errors.Is(err, domain.ErrEmptyUpdate):
		return apimessages.MsgEmptyUpdate
	}
	return apimessages.MsgInternalError
}

var _ ports.TaskService = (*TaskService)(nil)
