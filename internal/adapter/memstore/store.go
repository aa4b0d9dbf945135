package memstore

import (
	"strings"
	"time"
	"unicode/utf8"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

// Store keeps tasks in memory, in insertion order. IDs start at 1 and are
// never reused, even after removals. Store is not safe for concurrent use.
type Store struct {
	tasks  []domain.Task
	nextID uint64
}

var _ ports.TaskStore = (*Store)(nil)

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Add(title, description string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          s.nextID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Completed:   false,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, task)

	return task, nil
}

func (s *Store) All() []domain.Task {
	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *Store) Get(id uint64) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Update applies a partial edit. The task is left untouched if the patch is
// empty or the new title fails validation.
func (s *Store) Update(id uint64, patch domain.TaskUpdate) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if patch.IsEmpty() {
		return domain.Task{}, domain.ErrEmptyUpdate
	}

	var title string
	if patch.Title != nil {
		title = strings.TrimSpace(*patch.Title)
		if err := validateTitle(title); err != nil {
			return domain.Task{}, err
		}
	}

	if patch.Title != nil {
		s.tasks[i].Title = title
	}
	if patch.Description != nil {
		s.tasks[i].Description = strings.TrimSpace(*patch.Description)
	}

	return s.tasks[i], nil
}

func (s *Store) ToggleCompleted(id uint64) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.tasks[i], nil
}

// Remove deletes the task and returns it, so callers can offer to re-add it.
func (s *Store) Remove(id uint64) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, nil
}

// Search returns tasks whose title or description contains query as a
// case-insensitive substring, in store order. A blank query returns all tasks.
func (s *Store) Search(query string) []domain.Task {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.All()
	}

	query = strings.ToLower(query)
	matches := make([]domain.Task, 0)
	for _, task := range s.tasks {
		if strings.Contains(strings.ToLower(task.Title), query) ||
			strings.Contains(strings.ToLower(task.Description), query) {
			matches = append(matches, task)
		}
	}
	return matches
}

func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0]
	removed := 0
	for _, task := range s.tasks {
		if task.Completed {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	return removed
}

func (s *Store) CompletedCount() int {
	count := 0
	for _, task := range s.tasks {
		if task.Completed {
			count++
		}
	}
	return count
}

func (s *Store) PendingCount() int {
	return s.TotalCount() - s.CompletedCount()
}

func (s *Store) TotalCount() int {
	return len(s.tasks)
}

func (s *Store) IsEmpty() bool {
	return len(s.tasks) == 0
}

func (s *Store) indexOf(id uint64) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func validateTitle(title string) error {
	if title == "" {
		return domain.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > domain.TitleMaxLen {
		return domain.ErrTitleTooLong
	}
	return nil
}
