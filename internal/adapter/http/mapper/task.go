package mapper

import (
	"time"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
}

func ToMutationResponse(res domain.Result, message string) dto.MutationResponse {
	out := dto.MutationResponse{
		Status:  string(res.Status),
		Message: message,
		Cleared: res.Cleared,
	}
	if res.Task != nil {
		item := ToTaskItem(*res.Task)
		out.Task = &item
	}
	return out
}

func ToStatsResponse(stats domain.TaskStats) dto.StatsResponse {
	return dto.StatsResponse{
		Completed: stats.Completed,
		Pending:   stats.Pending,
		Total:     stats.Total,
		Empty:     stats.Empty(),
	}
}
