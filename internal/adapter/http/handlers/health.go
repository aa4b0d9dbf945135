package handlers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/core/ports"
)

const StatusOk = "ok"

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Store  string `json:"store"`
	Seeded bool   `json:"seeded"`
	Tasks  int    `json:"tasks"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	taskService ports.TaskService
	seeded      bool
}

func NewHealthHandler(taskService ports.TaskService, seeded bool) *HealthHandler {
	return &HealthHandler{taskService: taskService, seeded: seeded}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(200, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           StatusOk,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(200, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Store:  StatusOk,
			Seeded: h.seeded,
			Tasks:  h.taskService.Stats().Total,
		},
	})
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
