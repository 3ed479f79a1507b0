package task

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/dto"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/middleware"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

func UpdateTaskStatusController(router *gin.Engine, svc *services.TaskService) {
	router.PATCH("/api/tasks/:id/status", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateTaskStatus(c, svc)
	})
}

func UpdateTaskStatus(c *gin.Context, svc *services.TaskService) {
	var request dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := svc.UpdateStatus(context.Background(), c.Param("id"),
		model.TaskStatus(request.Status), request.Progress, request.StatusNotes, middleware.Actor(c))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task status"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task status updated"})
}
