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

func AssignTaskController(router *gin.Engine, svc *services.TaskService) {
	router.POST("/api/tasks/assign", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		AssignTask(c, svc)
	})
}

func AssignTask(c *gin.Context, svc *services.TaskService) {
	var request dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()

	// Resolve each address to a known employee; addresses without a
	// profile are reported but do not abort the rest.
	var employees []model.Identity
	var unknown []string
	for _, email := range request.EmployeeEmails {
		user, err := services.GetUserByEmail(ctx, svc.Store, email)
		if err != nil {
			unknown = append(unknown, email)
			continue
		}
		employees = append(employees, user.Identity())
	}
	if len(employees) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No known employees in request", "unknown": unknown})
		return
	}

	result := svc.AssignTask(ctx, request.TaskID, employees...)
	if result.Err != nil {
		if errors.Is(result.Err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Task assigned successfully",
		"outcome":     result.Outcome,
		"assignedIds": result.AssignedIDs,
		"unknown":     unknown,
	})
}
