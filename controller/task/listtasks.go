package task

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/middleware"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
)

func ListTasksController(router *gin.Engine, svc *services.TaskService) {
	router.GET("/api/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListTasks(c, svc)
	})
}

func ListTasks(c *gin.Context, svc *services.TaskService) {
	assignedTo := c.Query("assignedTo")
	if assignedTo == "" {
		assignedTo = c.GetString("userId")
	}

	tasks, err := svc.ListByAssignee(context.Background(), assignedTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
