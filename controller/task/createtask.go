package task

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/dto"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/middleware"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
)

func CreateTaskController(router *gin.Engine, svc *services.TaskService) {
	router.POST("/api/tasks", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		Createtask(c, svc)
	})
}

func Createtask(c *gin.Context, svc *services.TaskService) {
	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	priority := model.Priority(taskReq.Priority)
	if !priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	deadline, err := time.Parse(time.RFC3339, taskReq.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline format"})
		return
	}

	newtask := model.Task{
		Title:       taskReq.Title,
		Description: taskReq.Description,
		Priority:    priority,
		Status:      model.TaskPending,
		Deadline:    deadline,
		Email:       taskReq.AssigneeEmail,
	}
	if taskReq.Notifications != nil {
		newtask.Notifications = model.NotificationPrefs{
			Email:        taskReq.Notifications.Email,
			Push:         taskReq.Notifications.Push,
			ReminderDays: taskReq.Notifications.ReminderDays,
		}
	}

	taskID, err := svc.Create(context.Background(), newtask, middleware.Actor(c))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskID":  taskID,
	})
}
