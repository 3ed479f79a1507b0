package task

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/middleware"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

func DeleteTaskController(router *gin.Engine, svc *services.TaskService) {
	router.DELETE("/api/tasks/:id", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		DeleteTask(c, svc)
	})
}

// taskCollections limits the delete surface to the task collections.
var taskCollections = map[string]store.Collection{
	"":                            store.UnassignedTasks,
	string(store.UnassignedTasks): store.UnassignedTasks,
	string(store.EmployeeTasks):   store.EmployeeTasks,
	string(store.AdminTasks):      store.AdminTasks,
	string(store.Tasks):           store.Tasks,
}

func DeleteTask(c *gin.Context, svc *services.TaskService) {
	col, ok := taskCollections[c.Query("collection")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task collection"})
		return
	}

	err := svc.Delete(context.Background(), col, c.Param("id"), middleware.Actor(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
