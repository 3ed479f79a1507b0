package meeting

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

func UpdateStatusController(router *gin.Engine, svc *services.MeetingService) {
	router.POST("/api/meetings/update-status", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateStatus(c, svc)
	})
}

func UpdateStatus(c *gin.Context, svc *services.MeetingService) {
	var request dto.UpdateMeetingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := svc.UpdateStatus(context.Background(), request.MeetingID,
		model.MeetingStatus(request.Status), middleware.Actor(c))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Meeting status updated",
		"employeeCopies": updated,
	})
}
