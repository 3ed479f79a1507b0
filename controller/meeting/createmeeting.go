package meeting

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/dto"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/middleware"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

func CreateMeetingController(router *gin.Engine, svc *services.MeetingService) {
	routes := router.Group("/api/meetings", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateMeeting(c, svc)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteMeeting(c, svc)
		})
	}
}

func CreateMeeting(c *gin.Context, svc *services.MeetingService) {
	var request dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meetingType := model.MeetingType(request.Type)
	if !meetingType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting type"})
		return
	}

	start, err := time.Parse(time.RFC3339, request.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start format"})
		return
	}
	end, err := time.Parse(time.RFC3339, request.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end format"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting ends before it starts"})
		return
	}

	meeting := model.Meeting{
		Title:        request.Title,
		Description:  request.Description,
		Start:        start,
		End:          end,
		Location:     request.Location,
		MeetingLink:  request.MeetingLink,
		Type:         meetingType,
		Status:       model.MeetingScheduled,
		ReminderTime: request.ReminderTime,
	}

	meetingID, err := svc.Create(context.Background(), meeting, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Meeting scheduled successfully",
		"meetingID": meetingID,
	})
}

func DeleteMeeting(c *gin.Context, svc *services.MeetingService) {
	err := svc.Delete(context.Background(), c.Param("id"), middleware.Actor(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted"})
}
