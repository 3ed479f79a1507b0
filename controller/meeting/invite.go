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

func InviteController(router *gin.Engine, svc *services.MeetingService) {
	router.POST("/api/meetings/invite", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		Invite(c, svc)
	})
}

func Invite(c *gin.Context, svc *services.MeetingService) {
	var request dto.InviteMeetingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()

	var invitees []model.Identity
	var unknown []string
	for _, email := range request.EmployeeEmails {
		user, err := services.GetUserByEmail(ctx, svc.Store, email)
		if err != nil {
			unknown = append(unknown, email)
			continue
		}
		invitees = append(invitees, user.Identity())
	}
	if len(invitees) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No known employees in request", "unknown": unknown})
		return
	}

	summary, err := svc.Invite(ctx, request.MeetingID, invitees, middleware.Actor(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invitations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invitations processed",
		"invited": summary.Invited,
		"failed":  summary.Failed,
		"unknown": unknown,
	})
}
