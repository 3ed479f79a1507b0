package task

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/dto"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/middleware"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
)

func SendEmailController(router *gin.Engine, mailer services.Mailer) {
	router.POST("/api/tasks/send-email", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		SendEmail(c, mailer)
	})
}

func SendEmail(c *gin.Context, mailer services.Mailer) {
	var request dto.SendEmailRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mailer.Send(request.To, request.Subject, request.HTML); err != nil {
		if errors.Is(err, services.ErrTransport) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email delivery failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent"})
}
