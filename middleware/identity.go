package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
)

// Actor builds the acting identity from the verified token claims stored
// by AccessTokenMiddleware.
func Actor(c *gin.Context) model.Identity {
	id := model.Identity{}
	if v, ok := c.Get("userId"); ok {
		id.UID, _ = v.(string)
	}
	if v, ok := c.Get("email"); ok {
		id.Email, _ = v.(string)
	}
	return id
}
