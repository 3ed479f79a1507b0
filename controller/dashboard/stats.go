package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/middleware"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
)

func StatsController(router *gin.Engine, dash *services.Dashboard) {
	router.GET("/api/dashboard/stats", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, dash.Stats())
	})
}
