package main

import (
	"github.com/gin-gonic/gin"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/connection"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	connection.StartServer()
}
