package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/dto"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

func SignUpController(router *gin.Engine, st store.Store) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, st)
	})
}

func Signup(c *gin.Context, st store.Store) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	exists, err := services.UserExists(ctx, st, request.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to check existing email"})
		return
	}
	if exists {
		c.JSON(400, gin.H{"error": "Email is already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash password"})
		return
	}

	docid := uuid.New().String()
	newUser := model.User{
		UserID:     docid,
		FullName:   request.FullName,
		Email:      request.Email,
		Password:   string(hashedPassword),
		Role:       model.RoleEmployee,
		Department: request.Department,
		CreatedAt:  time.Now(),
	}

	if err := st.Set(ctx, store.Users, docid, newUser.ToDoc()); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(201, gin.H{
		"message": "User registered successfully",
		"docID":   docid,
	})
}
