package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/dto"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

func SignInController(router *gin.Engine, st store.Store) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, st)
	})
}

func Signin(c *gin.Context, st store.Store) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	user, err := services.GetUserByEmail(ctx, st, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "user not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Email, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	refreshToken, err := services.CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	if err := st.Update(ctx, store.Users, user.UserID, map[string]interface{}{
		"refreshToken": hashedRefreshToken,
		"lastLoginAt":  now,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update login status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"user": gin.H{
			"userId":   user.UserID,
			"fullName": user.FullName,
			"email":    user.Email,
			"role":     user.Role,
		},
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}
