// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"laundrypro-backend/config"
	"laundrypro-backend/models"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SetupInput struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FullName     string `json:"fullName" binding:"required"`
	Phone        string `json:"phone"`
	OutletName   string `json:"outletName" binding:"required"`
	OutletPrefix string `json:"outletPrefix" binding:"required"`
	OutletAddr   string `json:"outletAddress"`
	OutletPhone  string `json:"outletPhone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Setup bootstraps the first admin account and the first outlet. Refused
// once any user exists; further users are created through /api/users.
func Setup(c *gin.Context) {
	var input SetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var userCount int64
	if err := config.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if userCount > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Setup already completed")
		return
	}

	outlet := models.Outlet{
		ID:      uuid.New(),
		Name:    input.OutletName,
		Prefix:  strings.ToUpper(strings.TrimSpace(input.OutletPrefix)),
		Address: input.OutletAddr,
		Phone:   input.OutletPhone,
	}

	admin := models.User{
		Email:    strings.TrimSpace(strings.ToLower(input.Email)),
		Password: input.Password, // Will be hashed in BeforeCreate hook
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     models.RoleAdmin,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&outlet).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.InvoiceSequence{OutletID: outlet.ID}).Error; err != nil {
			return err
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to complete setup")
		return
	}

	token, err := utils.GenerateToken(admin.ID.String(), admin.Role, "")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Setup successful",
		"token":   token,
		"user": gin.H{
			"id":       admin.ID,
			"email":    admin.Email,
			"fullName": admin.FullName,
			"role":     admin.Role,
		},
		"outlet": outlet,
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var user models.User
	result := config.DB.Where("email = ? AND is_active = ?", email, true).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	outletID := ""
	if user.OutletID != nil {
		outletID = user.OutletID.String()
	}
	token, err := utils.GenerateToken(user.ID.String(), user.Role, outletID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
			"role":     user.Role,
			"outletId": user.OutletID,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
			"role":     user.Role,
			"outletId": user.OutletID,
		},
	})
}
