// controllers/user.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"laundrypro-backend/config"
	"laundrypro-backend/models"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUserInput defines the expected JSON structure for creating a user
type CreateUserInput struct {
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8"`
	FullName string     `json:"fullName" binding:"required"`
	Phone    string     `json:"phone"`
	Role     string     `json:"role" binding:"required"`
	OutletID *uuid.UUID `json:"outletId"` // required for staff, forbidden for admin
}

// UpdateUserInput defines the expected JSON structure for updating a user
type UpdateUserInput struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// CreateUser adds a staff or admin account. Admin only.
func CreateUser(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	if !caller.IsAdmin() {
		utils.RespondWithError(c, http.StatusForbidden, "Only admins can manage users")
		return
	}

	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidRole(input.Role) {
		utils.RespondWithError(c, http.StatusBadRequest, "Role must be admin or staff")
		return
	}
	if input.Role == models.RoleStaff && input.OutletID == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Staff users need an outlet")
		return
	}
	if input.Role == models.RoleAdmin && input.OutletID != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Admin users are not scoped to an outlet")
		return
	}

	if input.OutletID != nil {
		var outlet models.Outlet
		if err := config.DB.First(&outlet, "id = ?", *input.OutletID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Outlet not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Email:    email,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     input.Role,
		OutletID: input.OutletID,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUsers lists all accounts. Admin only.
func GetUsers(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	if !caller.IsAdmin() {
		utils.RespondWithError(c, http.StatusForbidden, "Only admins can manage users")
		return
	}

	var users []models.User
	if err := config.DB.Order("full_name ASC").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser edits an account's profile fields or deactivates it. Admin only.
func UpdateUser(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	if !caller.IsAdmin() {
		utils.RespondWithError(c, http.StatusForbidden, "Only admins can manage users")
		return
	}

	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
			return
		}
	}

	c.JSON(http.StatusOK, user)
}
