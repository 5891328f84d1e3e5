// controllers/outlet.go
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

// CreateOutletInput defines the expected JSON structure for creating an outlet
type CreateOutletInput struct {
	Name    string `json:"name" binding:"required"`
	Prefix  string `json:"prefix" binding:"required,min=1,max=5"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateOutletInput defines the expected JSON structure for updating an outlet
type UpdateOutletInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// CreateOutlet creates a new outlet with its invoice-number counter. Admin only.
func CreateOutlet(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	if !caller.IsAdmin() {
		utils.RespondWithError(c, http.StatusForbidden, "Only admins can manage outlets")
		return
	}

	var input CreateOutletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	outlet := models.Outlet{
		ID:      uuid.New(),
		Name:    input.Name,
		Prefix:  strings.ToUpper(strings.TrimSpace(input.Prefix)),
		Address: input.Address,
		Phone:   input.Phone,
	}

	var existing models.Outlet
	if err := config.DB.Where("prefix = ?", outlet.Prefix).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Outlet with this prefix already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&outlet).Error; err != nil {
			return err
		}
		return tx.Create(&models.InvoiceSequence{OutletID: outlet.ID}).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create outlet")
		return
	}

	c.JSON(http.StatusCreated, outlet)
}

// GetOutlets retrieves the outlets visible to the caller.
func GetOutlets(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}

	query := config.DB.Model(&models.Outlet{})
	if !caller.IsAdmin() {
		if caller.OutletID == nil {
			utils.RespondWithError(c, http.StatusForbidden, "Staff account has no outlet")
			return
		}
		query = query.Where("id = ?", *caller.OutletID)
	}

	var outlets []models.Outlet
	if err := query.Order("name ASC").Find(&outlets).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve outlets")
		return
	}

	c.JSON(http.StatusOK, outlets)
}

// UpdateOutlet updates an outlet's details. The prefix is immutable so
// existing invoice numbers keep their namespace.
func UpdateOutlet(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	if !caller.IsAdmin() {
		utils.RespondWithError(c, http.StatusForbidden, "Only admins can manage outlets")
		return
	}

	outletID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateOutletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var outlet models.Outlet
	if err := config.DB.First(&outlet, "id = ?", outletID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Outlet not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&outlet).Updates(updates).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update outlet")
			return
		}
	}

	c.JSON(http.StatusOK, outlet)
}
