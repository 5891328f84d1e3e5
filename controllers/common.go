// controllers/common.go
package controllers

import (
	"net/http"

	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CurrentCaller rebuilds the request's Caller from the claims the auth
// middleware stored in the context. Responds 401 itself on failure.
func CurrentCaller(c *gin.Context) (services.Caller, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return services.Caller{}, false
	}
	role, exists := c.Get("role")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Role not found in context")
		return services.Caller{}, false
	}

	userIDStr, ok := userID.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID format")
		return services.Caller{}, false
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID format")
		return services.Caller{}, false
	}
	roleStr, ok := role.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid role format")
		return services.Caller{}, false
	}

	caller := services.Caller{
		UserID: userUUID,
		Role:   roleStr,
	}

	// Staff tokens carry their outlet; admin tokens leave it empty.
	if outletID, exists := c.Get("outletId"); exists {
		if s, ok := outletID.(string); ok && s != "" {
			outletUUID, err := uuid.Parse(s)
			if err != nil {
				utils.RespondWithError(c, http.StatusUnauthorized, "Invalid outlet ID format")
				return services.Caller{}, false
			}
			caller.OutletID = &outletUUID
		}
	}

	return caller, true
}

// parseIDParam parses the ":id" path parameter. Responds 400 itself on
// failure.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
