package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundrypro-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite-compatible mirrors of the postgres models, used only for schema
// creation: the uuid_generate_v4() column defaults in the real tags don't
// parse in sqlite DDL.

type outletSQLite struct {
	ID      uuid.UUID `gorm:"primaryKey"`
	Name    string    `gorm:"not null"`
	Prefix  string    `gorm:"uniqueIndex;not null"`
	Address string
	Phone   string
}

func (outletSQLite) TableName() string { return "outlets" }

type invoiceSequenceSQLite struct {
	OutletID   uuid.UUID `gorm:"primaryKey"`
	LastNumber int64     `gorm:"not null;default:0"`
}

func (invoiceSequenceSQLite) TableName() string { return "invoice_sequences" }

type userSQLite struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	FullName  string    `gorm:"not null"`
	Phone     string
	Role      string     `gorm:"not null"`
	OutletID  *uuid.UUID `gorm:"index"`
	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userSQLite) TableName() string { return "users" }

func setupAuthTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&outletSQLite{},
		&invoiceSequenceSQLite{},
		&userSQLite{},
	))
	config.DB = db

	r := gin.New()
	r.POST("/auth/setup", Setup)
	r.POST("/auth/login", Login)
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupCreatesAdminAndOutlet(t *testing.T) {
	r, db := setupAuthTest(t)

	w := postJSON(t, r, "/auth/setup", gin.H{
		"email":        "owner@laundry.in",
		"password":     "supersecret1",
		"fullName":     "Asha Rao",
		"outletName":   "Main Branch",
		"outletPrefix": "bd",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user userSQLite
	require.NoError(t, db.First(&user, "email = ?", "owner@laundry.in").Error)
	assert.Equal(t, "admin", user.Role)
	assert.NotEqual(t, "supersecret1", user.Password)

	var seqCount int64
	require.NoError(t, db.Model(&invoiceSequenceSQLite{}).Count(&seqCount).Error)
	assert.Equal(t, int64(1), seqCount)

	// Setup refuses to run a second time.
	again := postJSON(t, r, "/auth/setup", gin.H{
		"email":        "other@laundry.in",
		"password":     "supersecret1",
		"fullName":     "Other Admin",
		"outletName":   "Second Branch",
		"outletPrefix": "SB",
	})
	assert.Equal(t, http.StatusConflict, again.Code)
}

func TestSetupNormalizesEmailForLogin(t *testing.T) {
	r, db := setupAuthTest(t)

	w := postJSON(t, r, "/auth/setup", gin.H{
		"email":        "Owner@Laundry.IN",
		"password":     "supersecret1",
		"fullName":     "Asha Rao",
		"outletName":   "Main Branch",
		"outletPrefix": "BD",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user userSQLite
	require.NoError(t, db.First(&user, "role = ?", "admin").Error)
	assert.Equal(t, "owner@laundry.in", user.Email)

	login := postJSON(t, r, "/auth/login", gin.H{
		"email":    "owner@laundry.in",
		"password": "supersecret1",
	})
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// Logging in with the original casing works too.
	again := postJSON(t, r, "/auth/login", gin.H{
		"email":    "Owner@Laundry.IN",
		"password": "supersecret1",
	})
	assert.Equal(t, http.StatusOK, again.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, _ := setupAuthTest(t)

	w := postJSON(t, r, "/auth/setup", gin.H{
		"email":        "owner@laundry.in",
		"password":     "supersecret1",
		"fullName":     "Asha Rao",
		"outletName":   "Main Branch",
		"outletPrefix": "BD",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	login := postJSON(t, r, "/auth/login", gin.H{
		"email":    "owner@laundry.in",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, login.Code)
}
