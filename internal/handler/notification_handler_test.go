package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/internal/service"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

// asUser injects the authenticated user the way the JWT middleware would.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID.String())
		c.Next()
	}
}

func setupEnv(t *testing.T, actorID uuid.UUID) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Follow{}, &model.Notification{}))

	userRepo := repository.NewUserRepository(db)
	notificationService := service.NewNotificationService(repository.NewNotificationRepository(db), userRepo, nil)
	followService := service.NewFollowService(repository.NewFollowRepository(db), userRepo, notificationService, nil)
	profileService := service.NewProfileService(userRepo, repository.NewFollowRepository(db), nil)

	notificationHandler := NewNotificationHandler(notificationService)
	userHandler := NewUserHandler(profileService, followService)

	router := gin.New()
	api := router.Group("/api", asUser(actorID))
	api.GET("/notifications", notificationHandler.GetNotifications)
	api.POST("/notifications", notificationHandler.CreateBroadcast)
	api.POST("/notifications/direct", notificationHandler.CreateDirect)
	api.PUT("/notifications/:id", notificationHandler.UpdateNotification)
	api.DELETE("/notifications/:id", notificationHandler.DeleteNotification)
	api.PUT("/notifications/mark-read", notificationHandler.MarkAllAsRead)
	api.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	api.POST("/users/follow/:id", userHandler.ToggleFollow)

	return &testEnv{router: router, db: db}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		Email:        username + "@player.dev",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateBroadcastEndpoint(t *testing.T) {
	adminID := uuid.New()
	env := setupEnv(t, adminID)
	require.NoError(t, env.db.Create(&model.User{
		ID:           adminID,
		Username:     "admin",
		Email:        "admin@player.dev",
		PasswordHash: "x",
		Role:         model.RoleAdmin,
	}).Error)

	rec := env.do(t, http.MethodPost, "/api/notifications", gin.H{
		"title":   "Trials next week",
		"message": "Report to the stadium by 7am",
		"type":    "announcement",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "all", created.TargetAudience)
	assert.Equal(t, adminID, created.CreatedByID)

	// Missing required fields are rejected at the binding layer.
	rec = env.do(t, http.MethodPost, "/api/notifications", gin.H{"title": "no message"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBroadcastEndpointForbidsAthletes(t *testing.T) {
	athleteID := uuid.New()
	env := setupEnv(t, athleteID)
	require.NoError(t, env.db.Create(&model.User{
		ID:           athleteID,
		Username:     "rohit",
		Email:        "rohit@player.dev",
		PasswordHash: "x",
		Role:         model.RoleAthlete,
	}).Error)

	rec := env.do(t, http.MethodPost, "/api/notifications", gin.H{
		"title":   "x",
		"message": "y",
		"type":    "general",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFollowToggleEndpoint(t *testing.T) {
	actorID := uuid.New()
	env := setupEnv(t, actorID)
	require.NoError(t, env.db.Create(&model.User{
		ID:           actorID,
		Username:     "rohit",
		Email:        "rohit@player.dev",
		PasswordHash: "x",
		Role:         model.RoleAthlete,
	}).Error)
	target := seedUser(t, env.db, "virat", model.RoleAthlete)

	toggle := func() dto.FollowToggleResponse {
		rec := env.do(t, http.MethodPost, "/api/users/follow/"+target.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.FollowToggleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	assert.Equal(t, service.StateFollowed, toggle().State)
	assert.Equal(t, service.StateUnfollowed, toggle().State)

	// Self-follow is a 400, malformed ids too, unknown targets a 404.
	rec := env.do(t, http.MethodPost, "/api/users/follow/"+actorID.String(), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/users/follow/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/users/follow/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationReadFlow(t *testing.T) {
	athleteID := uuid.New()
	env := setupEnv(t, athleteID)
	require.NoError(t, env.db.Create(&model.User{
		ID:           athleteID,
		Username:     "rohit",
		Email:        "rohit@player.dev",
		PasswordHash: "x",
		Role:         model.RoleAthlete,
	}).Error)

	recipientID := athleteID
	require.NoError(t, env.db.Create(&model.Notification{
		Title:       "Document check",
		Message:     "m",
		Type:        model.NotificationTypeGeneral,
		RecipientID: &recipientID,
		CreatedByID: uuid.New(),
		IsActive:    true,
	}).Error)

	rec := env.do(t, http.MethodGet, "/api/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var count struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &count))
	assert.Equal(t, int64(1), count.Count)

	rec = env.do(t, http.MethodPut, "/api/notifications/mark-read", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &count))
	assert.Equal(t, int64(0), count.Count)

	rec = env.do(t, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []model.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.True(t, list.Data[0].IsRead)
}
