package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"project-management-api/internal/auth"
	"project-management-api/internal/cache"
	"project-management-api/internal/middleware"
	"project-management-api/internal/models"
	"project-management-api/internal/notify"
	"project-management-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTest wires a handler around an in-memory database; notifications
// are persisted but no email/websocket delivery is attached.
func setupTest(t *testing.T) (*Handler, *gorm.DB, *cache.Listings) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	listings := cache.NewListings()
	h := New(db, listings, notify.New(db, nil, nil), nil)
	return h, db, listings
}

// newRouter registers every protected endpoint behind the JWT middleware.
func newRouter(h *Handler) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	api.POST("/token", h.Token)
	api.POST("/token/refresh", h.RefreshToken)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.GET("/projects", h.ListProjects)
	protected.POST("/projects", h.CreateProject)
	protected.PUT("/projects", h.UpdateProject)
	protected.DELETE("/projects", h.DeleteProject)
	protected.GET("/tasks", h.ListTasks)
	protected.POST("/tasks", h.CreateTask)
	protected.PUT("/tasks", h.UpdateTask)
	protected.DELETE("/tasks", h.DeleteTask)
	protected.PUT("/assign-task", h.AssignTask)
	protected.GET("/milestones", h.ListMilestones)
	protected.POST("/milestones", h.CreateMilestone)
	protected.PUT("/milestones", h.UpdateMilestone)
	protected.DELETE("/milestones", h.DeleteMilestone)
	protected.GET("/notifications", h.ListNotifications)
	protected.GET("/users", h.GetAllUsers)
	protected.POST("/users", h.CreateUser)
	return r
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Email:        username + "@example.com",
		Username:     username,
		Role:         role,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Status  int             `json:"status"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func messageString(t *testing.T, env envelope) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(env.Message, &s))
	return s
}

func notificationCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	return count
}
