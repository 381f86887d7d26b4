package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vsxchangeza/backend/internal/auth"
	"github.com/vsxchangeza/backend/internal/database"
	"github.com/vsxchangeza/backend/internal/logger"
	"github.com/vsxchangeza/backend/internal/models"
	"github.com/vsxchangeza/backend/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires a full router against an in-memory database so handler tests
// run without external services.
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *auth.Service
	store  *storage.LocalStore
}

// newTestEnv builds the environment. The single-connection pool serializes
// writes, so concurrent requests against SQLite don't hit busy errors.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger.InitializeForTests()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	database.DB = db

	authService := auth.NewService([]byte("test-secret"))

	store, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	h := NewHandlers(authService, store)

	r := gin.New()
	r.GET("/health", h.Health)
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/me", auth.RequireAuth(authService), h.Me)
		api.PUT("/me", auth.RequireAuth(authService), h.UpdateMe)

		api.GET("/users", h.SearchUsers)
		api.GET("/users/:id", h.GetUser)

		api.GET("/posts", h.ListPosts)
		api.POST("/posts", auth.RequireAuth(authService), h.CreatePost)
		api.POST("/posts/:id/approve", auth.RequireAuth(authService), h.ApprovePost)

		api.GET("/posts/:id/comments", h.ListComments)
		api.POST("/posts/:id/comments", auth.RequireAuth(authService), h.CreateComment)

		api.POST("/upload", auth.RequireAuth(authService), h.Upload)
	}

	return &testEnv{db: db, router: r, auth: authService, store: store}
}

// createUser inserts a user directly and returns it with a valid token
func (e *testEnv) createUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    "Test",
		LastName:     "User",
		Role:         "creative",
		Discoverable: true,
	}
	require.NoError(t, e.db.Create(user).Error)

	token, _, err := e.auth.IssueToken(user.ID)
	require.NoError(t, err)

	return user, token
}

// request performs a JSON request against the test router
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into a map
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// uniqueEmail avoids collisions across tests sharing a suite database
var emailCounter int

func uniqueEmail(prefix string) string {
	emailCounter++
	return fmt.Sprintf("%s%d@example.com", prefix, emailCounter)
}
