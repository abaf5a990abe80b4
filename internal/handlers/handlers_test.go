package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hustlehives/backend/internal/config"
	"github.com/hustlehives/backend/internal/middleware"
	"github.com/hustlehives/backend/internal/models"
	"github.com/hustlehives/backend/internal/services"
	"github.com/hustlehives/backend/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testDBCounter int

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBCounter++
	dsn := fmt.Sprintf("file:handlerdb%d?mode=memory&cache=shared", testDBCounter)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Review{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

// newTestServer wires the public and admin routes the way
// cmd/server/routes.go does, minus rate limiting.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Admin.Password = "AP@2005"
	cfg.Admin.Token = "hustle-hives-admin-token-2024"
	utils.SetJWTSecret(cfg.JWT.Secret)

	db := setupTestDB(t)
	audit := services.NewAuditService(db)
	authHandler := NewAuthHandler(cfg, audit)
	reviewHandler := NewReviewHandler(db, audit)
	auditLogHandler := NewAuditLogHandler(audit)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/reviews", reviewHandler.List)
	api.POST("/reviews", reviewHandler.Create)
	api.POST("/admin/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(authHandler.AuthService()))
	admin.DELETE("/reviews/:id", reviewHandler.Delete)
	admin.GET("/logs", auditLogHandler.List)

	return &testServer{router: router, db: db, cfg: cfg}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	w := ts.do(t, "POST", "/api/admin/login", map[string]string{"password": "AP@2005"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: status %d, body %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["token"] == "" {
		t.Fatal("login returned no token")
	}
	return resp["token"]
}

func (ts *testServer) listReviews(t *testing.T) []models.Review {
	t.Helper()

	w := ts.do(t, "GET", "/api/reviews", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: status %d", w.Code)
	}

	var reviews []models.Review
	if err := json.Unmarshal(w.Body.Bytes(), &reviews); err != nil {
		t.Fatalf("listing body should be a bare array: %v", err)
	}
	return reviews
}
