package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gatherly/backend/internal/middleware"
	"github.com/gatherly/backend/internal/models"
	"github.com/gatherly/backend/internal/services"
	"github.com/gatherly/backend/pkg/logger"
	"github.com/gatherly/backend/pkg/utils"
)

var testDefaultOwnerID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

var testSetupOnce sync.Once

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	testSetupOnce.Do(func() {
		logger.Init()
		utils.ConfigureJWT("test-secret", 24)
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(&models.GroupEvent{}); err != nil {
		t.Fatalf("failed automigrating models: %v", err)
	}

	groupEventService := services.NewGroupEventService(db)

	groupEventsHandler := NewGroupEventsHandler(groupEventService)
	authHandler := NewAuthHandler(testDefaultOwnerID)
	authMiddleware := middleware.NewAuthMiddleware(testDefaultOwnerID)

	app := fiber.New()
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS())
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Post("/auth/token", authHandler.IssueToken)

	groupEvents := v1.Group("/group_events", authMiddleware.ResolveUser)
	groupEvents.Post("/", groupEventsHandler.Create)
	groupEvents.Get("/", groupEventsHandler.List)
	groupEvents.Get("/:id", groupEventsHandler.Get)
	groupEvents.Put("/:id", groupEventsHandler.Update)
	groupEvents.Patch("/:id", groupEventsHandler.Update)
	groupEvents.Delete("/:id", groupEventsHandler.Delete)

	return &testEnv{app: app, db: db}
}

func groupEventPayload(attrs map[string]any) map[string]any {
	return map[string]any{
		"data": map[string]any{
			"type":       groupEventType,
			"attributes": attrs,
		},
	}
}

func mintToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token, err := utils.GenerateToken(userID)
	if err != nil {
		t.Fatalf("failed generating auth token: %v", err)
	}
	return token
}

func authHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	return resp
}

func performJSONRequest(t *testing.T, app *fiber.App, method, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	requestHeaders := map[string]string{}
	for key, value := range headers {
		requestHeaders[key] = value
	}
	if payload != nil {
		requestHeaders["Content-Type"] = "application/json"
	}

	return performRequest(t, app, method, path, body, requestHeaders)
}

func decodeJSONMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, string(raw))
	}

	return payload
}

func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

func resourceData(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected single resource under data, got %+v", body)
	}
	return data
}

func resourceAttributes(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	attrs, ok := resourceData(t, body)["attributes"].(map[string]any)
	if !ok {
		t.Fatalf("expected attributes object, got %+v", body)
	}
	return attrs
}

func errorDetails(t *testing.T, body map[string]any, pointer string) []string {
	t.Helper()

	rawErrors, ok := body["errors"].([]any)
	if !ok {
		t.Fatalf("expected errors array, got %+v", body)
	}

	var details []string
	for _, raw := range rawErrors {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		source, _ := obj["source"].(map[string]any)
		if p, _ := source["pointer"].(string); p == pointer {
			detail, _ := obj["detail"].(string)
			details = append(details, detail)
		}
	}
	return details
}

func assertHasError(t *testing.T, body map[string]any, pointer, detail string) {
	t.Helper()

	for _, got := range errorDetails(t, body, pointer) {
		if got == detail {
			return
		}
	}
	t.Fatalf("expected error %q at pointer %q, got %+v", detail, pointer, body["errors"])
}
