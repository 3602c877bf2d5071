package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lunelabs/cyclefem/internal/db"
	"github.com/lunelabs/cyclefem/internal/services"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key"

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()

	app, repos, _ := newTestAppWithDB(t)
	return app, repos
}

func newTestAppWithDB(t *testing.T) (*fiber.App, *db.Repositories, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cyclefem-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	assistant := services.NewAssistantService(nil, repos.Chats)
	handler := NewHandler(repos, testSecretKey, assistant)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, repos, database
}

func jsonRequest(t *testing.T, method string, target string, payload any, token string) *http.Request {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, target, body)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func performJSON(t *testing.T, app *fiber.App, request *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body for %s %s: %v", request.Method, request.URL.Path, err)
	}
	return response, decoded
}

// registerTestUser creates an account through the public endpoint and
// returns the issued bearer token.
func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	payload := map[string]any{"email": email, "password": "secret123", "name": "Test"}
	response, body := performJSON(t, app, jsonRequest(t, http.MethodPost, "/api/register", payload, ""))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected registration status 201, got %d (body %v)", response.StatusCode, body)
	}

	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected a token in the registration response, got %v", body)
	}
	return token
}

func seedCycle(t *testing.T, app *fiber.App, token string, startDate string) {
	t.Helper()

	payload := map[string]any{"startDate": startDate}
	response, body := performJSON(t, app, jsonRequest(t, http.MethodPost, "/api/cycles", payload, token))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected cycle creation status 201, got %d (body %v)", response.StatusCode, body)
	}
}
