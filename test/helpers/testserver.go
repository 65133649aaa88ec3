package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"parttime_backend/database"
	"parttime_backend/internal/app"
	"parttime_backend/internal/config"
	"parttime_backend/internal/logger"

	"gorm.io/gorm"
)

// TestServer bundles the httptest server with the database handle the
// tests seed through.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to the database named by DATABASE_URL, migrates it
// and starts an httptest server on the real router. Tests are skipped when
// DATABASE_URL is not set.
func NewTestServer(t *testing.T) *TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init("development")

	db, err := database.ConnectGorm(cfg.Database.DSN)
	if err != nil {
		t.Fatalf("Failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables empties every table between tests.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec("TRUNCATE TABLE applications, jobs, refresh_tokens, users RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("Failed to clear tables: %v", err)
	}
}

// SendRequest performs one JSON request against the test server and returns
// the response together with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return res, string(resBody)
}
