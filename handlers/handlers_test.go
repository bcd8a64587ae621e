package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"tahfidz/config"
	"tahfidz/db"
	"tahfidz/routes"
)

// newTestServer spins up the full route tree over a fresh seeded SQLite
// store, the same wiring main.go performs.
func newTestServer(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.ConfigInstance = &config.Config{JWTSecret: "test-secret"}

	cfg := &config.Config{
		DBDriver: "sqlite3",
		DBPath:   filepath.Join(t.TempDir(), "tahfidz.db"),
	}
	database, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.InitSchema(database, cfg.DBDriver); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	if err := db.Seed(database); err != nil {
		t.Fatalf("seed: %v", err)
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("db", database)
		c.Next()
	})
	routes.SetupRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, database
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func getResp(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
