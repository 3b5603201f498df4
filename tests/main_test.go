package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/travel-planner-backend/internal/app"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

var testRouter *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// Memory backend + fixed seed keeps the suite self-contained and
	// repeatable.
	container := app.NewContainer(app.Config{
		ShareBaseURL:        "http://localhost:8080",
		ExportSigningSecret: "test-export-secret",
		ExportLinkTTL:       time.Hour,
		BcryptCost:          4, // Lower cost for testing purposes
		Random:              random.NewSource(42),
	})

	testRouter = container.Router

	os.Exit(m.Run())
}

func executeRequest(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response body: %v\nbody: %s", err, w.Body.String())
	}
}
