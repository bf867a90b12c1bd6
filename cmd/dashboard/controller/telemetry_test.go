package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/xelaorg/xela-status/service/singleton"
)

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	singleton.Init()
	r := gin.New()
	routers(r)
	return r
}

func request(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestTelemetrySelector(t *testing.T) {
	r := testEngine()

	cases := []struct {
		url      string
		code     int
		contains []string
		excludes []string
	}{
		{"/api/telemetry?show=latest", http.StatusOK, []string{`"latest"`}, []string{`"history"`}},
		{"/api/telemetry?show=history", http.StatusOK, []string{`"history"`}, []string{`"latest"`}},
		{"/api/telemetry?show=latest,history", http.StatusOK, []string{`"latest"`, `"history"`}, nil},
		{"/api/telemetry?show=latest,bogus", http.StatusOK, []string{`"latest"`}, nil},
		{"/api/telemetry", http.StatusBadRequest, []string{`"message"`}, nil},
		{"/api/telemetry?show=bogus", http.StatusBadRequest, nil, nil},
	}

	for _, c := range cases {
		w := request(r, c.url)
		if w.Code != c.code {
			t.Fatalf("%s: expected %d, but got %d", c.url, c.code, w.Code)
		}
		body := w.Body.String()
		for _, s := range c.contains {
			if !strings.Contains(body, s) {
				t.Fatalf("%s: expected body to contain %s, got %s", c.url, s, body)
			}
		}
		for _, s := range c.excludes {
			if strings.Contains(body, s) {
				t.Fatalf("%s: expected body to not contain %s, got %s", c.url, s, body)
			}
		}
	}
}

func TestLegacyHistoryPayload(t *testing.T) {
	r := testEngine()

	w := request(r, "/api/history")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current"`)
	assert.Contains(t, w.Body.String(), `"history"`)
	assert.Contains(t, w.Body.String(), `"ping_ws"`)
}
