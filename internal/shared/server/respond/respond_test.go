package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorWritesJSONEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
		Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected json content type, got %s", ct)
	}
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "internal_error" || body.Error.Message != "failed to load resume" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestTextWritesPlainBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		Text(c, http.StatusNotFound, "not_found", "Resume not found at: /data/media/resumes/your_resume.pdf")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text content type, got %s", ct)
	}
	if resp.Body.String() != "Resume not found at: /data/media/resumes/your_resume.pdf" {
		t.Fatalf("unexpected body: %q", resp.Body.String())
	}
}

func TestOKWritesJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		OK(c, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != `{"ok":true}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestFailChoosesFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/page", func(c *gin.Context) {
		Fail(c, true, http.StatusTooManyRequests, CodeRateLimited, "slow down", nil)
	})
	router.GET("/api", func(c *gin.Context) {
		Fail(c, false, http.StatusTooManyRequests, CodeRateLimited, "slow down", nil)
	})

	page := httptest.NewRecorder()
	router.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/page", nil))
	if page.Code != http.StatusTooManyRequests || page.Body.String() != "slow down" {
		t.Fatalf("unexpected page response: %d %q", page.Code, page.Body.String())
	}

	api := httptest.NewRecorder()
	router.ServeHTTP(api, httptest.NewRequest(http.MethodGet, "/api", nil))
	var body ErrorResponse
	if err := json.NewDecoder(api.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != CodeRateLimited {
		t.Fatalf("unexpected body: %+v", body)
	}
}
