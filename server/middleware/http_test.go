package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webcore/errors"
	"github.com/skillsenselab/webcore/logger"
	"github.com/skillsenselab/webcore/policy"
	"github.com/skillsenselab/webcore/server/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ---------------------------------------------------------------------------
// Recovery
// ---------------------------------------------------------------------------

func TestRecovery_NoPanic(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery(logger.Nop()))
	r.GET("/", okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRecovery_PanicRendersInternalEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery(logger.Nop()))
	r.GET("/", func(_ *gin.Context) {
		panic("secret internal state: token=abc123")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "token=abc123") {
		t.Errorf("panic text leaked to the wire: %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"name":"ApplicationError"`) {
		t.Errorf("expected the internal envelope, got %s", rr.Body.String())
	}
}

// ---------------------------------------------------------------------------
// RequestID
// ---------------------------------------------------------------------------

func TestRequestID_GeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id in response headers")
	}
}

func TestRequestID_PreservesExisting(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", okHandler)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("X-Request-Id", "custom-id-123")
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-Id"); got != "custom-id-123" {
		t.Fatalf("expected custom-id-123, got %s", got)
	}
}

// ---------------------------------------------------------------------------
// RequirePolicy
// ---------------------------------------------------------------------------

func TestRequirePolicy_AllowedReachesHandler(t *testing.T) {
	allow := policy.PolicyFunc(func(_ context.Context, _ policy.Config) (bool, error) {
		return true, nil
	})

	r := gin.New()
	r.GET("/", middleware.RequirePolicy(policy.NewGate(), nil, allow), okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRequirePolicy_DeniedHaltsPipeline(t *testing.T) {
	deny := policy.PolicyFunc(func(_ context.Context, _ policy.Config) (bool, error) {
		return false, nil
	})

	var handlerRan bool
	r := gin.New()
	r.GET("/", middleware.RequirePolicy(policy.NewGate(), nil, deny), func(c *gin.Context) {
		handlerRan = true
		okHandler(c)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if handlerRan {
		t.Error("handler must not run after a denial")
	}
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}

	var body struct {
		Error struct {
			Name    string `json:"name"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Error.Name != "PolicyError" || body.Error.Message != "Policy Failed" {
		t.Errorf("unexpected envelope: %+v", body.Error)
	}
}

func TestRequirePolicy_CustomDenialError(t *testing.T) {
	deny := policy.PolicyFunc(func(_ context.Context, _ policy.Config) (bool, error) {
		return false, errors.Unauthorized("")
	})

	r := gin.New()
	r.GET("/", middleware.RequirePolicy(policy.NewGate(), nil, deny), okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"name":"UnauthorizedError"`) {
		t.Errorf("expected UnauthorizedError envelope, got %s", rr.Body.String())
	}
}

// ---------------------------------------------------------------------------
// BodySizeLimit
// ---------------------------------------------------------------------------

func TestBodySizeLimit_RejectsOversizedBody(t *testing.T) {
	r := gin.New()
	r.POST("/", middleware.BodySizeLimit(16), okHandler)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64)))
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"name":"PayloadTooLargeError"`) {
		t.Errorf("expected PayloadTooLargeError envelope, got %s", rr.Body.String())
	}
}

func TestBodySizeLimit_AllowsSmallBody(t *testing.T) {
	r := gin.New()
	r.POST("/", middleware.BodySizeLimit(1024), okHandler)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader("tiny"))
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
