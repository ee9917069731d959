package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webcore/errors"
	"github.com/skillsenselab/webcore/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET("/t", handler)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/t", http.NoBody))
	return rr
}

func TestRespondError_TaxonomyError(t *testing.T) {
	rr := perform(t, func(c *gin.Context) {
		server.RespondError(c, errors.NotFound("article", "9"))
	})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	var body struct {
		Data  any `json:"data"`
		Error struct {
			Status  int            `json:"status"`
			Name    string         `json:"name"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Data != nil {
		t.Error("data must be null")
	}
	if body.Error.Status != 404 || body.Error.Name != "NotFoundError" {
		t.Errorf("unexpected error body: %+v", body.Error)
	}
	if body.Error.Details["resource"] != "article" {
		t.Errorf("expected resource detail, got %v", body.Error.Details)
	}
}

func TestRespondError_UnknownErrorCoerced(t *testing.T) {
	rr := perform(t, func(c *gin.Context) {
		server.RespondError(c, fmt.Errorf("pq: relation \"articles\" does not exist"))
	})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "pq:") {
		t.Errorf("internal diagnostic leaked: %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"name":"ApplicationError"`) {
		t.Errorf("expected ApplicationError envelope, got %s", rr.Body.String())
	}
}

func TestRespondGraphQLError_Rides200(t *testing.T) {
	rr := perform(t, func(c *gin.Context) {
		server.RespondGraphQLError(c, "articles", errors.Forbidden(""))
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("GraphQL errors ride 200, got %d", rr.Code)
	}

	var body struct {
		Errors []struct {
			Message    string `json:"message"`
			Extensions struct {
				Code string `json:"code"`
			} `json:"extensions"`
		} `json:"errors"`
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Extensions.Code != "FORBIDDEN" {
		t.Errorf("unexpected body: %+v", body)
	}
	if v, ok := body.Data["articles"]; !ok || v != nil {
		t.Errorf("expected data.articles: null, got %v", body.Data)
	}
}

func TestRespondOK_SuccessEnvelope(t *testing.T) {
	rr := perform(t, func(c *gin.Context) {
		server.RespondOK(c, gin.H{"id": "1"})
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"error":null`) {
		t.Errorf("success envelope must carry error: null, got %s", rr.Body.String())
	}
}
