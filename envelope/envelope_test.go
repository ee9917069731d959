package envelope

import (
	"bytes"
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/skillsenselab/webcore/errors"
)

func TestRenderREST_StatusAndName(t *testing.T) {
	for _, k := range errors.Kinds() {
		env := RenderREST(errors.Classify(k, ""))
		if env.Error.Status != k.HTTPStatus() {
			t.Errorf("%s: expected status %d, got %d", k.Name(), k.HTTPStatus(), env.Error.Status)
		}
		if env.Error.Name != k.Name() {
			t.Errorf("expected name %s, got %s", k.Name(), env.Error.Name)
		}
		if env.Data != nil {
			t.Errorf("%s: data must be null", k.Name())
		}
	}
}

func TestRenderREST_EmptyDetails(t *testing.T) {
	env := RenderREST(errors.Forbidden(""))
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"details":{}`)) {
		t.Errorf("empty details must render as {}: %s", raw)
	}
	if !bytes.Contains(raw, []byte(`"data":null`)) {
		t.Errorf("data must render as null: %s", raw)
	}
}

func TestRenderREST_DoesNotAliasDetails(t *testing.T) {
	e := errors.Validation("bad title").WithDetail("field", "title")
	env := RenderREST(e)
	env.Error.Details["field"] = "mutated"
	if e.Details["field"] != "title" {
		t.Error("envelope must not alias the instance's details map")
	}
}

func TestRenderGraphQL_Shape(t *testing.T) {
	e := errors.Forbidden("no access").WithDetail("article", "9")
	env := RenderGraphQL(e, "updateArticle")

	if len(env.Errors) != 1 {
		t.Fatalf("expected one error entry, got %d", len(env.Errors))
	}
	entry := env.Errors[0]
	if entry.Message != "no access" {
		t.Errorf("expected message at top level, got %q", entry.Message)
	}
	if entry.Extensions.Error.Name != "ForbiddenError" {
		t.Errorf("expected ForbiddenError, got %s", entry.Extensions.Error.Name)
	}
	if entry.Extensions.Code != CodeForbidden {
		t.Errorf("expected FORBIDDEN, got %s", entry.Extensions.Code)
	}
	if v, ok := env.Data["updateArticle"]; !ok || v != nil {
		t.Errorf("expected data.updateArticle: null, got %v", env.Data)
	}
}

func TestRenderGraphQL_Codes(t *testing.T) {
	cases := map[string]struct {
		err  *errors.Error
		code string
	}{
		"validation":   {errors.Validation(""), CodeBadUserInput},
		"pagination":   {errors.Pagination(""), CodeBadUserInput},
		"forbidden":    {errors.Forbidden(""), CodeForbidden},
		"policy":       {errors.Policy(""), CodeForbidden},
		"unauthorized": {errors.Unauthorized(""), CodeUnauthenticated},
		"application":  {errors.Application(""), CodeInternalServerError},
		"custom": {
			errors.Classify(errors.NewKind("TeapotError", http.StatusTeapot, "I'm a teapot"), ""),
			CodeInternalServerError,
		},
	}
	for name, tc := range cases {
		env := RenderGraphQL(tc.err, "q")
		if got := env.Errors[0].Extensions.Code; got != tc.code {
			t.Errorf("%s: expected code %s, got %s", name, tc.code, got)
		}
	}
}

func TestRender_ContentParity(t *testing.T) {
	e := errors.Pagination("page must be >= 1").WithDetail("page", -1)
	rest := RenderREST(e)
	gql := RenderGraphQL(e, "articles")

	if rest.Error.Message != gql.Errors[0].Extensions.Error.Message {
		t.Error("REST and GraphQL messages must match")
	}
	if !reflect.DeepEqual(rest.Error.Details, gql.Errors[0].Extensions.Error.Details) {
		t.Error("REST and GraphQL details must match")
	}
}

func TestRender_Idempotent(t *testing.T) {
	e := errors.NotFound("article", "12")

	a, _ := json.Marshal(RenderREST(e))
	b, _ := json.Marshal(RenderREST(e))
	if !bytes.Equal(a, b) {
		t.Error("REST rendering must be byte-identical across calls")
	}

	c, _ := json.Marshal(RenderGraphQL(e, "article"))
	d, _ := json.Marshal(RenderGraphQL(e, "article"))
	if !bytes.Equal(c, d) {
		t.Error("GraphQL rendering must be byte-identical across calls")
	}
}
