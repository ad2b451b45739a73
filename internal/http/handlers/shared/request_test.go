package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestContext(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	return c
}

func fieldsOf(err error) map[string]string {
	out := map[string]string{}
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			out[f.Field] = f.Message
		}
	}
	return out
}

func TestParsePage(t *testing.T) {
	limits := PageLimits{DefaultLimit: 100, MaxLimit: 1000}

	page, err := ParsePage(newTestContext(http.MethodGet, "/products", ""), limits)
	if err != nil || page.Skip != 0 || page.Limit != 100 {
		t.Fatalf("defaults want 0/100 got %+v err=%v", page, err)
	}

	page, err = ParsePage(newTestContext(http.MethodGet, "/products?skip=5&limit=5000", ""), limits)
	if err != nil || page.Skip != 5 || page.Limit != 1000 {
		t.Fatalf("clamped page want 5/1000 got %+v err=%v", page, err)
	}

	_, err = ParsePage(newTestContext(http.MethodGet, "/products?skip=-1&limit=abc", ""), limits)
	if !errors.Is(err, service.ErrValidation) {
		t.Fatalf("want validation error got %v", err)
	}
	fields := fieldsOf(err)
	if fields["skip"] == "" || fields["limit"] == "" {
		t.Fatalf("expected skip and limit errors, got %v", fields)
	}
}

func TestParseID(t *testing.T) {
	c := newTestContext(http.MethodGet, "/products/7", "")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	id, err := ParseID(c, "id")
	if err != nil || id != 7 {
		t.Fatalf("want 7 got %d err=%v", id, err)
	}

	for _, raw := range []string{"0", "-3", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		if _, err := ParseID(c, "id"); !errors.Is(err, service.ErrValidation) {
			t.Fatalf("id %q should be rejected, got %v", raw, err)
		}
	}
}

func TestBindJSON(t *testing.T) {
	var target struct {
		Quantity int `json:"quantity"`
	}

	if err := BindJSON(newTestContext(http.MethodPost, "/purchases", `{"quantity":2}`), &target); err != nil || target.Quantity != 2 {
		t.Fatalf("bind want quantity 2 got %d err=%v", target.Quantity, err)
	}
	err := BindJSON(newTestContext(http.MethodPost, "/purchases", `{"quantity":"two"}`), &target)
	if fieldsOf(err)["quantity"] == "" {
		t.Fatalf("type mismatch should name the field, got %v", err)
	}
	err = BindJSON(newTestContext(http.MethodPost, "/purchases", `{"quantity":`), &target)
	if !errors.Is(err, service.ErrValidation) {
		t.Fatalf("malformed JSON should be a validation error, got %v", err)
	}
}
