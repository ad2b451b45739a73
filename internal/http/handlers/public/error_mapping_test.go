package public

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		entity string
		code   int
		msg    string
	}{
		{name: "not found", err: service.ErrNotFound, entity: "Delivery", code: http.StatusNotFound, msg: "Delivery not found"},
		{name: "wrapped not found", err: fmt.Errorf("load: %w", service.ErrNotFound), entity: "", code: http.StatusNotFound, msg: "Not found"},
		{name: "missing customer", err: service.ErrCustomerNotFound, entity: "Purchase", code: http.StatusUnprocessableEntity, msg: "Customer not found"},
		{name: "missing delivery", err: service.ErrDeliveryNotFound, entity: "Purchase", code: http.StatusUnprocessableEntity, msg: "Delivery not found"},
		{name: "email taken", err: service.ErrEmailExists, entity: "Customer", code: http.StatusConflict, msg: "Email already registered"},
		{name: "bad transition", err: service.ErrInvalidTransition, entity: "Delivery", code: http.StatusConflict, msg: "Delivery status transition not allowed"},
		{name: "product in use", err: service.ErrProductInUse, entity: "Product", code: http.StatusConflict, msg: "Product has purchases and cannot be deleted"},
		{name: "unknown", err: errors.New("disk on fire"), entity: "Product", code: http.StatusInternalServerError, msg: "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondServiceError(c, tc.err, tc.entity)

			if w.Code != tc.code {
				t.Fatalf("status want %d got %d", tc.code, w.Code)
			}
			var body struct {
				StatusCode int    `json:"status_code"`
				Msg        string `json:"msg"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if body.StatusCode != tc.code || body.Msg != tc.msg {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

func TestRespondServiceErrorValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/ratings", nil)

	verr := &service.ValidationError{}
	verr.Add("rating", "must be at most 5")
	respondServiceError(c, verr, "Rating")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
	var body struct {
		Msg    string `json:"msg"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if body.Msg != "Validation failed" || len(body.Errors) != 1 || body.Errors[0].Field != "rating" {
		t.Fatalf("unexpected validation body %+v", body)
	}
}
