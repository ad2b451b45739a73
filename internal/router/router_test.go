package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/superman-store/internal/config"
	"github.com/superman-store/internal/logger"
	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type storeAPI struct {
	t      *testing.T
	engine *gin.Engine
}

type errorBody struct {
	StatusCode int    `json:"status_code"`
	Msg        string `json:"msg"`
	Errors     []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	RequestID string `json:"request_id"`
}

func setupStoreAPI(t *testing.T) *storeAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.L = zap.NewNop()

	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Decode(v)
	if err != nil {
		t.Fatalf("decode config failed: %v", err)
	}

	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, false)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		_ = models.CloseDB(db)
	})

	return &storeAPI{t: t, engine: SetupRouter(cfg, provider.NewContainer(cfg, db, nil))}
}

func (a *storeAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *storeAPI) mustCreate(path string, body interface{}) map[string]interface{} {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	if w.Code != http.StatusOK {
		a.t.Fatalf("create %s want 200 got %d body=%s", path, w.Code, w.Body.String())
	}
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		a.t.Fatalf("unmarshal create response failed: %v", err)
	}
	return out
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body failed: %v body=%s", err, w.Body.String())
	}
	return body
}

func capeBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Superman Cape",
		"price":       49.99,
		"image_url":   "https://example.com/cape.jpg",
		"category":    "Apparel",
		"description": "Red cape with the House of El crest",
		"quantity":    10,
	}
}

func clarkBody() map[string]interface{} {
	return map[string]interface{}{
		"firstname":        "Clark",
		"lastname":         "Kent",
		"email":            "clark@dailyplanet.com",
		"phone":            "5551234567",
		"delivery_address": "344 Clinton St, Metropolis",
		"billing_address":  "344 Clinton St, Metropolis",
	}
}

func idOf(t *testing.T, obj map[string]interface{}) int {
	t.Helper()
	id, ok := obj["id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("missing id in %v", obj)
	}
	return int(id)
}

func TestIndexAndHealth(t *testing.T) {
	api := setupStoreAPI(t)

	w := api.do(http.MethodGet, "/", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Welcome to Superman Store API") {
		t.Fatalf("unexpected index response %d %s", w.Code, w.Body.String())
	}
	w = api.do(http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health response %d %s", w.Code, w.Body.String())
	}
}

func TestCollectionRoutesAcceptTrailingSlash(t *testing.T) {
	api := setupStoreAPI(t)

	for _, path := range []string{"/products", "/products/", "/customers", "/customers/", "/deliveries/", "/purchases", "/comments/", "/ratings"} {
		w := api.do(http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s want 200 got %d", path, w.Code)
		}
		if strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("GET %s want empty array got %s", path, w.Body.String())
		}
	}
}

func TestProductLifecycle(t *testing.T) {
	api := setupStoreAPI(t)

	product := api.mustCreate("/products/", capeBody())
	id := idOf(t, product)
	if product["in_stock"] != true || product["price"] != 49.99 {
		t.Fatalf("unexpected product %v", product)
	}

	update := capeBody()
	update["price"] = 59.99
	update["in_stock"] = false
	w := api.do(http.MethodPut, fmt.Sprintf("/products/%d", id), update)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"price":59.99`) || !strings.Contains(w.Body.String(), `"in_stock":false`) {
		t.Fatalf("unexpected update response %d %s", w.Code, w.Body.String())
	}

	w = api.do(http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `{"message":"Product successfully deleted"}` {
		t.Fatalf("unexpected delete response %d %s", w.Code, w.Body.String())
	}

	w = api.do(http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted product want 404 got %d", w.Code)
	}
	body := decodeError(t, w)
	if body.StatusCode != http.StatusNotFound || body.Msg != "Product not found" || body.RequestID == "" {
		t.Fatalf("unexpected 404 body %+v", body)
	}
}

func TestValidationErrors(t *testing.T) {
	api := setupStoreAPI(t)

	bad := capeBody()
	bad["price"] = 0
	delete(bad, "name")
	w := api.do(http.MethodPost, "/products", bad)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 got %d", w.Code)
	}
	body := decodeError(t, w)
	fields := map[string]bool{}
	for _, item := range body.Errors {
		fields[item.Field] = true
	}
	if !fields["price"] || !fields["name"] {
		t.Fatalf("expected price and name field errors, got %+v", body.Errors)
	}

	w = api.do(http.MethodGet, "/products/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id want 400 got %d", w.Code)
	}
	w = api.do(http.MethodGet, "/products?limit=0", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("limit=0 want 400 got %d", w.Code)
	}
	w = api.do(http.MethodGet, "/products?skip=-1", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative skip want 400 got %d", w.Code)
	}
}

func TestCustomerEmailConflict(t *testing.T) {
	api := setupStoreAPI(t)

	api.mustCreate("/customers/", clarkBody())
	w := api.do(http.MethodPost, "/customers/", clarkBody())
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate email want 409 got %d", w.Code)
	}
	if body := decodeError(t, w); body.Msg != "Email already registered" {
		t.Fatalf("unexpected conflict message %q", body.Msg)
	}
}

func TestPurchaseFlow(t *testing.T) {
	api := setupStoreAPI(t)

	productID := idOf(t, api.mustCreate("/products/", capeBody()))
	customerID := idOf(t, api.mustCreate("/customers/", clarkBody()))
	deliveryID := idOf(t, api.mustCreate("/deliveries/", map[string]interface{}{
		"type":     "Express",
		"min_days": 1,
		"max_days": 3,
	}))

	w := api.do(http.MethodPost, "/purchases/", map[string]interface{}{
		"customer_id": customerID,
		"product_id":  productID,
		"delivery_id": deliveryID,
		"quantity":    2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create purchase want 200 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"total_amount":99.98`) {
		t.Fatalf("expected total_amount 99.98, got %s", w.Body.String())
	}

	w = api.do(http.MethodGet, fmt.Sprintf("/purchases/customers/%d", customerID), nil)
	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 {
		t.Fatalf("expected one purchase for customer, got %s", w.Body.String())
	}

	w = api.do(http.MethodPost, "/purchases/", map[string]interface{}{
		"customer_id": customerID,
		"product_id":  productID,
		"quantity":    1,
		"unit_price":  0,
	})
	if errs := decodeError(t, w).Errors; w.Code != http.StatusBadRequest || len(errs) != 1 || errs[0].Field != "unit_price" {
		t.Fatalf("zero unit_price want 400 on unit_price got %d %s", w.Code, w.Body.String())
	}

	w = api.do(http.MethodPost, "/purchases/", map[string]interface{}{
		"customer_id": 9999,
		"product_id":  productID,
		"quantity":    1,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown customer want 422 got %d", w.Code)
	}

	w = api.do(http.MethodDelete, fmt.Sprintf("/products/%d", productID), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("product with purchases want 409 got %d", w.Code)
	}

	w = api.do(http.MethodDelete, fmt.Sprintf("/customers/%d", customerID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete customer want 200 got %d", w.Code)
	}
	w = api.do(http.MethodGet, fmt.Sprintf("/purchases/customers/%d", customerID), nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("purchases of deleted customer want [] got %d %s", w.Code, w.Body.String())
	}
}

func TestCommentsAndRatings(t *testing.T) {
	api := setupStoreAPI(t)

	productID := idOf(t, api.mustCreate("/products/", capeBody()))
	customerID := idOf(t, api.mustCreate("/customers/", clarkBody()))

	comment := api.mustCreate("/comments/", map[string]interface{}{
		"content":     "Great cape",
		"customer_id": customerID,
		"product_id":  productID,
	})
	w := api.do(http.MethodGet, fmt.Sprintf("/comments/%d", idOf(t, comment)), nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"full_name":"Clark Kent"`) {
		t.Fatalf("comment detail should inline customer, got %d %s", w.Code, w.Body.String())
	}
	w = api.do(http.MethodGet, fmt.Sprintf("/comments/products/%d", productID), nil)
	if !strings.Contains(w.Body.String(), "Great cape") {
		t.Fatalf("product comments missing comment: %s", w.Body.String())
	}

	rating := map[string]interface{}{"rating": 5, "customer_id": customerID, "product_id": productID}
	api.mustCreate("/ratings/", rating)
	w = api.do(http.MethodPost, "/ratings/", rating)
	if w.Code != http.StatusConflict {
		t.Fatalf("second rating want 409 got %d", w.Code)
	}
	w = api.do(http.MethodPost, "/ratings/", map[string]interface{}{"rating": 6, "customer_id": customerID, "product_id": productID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("rating 6 want 400 got %d", w.Code)
	}
	w = api.do(http.MethodGet, "/ratings/products/9999", nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("ratings for unknown product want [] got %d %s", w.Code, w.Body.String())
	}
}

func TestDeliveryStatusRoute(t *testing.T) {
	api := setupStoreAPI(t)

	deliveryID := idOf(t, api.mustCreate("/deliveries", map[string]interface{}{
		"type":     "Standard",
		"min_days": 3,
		"max_days": 5,
	}))
	path := fmt.Sprintf("/deliveries/%d/status", deliveryID)

	w := api.do(http.MethodPut, path, map[string]interface{}{"status": "Shipped", "note": "left hub"})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"Shipped"`) {
		t.Fatalf("ship want 200 got %d %s", w.Code, w.Body.String())
	}
	w = api.do(http.MethodPut, path, map[string]interface{}{"status": "Delivered"})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"is_delivered":true`) {
		t.Fatalf("deliver want 200 got %d %s", w.Code, w.Body.String())
	}
	w = api.do(http.MethodPut, path, map[string]interface{}{"status": "Processing"})
	if w.Code != http.StatusConflict {
		t.Fatalf("terminal transition want 409 got %d", w.Code)
	}
	w = api.do(http.MethodPut, path, map[string]interface{}{"status": "Teleported"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown status want 400 got %d", w.Code)
	}

	w = api.do(http.MethodPost, "/deliveries/", map[string]interface{}{"type": "Express", "min_days": 3, "max_days": 3})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("max_days == min_days want 400 got %d", w.Code)
	}

	w = api.do(http.MethodPost, "/deliveries/", map[string]interface{}{
		"type":     "Standard",
		"min_days": 1000000000,
		"max_days": 2000000000,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("oversized day range want 400 got %d %s", w.Code, w.Body.String())
	}
	fields := map[string]bool{}
	for _, item := range decodeError(t, w).Errors {
		fields[item.Field] = true
	}
	if !fields["min_days"] || !fields["max_days"] {
		t.Fatalf("expected min_days and max_days errors, got %s", w.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	api := setupStoreAPI(t)

	w := api.do(http.MethodGet, "/kryptonite", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route want 404 got %d", w.Code)
	}
}
