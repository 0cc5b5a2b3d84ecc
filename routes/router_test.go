package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	controller "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/controllers"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/services"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/store/storetest"
)

var errFake = errors.New("connection reset by peer")

type testAPI struct {
	handler http.Handler
	menu    *storetest.MenuStore
	orders  *storetest.OrderStore
}

func newTestAPI(t *testing.T, limit int64) *testAPI {
	t.Helper()
	menu := storetest.NewMenuStore()
	orders := storetest.NewOrderStore()
	checks := storetest.NewStatusCheckStore()

	handler := Handler(Controllers{
		Menu:   controller.NewMenuController(services.NewCatalogService(menu, limit)),
		Orders: controller.NewOrderController(services.NewOrderService(orders, limit)),
		Status: controller.NewStatusController(services.NewStatusService(checks, limit)),
	})
	return &testAPI{handler: handler, menu: menu, orders: orders}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rr.Code, rr.Body.String())
	}
}

func arabicCoffeeBody() map[string]interface{} {
	return map[string]interface{}{
		"name":           "Arabic Coffee",
		"name_ar":        "قهوة عربية",
		"description":    "Cardamom-spiced coffee",
		"description_ar": "قهوة بالهيل",
		"price":          15.0,
		"category":       "traditional_coffee",
		"available":      true,
	}
}

func containsItem(items []models.MenuItem, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func TestRoot(t *testing.T) {
	api := newTestAPI(t, 0)

	rr := api.do(t, http.MethodGet, "/api/", nil)
	expectStatus(t, rr, http.StatusOK)

	body := decode[map[string]string](t, rr)
	if body["message"] != "Welcome to Cafito API" {
		t.Errorf("unexpected message %q", body["message"])
	}
}

func TestStatusChecks(t *testing.T) {
	api := newTestAPI(t, 0)

	rr := api.do(t, http.MethodGet, "/api/status", nil)
	expectStatus(t, rr, http.StatusOK)
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %s", rr.Body.String())
	}

	rr = api.do(t, http.MethodPost, "/api/status", map[string]string{"client_name": "kiosk"})
	expectStatus(t, rr, http.StatusOK)
	check := decode[models.StatusCheck](t, rr)
	if check.ID == "" || check.ClientName != "kiosk" {
		t.Errorf("unexpected status check %+v", check)
	}

	rr = api.do(t, http.MethodGet, "/api/status", nil)
	checks := decode[[]models.StatusCheck](t, rr)
	if len(checks) != 1 {
		t.Errorf("expected 1 status check, got %d", len(checks))
	}

	rr = api.do(t, http.MethodPost, "/api/status", map[string]string{})
	expectStatus(t, rr, http.StatusUnprocessableEntity)
}

func TestMenuAvailabilityFlow(t *testing.T) {
	api := newTestAPI(t, 0)

	rr := api.do(t, http.MethodPost, "/api/menu", arabicCoffeeBody())
	expectStatus(t, rr, http.StatusOK)
	created := decode[models.MenuItem](t, rr)
	if created.ID == "" {
		t.Fatal("expected an id")
	}
	if created.Price != 15.0 || created.Category != models.CategoryTraditionalCoffee || !created.Available {
		t.Errorf("unexpected created item %+v", created)
	}

	rr = api.do(t, http.MethodGet, "/api/menu", nil)
	expectStatus(t, rr, http.StatusOK)
	if !containsItem(decode[[]models.MenuItem](t, rr), created.ID) {
		t.Fatal("expected new item in menu")
	}

	update := arabicCoffeeBody()
	update["available"] = false
	rr = api.do(t, http.MethodPut, "/api/menu/"+created.ID, update)
	expectStatus(t, rr, http.StatusOK)
	updated := decode[models.MenuItem](t, rr)
	if updated.Available || updated.ID != created.ID || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("unexpected updated item %+v", updated)
	}

	rr = api.do(t, http.MethodGet, "/api/menu", nil)
	expectStatus(t, rr, http.StatusOK)
	if containsItem(decode[[]models.MenuItem](t, rr), created.ID) {
		t.Error("unavailable item still listed")
	}

	rr = api.do(t, http.MethodGet, "/api/menu/"+created.ID, nil)
	expectStatus(t, rr, http.StatusOK)
	fetched := decode[models.MenuItem](t, rr)
	if fetched.ID != created.ID || fetched.Available {
		t.Errorf("unexpected fetched item %+v", fetched)
	}
}

func TestMenuByCategory(t *testing.T) {
	api := newTestAPI(t, 0)

	expectStatus(t, api.do(t, http.MethodPost, "/api/menu", arabicCoffeeBody()), http.StatusOK)
	pastry := arabicCoffeeBody()
	pastry["name"] = "Kunafa"
	pastry["category"] = "pastries"
	expectStatus(t, api.do(t, http.MethodPost, "/api/menu", pastry), http.StatusOK)

	rr := api.do(t, http.MethodGet, "/api/menu/category/pastries", nil)
	expectStatus(t, rr, http.StatusOK)
	items := decode[[]models.MenuItem](t, rr)
	if len(items) != 1 || items[0].Name != "Kunafa" {
		t.Errorf("expected only Kunafa, got %+v", items)
	}

	rr = api.do(t, http.MethodGet, "/api/menu/category/snacks", nil)
	expectStatus(t, rr, http.StatusOK)
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %s", rr.Body.String())
	}

	rr = api.do(t, http.MethodGet, "/api/menu/category/pizza", nil)
	expectStatus(t, rr, http.StatusUnprocessableEntity)
}

func TestMenuErrors(t *testing.T) {
	api := newTestAPI(t, 0)

	rr := api.do(t, http.MethodGet, "/api/menu/missing", nil)
	expectStatus(t, rr, http.StatusNotFound)
	if detail := decode[map[string]string](t, rr)["detail"]; detail != "Menu item not found" {
		t.Errorf("unexpected detail %q", detail)
	}

	rr = api.do(t, http.MethodPut, "/api/menu/missing", arabicCoffeeBody())
	expectStatus(t, rr, http.StatusNotFound)

	bad := arabicCoffeeBody()
	bad["category"] = "pizza"
	rr = api.do(t, http.MethodPost, "/api/menu", bad)
	expectStatus(t, rr, http.StatusUnprocessableEntity)
	if detail := decode[map[string]string](t, rr)["detail"]; !strings.Contains(detail, "category") {
		t.Errorf("expected detail to name the category field, got %q", detail)
	}

	rr = api.do(t, http.MethodPost, "/api/menu", `{"name": `)
	expectStatus(t, rr, http.StatusUnprocessableEntity)

	rr = api.do(t, http.MethodPost, "/api/menu", `{"price": "fifteen"}`)
	expectStatus(t, rr, http.StatusUnprocessableEntity)
}

func TestOrderFlow(t *testing.T) {
	api := newTestAPI(t, 0)

	rr := api.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name": "Layla",
		"items": []map[string]interface{}{
			{"menu_item_id": "coffee", "quantity": 2, "price": 15.0, "name": "Arabic Coffee"},
			{"menu_item_id": "latte", "quantity": 1, "price": 28.0, "name": "Saffron Latte"},
		},
	})
	expectStatus(t, rr, http.StatusOK)
	order := decode[models.Order](t, rr)
	if order.TotalAmount != 58.0 {
		t.Errorf("expected total 58.0, got %v", order.TotalAmount)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected pending, got %s", order.Status)
	}
	if order.CustomerPhone != nil || order.Notes != nil {
		t.Errorf("expected absent phone and notes, got %v %v", order.CustomerPhone, order.Notes)
	}

	rr = api.do(t, http.MethodPatch, "/api/orders/"+order.ID+"/status?status=preparing", nil)
	expectStatus(t, rr, http.StatusOK)
	patched := decode[models.Order](t, rr)
	if patched.Status != models.OrderStatusPreparing {
		t.Errorf("expected preparing, got %s", patched.Status)
	}

	rr = api.do(t, http.MethodGet, "/api/orders/"+order.ID, nil)
	expectStatus(t, rr, http.StatusOK)
	fetched := decode[models.Order](t, rr)
	if fetched.Status != models.OrderStatusPreparing {
		t.Errorf("expected preparing, got %s", fetched.Status)
	}
	if fetched.UpdatedAt.Before(order.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v < %v", fetched.UpdatedAt, order.UpdatedAt)
	}
	if !fetched.CreatedAt.Equal(order.CreatedAt) {
		t.Errorf("created_at changed")
	}

	rr = api.do(t, http.MethodGet, "/api/orders", nil)
	expectStatus(t, rr, http.StatusOK)
	if orders := decode[[]models.Order](t, rr); len(orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(orders))
	}
}

func TestOrderErrors(t *testing.T) {
	api := newTestAPI(t, 0)

	rr := api.do(t, http.MethodGet, "/api/orders/missing", nil)
	expectStatus(t, rr, http.StatusNotFound)
	if detail := decode[map[string]string](t, rr)["detail"]; detail != "Order not found" {
		t.Errorf("unexpected detail %q", detail)
	}

	rr = api.do(t, http.MethodPatch, "/api/orders/missing/status?status=ready", nil)
	expectStatus(t, rr, http.StatusNotFound)

	rr = api.do(t, http.MethodPatch, "/api/orders/missing/status", nil)
	expectStatus(t, rr, http.StatusUnprocessableEntity)

	rr = api.do(t, http.MethodPatch, "/api/orders/missing/status?status=bogus", nil)
	expectStatus(t, rr, http.StatusUnprocessableEntity)

	rr = api.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name": "Layla",
		"items":         []interface{}{},
	})
	expectStatus(t, rr, http.StatusUnprocessableEntity)
	if detail := decode[map[string]string](t, rr)["detail"]; !strings.Contains(detail, "items") {
		t.Errorf("expected detail to name items, got %q", detail)
	}
}

func TestOrderLineRequiresName(t *testing.T) {
	api := newTestAPI(t, 0)

	rr := api.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name": "Layla",
		"items": []map[string]interface{}{
			{"menu_item_id": "coffee", "quantity": 1, "price": 15.0},
		},
	})
	expectStatus(t, rr, http.StatusUnprocessableEntity)
	if detail := decode[map[string]string](t, rr)["detail"]; !strings.Contains(detail, "items[0].name: field required") {
		t.Errorf("expected detail to name the missing line name, got %q", detail)
	}

	all, err := api.orders.FindAll(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("rejected order must not be stored, found %d", len(all))
	}
}

func TestEmptyStringsArePresent(t *testing.T) {
	api := newTestAPI(t, 0)

	body := arabicCoffeeBody()
	body["description"] = ""
	body["description_ar"] = ""
	rr := api.do(t, http.MethodPost, "/api/menu", body)
	expectStatus(t, rr, http.StatusOK)
	if item := decode[models.MenuItem](t, rr); item.Description != "" || item.DescriptionAr != "" {
		t.Errorf("expected empty descriptions, got %+v", item)
	}

	missing := arabicCoffeeBody()
	delete(missing, "description_ar")
	rr = api.do(t, http.MethodPost, "/api/menu", missing)
	expectStatus(t, rr, http.StatusUnprocessableEntity)
	if detail := decode[map[string]string](t, rr)["detail"]; !strings.Contains(detail, "description_ar: field required") {
		t.Errorf("unexpected detail %q", detail)
	}

	rr = api.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name": "",
		"items": []map[string]interface{}{
			{"menu_item_id": "coffee", "quantity": 1, "price": 15.0, "name": ""},
		},
	})
	expectStatus(t, rr, http.StatusOK)

	expectStatus(t, api.do(t, http.MethodPost, "/api/status", map[string]string{"client_name": ""}), http.StatusOK)
}

func TestListTruncationHeaders(t *testing.T) {
	api := newTestAPI(t, 2)

	for i := 0; i < 3; i++ {
		expectStatus(t, api.do(t, http.MethodPost, "/api/menu", arabicCoffeeBody()), http.StatusOK)
	}

	rr := api.do(t, http.MethodGet, "/api/menu", nil)
	expectStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get(controller.HeaderTruncated); got != "true" {
		t.Errorf("expected truncated header, got %q", got)
	}
	if got := rr.Header().Get(controller.HeaderLimit); got != "2" {
		t.Errorf("expected limit header 2, got %q", got)
	}
	if items := decode[[]models.MenuItem](t, rr); len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}

	rr = api.do(t, http.MethodGet, "/api/orders", nil)
	if rr.Header().Get(controller.HeaderTruncated) != "" {
		t.Error("untruncated listing must not carry the truncated header")
	}
}

func TestStoreFailureIsInternalError(t *testing.T) {
	api := newTestAPI(t, 0)
	api.menu.Err = errFake
	api.orders.Err = errFake

	for _, path := range []string{"/api/menu", "/api/orders", "/api/menu/x"} {
		rr := api.do(t, http.MethodGet, path, nil)
		expectStatus(t, rr, http.StatusInternalServerError)
		if detail := decode[map[string]string](t, rr)["detail"]; detail != "Internal Server Error" {
			t.Errorf("%s: store error leaked: %q", path, detail)
		}
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	api := newTestAPI(t, 0)

	notFound := []string{"/api/tables", "/api/menu/a/b", "/health"}
	for _, path := range notFound {
		rr := api.do(t, http.MethodGet, path, nil)
		expectStatus(t, rr, http.StatusNotFound)
		if detail := decode[map[string]string](t, rr)["detail"]; detail != "Not Found" {
			t.Errorf("%s: unexpected detail %q", path, detail)
		}
	}

	wrongMethod := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/menu"},
		{http.MethodPatch, "/api/menu/some-id"},
		{http.MethodPut, "/api/orders"},
		{http.MethodGet, "/api/orders/some-id/status"},
		{http.MethodDelete, "/api/status"},
	}
	for _, tt := range wrongMethod {
		rr := api.do(t, tt.method, tt.path, nil)
		expectStatus(t, rr, http.StatusMethodNotAllowed)
		if detail := decode[map[string]string](t, rr)["detail"]; detail != "Method Not Allowed" {
			t.Errorf("%s %s: unexpected detail %q", tt.method, tt.path, detail)
		}
	}
}

func TestTrailingSlashRedirects(t *testing.T) {
	api := newTestAPI(t, 0)

	tests := []struct {
		path     string
		location string
	}{
		{"/api", "/api/"},
		{"/api/menu/", "/api/menu"},
		{"/api/status/", "/api/status"},
	}

	for _, tt := range tests {
		rr := api.do(t, http.MethodGet, tt.path, nil)
		expectStatus(t, rr, http.StatusMovedPermanently)
		if got := rr.Header().Get("Location"); got != tt.location {
			t.Errorf("%s: expected redirect to %s, got %q", tt.path, tt.location, got)
		}
	}
}

func TestOversizedBody(t *testing.T) {
	api := newTestAPI(t, 0)

	body := `{"customer_name":"` + strings.Repeat("x", 2<<20) + `","items":[]}`
	rr := api.do(t, http.MethodPost, "/api/orders", body)
	expectStatus(t, rr, http.StatusRequestEntityTooLarge)

	all, err := api.orders.FindAll(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("oversized order must not be stored, found %d", len(all))
	}
}

func TestCORSPreflight(t *testing.T) {
	api := newTestAPI(t, 0)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "https://cafito.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	api.handler.ServeHTTP(rr, req)

	expectStatus(t, rr, http.StatusNoContent)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://cafito.example" {
		t.Errorf("unexpected allow origin %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("unexpected allow credentials %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
		t.Errorf("unexpected allow headers %q", got)
	}
}
