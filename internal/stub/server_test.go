package stub

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

type testServer struct {
	e     *echo.Echo
	store *Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := seededStore(t)
	e := NewRouter(store, Options{JWTSecret: "test-secret", TokenTTL: time.Hour, Logger: zerolog.Nop()})
	return &testServer{e: e, store: store}
}

func (ts *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	_ = form.WriteField("username", username)
	_ = form.WriteField("password", password)
	_ = form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	return ts.serve(req)
}

func (ts *testServer) token(t *testing.T, username, password string) string {
	t.Helper()
	rec := ts.login(t, username, password)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, rec.Code, rec.Body.String())
	}
	var out domain.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return out.AccessToken
}

func (ts *testServer) call(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return ts.serve(req)
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return out.Detail
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.login(t, "admin", "admin123")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out domain.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.AccessToken == "" || out.TokenType != "bearer" {
		t.Fatalf("unexpected login response: %+v", out)
	}

	rec = ts.login(t, "admin", "wrongpass")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := detailOf(t, rec); got != "Incorrect username or password" {
		t.Fatalf("unexpected detail %q", got)
	}
}

func TestMe(t *testing.T) {
	ts := newTestServer(t)

	if rec := ts.call(http.MethodGet, "/api/auth/me", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec := ts.call(http.MethodGet, "/api/auth/me", ts.token(t, "admin", "admin123"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var u domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.Username != "admin" || u.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestRegister_Validation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.call(http.MethodPost, "/api/auth/register", "", `{"email":"nope","username":"x","password":"secret1"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if got := detailOf(t, rec); !strings.Contains(got, "email") {
		t.Fatalf("expected email in detail, got %q", got)
	}

	rec = ts.call(http.MethodPost, "/api/auth/register", "", `{"email":"ops@warefy.com","username":"ops","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUsers_AdminOnly(t *testing.T) {
	ts := newTestServer(t)
	if _, err := ts.store.AddUser(domain.UserCreate{Email: "v@warefy.com", Username: "viewer", Role: "viewer", Password: "secret1"}); err != nil {
		t.Fatalf("add user: %v", err)
	}

	rec := ts.call(http.MethodGet, "/api/users", ts.token(t, "viewer", "secret1"), "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for viewer, got %d", rec.Code)
	}

	rec = ts.call(http.MethodGet, "/api/users", ts.token(t, "admin", "admin123"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
	var users []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestInventory_Routes(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "admin", "admin123")

	rec := ts.call(http.MethodGet, "/api/inventory?low_stock=true", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []domain.InventoryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 low stock item, got %d", len(items))
	}

	rec = ts.call(http.MethodGet, "/api/inventory?warehouse_id=abc", token, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad filter, got %d", rec.Code)
	}

	rec = ts.call(http.MethodDelete, "/api/inventory/"+strconv.Itoa(items[0].ID), token, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = ts.call(http.MethodGet, "/api/inventory/"+strconv.Itoa(items[0].ID), token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
	if got := detailOf(t, rec); got != "Inventory item not found" {
		t.Fatalf("unexpected detail %q", got)
	}
}

func TestWarehouse_Layout(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "admin", "admin123")
	id := ts.store.Warehouses(0, 0)[0].ID
	path := "/api/warehouses/" + strconv.Itoa(id) + "/layout"

	rec := ts.call(http.MethodPatch, path, token, `{"layout_config":"not a grid"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed layout, got %d", rec.Code)
	}

	rec = ts.call(http.MethodPatch, path, token, `{"layout_config":"[[1,0],[2,4]]"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	wh, _ := ts.store.Warehouse(id)
	grid, err := wh.Layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(grid) != 2 || grid[1][1] != domain.CellWall {
		t.Fatalf("unexpected grid: %v", grid)
	}
}

func TestAICommand(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "admin", "admin123")

	rec := ts.call(http.MethodPost, "/api/ai/command", token, `{"message":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank message, got %d", rec.Code)
	}

	rec = ts.call(http.MethodPost, "/api/ai/command", token, `{"message":"restock plan"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out domain.CommandResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Response != "Received: restock plan" {
		t.Fatalf("unexpected response %q", out.Response)
	}

	admin, _ := ts.store.UserByName("admin")
	u, _ := ts.store.Usage(admin.ID)
	if u.TotalRequests != 1 {
		t.Fatalf("expected usage to be counted, got %+v", u)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.call(http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var h domain.Health
	if err := json.Unmarshal(rec.Body.Bytes(), &h); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Status != "healthy" {
		t.Fatalf("unexpected health: %+v", h)
	}

	rec = ts.call(http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"Email":         "email",
		"WarehouseID":   "warehouse_id",
		"VehicleNumber": "vehicle_number",
		"SKU":           "sku",
		"LayoutConfig":  "layout_config",
	}
	for in, want := range cases {
		if got := toSnake(in); got != want {
			t.Fatalf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}
