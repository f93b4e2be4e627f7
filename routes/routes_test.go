package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doener-shop/config"
	"doener-shop/middleware"
	"doener-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Field   string          `json:"field"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	deps   *Dependencies
	router *gin.Engine
	cartID string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	hash, err := utils.HashPassword("geheim")
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		CartTTL:           time.Hour,
		JWTSecret:         "test-secret",
		JWTExpiry:         time.Hour,
		AdminPasswordHash: hash,
		WhatsAppNumber:    "+4915212345678",
		Timezone:          "UTC",
		OriginURL:         "*",
	}
	logger, _ := test.NewNullLogger()
	deps := NewDependencies(cfg, logger, nil, nil)
	return &testServer{t: t, deps: deps, router: NewRouter(deps)}
}

func (s *testServer) do(method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.cartID != "" {
		req.Header.Set(middleware.CartHeader, s.cartID)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("%s %s: invalid json %q", method, path, w.Body.String())
		}
	}
	if id := w.Header().Get(middleware.CartHeader); id != "" && s.cartID == "" {
		s.cartID = id
	}
	return w, env
}

func (s *testServer) decode(env envelope, dst interface{}) {
	s.t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		s.t.Fatalf("decode %s: %v", env.Data, err)
	}
}

type cartBody struct {
	ItemCount int   `json:"item_count"`
	Subtotal  int64 `json:"subtotal"`
	Lines     []struct {
		Quantity int `json:"quantity"`
	} `json:"lines"`
}

func TestHealthAndMenu(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodGet, "/health", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}

	w, env := s.do(http.MethodGet, "/menu", nil, nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("menu = %d %s", w.Code, w.Body.String())
	}
	var sections []map[string]interface{}
	s.decode(env, &sections)
	if len(sections) == 0 {
		t.Fatal("menu has no sections")
	}

	w, env = s.do(http.MethodGet, "/menu?section=nope", nil, nil)
	if w.Code != http.StatusBadRequest || env.Field == "" {
		t.Fatalf("unknown section = %d %s", w.Code, w.Body.String())
	}

	w, _ = s.do(http.MethodGet, "/menu/100", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("item status = %d", w.Code)
	}
	w, _ = s.do(http.MethodGet, "/menu/424242", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing item status = %d", w.Code)
	}
}

func TestCartLifecycle(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/cart/items", map[string]interface{}{"item_id": 100}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("add = %d %s", w.Code, w.Body.String())
	}
	if s.cartID == "" {
		t.Fatal("no cart id issued")
	}

	s.do(http.MethodPost, "/cart/items", map[string]interface{}{"item_id": 100}, nil)
	_, env = s.do(http.MethodGet, "/cart", nil, nil)
	var cart cartBody
	s.decode(env, &cart)
	if cart.ItemCount != 2 || len(cart.Lines) != 1 || cart.Subtotal != 400 {
		t.Fatalf("cart = %+v", cart)
	}

	_, env = s.do(http.MethodPatch, "/cart/items", map[string]interface{}{"item_id": 100, "quantity": 5}, nil)
	s.decode(env, &cart)
	if cart.ItemCount != 5 {
		t.Fatalf("after update = %+v", cart)
	}

	w, _ = s.do(http.MethodPatch, "/cart/items", map[string]interface{}{"item_id": 100, "quantity": 100}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("oversized quantity = %d", w.Code)
	}

	_, env = s.do(http.MethodDelete, "/cart/items", map[string]interface{}{"item_id": 100}, nil)
	s.decode(env, &cart)
	if cart.ItemCount != 0 {
		t.Fatalf("after remove = %+v", cart)
	}

	w, _ = s.do(http.MethodPost, "/cart/items", map[string]interface{}{"item_id": 593}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("age restricted add = %d", w.Code)
	}
}

func TestConfiguratorFlowAddsToCart(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/configurator", map[string]interface{}{"item_id": 593}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("open = %d %s", w.Code, w.Body.String())
	}
	var view struct {
		SessionID string `json:"session_id"`
		Step      string `json:"step"`
	}
	s.decode(env, &view)
	path := "/configurator/" + view.SessionID + "/events"

	w, env = s.do(http.MethodPost, path, map[string]string{"type": "next"}, nil)
	if w.Code != http.StatusBadRequest || env.Field != "beer" {
		t.Fatalf("next without beer = %d %s", w.Code, w.Body.String())
	}

	for _, ev := range []map[string]string{
		{"type": "select_beer", "value": "Becks"},
		{"type": "next"},
	} {
		if w, _ := s.do(http.MethodPost, path, ev, nil); w.Code != http.StatusOK {
			t.Fatalf("%v = %d %s", ev, w.Code, w.Body.String())
		}
	}

	w, env = s.do(http.MethodPost, path, map[string]string{"type": "confirm_age"}, nil)
	if w.Code != http.StatusOK || env.Message != "Item added to cart" {
		t.Fatalf("confirm = %d %s", w.Code, w.Body.String())
	}

	w, _ = s.do(http.MethodGet, "/configurator/"+view.SessionID, nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("finished session status = %d", w.Code)
	}

	_, env = s.do(http.MethodGet, "/cart", nil, nil)
	var cart cartBody
	s.decode(env, &cart)
	if cart.ItemCount != 1 || cart.Subtotal != 250 {
		t.Fatalf("cart = %+v", cart)
	}
}

func TestCheckoutAndAdminHistory(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodPost, "/orders", map[string]interface{}{
		"name": "Ayşe", "phone": "0151 2345678", "order_type": "pickup", "time_mode": "asap",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty cart order = %d", w.Code)
	}

	s.do(http.MethodPost, "/cart/items", map[string]interface{}{"item_id": 100}, nil)

	w, env := s.do(http.MethodPost, "/checkout/quote", map[string]string{"order_type": "delivery", "zone": "banteln"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("quote = %d %s", w.Code, w.Body.String())
	}
	var quote struct {
		CanOrder bool `json:"can_order"`
	}
	s.decode(env, &quote)
	if quote.CanOrder {
		t.Fatal("2,00 should be below every delivery minimum")
	}

	w, env = s.do(http.MethodPost, "/orders", map[string]interface{}{
		"name": "Ayşe", "phone": "0151 2345678", "order_type": "pickup", "time_mode": "asap",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("order = %d %s", w.Code, w.Body.String())
	}
	var result struct {
		WhatsAppURL string `json:"whatsapp_url"`
		Order       struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	s.decode(env, &result)
	if result.Order.ID == "" || result.WhatsAppURL == "" {
		t.Fatalf("result = %s", env.Data)
	}
	s.deps.Runner.Wait()

	w, _ = s.do(http.MethodGet, "/admin/orders", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated history = %d", w.Code)
	}

	w, env = s.do(http.MethodPost, "/admin/login", map[string]string{"password": "geheim"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	s.decode(env, &login)
	auth := map[string]string{"Authorization": "Bearer " + login.Token}

	w, env = s.do(http.MethodGet, "/admin/orders?range=today", nil, auth)
	if w.Code != http.StatusOK {
		t.Fatalf("history = %d %s", w.Code, w.Body.String())
	}
	var page struct {
		Count   int   `json:"count"`
		Revenue int64 `json:"revenue"`
		Orders  []struct {
			ID string `json:"id"`
		} `json:"orders"`
	}
	s.decode(env, &page)
	if page.Count != 1 || page.Revenue != 200 || page.Orders[0].ID != result.Order.ID {
		t.Fatalf("history page = %+v", page)
	}

	w, _ = s.do(http.MethodGet, "/admin/orders?range=custom&start_date=bad", nil, auth)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad custom range = %d", w.Code)
	}

	w, _ = s.do(http.MethodDelete, "/admin/orders/"+result.Order.ID, nil, auth)
	if w.Code != http.StatusOK {
		t.Fatalf("delete = %d", w.Code)
	}
	w, _ = s.do(http.MethodDelete, "/admin/orders/"+result.Order.ID, nil, auth)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d", w.Code)
	}
}

func TestAdminLoginLockout(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 2; i++ {
		w, _ := s.do(http.MethodPost, "/admin/login", map[string]string{"password": "falsch"}, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d = %d", i+1, w.Code)
		}
	}

	w, env := s.do(http.MethodPost, "/admin/login", map[string]string{"password": "falsch"}, nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third attempt = %d", w.Code)
	}
	var failure struct {
		LockedMinutes int `json:"locked_minutes"`
	}
	s.decode(env, &failure)
	if failure.LockedMinutes != 5 {
		t.Fatalf("locked minutes = %d", failure.LockedMinutes)
	}

	w, _ = s.do(http.MethodPost, "/admin/login", map[string]string{"password": "geheim"}, nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("correct password while locked = %d", w.Code)
	}
}
