package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doener-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(tokens *utils.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.GET("/secret", AuthMiddleware(tokens), RequireRole(utils.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, Claims(c).Subject)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	admin, _, _ := tokens.GenerateToken("admin", utils.RoleAdmin)
	guest, _, _ := tokens.GenerateToken("guest", "customer")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + admin, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"non-admin role", "Bearer " + guest, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secret", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protectedRouter(tokens).ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	r := gin.New()
	r.GET("/", RequireRole(utils.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCartSession(t *testing.T) {
	r := gin.New()
	r.Use(CartSession())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, CartID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	issued := w.Header().Get(CartHeader)
	if _, err := uuid.Parse(issued); err != nil || w.Body.String() != issued {
		t.Fatalf("issued id %q, body %q", issued, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CartHeader, issued)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != issued {
		t.Fatalf("existing id not kept: %q", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CartHeader, "../../etc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() == "../../etc" {
		t.Fatal("malformed id accepted")
	}
}

func TestRequestLoggerLevels(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	if hook.LastEntry().Level != logrus.InfoLevel || hook.LastEntry().Data["status"] != http.StatusOK {
		t.Fatalf("entry = %+v", hook.LastEntry())
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
	if hook.LastEntry().Level != logrus.WarnLevel {
		t.Fatalf("entry = %+v", hook.LastEntry())
	}
}
