package routes_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/proxy-client/controllers"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/proxy-client/routes"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func init() {
	logger.Initialize("test")
	os.Setenv("JWT_SECRET", "test-secret")
}

func mintToken(t *testing.T, userID string) string {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": "selim",
		"role":     "ROLE_USER",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return token
}

func setupGateway(serviceURLs map[string]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ac := controllers.NewAuthController("http://user-service.invalid", nil)
	routes.RegisterGatewayRoutes(r, ac, serviceURLs)
	return r
}

func TestForward_AuthenticatedRequestReachesUpstream(t *testing.T) {
	var gotPath, gotAuth, gotUserID string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotUserID = r.Header.Get("X-User-ID")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"from":"upstream"}`))
	}))
	defer upstream.Close()

	r := setupGateway(map[string]string{"products": upstream.URL})
	token := mintToken(t, "user-42")

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc?limit=3", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// upstream status and body pass through untouched
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"from":"upstream"}`, w.Body.String())
	assert.Equal(t, "/products/abc", gotPath)
	assert.Equal(t, "Bearer "+token, gotAuth)
	assert.Equal(t, "user-42", gotUserID)
}

func TestForward_MissingTokenRejected(t *testing.T) {
	r := setupGateway(map[string]string{"products": "http://unused.invalid"})

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForward_ForgedTokenRejected(t *testing.T) {
	claims := jwt.MapClaims{"user_id": "user-42", "exp": time.Now().Add(time.Hour).Unix()}
	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))

	r := setupGateway(map[string]string{"products": "http://unused.invalid"})
	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForward_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	r := setupGateway(map[string]string{"orders": upstream.URL})
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-42"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestForward_UnknownServiceSegment(t *testing.T) {
	r := setupGateway(map[string]string{"products": "http://unused.invalid"})
	req := httptest.NewRequest(http.MethodGet, "/api/warehouses/1", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-42"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForward_RateLimitKicksIn(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	r := setupGateway(map[string]string{"products": upstream.URL})
	token := mintToken(t, "user-42")

	limited := false
	for i := 0; i < 120 && !limited; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		limited = w.Code == http.StatusTooManyRequests
	}
	assert.True(t, limited, "burst exhausted requests should be rejected")
}
