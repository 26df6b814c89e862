package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/auth"
	commonclient "github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/controllers"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	logger.Initialize("test")
}

type mockCartStore struct {
	carts map[uuid.UUID]*models.Cart
	order []uuid.UUID
}

func newMockCartStore() *mockCartStore {
	return &mockCartStore{carts: make(map[uuid.UUID]*models.Cart)}
}

func (m *mockCartStore) GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	if cart, ok := m.carts[cartID]; ok {
		return cart, nil
	}
	return nil, repository.ErrCartNotFound
}

func (m *mockCartStore) SaveCart(ctx context.Context, cart *models.Cart) error {
	if _, ok := m.carts[cart.CartID]; !ok {
		m.order = append(m.order, cart.CartID)
	}
	m.carts[cart.CartID] = cart
	return nil
}

func (m *mockCartStore) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	if _, ok := m.carts[cartID]; !ok {
		return repository.ErrCartNotFound
	}
	delete(m.carts, cartID)
	return nil
}

func (m *mockCartStore) ListCarts(ctx context.Context) ([]models.Cart, error) {
	out := make([]models.Cart, 0, len(m.order))
	for _, id := range m.order {
		if cart, ok := m.carts[id]; ok {
			out = append(out, *cart)
		}
	}
	return out, nil
}

func setupCartRouter(store repository.CartStore, userServiceURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cc := controllers.NewCartController(
		store,
		clients.NewUserClient(userServiceURL, commonclient.New(2*time.Second)),
	)
	r.POST("/carts", cc.CreateCart)
	r.GET("/carts", cc.ListCarts)
	r.GET("/carts/:id", cc.GetCart)
	r.DELETE("/carts/:id", cc.DeleteCart)
	return r
}

func TestGetCart_EnrichedWithUser(t *testing.T) {
	userID := uuid.New()
	userSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/"+userID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"userId":%q,"firstName":"Jane","username":"jane"}`, userID)
	}))
	defer userSvc.Close()

	store := newMockCartStore()
	cart := &models.Cart{CartID: uuid.New(), UserID: userID}
	store.SaveCart(context.Background(), cart)

	r := setupCartRouter(store, userSvc.URL)
	req := httptest.NewRequest(http.MethodGet, "/carts/"+cart.CartID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.CartResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, commonclient.StatusFetched, resp.UserStatus)
	assert.NotNil(t, resp.User)
	assert.Equal(t, "jane", resp.User.Username)
}

func TestGetCart_UserServiceDown_DegradesOnly(t *testing.T) {
	userSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer userSvc.Close()

	store := newMockCartStore()
	cart := &models.Cart{CartID: uuid.New(), UserID: uuid.New()}
	store.SaveCart(context.Background(), cart)

	r := setupCartRouter(store, userSvc.URL)
	req := httptest.NewRequest(http.MethodGet, "/carts/"+cart.CartID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// the cart itself still comes back, just without its user section
	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.CartResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, cart.CartID, resp.CartID)
	assert.Equal(t, commonclient.StatusUnavailable, resp.UserStatus)
	assert.Nil(t, resp.User)
}

func TestListCarts_PartialFailurePreservesOrder(t *testing.T) {
	goodUser := uuid.New()
	badUser := uuid.New()
	userSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/"+badUser.String() {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"userId":%q,"username":"jane"}`, goodUser)
	}))
	defer userSvc.Close()

	store := newMockCartStore()
	first := &models.Cart{CartID: uuid.New(), UserID: goodUser}
	second := &models.Cart{CartID: uuid.New(), UserID: badUser}
	third := &models.Cart{CartID: uuid.New(), UserID: goodUser}
	store.SaveCart(context.Background(), first)
	store.SaveCart(context.Background(), second)
	store.SaveCart(context.Background(), third)

	r := setupCartRouter(store, userSvc.URL)
	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Carts []models.CartResponse `json:"carts"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Carts, 3)

	assert.Equal(t, first.CartID, resp.Carts[0].CartID)
	assert.Equal(t, second.CartID, resp.Carts[1].CartID)
	assert.Equal(t, third.CartID, resp.Carts[2].CartID)

	assert.Equal(t, commonclient.StatusFetched, resp.Carts[0].UserStatus)
	assert.Equal(t, commonclient.StatusNotFound, resp.Carts[1].UserStatus)
	assert.Nil(t, resp.Carts[1].User)
	assert.Equal(t, commonclient.StatusFetched, resp.Carts[2].UserStatus)
}

func TestGetCart_PropagatesCallerToken(t *testing.T) {
	var gotAuth string
	userSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"username":"jane"}`))
	}))
	defer userSvc.Close()

	store := newMockCartStore()
	cart := &models.Cart{CartID: uuid.New(), UserID: uuid.New()}
	store.SaveCart(context.Background(), cart)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.TokenPropagation())
	cc := controllers.NewCartController(store,
		clients.NewUserClient(userSvc.URL, commonclient.New(2*time.Second)))
	r.GET("/carts/:id", cc.GetCart)

	req := httptest.NewRequest(http.MethodGet, "/carts/"+cart.CartID.String(), nil)
	req.Header.Set("Authorization", "Bearer tok123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer tok123", gotAuth)
}
