package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/auth"
	commonclient "github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/controllers"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/repository"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/routes"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func init() {
	logger.Initialize("test")
}

type mockFavouriteRepo struct {
	favourites []*models.Favourite
}

func (m *mockFavouriteRepo) find(key models.FavouriteKey) int {
	for i, f := range m.favourites {
		if f.Key().Equal(key) {
			return i
		}
	}
	return -1
}

func (m *mockFavouriteRepo) CreateFavourite(ctx context.Context, favourite *models.Favourite) error {
	if m.find(favourite.Key()) >= 0 {
		return repository.ErrDuplicateFavourite
	}
	m.favourites = append(m.favourites, favourite)
	return nil
}

func (m *mockFavouriteRepo) GetFavourite(ctx context.Context, key models.FavouriteKey) (*models.Favourite, error) {
	if i := m.find(key); i >= 0 {
		return m.favourites[i], nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFavouriteRepo) ListFavourites(ctx context.Context) ([]models.Favourite, error) {
	out := make([]models.Favourite, 0, len(m.favourites))
	for _, f := range m.favourites {
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockFavouriteRepo) ListFavouritesByUser(ctx context.Context, userID uuid.UUID) ([]models.Favourite, error) {
	var out []models.Favourite
	for _, f := range m.favourites {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *mockFavouriteRepo) DeleteFavourite(ctx context.Context, key models.FavouriteKey) error {
	if i := m.find(key); i >= 0 {
		m.favourites = append(m.favourites[:i], m.favourites[i+1:]...)
		return nil
	}
	return gorm.ErrRecordNotFound
}

// fakePeers serves both user and product lookups; users can be toggled down.
func fakePeers(t *testing.T, usersDown bool) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/users/"):
			if usersDown {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"username":"selim","firstName":"Selim"}`))
		case strings.HasPrefix(r.URL.Path, "/products/"):
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"productTitle":"Monitor","priceUnit":199.0}`))
		default:
			t.Errorf("unexpected peer path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func setupFavouriteRouter(repo repository.FavouriteRepository, peerURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hc := commonclient.New(2 * time.Second)
	r := gin.New()
	r.Use(auth.TokenPropagation())
	fc := controllers.NewFavouriteController(
		repo,
		clients.NewUserClient(peerURL, hc),
		clients.NewProductClient(peerURL, hc),
	)
	routes.RegisterFavouriteRoutes(r, fc)
	return r
}

func keyQuery(key models.FavouriteKey) string {
	q := url.Values{}
	q.Set("userId", key.UserID.String())
	q.Set("productId", key.ProductID.String())
	q.Set("likeDate", key.LikeDate.Format(time.RFC3339Nano))
	return q.Encode()
}

func TestCreateFavourite_DuplicateTupleConflicts(t *testing.T) {
	peers := fakePeers(t, false)
	defer peers.Close()

	repo := &mockFavouriteRepo{}
	r := setupFavouriteRouter(repo, peers.URL)

	likeDate := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	payload := map[string]interface{}{
		"userId":    uuid.NewString(),
		"productId": uuid.NewString(),
		"likeDate":  likeDate.Format(time.RFC3339),
	}

	post := func() *httptest.ResponseRecorder {
		b, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/favourites", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, post().Code)
	assert.Equal(t, http.StatusConflict, post().Code)
	assert.Len(t, repo.favourites, 1)
}

func TestCreateFavourite_SameProductDifferentInstantAllowed(t *testing.T) {
	peers := fakePeers(t, false)
	defer peers.Close()

	repo := &mockFavouriteRepo{}
	r := setupFavouriteRouter(repo, peers.URL)

	userID, productID := uuid.NewString(), uuid.NewString()
	for _, instant := range []string{"2026-08-01T12:00:00Z", "2026-08-02T09:30:00Z"} {
		b, _ := json.Marshal(map[string]string{
			"userId": userID, "productId": productID, "likeDate": instant,
		})
		req := httptest.NewRequest(http.MethodPost, "/favourites", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
	assert.Len(t, repo.favourites, 2)
}

func TestFindFavourite_PartialKeyRejected(t *testing.T) {
	peers := fakePeers(t, false)
	defer peers.Close()

	fav := &models.Favourite{UserID: uuid.New(), ProductID: uuid.New(), LikeDate: time.Now().UTC().Truncate(time.Microsecond)}
	repo := &mockFavouriteRepo{favourites: []*models.Favourite{fav}}
	r := setupFavouriteRouter(repo, peers.URL)

	// likeDate missing entirely
	u := "/favourites/find?userId=" + fav.UserID.String() + "&productId=" + fav.ProductID.String()
	req := httptest.NewRequest(http.MethodGet, u, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed likeDate
	req = httptest.NewRequest(http.MethodGet, u+"&likeDate=yesterday", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFindFavourite_EnrichedAndZoneInsensitive(t *testing.T) {
	peers := fakePeers(t, false)
	defer peers.Close()

	likeDate := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fav := &models.Favourite{UserID: uuid.New(), ProductID: uuid.New(), LikeDate: likeDate}
	repo := &mockFavouriteRepo{favourites: []*models.Favourite{fav}}
	r := setupFavouriteRouter(repo, peers.URL)

	// same instant written in another zone still matches
	shifted := likeDate.In(time.FixedZone("UTC+3", 3*3600))
	q := url.Values{}
	q.Set("userId", fav.UserID.String())
	q.Set("productId", fav.ProductID.String())
	q.Set("likeDate", shifted.Format(time.RFC3339Nano))

	req := httptest.NewRequest(http.MethodGet, "/favourites/find?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.FavouriteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, commonclient.StatusFetched, resp.UserStatus)
	assert.Equal(t, "selim", resp.User.Username)
	assert.Equal(t, commonclient.StatusFetched, resp.ProductStatus)
	assert.Equal(t, "Monitor", resp.Product.Title)
}

func TestFindFavourite_UserServiceDown_ProductSectionSurvives(t *testing.T) {
	peers := fakePeers(t, true)
	defer peers.Close()

	fav := &models.Favourite{UserID: uuid.New(), ProductID: uuid.New(), LikeDate: time.Now().UTC().Truncate(time.Microsecond)}
	repo := &mockFavouriteRepo{favourites: []*models.Favourite{fav}}
	r := setupFavouriteRouter(repo, peers.URL)

	req := httptest.NewRequest(http.MethodGet, "/favourites/find?"+keyQuery(fav.Key()), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.FavouriteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.User)
	assert.Equal(t, commonclient.StatusUnavailable, resp.UserStatus)
	assert.NotNil(t, resp.Product)
	assert.Equal(t, commonclient.StatusFetched, resp.ProductStatus)
}

func TestListUserFavourites(t *testing.T) {
	peers := fakePeers(t, false)
	defer peers.Close()

	userID := uuid.New()
	repo := &mockFavouriteRepo{favourites: []*models.Favourite{
		{UserID: userID, ProductID: uuid.New(), LikeDate: time.Now().UTC().Truncate(time.Microsecond)},
		{UserID: uuid.New(), ProductID: uuid.New(), LikeDate: time.Now().UTC().Truncate(time.Microsecond)},
		{UserID: userID, ProductID: uuid.New(), LikeDate: time.Now().UTC().Add(time.Second).Truncate(time.Microsecond)},
	}}
	r := setupFavouriteRouter(repo, peers.URL)

	req := httptest.NewRequest(http.MethodGet, "/favourites/user/"+userID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Favourites []models.FavouriteResponse `json:"favourites"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Favourites, 2)
	for _, f := range resp.Favourites {
		assert.Equal(t, userID, f.UserID)
	}
}

func TestDeleteFavourite_SecondDeleteNotFound(t *testing.T) {
	peers := fakePeers(t, false)
	defer peers.Close()

	fav := &models.Favourite{UserID: uuid.New(), ProductID: uuid.New(), LikeDate: time.Now().UTC().Truncate(time.Microsecond)}
	repo := &mockFavouriteRepo{favourites: []*models.Favourite{fav}}
	r := setupFavouriteRouter(repo, peers.URL)

	u := "/favourites/delete?" + keyQuery(fav.Key())
	req := httptest.NewRequest(http.MethodDelete, u, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, u, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
