package controllers_test

import (
	"bytes"
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
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/controllers"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/routes"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func init() {
	logger.Initialize("test")
}

// ---- repository mock ----

type mockPaymentRepo struct {
	payments map[uuid.UUID]*models.Payment
	order    []uuid.UUID
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[uuid.UUID]*models.Payment)}
}

func (m *mockPaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	m.payments[payment.ID] = payment
	m.order = append(m.order, payment.ID)
	return nil
}

func (m *mockPaymentRepo) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRepo) ListPayments(ctx context.Context) ([]models.Payment, error) {
	out := make([]models.Payment, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.payments[id])
	}
	return out, nil
}

func (m *mockPaymentRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string, isPayed bool) error {
	p, ok := m.payments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	p.IsPayed = isPayed
	return nil
}

func (m *mockPaymentRepo) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.payments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.payments, id)
	return nil
}

// ---- event publisher mock ----

type mockPublisher struct {
	events []models.PaymentEvent
}

func (m *mockPublisher) SendPaymentEvent(ctx context.Context, event models.PaymentEvent) error {
	m.events = append(m.events, event)
	return nil
}

func setupPaymentRouter(repo *mockPaymentRepo, pub *mockPublisher, orderServiceURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.TokenPropagation())
	pc := controllers.NewPaymentController(
		repo,
		clients.NewOrderClient(orderServiceURL, commonclient.New(2*time.Second)),
		pub,
	)
	routes.RegisterPaymentRoutes(r, pc)
	return r
}

// ---- tests ----

func TestGetPayment_EnrichedWithOrder(t *testing.T) {
	orderID := uuid.New()
	var gotAuth string
	orderSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/orders/"+orderID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"orderId":%q,"orderDesc":"X","orderFee":100.0}`, orderID)
	}))
	defer orderSvc.Close()

	repo := newMockPaymentRepo()
	payment := &models.Payment{OrderID: orderID, IsPayed: true, Status: models.StatusCompleted}
	repo.CreatePayment(context.Background(), payment)

	r := setupPaymentRouter(repo, &mockPublisher{}, orderSvc.URL)
	req := httptest.NewRequest(http.MethodGet, "/payments/"+payment.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer tok123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// the caller's token must reach the peer verbatim
	assert.Equal(t, "Bearer tok123", gotAuth)

	var resp models.PaymentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, payment.ID, resp.ID)
	assert.True(t, resp.IsPayed)
	assert.Equal(t, commonclient.StatusFetched, resp.OrderStatus)
	assert.NotNil(t, resp.Order)
	assert.Equal(t, "X", resp.Order.OrderDesc)
}

func TestGetPayment_OrderServiceDown_StillReturnsPayment(t *testing.T) {
	orderSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer orderSvc.Close()

	repo := newMockPaymentRepo()
	payment := &models.Payment{OrderID: uuid.New(), IsPayed: true, Status: models.StatusCompleted}
	repo.CreatePayment(context.Background(), payment)

	r := setupPaymentRouter(repo, &mockPublisher{}, orderSvc.URL)
	req := httptest.NewRequest(http.MethodGet, "/payments/"+payment.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// availability over consistency: 200 with the order section absent
	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.PaymentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, payment.ID, resp.ID)
	assert.True(t, resp.IsPayed)
	assert.Nil(t, resp.Order)
	assert.Equal(t, commonclient.StatusUnavailable, resp.OrderStatus)
}

func TestGetPayment_LocalNotFound(t *testing.T) {
	orderSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer orderSvc.Close()

	r := setupPaymentRouter(newMockPaymentRepo(), &mockPublisher{}, orderSvc.URL)
	req := httptest.NewRequest(http.MethodGet, "/payments/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPayments_KthFailureDegradesOnlyK(t *testing.T) {
	badOrder := uuid.New()
	orderSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orders/"+badOrder.String() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orderDesc":"ok"}`))
	}))
	defer orderSvc.Close()

	repo := newMockPaymentRepo()
	var created []*models.Payment
	for i := 0; i < 5; i++ {
		p := &models.Payment{OrderID: uuid.New()}
		if i == 2 {
			p.OrderID = badOrder
		}
		repo.CreatePayment(context.Background(), p)
		created = append(created, p)
	}

	r := setupPaymentRouter(repo, &mockPublisher{}, orderSvc.URL)
	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Payments []models.PaymentResponse `json:"payments"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Payments, 5)

	for i, pr := range resp.Payments {
		assert.Equal(t, created[i].ID, pr.ID, "input order must be preserved")
		if i == 2 {
			assert.Nil(t, pr.Order)
			assert.Equal(t, commonclient.StatusUnavailable, pr.OrderStatus)
		} else {
			assert.NotNil(t, pr.Order)
			assert.Equal(t, commonclient.StatusFetched, pr.OrderStatus)
		}
	}
}

func TestUpdatePaymentStatus_PublishesEvent(t *testing.T) {
	orderSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer orderSvc.Close()

	repo := newMockPaymentRepo()
	payment := &models.Payment{OrderID: uuid.New(), Status: models.StatusNotStarted}
	repo.CreatePayment(context.Background(), payment)

	pub := &mockPublisher{}
	r := setupPaymentRouter(repo, pub, orderSvc.URL)

	b, _ := json.Marshal(map[string]interface{}{"paymentStatus": "completed", "isPayed": true})
	req := httptest.NewRequest(http.MethodPut, "/payments/"+payment.ID.String()+"/status", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, pub.events, 1)
	assert.Equal(t, "payment_completed", pub.events[0].Type)
	assert.Equal(t, payment.ID.String(), pub.events[0].PaymentID)
	assert.True(t, pub.events[0].IsPayed)
}

func TestGetPayment_NoInboundToken_PeerCallUnauthenticated(t *testing.T) {
	var sawAuth bool
	orderSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer orderSvc.Close()

	repo := newMockPaymentRepo()
	payment := &models.Payment{OrderID: uuid.New()}
	repo.CreatePayment(context.Background(), payment)

	r := setupPaymentRouter(repo, &mockPublisher{}, orderSvc.URL)
	req := httptest.NewRequest(http.MethodGet, "/payments/"+payment.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sawAuth)
}
