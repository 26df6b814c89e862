package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/models"
	"github.com/google/uuid"
)

// OrderClient fetches order records from order-service via the shared
// identity-propagating HTTP client.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOrderClient(baseURL string, httpClient *http.Client) *OrderClient {
	if httpClient == nil {
		httpClient = client.New(client.DefaultTimeout)
	}
	return &OrderClient{baseURL: baseURL, httpClient: httpClient}
}

func (c *OrderClient) GetOrder(ctx context.Context, orderID uuid.UUID) client.Remote[models.OrderDTO] {
	url := fmt.Sprintf("%s/orders/%s", c.baseURL, orderID)
	return client.FetchJSON[models.OrderDTO](ctx, c.httpClient, url)
}
