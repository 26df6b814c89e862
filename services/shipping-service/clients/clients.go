package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/shipping-service/models"
	"github.com/google/uuid"
)

// ProductClient fetches product records from product-service via the shared
// identity-propagating HTTP client.
type ProductClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewProductClient(baseURL string, httpClient *http.Client) *ProductClient {
	if httpClient == nil {
		httpClient = client.New(client.DefaultTimeout)
	}
	return &ProductClient{baseURL: baseURL, httpClient: httpClient}
}

func (c *ProductClient) GetProduct(ctx context.Context, productID uuid.UUID) client.Remote[models.ProductDTO] {
	url := fmt.Sprintf("%s/products/%s", c.baseURL, productID)
	return client.FetchJSON[models.ProductDTO](ctx, c.httpClient, url)
}

// OrderClient fetches order records from order-service.
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
