package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/models"
	"github.com/google/uuid"
)

// UserClient fetches user records from user-service via the shared
// identity-propagating HTTP client.
type UserClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewUserClient(baseURL string, httpClient *http.Client) *UserClient {
	if httpClient == nil {
		httpClient = client.New(client.DefaultTimeout)
	}
	return &UserClient{baseURL: baseURL, httpClient: httpClient}
}

func (c *UserClient) GetUser(ctx context.Context, userID uuid.UUID) client.Remote[models.UserDTO] {
	url := fmt.Sprintf("%s/users/%s", c.baseURL, userID)
	return client.FetchJSON[models.UserDTO](ctx, c.httpClient, url)
}

// ProductClient fetches product records from product-service.
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
