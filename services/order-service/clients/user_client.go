package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/models"
	"github.com/google/uuid"
)

// UserClient fetches user records from user-service. Calls ride the shared
// identity-propagating HTTP client, so the inbound caller's token reaches
// user-service without being passed explicitly.
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

// GetUser fetches one user. All failures collapse into the tagged outcome;
// the caller decides how a degraded fetch shapes its response.
func (c *UserClient) GetUser(ctx context.Context, userID uuid.UUID) client.Remote[models.UserDTO] {
	url := fmt.Sprintf("%s/users/%s", c.baseURL, userID)
	return client.FetchJSON[models.UserDTO](ctx, c.httpClient, url)
}
