package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/auth"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// credential is the shape user-service serves on its internal
// username-lookup endpoint.
type credential struct {
	UserID       uuid.UUID `json:"userId"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	Enabled      bool      `json:"enabled"`
}

type AuthController struct {
	userServiceURL string
	httpClient     *http.Client
	tokenTTL       time.Duration
}

func NewAuthController(userServiceURL string, httpClient *http.Client) *AuthController {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &AuthController{
		userServiceURL: userServiceURL,
		httpClient:     httpClient,
		tokenTTL:       24 * time.Hour,
	}
}

// Authenticate checks the submitted credentials against user-service and
// mints an HS256 token. Lookup failures and bad passwords are one and the
// same 401, so the endpoint leaks nothing about which usernames exist.
func (ac *AuthController) Authenticate(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	cred, err := ac.lookupCredential(c, req.Username)
	if err != nil {
		logger.Warn(c, "credential lookup failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !cred.Enabled {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.mintToken(cred)
	if err != nil {
		logger.Error(c, "failed to sign token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwtToken": token})
}

func (ac *AuthController) lookupCredential(c *gin.Context, username string) (*credential, error) {
	url := fmt.Sprintf("%s/users/username/%s", ac.userServiceURL, username)
	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := ac.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user-service returned %d", resp.StatusCode)
	}

	var cred credential
	if err := json.NewDecoder(resp.Body).Decode(&cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (ac *AuthController) mintToken(cred *credential) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  cred.UserID.String(),
		"username": cred.Username,
		"role":     cred.Role,
		"exp":      time.Now().Add(ac.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(auth.SecretKey())
}
