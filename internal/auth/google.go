package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/seoforge/seoforge/internal/response"
	"github.com/seoforge/seoforge/internal/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOauthConfig = &oauth2.Config{
	RedirectURL:  googleRedirectURL(),
	ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
	ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
	Endpoint:     google.Endpoint,
}

func googleRedirectURL() string {
	if url := os.Getenv("GOOGLE_REDIRECT_URL"); url != "" {
		return url
	}
	return "http://localhost:3003/api/auth/google/callback"
}

func googleConfigured() bool {
	return googleOauthConfig.ClientID != "" && googleOauthConfig.ClientSecret != ""
}

var (
	stateStore = make(map[string]time.Time)
	stateMutex sync.RWMutex
)

func generateState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

func storeState(state string) {
	stateMutex.Lock()
	defer stateMutex.Unlock()
	stateStore[state] = time.Now().Add(5 * time.Minute)

	for k, v := range stateStore {
		if time.Now().After(v) {
			delete(stateStore, k)
		}
	}
}

func validateState(state string) bool {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	expiry, exists := stateStore[state]
	if !exists || time.Now().After(expiry) {
		return false
	}
	delete(stateStore, state)
	return true
}

func (h *Handler) GoogleLogin(c *fiber.Ctx) error {
	if !googleConfigured() {
		return response.BadRequest(c, "Google login is not configured", nil)
	}
	state := generateState()
	storeState(state)
	url := googleOauthConfig.AuthCodeURL(state)
	return c.Redirect(url)
}

// GoogleCallback exchanges the OAuth code, checks the account against the
// email allowlist and issues the same session token as password login.
func (h *Handler) GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if !validateState(state) {
		return response.BadRequest(c, "Invalid state parameter", nil)
	}

	code := c.Query("code")

	token, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		return response.InternalError(c, "Failed to exchange token")
	}

	client := googleOauthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return response.InternalError(c, "Failed to get user info")
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	var userData struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(data, &userData); err != nil || userData.Email == "" {
		return response.InternalError(c, "Failed to parse user info")
	}

	if !h.service.EmailAllowed(userData.Email) {
		return response.Forbidden(c, "EMAIL_NOT_ALLOWED", "This Google account is not authorized")
	}

	sessionToken, err := utils.GenerateJWT(userData.Email)
	if err != nil {
		return response.InternalError(c, "Failed to issue session token")
	}

	return response.Success(c, fiber.Map{
		"token":    sessionToken,
		"username": userData.Email,
		"name":     userData.Name,
	}, "Login successful")
}
