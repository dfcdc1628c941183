package security

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/infrastructure/config"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier validates Google ID tokens against the tokeninfo
// endpoint and extracts the verified account email
type GoogleVerifier struct {
	clientID string
	client   *http.Client
	logger   *zap.Logger
}

var _ outbound.IdentityVerifier = (*GoogleVerifier)(nil)

// NewGoogleVerifier creates a new Google ID token verifier
func NewGoogleVerifier(cfg *config.Config, logger *zap.Logger) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: cfg.Auth.GoogleClientID,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger.Named("google-verifier"),
	}
}

type tokenInfo struct {
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
}

// VerifyIDToken checks the ID token with Google and returns the
// account email it asserts
func (v *GoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", fmt.Errorf("id token is empty")
	}

	endpoint := tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tokeninfo rejected token: status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if v.clientID != "" && info.Audience != v.clientID {
		v.logger.Warn("ID token audience mismatch", zap.String("aud", info.Audience))
		return "", fmt.Errorf("id token was issued for a different client")
	}
	if info.Email == "" {
		return "", fmt.Errorf("id token carries no email")
	}
	if info.EmailVerified != "true" {
		return "", fmt.Errorf("google account email is not verified")
	}

	return info.Email, nil
}
