package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ErrEmailNotVerified is returned when Google reports the account email as
// unverified. Unverified addresses cannot be trusted for account linking.
var ErrEmailNotVerified = errors.New("google account email not verified")

type GoogleService interface {
	// GenerateState produces an opaque state string bound to the caller's
	// user agent.
	GenerateState(userAgent string) string
	// RedirectURL builds the consent-screen URL carrying the state.
	RedirectURL(state string) string
	// VerifyToken exchanges an authorization code for a token.
	VerifyToken(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyUser fetches the Google profile and checks email verification.
	VerifyUser(ctx context.Context, token *oauth2.Token) (GoogleInformation, error)
}

type GoogleInformation struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	VerifiedEmail bool   `json:"verified_email"`
}

type GoogleServiceImpl struct {
	config *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &GoogleServiceImpl{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// GenerateState implements GoogleService.
func (g *GoogleServiceImpl) GenerateState(userAgent string) string {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return ""
	}
	state := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(nonce), userAgent)
	return base64.URLEncoding.EncodeToString([]byte(state))
}

// RedirectURL implements GoogleService.
func (g *GoogleServiceImpl) RedirectURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// VerifyToken implements GoogleService.
func (g *GoogleServiceImpl) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.config.Exchange(ctx, code)
}

// VerifyUser implements GoogleService.
func (g *GoogleServiceImpl) VerifyUser(ctx context.Context, token *oauth2.Token) (GoogleInformation, error) {
	client := g.config.Client(ctx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return GoogleInformation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleInformation{}, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var info GoogleInformation
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return GoogleInformation{}, err
	}
	if !info.VerifiedEmail {
		return GoogleInformation{}, ErrEmailNotVerified
	}
	return info, nil
}
