package services

import (
	"context"
	"net/http"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
)

// AuthService issues login and token-revocation calls. Token refresh is not
// here: it belongs to the HTTP core, which fires it transparently on 401.
type AuthService struct {
	service
}

func NewAuthService(client *httpx.Client) *AuthService {
	return &AuthService{service: newService(client)}
}

func (s *AuthService) Login(ctx context.Context, credentials models.LoginDto) (models.LoggedDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Post[models.LoggedDto](ctx, s.client, "Auth/Login/", credentials)
}

// RevokeToken invalidates the server-side refresh token on logout.
func (s *AuthService) RevokeToken(ctx context.Context) error {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return s.client.Do(ctx, http.MethodPut, "Auth/RevokeToken/", nil, nil, nil)
}
