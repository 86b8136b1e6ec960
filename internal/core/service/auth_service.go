package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

// AuthService is the credential authority: it exchanges credentials for
// signed capability tokens and validates tokens issued elsewhere.
type AuthService struct {
	users    ports.UserRepository
	signer   ports.TokenSigner
	verifier ports.TokenVerifier
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, signer ports.TokenSigner, verifier ports.TokenVerifier, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, signer: signer, verifier: verifier, log: log}
}

// Authenticate looks up the stored credentials and, on a password match,
// returns a token whose claims are exactly the user's username and roles.
// An unknown username and a wrong password are indistinguishable to the
// caller: both fail with ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.signer.Sign(user.Identity())
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("token signing failed")
		return "", err
	}

	s.log.Info().Str("username", username).Msg("user authenticated")
	return token, nil
}

// Validate verifies the token's signature and expiry and returns the decoded
// identity. Any verification failure surfaces as ErrInvalidToken.
func (s *AuthService) Validate(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	identity, err := s.verifier.Verify(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return domain.Identity{}, domain.ErrInvalidToken
	}
	return identity, nil
}
