package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"task-status-viewer/internal/statusapi"
)

type ClientVerifier interface {
	VerifyClient(ctx context.Context, clientID string) error
}

type SignupService struct {
	verifier ClientVerifier
	log      zerolog.Logger
}

func NewSignupService(verifier ClientVerifier, logger zerolog.Logger) (*SignupService, error) {
	if verifier == nil {
		return nil, ErrClientNil
	}

	return &SignupService{verifier: verifier, log: logger}, nil
}

// VerifyClient checks that clientID was issued by the chatbot signup flow.
// A rejection by the API is ErrUnauthorized; a failed call is ErrInvalidAccess.
func (s *SignupService) VerifyClient(ctx context.Context, clientID string) (string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", fmt.Errorf("%w: empty client id", ErrInvalidAccess)
	}

	if err := s.verifier.VerifyClient(ctx, clientID); err != nil {
		var apiErr *statusapi.Error
		if errors.As(err, &apiErr) {
			s.log.Info().Str("client_id", clientID).Int("status", apiErr.StatusCode).Msg("client verification rejected")
			return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}

		s.log.Warn().Err(err).Str("client_id", clientID).Msg("client verification failed")
		return "", fmt.Errorf("%w: %w", ErrInvalidAccess, err)
	}

	return clientID, nil
}
