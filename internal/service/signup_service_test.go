package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"task-status-viewer/internal/statusapi"
)

type fakeVerifier struct {
	verifyFn func(string) error
}

func (v *fakeVerifier) VerifyClient(_ context.Context, clientID string) error {
	return v.verifyFn(clientID)
}

func TestNewSignupService_NilVerifier(t *testing.T) {
	_, err := NewSignupService(nil, zerolog.Nop())
	if !errors.Is(err, ErrClientNil) {
		t.Fatalf("NewSignupService() err=%v, want %v", err, ErrClientNil)
	}
}

func TestVerifyClient_OK(t *testing.T) {
	svc, _ := NewSignupService(&fakeVerifier{verifyFn: func(id string) error {
		if id != "kakao-user" {
			t.Fatalf("VerifyClient(id)=%q, want %q", id, "kakao-user")
		}
		return nil
	}}, zerolog.Nop())

	got, err := svc.VerifyClient(context.Background(), "kakao-user")
	if err != nil {
		t.Fatalf("VerifyClient() err=%v, want nil", err)
	}
	if got != "kakao-user" {
		t.Fatalf("VerifyClient()=%q, want %q", got, "kakao-user")
	}
}

func TestVerifyClient_Rejected(t *testing.T) {
	svc, _ := NewSignupService(&fakeVerifier{verifyFn: func(string) error {
		return &statusapi.Error{StatusCode: http.StatusNotFound}
	}}, zerolog.Nop())

	_, err := svc.VerifyClient(context.Background(), "stale")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("VerifyClient() err=%v, want %v", err, ErrUnauthorized)
	}
}

func TestVerifyClient_TransportFailure(t *testing.T) {
	svc, _ := NewSignupService(&fakeVerifier{verifyFn: func(string) error {
		return errors.New("dial tcp: connection refused")
	}}, zerolog.Nop())

	_, err := svc.VerifyClient(context.Background(), "x")
	if !errors.Is(err, ErrInvalidAccess) {
		t.Fatalf("VerifyClient() err=%v, want %v", err, ErrInvalidAccess)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatalf("VerifyClient() err=%v, must not be %v", err, ErrUnauthorized)
	}
}

func TestVerifyClient_EmptyID(t *testing.T) {
	svc, _ := NewSignupService(&fakeVerifier{verifyFn: func(string) error {
		t.Fatalf("VerifyClient() should not be called on empty id")
		return nil
	}}, zerolog.Nop())

	_, err := svc.VerifyClient(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidAccess) {
		t.Fatalf("VerifyClient() err=%v, want %v", err, ErrInvalidAccess)
	}
}
