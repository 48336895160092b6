package handlers

import (
	"context"
	"net/http"

	"task-status-viewer/internal/http/dto"
)

type SignupService interface {
	VerifyClient(ctx context.Context, clientID string) (string, error)
}

type SignupHandler struct {
	signupService SignupService
}

func NewSignupHandler(signupService SignupService) *SignupHandler {
	return &SignupHandler{signupService: signupService}
}

// GET /signup/{client_id}
func (h *SignupHandler) Verify(w http.ResponseWriter, r *http.Request) {
	clientID, err := h.signupService.VerifyClient(r.Context(), r.PathValue("client_id"))
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, dto.SignupResponse{ClientID: clientID})
}
