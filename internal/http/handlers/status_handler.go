package handlers

import (
	"context"
	"net/http"
	"strings"

	"task-status-viewer/internal/domain"
	"task-status-viewer/internal/http/dto"
)

const statusSuffix = "/status"

type StatusService interface {
	TaskStatus(ctx context.Context, path string, withSuffix bool) (domain.TaskStatusPage, error)
}

type StatusHandler struct {
	statusService StatusService
}

func NewStatusHandler(statusService StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// GET /status/{path...}
func (h *StatusHandler) Fixed(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, r.PathValue("path"), false)
}

// GET /{path...}/status
func (h *StatusHandler) Nested(w http.ResponseWriter, r *http.Request) {
	path, ok := strings.CutSuffix(r.PathValue("path"), statusSuffix)
	if !ok {
		writeError(w, http.StatusNotFound, msgPageNotFound)

		return
	}

	h.serve(w, r, path, true)
}

func (h *StatusHandler) serve(w http.ResponseWriter, r *http.Request, path string, withSuffix bool) {
	page, err := h.statusService.TaskStatus(r.Context(), path, withSuffix)
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	response := dto.TaskStatusResponse{
		Status: toTaskStatus(page.Status),
		TaskID: string(page.TaskID),
	}

	writeJSON(w, http.StatusOK, response)
}

func toTaskStatus(s domain.TaskStatusResult) dto.TaskStatus {
	out := dto.TaskStatus{
		TaskID: string(s.TaskID),
		Status: string(s.Status),
		Error:  s.Error,
	}

	if s.Result != nil {
		if s.Result.IsText() {
			out.Result = s.Result.Text
		} else {
			out.Result = s.Result.Fields
		}
	}

	return out
}
