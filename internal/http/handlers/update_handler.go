package handlers

import (
	"net/http"

	"task-status-viewer/internal/domain"
	"task-status-viewer/internal/http/dto"
)

type UpdateService interface {
	ListUpdates() []domain.UpdateRecord
	GetUpdate(id string) (domain.UpdateRecord, error)
	RenderContent(record domain.UpdateRecord) (string, error)
}

type UpdateHandler struct {
	updateService UpdateService
}

func NewUpdateHandler(updateService UpdateService) *UpdateHandler {
	return &UpdateHandler{updateService: updateService}
}

// GET /updates
func (h *UpdateHandler) List(w http.ResponseWriter, r *http.Request) {
	records := h.updateService.ListUpdates()

	response := dto.UpdateListResponse{
		Updates: make([]dto.UpdateResponse, 0, len(records)),
	}
	for _, record := range records {
		response.Updates = append(response.Updates, toUpdate(record))
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /updates/{id}
func (h *UpdateHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.updateService.GetUpdate(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)

		return
	}

	update := toUpdate(record)

	html, err := h.updateService.RenderContent(record)
	if err != nil {
		writeServiceError(w, r, err)

		return
	}
	update.ContentHTML = html

	writeJSON(w, http.StatusOK, dto.UpdateDetailResponse{Update: update})
}

func toUpdate(record domain.UpdateRecord) dto.UpdateResponse {
	info := record.Type.Info()

	return dto.UpdateResponse{
		ID:    record.ID,
		Date:  record.Date,
		Title: record.Title,
		Type:  string(record.Type),
		TypeInfo: dto.UpdateTypeInfo{
			Label: info.Label,
			Color: info.Color,
			Icon:  info.Icon,
		},
		Summary: record.Summary,
		Content: record.Content,
	}
}
