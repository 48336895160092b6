package dto

type UpdateTypeInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type UpdateResponse struct {
	ID          string         `json:"id"`
	Date        string         `json:"date"`
	Title       string         `json:"title"`
	Type        string         `json:"type"`
	TypeInfo    UpdateTypeInfo `json:"type_info"`
	Summary     string         `json:"summary"`
	Content     string         `json:"content"`
	ContentHTML string         `json:"content_html,omitempty"`
}

type UpdateListResponse struct {
	Updates []UpdateResponse `json:"updates"`
}

type UpdateDetailResponse struct {
	Update UpdateResponse `json:"update"`
}
