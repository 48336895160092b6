package dto

// TaskStatus mirrors the status service payload. Result is either a string
// or a string map.
type TaskStatus struct {
	TaskID string            `json:"task_id"`
	Status string            `json:"status"`
	Result any               `json:"result,omitempty"`
	Error  map[string]string `json:"error,omitempty"`
}

type TaskStatusResponse struct {
	Status TaskStatus `json:"status"`
	TaskID string     `json:"task_id"`
}

type SignupResponse struct {
	ClientID string `json:"client_id"`
}
