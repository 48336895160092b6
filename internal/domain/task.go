package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var ErrUnsupportedShape = errors.New("unsupported json shape")

// TaskID identifies one status-tracked unit of work: {userKey}_{date}_{taskName}[_extra...].
type TaskID string

// NewTaskID joins the base components and any extra qualifiers with "_".
// Callers validate that the base components are non-empty.
func NewTaskID(userKey, date, taskName string, extra ...string) TaskID {
	parts := append([]string{userKey, date, taskName}, extra...)
	return TaskID(strings.Join(parts, "_"))
}

type TaskStatus string

const (
	StatusPending  TaskStatus = "PENDING"
	StatusProgress TaskStatus = "PROGRESS"
	StatusStarted  TaskStatus = "STARTED"
	StatusSuccess  TaskStatus = "SUCCESS"
	StatusFailure  TaskStatus = "FAILURE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProgress, StatusStarted, StatusSuccess, StatusFailure:
		return true
	default:
		return false
	}
}

// Terminal reports whether the task has finished, successfully or not.
func (s TaskStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailure
}

// TaskResult is the payload of a successful task. The status service sends
// either a single string or a flat string mapping; exactly one of Text and
// Fields is meaningful, Fields being nil for the string shape.
type TaskResult struct {
	Text   string
	Fields map[string]string
}

func TextResult(text string) *TaskResult {
	return &TaskResult{Text: text}
}

func FieldsResult(fields map[string]string) *TaskResult {
	if fields == nil {
		fields = map[string]string{}
	}
	return &TaskResult{Fields: fields}
}

func (r TaskResult) IsText() bool {
	return r.Fields == nil
}

func (r TaskResult) MarshalJSON() ([]byte, error) {
	if r.Fields != nil {
		return json.Marshal(r.Fields)
	}
	return json.Marshal(r.Text)
}

func (r *TaskResult) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*r = TaskResult{Text: text}
		return nil
	case len(data) > 0 && data[0] == '{':
		fields, err := decodeStringMap(data)
		if err != nil {
			return err
		}
		*r = TaskResult{Fields: fields}
		return nil
	default:
		return ErrUnsupportedShape
	}
}

// TaskError carries failure details keyed by field. The backend has sent a
// bare string here in the past; that form decodes to {"message": text}.
type TaskError map[string]string

func (e *TaskError) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*e = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*e = TaskError{"message": text}
		return nil
	case len(data) > 0 && data[0] == '{':
		fields, err := decodeStringMap(data)
		if err != nil {
			return err
		}
		*e = fields
		return nil
	default:
		return ErrUnsupportedShape
	}
}

// decodeStringMap decodes a JSON object, keeping string values as-is and
// any other value as its raw JSON text.
func decodeStringMap(data []byte) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		out[k] = string(bytes.TrimSpace(v))
	}
	return out, nil
}

type TaskStatusResult struct {
	TaskID TaskID      `json:"task_id"`
	Status TaskStatus  `json:"status"`
	Result *TaskResult `json:"result,omitempty"`
	Error  TaskError   `json:"error,omitempty"`
}

// TaskStatusPage is what the status page renders: the fetched status and the
// id it was resolved from.
type TaskStatusPage struct {
	Status TaskStatusResult `json:"status"`
	TaskID TaskID           `json:"task_id"`
}
