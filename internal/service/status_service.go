package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"task-status-viewer/internal/domain"
	"task-status-viewer/internal/statusapi"
)

const (
	msgStatusUnavailable = "could not load the task status"
	msgStatusError       = "an error occurred while loading the task status"
)

type StatusClient interface {
	TaskStatus(ctx context.Context, id domain.TaskID) (domain.TaskStatusResult, error)
}

type StatusService struct {
	client StatusClient
	log    zerolog.Logger
}

func NewStatusService(client StatusClient, logger zerolog.Logger) (*StatusService, error) {
	if client == nil {
		return nil, ErrClientNil
	}

	return &StatusService{client: client, log: logger}, nil
}

// TaskStatus resolves path and fetches the status of the resulting task.
func (s *StatusService) TaskStatus(ctx context.Context, path string, withSuffix bool) (domain.TaskStatusPage, error) {
	id, err := ResolveTaskID(path, withSuffix)
	if err != nil {
		return domain.TaskStatusPage{}, err
	}

	result, err := s.FetchStatus(ctx, id)
	if err != nil {
		return domain.TaskStatusPage{}, err
	}

	return domain.TaskStatusPage{Status: result, TaskID: id}, nil
}

// FetchStatus makes exactly one call to the status service. A failure of
// any kind comes back as *StatusFetchError.
func (s *StatusService) FetchStatus(ctx context.Context, id domain.TaskID) (domain.TaskStatusResult, error) {
	result, err := s.client.TaskStatus(ctx, id)
	if err != nil {
		fetchErr := toFetchError(err)
		s.log.Warn().
			Err(err).
			Str("task_id", string(id)).
			Int("code", fetchErr.Code).
			Msg("task status fetch failed")
		return domain.TaskStatusResult{}, fetchErr
	}

	if !result.Status.Valid() {
		err := fmt.Errorf("unknown task status %q", result.Status)
		s.log.Warn().Err(err).Str("task_id", string(id)).Msg("task status fetch failed")
		return domain.TaskStatusResult{}, &StatusFetchError{
			Code:    http.StatusInternalServerError,
			Message: msgStatusError,
			Err:     err,
		}
	}

	if result.TaskID == "" {
		result.TaskID = id
	}

	return result, nil
}

func toFetchError(err error) *StatusFetchError {
	var apiErr *statusapi.Error
	if !errors.As(err, &apiErr) {
		return &StatusFetchError{Code: http.StatusInternalServerError, Message: msgStatusError, Err: err}
	}

	code := apiErr.StatusCode
	if code < 400 || code > 599 {
		code = http.StatusInternalServerError
	}

	msg := apiErr.Detail
	if msg == "" {
		msg = msgStatusUnavailable
	}

	return &StatusFetchError{Code: code, Message: msg, Err: err}
}
