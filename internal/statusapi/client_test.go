package statusapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-status-viewer/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return New(Config{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}, zerolog.Nop()), &calls
}

func TestTaskStatus_Success(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/task/abc_2025-04-01_analyze-health/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","data":{"task_id":"x","status":"SUCCESS","result":"ok"}}`))
	})

	got, err := client.TaskStatus(context.Background(), "abc_2025-04-01_analyze-health")
	require.NoError(t, err)

	assert.Equal(t, domain.TaskID("x"), got.TaskID)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, "ok", got.Result.Text)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTaskStatus_NoCaching(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"task_id":"x","status":"PENDING"}}`))
	})

	for i := 0; i < 3; i++ {
		_, err := client.TaskStatus(context.Background(), "x")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestTaskStatus_ErrorWithDetail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	})

	_, err := client.TaskStatus(context.Background(), "x")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Detail)
}

func TestTaskStatus_ErrorWithoutJSONBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	})

	_, err := client.TaskStatus(context.Background(), "x")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusGatewayTimeout, apiErr.StatusCode)
	assert.Empty(t, apiErr.Detail)
}

func TestTaskStatus_ErrorWithListDetail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["path","task_id"],"msg":"field required"}]}`))
	})

	_, err := client.TaskStatus(context.Background(), "x")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Empty(t, apiErr.Detail)
}

func TestTaskStatus_MalformedJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.TaskStatus(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestTaskStatus_MissingData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok","data":null}`))
	})

	_, err := client.TaskStatus(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestTaskStatus_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client := New(Config{BaseURL: baseURL, Timeout: time.Second}, zerolog.Nop())

	_, err := client.TaskStatus(context.Background(), "x")
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestTaskStatus_EscapesID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/task/a%20b_2025_x/status", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"data":{"task_id":"a b_2025_x","status":"STARTED"}}`))
	})

	got, err := client.TaskStatus(context.Background(), "a b_2025_x")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStarted, got.Status)
}

func TestVerifyClient(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/verify-client/good" {
			_, _ = w.Write([]byte(`{"message":"ok"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"unknown client"}`))
	})

	require.NoError(t, client.VerifyClient(context.Background(), "good"))

	err := client.VerifyClient(context.Background(), "bad")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "unknown client", apiErr.Detail)
}
