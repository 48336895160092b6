package router

import (
	"net/http"

	"github.com/rs/zerolog"

	"task-status-viewer/internal/http/handlers"
)

type Handlers struct {
	Status  *handlers.StatusHandler
	Updates *handlers.UpdateHandler
	Signup  *handlers.SignupHandler
}

func New(h Handlers, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health)

	mux.HandleFunc("GET /status/{path...}", h.Status.Fixed)
	mux.HandleFunc("GET /updates", h.Updates.List)
	mux.HandleFunc("GET /updates/{id}", h.Updates.Get)
	mux.HandleFunc("GET /signup/{client_id}", h.Signup.Verify)

	// everything else: {user}/{date}/{task}[/...]/status
	mux.HandleFunc("GET /{path...}", h.Status.Nested)

	return requestLogger(logger)(mux)
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
