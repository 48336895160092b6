package commands

import (
	"fmt"

	"github.com/rs/zerolog"

	"task-status-viewer/internal/config"
	"task-status-viewer/internal/service"
	"task-status-viewer/internal/statusapi"
	"task-status-viewer/internal/store/memory"
	"task-status-viewer/internal/updates"
)

// App holds the services shared by every command.
type App struct {
	Status  *service.StatusService
	Updates *service.UpdateService
	Signup  *service.SignupService
}

// NewApp wires the remote API client, the bundled update catalog and the
// services on top of them.
func NewApp(cfg config.Config, logger zerolog.Logger) (*App, error) {
	client := statusapi.New(statusapi.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
	}, logger.With().Str("component", "statusapi").Logger())

	statusSvc, err := service.NewStatusService(client, logger.With().Str("component", "status").Logger())
	if err != nil {
		return nil, fmt.Errorf("status service: %w", err)
	}

	signupSvc, err := service.NewSignupService(client, logger.With().Str("component", "signup").Logger())
	if err != nil {
		return nil, fmt.Errorf("signup service: %w", err)
	}

	records, err := updates.Load()
	if err != nil {
		return nil, fmt.Errorf("load update catalog: %w", err)
	}

	updateSvc, err := service.NewUpdateService(memory.New(records))
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	return &App{
		Status:  statusSvc,
		Updates: updateSvc,
		Signup:  signupSvc,
	}, nil
}
