package commands

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/config"
	"kitchenkiosk/internal/data"
	"kitchenkiosk/internal/data/httpapi"
	"kitchenkiosk/internal/data/localstore"
	"kitchenkiosk/internal/keys"
	"kitchenkiosk/internal/telemetry"
	"kitchenkiosk/internal/ui"
)

// runUI runs the Bubble Tea program until the user quits.
func runUI(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// stdout belongs to the renderer.
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "kiosk")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("commands: telemetry shutdown: %v", err)
		}
	}()

	backend, err := openBackend(cfg)
	if err != nil {
		return err
	}
	log.Printf("commands: starting with %s backend", cfg.Backend)

	app, err := ui.NewAppModel(uiOptions(cfg, backend))
	if err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// openBackend connects to the configured data backend.
func openBackend(cfg *config.Config) (data.Backend, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		s, err := localstore.Open(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open local store: %w", err)
		}
		return s, nil
	default:
		c, err := httpapi.New(cfg.API.BaseURL, httpapi.WithTimeout(cfg.API.Timeout))
		if err != nil {
			return nil, fmt.Errorf("api client: %w", err)
		}
		return c, nil
	}
}

func uiOptions(cfg *config.Config, backend data.Backend) ui.Options {
	return ui.Options{
		Backend:             backend,
		KeyMap:              keys.NewKeyMap(cfg.Keys),
		RefreshInterval:     cfg.UI.RefreshInterval,
		TimerDefaultSeconds: cfg.Timer.DefaultSeconds,
		TimerDefaultName:    cfg.Timer.DefaultName,
		TimerSteps:          cfg.Timer.Steps,
	}
}
