package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hallbook/internal/catalog"
	"hallbook/internal/config"
	"hallbook/internal/handler"
	"hallbook/internal/logging"
	"hallbook/internal/storage"
	"hallbook/internal/whatsapp"
)

// app carries the state shared by every subcommand
type app struct {
	configFile string
	format     string

	cfg     *config.Config
	log     zerolog.Logger
	catalog *catalog.Catalog
	store   *storage.Store
	wa      *whatsapp.Service
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})

	a.catalog, err = catalog.New()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	return nil
}

func (a *app) openStore(ctx context.Context) (*storage.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	backend, err := storage.OpenBackend(ctx, a.cfg.Store, a.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", a.cfg.Store.Backend, err)
	}
	a.store = storage.NewStore(backend, a.log)
	a.log.Debug().Str("backend", a.cfg.Store.Backend).Msg("Store opened")
	return a.store, nil
}

// openWhatsApp connects the WhatsApp client when it is enabled. It returns
// nil without error when WhatsApp is disabled.
func (a *app) openWhatsApp(ctx context.Context) (*whatsapp.Service, error) {
	if !a.cfg.WhatsApp.Enabled {
		return nil, nil
	}
	if a.wa != nil {
		return a.wa, nil
	}

	wa, err := whatsapp.NewService(ctx, whatsapp.Config{DataDir: a.cfg.WhatsApp.DataDir}, a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize WhatsApp: %w", err)
	}
	if !wa.LoggedIn() {
		wa.Disconnect()
		return nil, errors.New("WhatsApp is not paired, run 'hallbook whatsapp login' first")
	}
	if err := wa.Connect(ctx, os.Stdout); err != nil {
		wa.Disconnect()
		return nil, err
	}
	a.wa = wa
	return wa, nil
}

func (a *app) controllers(ctx context.Context) (*handler.Controllers, error) {
	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	wa, err := a.openWhatsApp(ctx)
	if err != nil {
		return nil, err
	}

	var messenger handler.Messenger
	if wa != nil {
		messenger = wa
	}

	deps := handler.Deps{Catalog: a.catalog, Store: store, Log: a.log}
	return handler.New(deps, handler.Config{
		WeddingDate:     a.cfg.Wedding.Date,
		WeddingLocation: a.cfg.Wedding.Location,
		BrideName:       a.cfg.Wedding.BrideName,
		GroomName:       a.cfg.Wedding.GroomName,
	}, messenger), nil
}

// close releases whatever the command opened. It runs after every command,
// including failed ones, and is safe to call more than once.
func (a *app) close() {
	if a.wa != nil {
		a.wa.Disconnect()
		a.wa = nil
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("Failed to close store")
		}
		a.store = nil
	}
}
