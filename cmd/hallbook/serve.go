package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"hallbook/internal/api"
	"hallbook/internal/support"
	"hallbook/internal/whatsapp"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.HTTPAddr
			}
			return a.serve(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR)")
	return cmd
}

func (a *app) serve(ctx context.Context, addr string) error {
	controllers, err := a.controllers(ctx)
	if err != nil {
		return err
	}

	opts := support.Options{
		ReplyDelay: a.cfg.Support.ReplyDelay,
		Answers:    support.NewAnswers(a.catalog.FAQs()),
		Log:        a.log,
	}
	if a.wa != nil {
		a.wa.SetMessageHandler(controllers.Guests.HandleMessage)
		if a.cfg.Support.WhatsApp != "" {
			opts.Relay = whatsapp.NewSupportRelay(a.wa, a.cfg.Support.WhatsApp)
		}
	}
	hub := support.NewHub(opts)
	defer hub.CloseAll()

	server := api.NewServer(controllers, hub, a.catalog.FAQs(), support.Contacts(a.cfg.Support), a.log)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", addr).Str("store", a.cfg.Store.Backend).Msg("Server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.WriteTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.log.Info().Msg("Server stopped")
	return nil
}
