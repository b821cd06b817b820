package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/flashcards/internal/bootstrap"
	"github.com/at-ishikawa/flashcards/internal/server"
)

func newServeCommand() *cobra.Command {
	var port int
	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the review service over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	command.Flags().IntVar(&port, "port", 0, "port to listen on (overrides server.port)")
	return command
}

func runServe(ctx context.Context, port int) error {
	lifecycle := bootstrap.New()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	lifecycle.AddShutdownHook(func(context.Context) error {
		return a.Close()
	})

	handler := server.NewReviewHandler(a.scheduler, a.decks)

	if port == 0 {
		port = a.cfg.Server.Port
	}
	router := server.NewRouter(handler, a.cfg.Server.CORS.AllowedOrigins)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	lifecycle.AddShutdownHook(srv.Shutdown)

	certFile, keyFile := a.cfg.Server.TLSCertFile, a.cfg.Server.TLSKeyFile
	return lifecycle.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server",
			"addr", srv.Addr,
			"driver", a.cfg.Database.Driver,
			"tls", certFile != "",
		)

		var err error
		if certFile != "" && keyFile != "" {
			err = srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}
