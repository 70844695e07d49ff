package api

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// shutdownGrace bounds how long in-flight requests may run after the
// server context is cancelled.
const shutdownGrace = 5 * time.Second

// Serve runs the sessions API server until the context is cancelled.
func Serve(ctx context.Context, addr string, cfg Config) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}
