package web

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

//go:embed static/index.html
var indexHTML []byte

// NewRouter builds the spectator routes.
func NewRouter(hub *Hub, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logger.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/", handleIndex)
	r.Get("/snapshot", hub.ServeSnapshot)
	r.Get("/ws", hub.ServeWS)

	return r
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	//nolint:errcheck // Client went away
	w.Write(indexHTML)
}

// Serve runs the spectator and its HTTP server until ctx is done.
func Serve(ctx context.Context, addr string, sp *Spectator, hub *Hub, tickRate int, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(hub, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting spectator server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	loopCtx, stop := context.WithCancel(ctx)
	defer stop()
	go sp.Run(loopCtx, tickRate)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
