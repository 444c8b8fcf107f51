package display

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Live serves the latest frame over HTTP. Browsers reload the page every
// refresh interval and always get the newest frame.
type Live struct {
	mu      sync.RWMutex
	frame   *Frame
	refresh time.Duration
	logger  *slog.Logger
}

func NewLive(refresh time.Duration, logger *slog.Logger) *Live {
	if logger == nil {
		logger = slog.Default()
	}
	return &Live{refresh: refresh, logger: logger}
}

func (l *Live) Show(f Frame) error {
	data := make([]byte, len(f.Data))
	copy(data, f.Data)
	f.Data = data

	l.mu.Lock()
	l.frame = &f
	l.mu.Unlock()
	return nil
}

func (l *Live) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if l.refresh > 0 {
		w.Header().Set("Refresh", strconv.Itoa(int(math.Ceil(l.refresh.Seconds()))))
	}
	w.Header().Set("Cache-Control", "no-store")

	l.mu.RLock()
	f := l.frame
	l.mu.RUnlock()

	if f == nil {
		http.Error(w, "no episodes recorded yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("X-Episodes", strconv.Itoa(f.Episodes))
	if _, err := w.Write(f.Data); err != nil {
		l.logger.Debug("writing live frame", "error", err)
	}
}

// Serve answers requests on ln until ctx is done. The caller binds ln so
// that an unusable address is reported before any frame is shown.
func (l *Live) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           l,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	l.logger.Info("serving live chart", "url", "http://"+ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving live chart: %w", err)
	}
	return nil
}
