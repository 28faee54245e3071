// Package server publishes a clock over HTTP: a PNG snapshot endpoint and
// a websocket that pushes a new PNG every interval.
package server

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iburimskiy/clockface/internal/clockface"
)

const writeTimeout = 10 * time.Second

type Options struct {
	Interval time.Duration
	Clock    clockface.Clock
	Logger   *log.Logger
}

type Server struct {
	cfg      clockface.Config
	opts     Options
	upgrader websocket.Upgrader
}

func New(cfg clockface.Config, opts Options) *Server {
	if opts.Interval <= 0 {
		opts.Interval = clockface.DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = clockface.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Server{
		cfg:  cfg,
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/clock.png", s.handlePNG)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.opts.Logger.Printf("serving clock on http://%s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// handlePNG renders the current time, or the time given as ?at=HH:MM[:SS].
func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	t := clockface.TimeOf(s.opts.Clock.Now())
	if at := r.URL.Query().Get("at"); at != "" {
		var err error
		t, err = clockface.ParseTimeOfDay(at)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	var buf bytes.Buffer
	if err := clockface.EncodePNG(&buf, clockface.Render(s.cfg, t)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.opts.Logger.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	display := &frameWriter{conn: conn, logger: s.opts.Logger}
	u := clockface.StartPeriodicUpdates(display, tickerScheduler{}, func() clockface.Config { return s.cfg }, s.opts.Clock, s.opts.Interval)
	defer u.Stop()

	// Clients only ever send a close frame; reading is how we notice it.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// frameWriter sends every rendered image as one binary PNG message.
type frameWriter struct {
	conn   *websocket.Conn
	logger *log.Logger

	mu     sync.Mutex
	failed bool
}

// SetImage implements clockface.Display.
func (f *frameWriter) SetImage(img *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		return
	}

	var buf bytes.Buffer
	if err := clockface.EncodePNG(&buf, img); err != nil {
		f.logger.Printf("encode frame: %v", err)
		return
	}
	_ = f.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := f.conn.WriteMessage(websocket.BinaryMessage, buf.Bytes()); err != nil {
		f.failed = true
		f.logger.Printf("websocket write: %v", err)
		_ = f.conn.Close()
	}
}

// tickerScheduler runs each job on its own goroutine driven by a
// time.Ticker.
type tickerScheduler struct{}

func (tickerScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>clockface</title></head>
<body style="background:#1a1d2e;display:flex;justify-content:center;align-items:center;height:100vh;margin:0">
<img id="clock" src="/clock.png" alt="clock">
<script>
const img = document.getElementById("clock");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.binaryType = "blob";
ws.onmessage = (ev) => {
  const url = URL.createObjectURL(ev.data);
  const old = img.src;
  img.src = url;
  if (old.startsWith("blob:")) URL.revokeObjectURL(old);
};
</script>
</body>
</html>
`
