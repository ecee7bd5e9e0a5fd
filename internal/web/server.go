package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"calcpad/internal/calc"
	"calcpad/internal/domain"
	"calcpad/internal/input"
)

//go:embed static/index.html
var staticFS embed.FS

var pageTmpl = template.Must(template.ParseFS(staticFS, "static/index.html"))

const maxBodyBytes = 64 << 10

// Config holds the server's listen address and collaborators.
type Config struct {
	Addr        string                   // e.g. ":8080"
	Calculator  domain.Calculator        // optional; defaults to calc.Local
	Logger      *slog.Logger             // optional; defaults to discarding logs
	CheckOrigin func(*http.Request) bool // optional; defaults to same-origin only
}

// Server is the browser adapter.
type Server struct {
	addr     string
	calc     domain.Calculator
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer builds a Server from cfg.
func NewServer(cfg Config) *Server {
	s := &Server{
		addr:   cfg.Addr,
		calc:   cfg.Calculator,
		logger: cfg.Logger,
	}
	if s.calc == nil {
		s.calc = calc.Local{}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: cfg.CheckOrigin}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("POST /api/press", s.handlePress)
	mux.HandleFunc("POST /api/evaluate", s.handleEvaluate)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return logRequests(s.logger, mux)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down, giving in-flight requests five seconds to finish.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("calcpad listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

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

type pageData struct {
	Buttons []pageButton
	Cols    int
	Rows    int
}

// pageButton places a keypad button on the 1-based CSS grid.
type pageButton struct {
	input.Button
	GridRow int
	GridCol int
}

func newPageData() pageData {
	data := pageData{Cols: input.LayoutCols, Rows: input.LayoutRows}
	for _, b := range input.Layout {
		data.Buttons = append(data.Buttons, pageButton{Button: b, GridRow: b.Row + 1, GridCol: b.Col + 1})
	}
	return data
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := newPageData()
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	var req domain.PressRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	// A request without a state starts a fresh calculation.
	if req.State.Display == "" {
		req.State = domain.InitialState()
	}
	next, err := s.calc.Press(r.Context(), req.State, req.Script)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, domain.PressResponse{State: next})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req domain.EvaluateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.calc.Evaluate(r.Context(), req.A, req.B, req.Op)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, domain.EvaluateResponse{Result: result})
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
