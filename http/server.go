package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/titlefetch"
	"github.com/google/uuid"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before shutdown.
const ShutdownTimeout = 1 * time.Second

// Server serves the title fetch API.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Addr is the bind address. Set before calling Open().
	Addr string

	// Services used by the handlers.
	TitleService titlefetch.TitleService

	Logger *slog.Logger
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	s := &Server{
		Logger: slog.New(slog.DiscardHandler),
	}
	s.server = &http.Server{Handler: s.Handler()}
	return s
}

// Handler returns the routes served by the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/fetch", s.handleFetch)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return s.withRequestID(mux)
}

// Open binds the listener and starts serving in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type requestIDKey struct{}

// withRequestID tags every request with an id, echoed in X-Request-Id.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.Error(w, r, titlefetch.InvalidURL(err))
		return
	}

	doc, err := s.TitleService.FetchTitle(r.Context(), r.PostForm.Get("uri"))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.Logger.Info("fetch",
		"request_id", requestID(r.Context()),
		"url", r.PostForm.Get("uri"),
		"bytes", doc.BytesRead,
	)
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Error writes the stable message of err with a status derived from its code.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := titlefetch.ErrorCode(err), titlefetch.ErrorMessage(err)

	level := slog.LevelInfo
	if code == titlefetch.EINTERNAL {
		level = slog.LevelError
	}
	s.Logger.Log(r.Context(), level, "fetch failed",
		"request_id", requestID(r.Context()),
		"code", code,
		"err", err,
	)

	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// codes maps titlefetch error codes to HTTP status codes.
var codes = map[string]int{
	titlefetch.EINVALIDURL: http.StatusBadRequest,
	titlefetch.ETOOLARGE:   http.StatusRequestEntityTooLarge,
	titlefetch.ENOTITLE:    http.StatusUnprocessableEntity,
	titlefetch.ENETWORK:    http.StatusBadGateway,
	titlefetch.EIO:         http.StatusBadGateway,
	titlefetch.EINVALID:    http.StatusBadRequest,
	titlefetch.EINTERNAL:   http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for a titlefetch error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
