package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/0xalexb/dotaccess"
	jsonparser "github.com/0xalexb/dotaccess/source/parser/json"
)

// Handler exposes a document over HTTP. The URL path is the key path:
//
//	GET    /a/b   value at a.b as JSON (GET / returns the whole document)
//	HEAD   /a/b   200 when a.b exists, 404 otherwise
//	PUT    /a/b   set a.b to the JSON request body
//	POST   /a/b   append the JSON request body to a.b
//	DELETE /a/b   remove a.b
//
// Requests are serialized with a read/write lock since Data does no locking itself.
type Handler struct {
	mu     sync.RWMutex
	doc    *dotaccess.Data
	config Config
}

// NewHandler creates a Handler serving doc.
func NewHandler(doc *dotaccess.Data, opts ...Option) (*Handler, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	return newHandler(doc, cfg), nil
}

func newHandler(doc *dotaccess.Data, cfg Config) *Handler {
	cfg.SetDefaults()

	return &Handler{
		mu:     sync.RWMutex{},
		doc:    doc,
		config: cfg,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")

	switch r.Method {
	case http.MethodGet:
		h.get(w, path)
	case http.MethodHead:
		h.head(w, path)
	case http.MethodPut, http.MethodPost, http.MethodDelete:
		if h.config.ReadOnly {
			writeError(w, http.StatusMethodNotAllowed, ErrReadOnly)

			return
		}

		h.write(w, r, path)
	default:
		w.Header().Set("Allow", "GET, HEAD, PUT, POST, DELETE")
		writeError(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
	}
}

func (h *Handler) get(w http.ResponseWriter, path string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if path == "" {
		writeJSON(w, http.StatusOK, h.doc)

		return
	}

	v, err := h.doc.Get(path)
	if err != nil {
		writeError(w, statusFor(err), err)

		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) head(w http.ResponseWriter, path string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if path == "" {
		w.WriteHeader(http.StatusOK)

		return
	}

	ok, err := h.doc.Has(path)

	switch {
	case err != nil:
		w.WriteHeader(statusFor(err))
	case ok:
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, path string) {
	var value any

	if r.Method != http.MethodDelete {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes))
		if err != nil {
			writeError(w, bodyErrorStatus(err), err)

			return
		}

		value, err = jsonparser.Decode(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)

			return
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error

	switch r.Method {
	case http.MethodPut:
		err = h.doc.Set(path, value)
	case http.MethodPost:
		err = h.doc.Append(path, value)
	default:
		err = h.doc.Remove(path)
	}

	if err != nil {
		writeError(w, statusFor(err), err)

		return
	}

	slog.Debug("document updated", "method", r.Method, "path", path)
	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dotaccess.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, dotaccess.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, dotaccess.ErrPathBlocked), errors.Is(err, dotaccess.ErrContainerAppend):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(body)
	if err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, _ = w.Write(body)
}

func bodyErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	return http.StatusBadRequest
}
