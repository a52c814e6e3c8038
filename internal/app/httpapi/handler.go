package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	app "github.com/pabakn/Astro-Destiny/internal/app"
	"github.com/pabakn/Astro-Destiny/internal/app/api"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/contact"
	"github.com/pabakn/Astro-Destiny/internal/app/metrics"
	"github.com/pabakn/Astro-Destiny/internal/app/storage"
	"github.com/pabakn/Astro-Destiny/internal/logging"
	"github.com/pabakn/Astro-Destiny/internal/middleware"
)

const (
	contactAckMessage  = "Query received and email sent (mock)."
	postNotFoundMsg    = "Post not found"
	internalErrorMsg   = "Internal Server Error"
	chatFailureMessage = "Failed to communicate with the spirits (AI error)."
)

// Config tunes optional handler behaviour.
type Config struct {
	// StaticDir serves the SPA bundle for non-API paths when non-empty.
	StaticDir string

	// ChatLimiter throttles the chat endpoint when non-nil.
	ChatLimiter *middleware.RateLimiter

	// AuditLogPath appends request records as JSONL when non-empty.
	AuditLogPath string
}

// handler bundles HTTP endpoints for the application services.
type handler struct {
	app   *app.Application
	log   *logging.Logger
	audit *auditLog
}

// NewHandler returns a router exposing the REST API declared in the api
// contract, plus /healthz, /metrics, and static serving.
func NewHandler(application *app.Application, log *logging.Logger, cfg Config) (http.Handler, error) {
	if log == nil {
		log = logging.NewDefault("httpapi")
	}

	var sink auditSink
	if cfg.AuditLogPath != "" {
		fileSink, err := newFileAuditSink(cfg.AuditLogPath)
		if err != nil {
			return nil, err
		}
		sink = fileSink
	}

	h := &handler{
		app:   application,
		log:   log,
		audit: newAuditLog(0, sink),
	}

	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware())
	r.Use(h.auditMiddleware)

	r.HandleFunc(api.CreateContact.Path, h.createContact).Methods(api.CreateContact.Method)
	r.HandleFunc(api.ListPosts.Path, h.listPosts).Methods(api.ListPosts.Method)
	r.HandleFunc(api.GetPost.Path, h.getPost).Methods(api.GetPost.Method)
	r.HandleFunc(api.ListHoroscopes.Path, h.listHoroscopes).Methods(api.ListHoroscopes.Method)

	var chatHandler http.Handler = http.HandlerFunc(h.sendChat)
	if cfg.ChatLimiter != nil {
		chatHandler = cfg.ChatLimiter.Handler(chatHandler)
	}
	r.Handle(api.SendChat.Path, chatHandler).Methods(api.SendChat.Method)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	if cfg.StaticDir != "" {
		r.PathPrefix("/").Handler(spaHandler{dir: cfg.StaticDir})
	}

	return r, nil
}

func (h *handler) createContact(w http.ResponseWriter, r *http.Request) {
	in := api.CreateContact.NewInput()
	if err := decodeJSON(r.Body, in); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	ins := in.(*contact.Insert)
	if _, err := h.app.Contacts.Create(r.Context(), *ins); err != nil {
		h.log.WithError(err).Error("create contact failed")
		writeMessage(w, http.StatusInternalServerError, internalErrorMsg)
		return
	}
	writeMessage(w, http.StatusCreated, contactAckMessage)
}

func (h *handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.app.Blog.List(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list posts failed")
		writeMessage(w, http.StatusInternalServerError, internalErrorMsg)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, postNotFoundMsg)
		return
	}

	post, err := h.app.Blog.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, postNotFoundMsg)
		return
	}
	if err != nil {
		h.log.WithError(err).Error("get post failed")
		writeMessage(w, http.StatusInternalServerError, internalErrorMsg)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *handler) listHoroscopes(w http.ResponseWriter, r *http.Request) {
	horoscopes, err := h.app.Horoscopes.List(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list horoscopes failed")
		writeMessage(w, http.StatusInternalServerError, internalErrorMsg)
		return
	}
	writeJSON(w, http.StatusOK, horoscopes)
}

func (h *handler) sendChat(w http.ResponseWriter, r *http.Request) {
	in := api.SendChat.NewInput()
	if err := decodeJSON(r.Body, in); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.app.Chat == nil {
		writeMessage(w, http.StatusInternalServerError, chatFailureMessage)
		return
	}

	req := in.(*api.ChatRequest)
	reply, err := h.app.Chat.Send(r.Context(), req.Message)
	if err != nil {
		// Provider detail stays in the server log only.
		h.log.WithError(err).Error("chat relay failed")
		metrics.RecordChatRelay("error")
		writeMessage(w, http.StatusInternalServerError, chatFailureMessage)
		return
	}
	metrics.RecordChatRelay("ok")
	writeJSON(w, http.StatusOK, api.ChatResponse{Response: reply})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// spaHandler serves the front-end bundle, falling back to index.html for
// client-side routes.
type spaHandler struct {
	dir string
}

func (s spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.dir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.dir, "index.html"))
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.Message{Message: msg})
}

func (h *handler) auditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.audit.add(auditEntry{
			Time:       time.Now().UTC(),
			Method:     r.Method,
			Path:       r.URL.Path,
			Status:     rec.status,
			RemoteAddr: r.RemoteAddr,
			UserAgent:  r.UserAgent(),
		})
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
