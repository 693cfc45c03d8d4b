package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"carve/generator"
)

// Creator turns a request into a component file.
type Creator interface {
	Create(ctx context.Context, req generator.Request) (*generator.Result, error)
}

type sseClient struct {
	events chan string
}

// Server lets editor integrations hand over a selection over HTTP and
// follow created components as Server-Sent Events.
type Server struct {
	Port       int
	creator    Creator
	clients    sync.Map
	eventChan  chan string
	httpServer *http.Server
	once       sync.Once
}

type createRequest struct {
	Name      string `json:"name"`
	Selection string `json:"selection"`
}

type createResponse struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	UtilCreated bool   `json:"util_created"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewServer(creator Creator, port int) *Server {
	return &Server{
		Port:      port,
		creator:   creator,
		clients:   sync.Map{},
		eventChan: make(chan string, 16),
	}
}

// NotifyCreated queues an event for every connected client. Events are
// dropped when the queue is full.
func (s *Server) NotifyCreated(path string) {
	select {
	case s.eventChan <- "created " + path:
	default:
		slog.Debug("Event queue full, dropping event", "path", path)
	}
}

func (s *Server) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := &sseClient{events: make(chan string, 8)}
	s.clients.Store(client, struct{}{})
	defer s.clients.Delete(client)

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-client.events:
			fmt.Fprintf(w, "data: %s\n\n", ev)
			flusher.Flush()
		}
	}
}

func (s *Server) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	res, err := s.creator.Create(r.Context(), generator.Request{
		Name:      body.Name,
		Selection: body.Selection,
		Origin:    "http " + r.RemoteAddr,
	})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.Error("Component creation failed", "name", body.Name, "error", err)
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	s.NotifyCreated(res.Path)
	writeJSON(w, http.StatusCreated, createResponse{Name: res.Name, Path: res.Path, UtilCreated: res.UtilCreated})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, generator.ErrNameMissing),
		errors.Is(err, generator.ErrInvalidName),
		errors.Is(err, generator.ErrSelectionMissing):
		return http.StatusBadRequest
	case errors.Is(err, generator.ErrFileExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("Failed to write response", "error", err)
	}
}

func (s *Server) startBroadcaster() {
	for ev := range s.eventChan {
		s.clients.Range(func(key, _ any) bool {
			client := key.(*sseClient)
			select {
			case client.events <- ev:
			default:
			}
			return true
		})
	}
}

// Handler returns the HTTP routes and starts the event broadcaster.
func (s *Server) Handler() http.Handler {
	s.once.Do(func() { go s.startBroadcaster() })

	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.HandleSSE)
	mux.HandleFunc("/components", s.HandleCreate)
	return mux
}

func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Accepting components on http://localhost:%d/components\n", s.Port)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown() error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}
