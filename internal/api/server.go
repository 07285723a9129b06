package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/radix-trie/internal/dictionary"
)

// Server represents the HTTP API server for the dictionary
type Server struct {
	dict   *dictionary.Service
	server *http.Server
	addr   string
}

// NewServer creates a new API server backed by the given dictionary
func NewServer(addr string, dict *dictionary.Service) *Server {
	s := &Server{
		dict: dict,
		addr: addr,
	}

	r := mux.NewRouter()

	// Request logging middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("Received request")
			next.ServeHTTP(w, r)
		})
	})

	// Word operations
	r.HandleFunc("/words", s.addWords).Methods("POST")
	r.HandleFunc("/words/{word}", s.addWord).Methods("PUT")
	r.HandleFunc("/words/{word}", s.lookupWord).Methods("GET")

	// Sentence queries
	r.HandleFunc("/sentences/{text}", s.lookupSentence).Methods("GET")

	// Dictionary statistics
	r.HandleFunc("/stats", s.stats).Methods("GET")

	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on
func (s *Server) Addr() string {
	return s.addr
}

// Start starts the HTTP server and blocks until the server is shut down
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	log.Info().Str("addr", listener.Addr().String()).Msg("Dictionary server listening")

	if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) addWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	s.dict.Add(word)
	writeJSON(w, http.StatusOK, map[string]string{"word": word})
}

func (s *Server) addWords(w http.ResponseWriter, r *http.Request) {
	var words []string
	if err := json.NewDecoder(r.Body).Decode(&words); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON array of words")
		return
	}
	s.dict.AddAll(words)
	writeJSON(w, http.StatusOK, map[string]int{"added": len(words)})
}

func (s *Server) lookupWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	writeJSON(w, http.StatusOK, map[string]any{
		"word":  word,
		"found": s.dict.IsWord(word),
	})
}

func (s *Server) lookupSentence(w http.ResponseWriter, r *http.Request) {
	text := mux.Vars(r)["text"]
	count := s.dict.PossibleSentences(text)
	writeJSON(w, http.StatusOK, map[string]any{
		"text":     text,
		"sentence": count > 0,
		"count":    count,
	})
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dict.Stats())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
