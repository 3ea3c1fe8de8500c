package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/scene"
)

// Server handles web requests for the scene generator
type Server struct {
	port      int
	config    scene.Config
	presetDir string // "" = scenes/ or ../scenes/
}

// NewServer creates a new web server generating from the given base config
func NewServer(port int, config scene.Config) *Server {
	return &Server{port: port, config: config}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/scene/stream", s.handleSceneStream)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScene generates a fresh document per request
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	cfg, err := s.parseSceneRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// Each request owns its random source and builder
	doc, err := scene.Generate(cfg, core.NewTimeSource(), core.NopLogger{})
	if err != nil {
		log.Printf("Scene generation failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Generation error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// handleSceneStream streams the generator log as server-sent events while
// the document is generated, then sends the document
func (s *Server) handleSceneStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	cfg, err := s.parseSceneRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	ctx := r.Context()
	consoleChan := make(chan ConsoleMessage, 50)
	resultChan := make(chan generateResult, 1)
	logger := NewWebLogger(r.URL.RawQuery, consoleChan)

	go func() {
		doc, err := scene.Generate(cfg, core.NewTimeSource(), logger)
		// Generate has returned, so no Printf can follow the close
		close(consoleChan)
		resultChan <- generateResult{doc: doc, err: err}
	}()

	messages := consoleChan
	for messages != nil {
		select {
		case msg, ok := <-messages:
			if !ok {
				messages = nil
				continue
			}
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			if err := s.sendSSEEvent(w, "console", string(data)); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}

	result := <-resultChan
	if ctx.Err() != nil {
		return
	}
	if result.err != nil {
		s.sendSSEError(w, fmt.Sprintf("Generation error: %v", result.err))
		return
	}
	s.sendSSEEvent(w, "scene", string(result.doc))
	s.sendSSEEvent(w, "complete", "Generation completed")
}

type generateResult struct {
	doc []byte
	err error
}

// parseSceneRequest picks the base config (server config or ?preset=) and
// applies the grid and seed query parameters to it
func (s *Server) parseSceneRequest(r *http.Request) (scene.Config, error) {
	query := r.URL.Query()

	base := s.config
	if preset := query.Get("preset"); preset != "" {
		// Only bare names; paths would expose the file system
		if strings.ContainsAny(preset, `/\`) || strings.HasSuffix(preset, ".yaml") {
			return scene.Config{}, fmt.Errorf("invalid preset: %s", preset)
		}
		path, err := scene.ResolvePreset(preset, s.presetDir)
		if err != nil {
			return scene.Config{}, err
		}
		// The built-in preset resolves to "" and keeps the server's base config
		if path != "" {
			if base, err = scene.LoadConfig(path); err != nil {
				return scene.Config{}, err
			}
		}
	}

	grid, err := parseIntParam(query, "grid", 0, 1, scene.MaxGridSize)
	if err != nil {
		return scene.Config{}, err
	}
	seed, err := parseInt64Param(query, "seed", 0)
	if err != nil {
		return scene.Config{}, err
	}

	return base.Apply(scene.Overrides{GridSize: grid, Seed: seed})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses an int64 parameter from URL query
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// handleSceneConfig returns the base configuration with validation limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	response := map[string]interface{}{
		"defaults": s.config,
		"limits": map[string]interface{}{
			"grid": map[string]int{
				"min": 1,
				"max": scene.MaxGridSize,
			},
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// handleScenes lists the available presets
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	response, err := scene.ListAllPresets(s.presetDir)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// setSSEHeaders sets the headers for a server-sent event stream
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
