package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/loaders"
)

// maxInspectBytes bounds uploaded documents; a 100x100 grid is about 2.5 MB
const maxInspectBytes = 8 << 20

// InspectResponse describes an uploaded scene document
type InspectResponse struct {
	Valid   bool            `json:"valid"`
	Summary loaders.Summary `json:"summary"`
	Error   string          `json:"error,omitempty"`
	Channel string          `json:"channel,omitempty"` // Failing color channel, if any
}

// handleInspect validates a POSTed scene document and returns per-type counts
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "POST a scene document")
		return
	}

	doc, err := loaders.ParseScene(http.MaxBytesReader(w, r.Body, maxInspectBytes))
	if err != nil {
		response := InspectResponse{Valid: false, Error: err.Error()}
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			response.Channel = verr.Channel
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(response)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(InspectResponse{Valid: true, Summary: doc.Summary()})
}
