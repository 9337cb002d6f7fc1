package http

import (
	"net/http"

	json "github.com/goccy/go-json"

	"futureself/domain"
	"futureself/service"
)

type StoryHandler struct {
	service *service.StoryService
}

func NewStoryHandler(service *service.StoryService) *StoryHandler {
	return &StoryHandler{service: service}
}

type enrichmentRequest struct {
	Inputs  *domain.UserInputs        `json:"inputs"`
	Results *domain.ProjectionResults `json:"results"`
}

func decodeEnrichmentRequest(w http.ResponseWriter, r *http.Request) (enrichmentRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return enrichmentRequest{}, false
	}

	var req enrichmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return enrichmentRequest{}, false
	}
	if req.Inputs == nil || req.Results == nil {
		http.Error(w, "inputs and results are required", http.StatusBadRequest)
		return enrichmentRequest{}, false
	}
	return req, true
}

// GenerateStory handles POST /story. Enrichment is best-effort: when the
// generator is unavailable the fallback narrative ships with
// aiGenerated=false so the UI can show the projection as partially enriched.
func (h *StoryHandler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEnrichmentRequest(w, r)
	if !ok {
		return
	}

	story, aiGenerated := h.service.GenerateStory(*req.Inputs, *req.Results)
	writeJSON(w, http.StatusOK, map[string]any{
		"story":       story,
		"aiGenerated": aiGenerated,
	})
}

// GenerateSuggestions handles POST /suggestions, same degradation contract
// as GenerateStory.
func (h *StoryHandler) GenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEnrichmentRequest(w, r)
	if !ok {
		return
	}

	suggestions, aiGenerated := h.service.GenerateSuggestions(*req.Inputs, *req.Results)
	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": suggestions,
		"aiGenerated": aiGenerated,
	})
}
