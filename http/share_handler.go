package http

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"futureself/domain"
	"futureself/service"
)

type ShareHandler struct {
	service *service.ShareService
}

func NewShareHandler(service *service.ShareService) *ShareHandler {
	return &ShareHandler{service: service}
}

type shareRequest struct {
	Inputs  *domain.UserInputs        `json:"inputs"`
	Results *domain.ProjectionResults `json:"results"`
	AiStory string                    `json:"aiStory"`
}

// Share handles POST /share: persists a write-once snapshot and returns the
// opaque id plus a ready-to-use link.
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.service.Create(req.Inputs, req.Results, req.AiStory)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"shareId":  id,
		"shareUrl": scheme + "://" + r.Host + "/share/" + id,
	})
}

// ShareByID handles GET /share/{id}. A stale or mistyped id is a routine
// 404, not a server error.
func (h *ShareHandler) ShareByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/share/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "invalid share id", http.StatusBadRequest)
		return
	}

	result, err := h.service.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
