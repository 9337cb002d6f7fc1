package http

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"futureself/domain"
	"futureself/service"
)

type ScenarioHandler struct {
	service *service.ScenarioService
}

func NewScenarioHandler(service *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{service: service}
}

type saveScenarioRequest struct {
	Name    string                    `json:"name"`
	Inputs  *domain.UserInputs        `json:"inputs"`
	Results *domain.ProjectionResults `json:"results"`
	AiStory string                    `json:"aiStory"`
}

// Scenarios handles the /scenarios collection: POST saves a scenario, GET
// lists all of them most recent first.
func (h *ScenarioHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.save(w, r)
	case http.MethodGet:
		h.list(w)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ScenarioHandler) save(w http.ResponseWriter, r *http.Request) {
	var req saveScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.service.Create(req.Name, req.Inputs, req.Results, req.AiStory)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"scenarioId": id,
		"success":    true,
	})
}

func (h *ScenarioHandler) list(w http.ResponseWriter) {
	scenarios, err := h.service.ListAll()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"scenarios": scenarios,
	})
}

// ScenarioByID handles /scenarios/{id}: DELETE removes the scenario.
// Deleting an id twice reports deleted=false the second time.
func (h *ScenarioHandler) ScenarioByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/scenarios/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "invalid scenario id", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.Delete(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"deleted": deleted,
	})
}
