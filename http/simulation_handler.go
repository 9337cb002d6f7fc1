package http

import (
	"net/http"

	json "github.com/goccy/go-json"

	"futureself/domain"
	"futureself/service"
)

type SimulationHandler struct {
	service *service.SimulationService
}

func NewSimulationHandler(service *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Simulate runs the projection for the posted lifestyle inputs. The engine
// is total, so a well-formed body always yields a 200.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var inputs domain.UserInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	results := h.service.Run(inputs)
	writeJSON(w, http.StatusOK, results)
}
