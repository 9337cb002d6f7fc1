package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"futureself/domain"
	"futureself/repository"
	"futureself/service"
)

func newShareHandler() *ShareHandler {
	return NewShareHandler(service.NewShareService(
		repository.NewShareRepositoryMemory(),
		repository.NewMockCache(),
	))
}

func TestShareHandler_RoundTrip(t *testing.T) {
	handler := newShareHandler()

	inputs := domain.UserInputs{SleepHours: 8, MonthlySavings: 500}
	results := service.NewSimulationService().Run(inputs)
	body, err := json.Marshal(map[string]any{
		"inputs":  inputs,
		"results": results,
		"aiStory": "a story",
	})
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/share", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.Share(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ShareID  string `json:"shareId"`
		ShareURL string `json:"shareUrl"`
	}
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if created.ShareID == "" {
		t.Fatal("expected a share id")
	}
	if !strings.HasSuffix(created.ShareURL, "/share/"+created.ShareID) {
		t.Errorf("unexpected share url: %q", created.ShareURL)
	}

	req = httptest.NewRequest(http.MethodGet, "/share/"+created.ShareID, nil)
	w = httptest.NewRecorder()
	handler.ShareByID(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var shared domain.SharedResult
	if err := json.NewDecoder(w.Body).Decode(&shared); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if shared.Inputs != inputs {
		t.Errorf("inputs did not survive the round trip: %+v", shared.Inputs)
	}
	if shared.AiStory != "a story" {
		t.Errorf("expected story to survive, got %q", shared.AiStory)
	}
	if shared.Results.Finance.FutureValue != results.Finance.FutureValue {
		t.Errorf("results did not survive the round trip: %+v", shared.Results)
	}
}

func TestShareHandler_UnknownIDIs404(t *testing.T) {
	handler := newShareHandler()

	req := httptest.NewRequest(http.MethodGet, "/share/does-not-exist", nil)
	w := httptest.NewRecorder()
	handler.ShareByID(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestShareHandler_MissingInputsIs400(t *testing.T) {
	handler := newShareHandler()

	req := httptest.NewRequest(http.MethodPost, "/share",
		bytes.NewBuffer([]byte(`{"aiStory": "no data"}`)))
	w := httptest.NewRecorder()
	handler.Share(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
