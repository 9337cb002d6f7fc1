package domain

import "time"

// Scenario is a named projection the user saved for later comparison.
// The id is assigned by the store, never by the caller.
type Scenario struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Inputs    UserInputs        `json:"inputs"`
	Results   ProjectionResults `json:"results"`
	AiStory   string            `json:"aiStory,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// SharedResult is a write-once projection snapshot exposed through an
// unguessable id.
type SharedResult struct {
	ID        string            `json:"id"`
	Inputs    UserInputs        `json:"inputs"`
	Results   ProjectionResults `json:"results"`
	AiStory   string            `json:"aiStory,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
