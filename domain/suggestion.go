package domain

// Suggestion is one actionable improvement produced by the enrichment
// collaborator.
type Suggestion struct {
	Category    string `json:"category"`
	Suggestion  string `json:"suggestion"`
	Description string `json:"description"`
}
