package service

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"futureself/domain"
)

// StoryService enriches numeric projections with generated narrative and
// suggestions. It is strictly optional: when the API key is missing or a
// call fails, deterministic fallback text is returned and the caller is told
// the content was not AI-generated. Enrichment failure never blocks the
// numeric projection.
type StoryService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type openAIRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// NewStoryService creates a StoryService. An empty apiKey disables the
// external call and pins every response to the fallback text.
func NewStoryService(apiKey string) *StoryService {
	return &StoryService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		model:   "gpt-4o-mini",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateStory produces a second-person narrative about the user's life 25
// years out. The boolean reports whether the text came from the model or
// from the deterministic fallback.
func (s *StoryService) GenerateStory(
	inputs domain.UserInputs,
	results domain.ProjectionResults,
) (string, bool) {
	if !s.enabled {
		return s.fallbackStory(results), false
	}

	healthStr := fmt.Sprintf("%.1f years life expectancy impact", results.Health.LifeExpectancyChange)
	if results.Health.LifeExpectancyChange > 0 {
		healthStr = fmt.Sprintf("+%.1f years life expectancy", results.Health.LifeExpectancyChange)
	}

	prompt := fmt.Sprintf(`You are a creative storyteller. Based on the following life projection data, write a compelling, personalized story about this person's future self in 25 years. Make it engaging, realistic, and inspiring while incorporating the specific data points.

Current Lifestyle:
- Sleep: %.1f hours per night
- Diet: %s
- Exercise: %s
- Commute: %s
- Screen time: %.1f hours per day
- Monthly savings: $%.0f

Projections for 25 years from now:
- Health: %s
- Climate: %.1f tons CO2 annually, equivalent to %d trees needed to offset
- Financial: $%d total savings

Write a 200-300 word story in second person ("You are...") that paints a vivid picture of their life. Include specific details about their health, environmental impact, and financial situation. Make it personal and inspiring, showing how their current choices shaped their future. End with a reflection on the journey.`,
		inputs.SleepHours, inputs.DietType, inputs.ExerciseFrequency,
		inputs.CommuteType, inputs.ScreenTime, inputs.MonthlySavings,
		healthStr, results.Climate.AnnualCO2Footprint,
		results.Climate.TreesEquivalent, results.Finance.FutureValue)

	story, err := s.callLLM(prompt, 500)
	if err != nil {
		log.Printf("Error calling AI service for story: %v", err)
		return s.fallbackStory(results), false
	}
	return story, true
}

// GenerateSuggestions produces actionable improvement suggestions ordered by
// impact. The boolean reports whether they came from the model.
func (s *StoryService) GenerateSuggestions(
	inputs domain.UserInputs,
	results domain.ProjectionResults,
) ([]domain.Suggestion, bool) {
	if !s.enabled {
		return fallbackSuggestions(), false
	}

	prompt := fmt.Sprintf(`Based on this person's lifestyle and future projections, provide 5 specific, actionable improvement suggestions. Be encouraging and practical.

Lifestyle:
- Sleep: %.1f hours/night
- Diet: %s
- Exercise: %s
- Commute: %s
- Screen time: %.1f hours/day
- Monthly savings: $%.0f

Projections:
- Life expectancy change: %.1f years
- Annual CO2 footprint: %.1f tons
- Future savings value: $%d

Format as a JSON array of objects with "category" (Health/Climate/Finance/Lifestyle), "suggestion" (brief title), and "description" (detailed actionable advice). Focus on the biggest impact improvements first.`,
		inputs.SleepHours, inputs.DietType, inputs.ExerciseFrequency,
		inputs.CommuteType, inputs.ScreenTime, inputs.MonthlySavings,
		results.Health.LifeExpectancyChange,
		results.Climate.AnnualCO2Footprint, results.Finance.FutureValue)

	raw, err := s.callLLM(prompt, 1024)
	if err != nil {
		log.Printf("Error calling AI service for suggestions: %v", err)
		return fallbackSuggestions(), false
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		log.Printf("Warning: unparseable suggestions payload, using fallback: %v", err)
		return fallbackSuggestions(), false
	}
	return suggestions, true
}

func (s *StoryService) callLLM(prompt string, maxTokens int) (string, error) {
	reqBody := openAIRequest{
		Model: s.model,
		Messages: []message{
			{
				Role:    "system",
				Content: "You are a thoughtful lifestyle coach. You turn health, climate and financial projections into clear, encouraging prose for a general audience. You never invent numbers; you only use the figures you are given.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var aiResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&aiResp); err != nil {
		return "", err
	}
	if len(aiResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}
	return aiResp.Choices[0].Message.Content, nil
}

// parseSuggestions decodes the model output, tolerating a markdown code
// fence around the JSON array.
func parseSuggestions(raw string) ([]domain.Suggestion, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	var suggestions []domain.Suggestion
	if err := json.Unmarshal([]byte(trimmed), &suggestions); err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("empty suggestion list")
	}
	return suggestions, nil
}

func (s *StoryService) fallbackStory(results domain.ProjectionResults) string {
	healthStr := fmt.Sprintf("shortened it by %.1f years", -results.Health.LifeExpectancyChange)
	if results.Health.LifeExpectancyChange >= 0 {
		healthStr = fmt.Sprintf("added %.1f years to it", results.Health.LifeExpectancyChange)
	}
	return fmt.Sprintf(
		"Twenty-five years from now, the choices you make today have compounded. Your habits have %s, with %.1f healthy years gained along the way. Your annual footprint of %.1f tons of CO2 works out to %.1f tons %s the US average. Steady saving has grown into $%d, of which $%d is interest your money earned on its own. The journey was built one ordinary day at a time.",
		healthStr,
		results.Health.HealthyYearsGained,
		results.Climate.AnnualCO2Footprint,
		absFloat(results.Climate.CarbonSaved),
		belowOrAbove(results.Climate.CarbonSaved),
		results.Finance.FutureValue,
		results.Finance.InterestEarned,
	)
}

func fallbackSuggestions() []domain.Suggestion {
	return []domain.Suggestion{
		{
			Category:    "Health",
			Suggestion:  "Optimize Your Sleep",
			Description: "Based on your current sleep pattern, consider adjusting your bedtime routine for better health outcomes.",
		},
		{
			Category:    "Climate",
			Suggestion:  "Reduce Carbon Footprint",
			Description: "Small changes in your commute and daily habits can significantly impact your environmental footprint.",
		},
		{
			Category:    "Finance",
			Suggestion:  "Boost Your Savings",
			Description: "Consider increasing your monthly savings rate to maximize compound growth over time.",
		},
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func belowOrAbove(saved float64) string {
	if saved < 0 {
		return "above"
	}
	return "below"
}
