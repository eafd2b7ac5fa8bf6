package services

import (
	"TripMate/config/environment"
	"TripMate/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService is the upstream skeleton generator: it produces the raw
// day-by-day activity list the enrichment pipeline consumes. Only the JSON
// shape is contractual; the engine treats the generator as an external
// collaborator.
type OpenAIService struct {
	Client *openai.Client
}

// NewOpenAIService creates a new instance of OpenAIService
func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		Client: openai.NewClient(environment.GetOpenAIKey()),
	}
}

const skeletonSystemPrompt = `You are a travel planner that returns a structured JSON itinerary. Your response must be a JSON array of days:

[
  {
    "day": 1,
    "summary": "One-line summary of the day",
    "activities": [
      {"time": "09:00", "title": "Activity title", "location": "Place name", "type": "activity"}
    ]
  }
]

Rules:
- "time" is 24h HH:MM.
- "type" is one of: activity, arrival, departure, checkin, checkout, mosque.
- Day 1 starts with an arrival activity; the last day ends with a departure activity and has a hotel checkout before it.
- Do NOT include meals; they are added later.
- Use real, well-known place names for "location".
- Do not add explanations outside the JSON response.`

// GenerateSkeleton asks the model for a raw itinerary for the destination.
func (s *OpenAIService) GenerateSkeleton(ctx context.Context, req models.GenerateRequest) ([]models.Day, error) {
	userPrompt := fmt.Sprintf("Plan a %d-day trip to %s.", req.Days, req.Destination)
	if len(req.Preferences.Interests) > 0 {
		userPrompt += " Interests: " + strings.Join(req.Preferences.Interests, ", ") + "."
	}
	if req.Preferences.Dietary.Halal {
		userPrompt += " The traveler needs prayer-friendly stops where natural."
	}

	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: skeletonSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no valid response received")
	}

	cleanedJSON := cleanJSONResponse(resp.Choices[0].Message.Content)

	var days []models.Day
	if err := json.Unmarshal([]byte(cleanedJSON), &days); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	if len(days) == 0 {
		return nil, errors.New("generator returned an empty itinerary")
	}

	return days, nil
}

func cleanJSONResponse(response string) string {
	// Remove markdown code block markers like ```json and ```
	re := regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	cleaned := re.ReplaceAllString(response, "$1")

	// Trim unnecessary whitespace
	return strings.TrimSpace(cleaned)
}
