package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"roamio/internal/models/request_models"
	"roamio/pkg/utils"
)

type fakePlanner struct {
	response string
	err      error
	prompts  []string
}

func (f *fakePlanner) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakePlanner) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.NewVector(make([]float32, 1536)), nil
}

const plannerJSON = `{
  "destination": "Lisbon",
  "total_budget": "$400 - $600",
  "days": [
    {
      "day": 1,
      "date": "Sep 1, 2026",
      "total_estimated_cost": "$150",
      "activities": [
        {"time": "9:00 AM - 11:00 AM", "title": "Alfama walking tour", "description": "Old town", "location": "Alfama", "cost_estimate": "$20", "tips": "Wear good shoes", "category": "Culture"},
        {"time": "1:00 PM", "title": "Lunch at Time Out Market", "category": "Food"}
      ]
    },
    {
      "day": 2,
      "date": "Sep 2, 2026",
      "total_estimated_cost": "$120",
      "activities": [
        {"time": "10:00 AM", "title": "Belem tower", "category": "Culture"}
      ]
    }
  ]
}`

func validGenerateRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Destinations: []string{"Lisbon"},
		StartDate:    "2026-09-01",
		EndDate:      "2026-09-02",
		Budget:       "Mid-range",
		Interests:    []string{"Food", "Culture"},
	}
}

func TestGenerateItinerary(t *testing.T) {
	planner := &fakePlanner{response: plannerJSON}
	svc := NewGeneratorService(planner, zap.NewNop())

	got, err := svc.GenerateItinerary(context.Background(), validGenerateRequest())
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", got.Destination)
	assert.Equal(t, "2026-09-01", got.StartDate)
	assert.Equal(t, "$400 - $600", got.TotalBudget)
	assert.Equal(t, "USD", got.Currency)
	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, got.CreatedAt)
	require.Len(t, got.Days, 2)
	require.Len(t, got.Days[0].Activities, 2)
	assert.Equal(t, "Alfama walking tour", got.Days[0].Activities[0].Title)
	assert.NotEmpty(t, got.Days[0].Activities[0].ID, "activities get synthetic ids")

	require.Len(t, planner.prompts, 1)
	assert.Contains(t, planner.prompts[0], "2-day trip")
	assert.Contains(t, planner.prompts[0], "Lisbon")
	assert.Contains(t, planner.prompts[0], "Food, Culture")
}

func TestGenerateItineraryStripsMarkdownFences(t *testing.T) {
	planner := &fakePlanner{response: "```json\n" + plannerJSON + "\n```"}
	svc := NewGeneratorService(planner, zap.NewNop())

	got, err := svc.GenerateItinerary(context.Background(), validGenerateRequest())
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Destination)
}

func TestGenerateItineraryProviderFailure(t *testing.T) {
	planner := &fakePlanner{err: errors.New("rate limited")}
	svc := NewGeneratorService(planner, zap.NewNop())

	_, err := svc.GenerateItinerary(context.Background(), validGenerateRequest())
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGenerateItineraryUnparseableResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"prose", "I'm sorry, I can't plan that trip."},
		{"truncated json", plannerJSON[:len(plannerJSON)/2]},
		{"empty days", `{"destination":"Lisbon","days":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGeneratorService(&fakePlanner{response: tt.response}, zap.NewNop())
			_, err := svc.GenerateItinerary(context.Background(), validGenerateRequest())
			assert.ErrorIs(t, err, utils.ErrGenerationFailed)
		})
	}
}

func TestGenerateItineraryValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request_models.GenerateItineraryRequest)
	}{
		{"no destinations", func(r *request_models.GenerateItineraryRequest) { r.Destinations = nil }},
		{"no interests", func(r *request_models.GenerateItineraryRequest) { r.Interests = nil }},
		{"bad start date", func(r *request_models.GenerateItineraryRequest) { r.StartDate = "01/09/2026" }},
		{"bad end date", func(r *request_models.GenerateItineraryRequest) { r.EndDate = "soon" }},
		{"end before start", func(r *request_models.GenerateItineraryRequest) { r.EndDate = "2026-08-30" }},
		{"end equals start", func(r *request_models.GenerateItineraryRequest) { r.EndDate = "2026-09-01" }},
		{"too long", func(r *request_models.GenerateItineraryRequest) { r.EndDate = "2026-10-15" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &fakePlanner{response: plannerJSON}
			svc := NewGeneratorService(planner, zap.NewNop())

			req := validGenerateRequest()
			tt.mutate(&req)

			_, err := svc.GenerateItinerary(context.Background(), req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
			assert.Empty(t, planner.prompts, "invalid input must never reach the provider")
		})
	}
}

func TestGenerateItineraryCurrencyPassthrough(t *testing.T) {
	planner := &fakePlanner{response: plannerJSON}
	svc := NewGeneratorService(planner, zap.NewNop())

	req := validGenerateRequest()
	req.Currency = "EUR"
	got, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
	assert.True(t, strings.Contains(planner.prompts[0], "EUR"))
}
