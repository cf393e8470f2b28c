package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

const maxTripDays = 30

type GeneratorServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
}

type GeneratorService struct {
	planner utils.PlannerClientInterface
	logger  *zap.Logger
}

func NewGeneratorService(planner utils.PlannerClientInterface, logger *zap.Logger) GeneratorServiceInterface {
	return &GeneratorService{
		planner: planner,
		logger:  logger,
	}
}

// generatedItinerary is the JSON contract with the LLM.
type generatedItinerary struct {
	Destination string         `json:"destination"`
	TotalBudget string         `json:"total_budget"`
	Days        []generatedDay `json:"days"`
}

type generatedDay struct {
	Day                int                 `json:"day"`
	Date               string              `json:"date"`
	TotalEstimatedCost string              `json:"total_estimated_cost"`
	Activities         []generatedActivity `json:"activities"`
}

type generatedActivity struct {
	Time         string `json:"time"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	CostEstimate string `json:"cost_estimate"`
	Tips         string `json:"tips"`
	Category     string `json:"category"`
}

// GenerateItinerary validates the form, asks the provider for a full plan
// and returns a fresh itinerary document. Nothing is persisted here; the
// user saves explicitly.
func (g *GeneratorService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	dayCount, err := validateGenerateRequest(&req)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	prompt := buildItineraryPrompt(&req, dayCount)

	content, err := g.planner.GenerateItineraryJSON(ctx, prompt)
	if err != nil {
		g.logger.Error("planner call failed", zap.Error(err))
		return nil, utils.ErrGenerationFailed
	}
	g.logger.Info("planner responded",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("content_bytes", len(content)))

	var plan generatedItinerary
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(content)), &plan); err != nil {
		g.logger.Error("planner returned unparseable payload", zap.Error(err))
		return nil, utils.ErrGenerationFailed
	}
	if len(plan.Days) == 0 {
		return nil, utils.ErrGenerationFailed
	}

	return buildItineraryDocument(&req, &plan), nil
}

func validateGenerateRequest(req *request_models.GenerateItineraryRequest) (int, error) {
	if len(req.Destinations) == 0 || len(req.Interests) == 0 {
		return 0, utils.ErrInvalidInput
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return 0, utils.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return 0, utils.ErrInvalidInput
	}
	if !end.After(start) {
		return 0, utils.ErrInvalidInput
	}

	dayCount := int(end.Sub(start).Hours()/24) + 1
	if dayCount > maxTripDays {
		return 0, utils.ErrInvalidInput
	}
	return dayCount, nil
}

func buildItineraryPrompt(req *request_models.GenerateItineraryRequest, dayCount int) string {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	schema := `
{
  "destination": "string",
  "total_budget": "cost range string",
  "days": [
    {
      "day": 1,
      "date": "display date string",
      "total_estimated_cost": "cost range string",
      "activities": [
        {
          "time": "9:00 AM - 11:00 AM",
          "title": "string",
          "description": "string",
          "location": "string",
          "cost_estimate": "string",
          "tips": "string",
          "category": "Culture|Food|Nature|Adventure|Shopping|Relaxation"
        }
      ]
    }
  ]
}`

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to %s, from %s to %s.\n",
		dayCount, strings.Join(req.Destinations, " and "), req.StartDate, req.EndDate)
	fmt.Fprintf(&b, "Budget level: %s. Interests: %s. Quote all costs in %s.\n",
		req.Budget, strings.Join(req.Interests, ", "), currency)
	b.WriteString("Return JSON only that exactly matches this schema:\n")
	b.WriteString(schema)
	fmt.Fprintf(&b, "\nHard constraints:\n")
	fmt.Fprintf(&b, "- Exactly %d entries in \"days\", day = 1..%d with no gaps.\n", dayCount, dayCount)
	b.WriteString("- 3-5 activities per day with realistic, non-overlapping times formatted like \"9:00 AM\" or \"9:00 AM - 11:00 AM\".\n")
	b.WriteString("- Dates as friendly display strings matching the trip range.\n")
	b.WriteString("Return JSON only. No comments, no markdown.")
	return b.String()
}

func buildItineraryDocument(req *request_models.GenerateItineraryRequest, plan *generatedItinerary) *response_models.ItineraryResponse {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	destination := plan.Destination
	if destination == "" {
		destination = strings.Join(req.Destinations, ", ")
	}

	out := &response_models.ItineraryResponse{
		ID:          uuid.New().String(),
		Destination: destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Preferences: response_models.PreferencesResponse{
			Budget:    req.Budget,
			Interests: append([]string(nil), req.Interests...),
		},
		Days:        make([]response_models.DayResponse, 0, len(plan.Days)),
		TotalBudget: plan.TotalBudget,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Currency:    currency,
	}
	if out.TotalBudget == "" {
		out.TotalBudget = "Varies"
	}

	for _, d := range plan.Days {
		day := response_models.DayResponse{
			Day:                d.Day,
			Date:               d.Date,
			Activities:         make([]response_models.ActivityResponse, 0, len(d.Activities)),
			TotalEstimatedCost: d.TotalEstimatedCost,
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, response_models.ActivityResponse{
				ID:           uuid.New().String(),
				Time:         a.Time,
				Title:        a.Title,
				Description:  a.Description,
				Location:     a.Location,
				CostEstimate: a.CostEstimate,
				Tips:         a.Tips,
				Category:     a.Category,
			})
		}
		out.Days = append(out.Days, day)
	}

	return out
}
