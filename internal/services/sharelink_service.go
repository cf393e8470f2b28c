package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

// maxCompactChars bounds the serialized compact payload. Past it the codec
// gives up on per-day detail and falls back to the minimal summary, keeping
// share URLs short enough for chat clients and QR codes.
const maxCompactChars = 1500

const (
	maxSharedInterests  = 3
	maxSharedActivities = 3
	maxSharedTitle      = 50
	maxSharedLocation   = 40
	maxSharedDate       = 12
)

type ShareLinkServiceInterface interface {
	Encode(itinerary *response_models.ItineraryResponse) (string, error)
	Decode(token string) (*response_models.ItineraryResponse, error)
}

type ShareLinkService struct {
	baseURL string
	logger  *zap.Logger
}

func NewShareLinkService(baseURL string, logger *zap.Logger) ShareLinkServiceInterface {
	return &ShareLinkService{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Short-key payloads. A field absent from the token is reconstructed from
// defaults on decode; nothing here is authoritative beyond display.

type compactActivity struct {
	Time     string `json:"t,omitempty"`
	Title    string `json:"n,omitempty"`
	Location string `json:"l,omitempty"`
	Cost     string `json:"c,omitempty"`
	Category string `json:"cat,omitempty"`
}

type compactDay struct {
	Day        int               `json:"d"`
	Date       string            `json:"dt,omitempty"`
	Cost       string            `json:"c,omitempty"`
	Activities []compactActivity `json:"a,omitempty"`
}

type compactPayload struct {
	Destination string       `json:"d,omitempty"`
	Start       string       `json:"s,omitempty"`
	End         string       `json:"e,omitempty"`
	Budget      string       `json:"b,omitempty"`
	Interests   []string     `json:"i,omitempty"`
	Days        []compactDay `json:"days,omitempty"`
}

type minimalPayload struct {
	Destination string `json:"d,omitempty"`
	Start       string `json:"s,omitempty"`
	End         string `json:"e,omitempty"`
	Budget      string `json:"b,omitempty"`
	DayCount    int    `json:"dc,omitempty"`
	TotalBudget string `json:"tb,omitempty"`
}

// legacyPayload covers tokens minted before key compaction: full field
// names, day list under "days" with long keys.
type legacyPayload struct {
	ID          string                               `json:"id"`
	Destination string                               `json:"destination"`
	StartDate   string                               `json:"startDate"`
	EndDate     string                               `json:"endDate"`
	Preferences *response_models.PreferencesResponse `json:"preferences"`
	Days        []response_models.DayResponse        `json:"days"`
	TotalBudget string                               `json:"totalBudget"`
	Currency    string                               `json:"currency"`
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func budgetCode(budget string) string {
	switch budget {
	case "Budget":
		return "B"
	case "Mid-range":
		return "M"
	case "Luxury":
		return "L"
	}
	return budget
}

func budgetFromCode(code string) string {
	switch code {
	case "B":
		return "Budget"
	case "M":
		return "Mid-range"
	case "L":
		return "Luxury"
	case "":
		return "Mid-range"
	}
	return code
}

// Encode produces `<base>/share/<token>`. The token is the payload JSON,
// percent-encoded, then base64url encoded so it survives a URL path
// segment. This function must never fail outright: any problem drops down
// to an even smaller payload before giving up.
func (s *ShareLinkService) Encode(itinerary *response_models.ItineraryResponse) (string, error) {
	if itinerary == nil {
		return "", utils.ErrInvalidInput
	}

	payload := s.serializePayload(itinerary)
	return fmt.Sprintf("%s/share/%s", s.baseURL, encodeToken(payload)), nil
}

func (s *ShareLinkService) serializePayload(it *response_models.ItineraryResponse) []byte {
	compact := compactPayload{
		Destination: it.Destination,
		Start:       it.StartDate,
		End:         it.EndDate,
		Budget:      budgetCode(it.Preferences.Budget),
	}
	if n := len(it.Preferences.Interests); n > 0 {
		if n > maxSharedInterests {
			n = maxSharedInterests
		}
		compact.Interests = it.Preferences.Interests[:n]
	}
	for _, d := range it.Days {
		day := compactDay{
			Day:  d.Day,
			Date: truncate(d.Date, maxSharedDate),
			Cost: d.TotalEstimatedCost,
		}
		for i, a := range d.Activities {
			if i == maxSharedActivities {
				break
			}
			day.Activities = append(day.Activities, compactActivity{
				Time:     a.Time,
				Title:    truncate(a.Title, maxSharedTitle),
				Location: truncate(a.Location, maxSharedLocation),
				Cost:     a.CostEstimate,
				Category: a.Category,
			})
		}
		compact.Days = append(compact.Days, day)
	}

	if raw, err := json.Marshal(compact); err == nil && len(raw) <= maxCompactChars {
		return raw
	}

	minimal := minimalPayload{
		Destination: it.Destination,
		Start:       it.StartDate,
		End:         it.EndDate,
		Budget:      budgetCode(it.Preferences.Budget),
		DayCount:    len(it.Days),
		TotalBudget: it.TotalBudget,
	}
	if raw, err := json.Marshal(minimal); err == nil {
		return raw
	}

	// Last resort: destination, day count and budget only. Marshalling a
	// flat struct of strings and ints cannot fail, so this path always
	// yields a link.
	s.logger.Warn("share payload fell back to bare summary", zap.String("destination", it.Destination))
	raw, _ := json.Marshal(minimalPayload{
		Destination: it.Destination,
		DayCount:    len(it.Days),
		TotalBudget: it.TotalBudget,
	})
	return raw
}

func encodeToken(payload []byte) string {
	escaped := url.QueryEscape(string(payload))
	return base64.URLEncoding.EncodeToString([]byte(escaped))
}

// Decode reverses Encode, tolerating the older double-escaped token format.
// Any failure comes back as ErrDecodeFailed; callers fall back to the plain
// planning form, never a broken preview.
func (s *ShareLinkService) Decode(token string) (*response_models.ItineraryResponse, error) {
	if token == "" {
		return nil, utils.ErrDecodeFailed
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		if raw, err = base64.RawURLEncoding.DecodeString(token); err != nil {
			return nil, utils.ErrDecodeFailed
		}
	}

	text, err := url.QueryUnescape(string(raw))
	if err != nil {
		return nil, utils.ErrDecodeFailed
	}

	if !json.Valid([]byte(text)) {
		// Older tokens were percent-encoded twice before base64.
		legacy, err := url.QueryUnescape(text)
		if err != nil || !json.Valid([]byte(legacy)) {
			return nil, utils.ErrDecodeFailed
		}
		text = legacy
	}

	itinerary, err := s.reconstruct([]byte(text))
	if err != nil {
		return nil, utils.ErrDecodeFailed
	}
	return itinerary, nil
}

// payloadVariant detection: legacy tokens carry long field names, compact
// tokens a short-key day list, minimal tokens only a numeric day count.
type payloadProbe struct {
	LongDestination string          `json:"destination"`
	Destination     string          `json:"d"`
	Days            json.RawMessage `json:"days"`
	DayCount        int             `json:"dc"`
}

func (s *ShareLinkService) reconstruct(raw []byte) (*response_models.ItineraryResponse, error) {
	var probe payloadProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	switch {
	case probe.LongDestination != "":
		var legacy legacyPayload
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, err
		}
		return reconstructLegacy(&legacy), nil
	case len(probe.Days) > 0:
		var compact compactPayload
		if err := json.Unmarshal(raw, &compact); err != nil {
			return nil, err
		}
		return reconstructCompact(&compact), nil
	default:
		var minimal minimalPayload
		if err := json.Unmarshal(raw, &minimal); err != nil {
			return nil, err
		}
		return reconstructMinimal(&minimal), nil
	}
}

func newPreview(destination string) *response_models.ItineraryResponse {
	if destination == "" {
		destination = "Unknown Destination"
	}
	return &response_models.ItineraryResponse{
		ID:          uuid.New().String(),
		Destination: destination,
		Preferences: response_models.PreferencesResponse{
			Budget:    "Mid-range",
			Interests: []string{},
		},
		Days:        []response_models.DayResponse{},
		TotalBudget: "Contact for details",
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Currency:    "USD",
	}
}

func placeholderDays(count int) []response_models.DayResponse {
	days := make([]response_models.DayResponse, 0, count)
	for i := 1; i <= count; i++ {
		days = append(days, response_models.DayResponse{
			Day:                i,
			Date:               fmt.Sprintf("Day %d", i),
			Activities:         []response_models.ActivityResponse{},
			TotalEstimatedCost: "Varies",
		})
	}
	return days
}

func reconstructCompact(p *compactPayload) *response_models.ItineraryResponse {
	out := newPreview(p.Destination)
	out.StartDate = p.Start
	out.EndDate = p.End
	out.Preferences.Budget = budgetFromCode(p.Budget)
	if p.Interests != nil {
		out.Preferences.Interests = p.Interests
	}
	for _, d := range p.Days {
		day := response_models.DayResponse{
			Day:                d.Day,
			Date:               d.Date,
			Activities:         []response_models.ActivityResponse{},
			TotalEstimatedCost: d.Cost,
		}
		if day.TotalEstimatedCost == "" {
			day.TotalEstimatedCost = "Varies"
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, response_models.ActivityResponse{
				Time:         a.Time,
				Title:        a.Title,
				Location:     a.Location,
				CostEstimate: a.Cost,
				Category:     a.Category,
			})
		}
		out.Days = append(out.Days, day)
	}
	return out
}

func reconstructMinimal(p *minimalPayload) *response_models.ItineraryResponse {
	out := newPreview(p.Destination)
	out.StartDate = p.Start
	out.EndDate = p.End
	out.Preferences.Budget = budgetFromCode(p.Budget)
	if p.TotalBudget != "" {
		out.TotalBudget = p.TotalBudget
	}
	if p.DayCount > 0 {
		out.Days = placeholderDays(p.DayCount)
	}
	return out
}

func reconstructLegacy(p *legacyPayload) *response_models.ItineraryResponse {
	out := newPreview(p.Destination)
	if p.ID != "" {
		out.ID = p.ID
	}
	out.StartDate = p.StartDate
	out.EndDate = p.EndDate
	if p.Preferences != nil {
		out.Preferences.Budget = budgetFromCode(p.Preferences.Budget)
		if p.Preferences.Interests != nil {
			out.Preferences.Interests = p.Preferences.Interests
		}
	}
	if p.Days != nil {
		out.Days = p.Days
	}
	if p.TotalBudget != "" {
		out.TotalBudget = p.TotalBudget
	}
	if p.Currency != "" {
		out.Currency = p.Currency
	}
	return out
}
