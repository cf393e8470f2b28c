package services

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

const testShareBase = "https://roamio.test"

func newTestShareService() ShareLinkServiceInterface {
	return NewShareLinkService(testShareBase, zap.NewNop())
}

func sampleItinerary() *response_models.ItineraryResponse {
	return &response_models.ItineraryResponse{
		ID:          "7b5a2c6e-9a1f-48a8-b9a4-3f1f4c0d2e11",
		Destination: "Lisbon",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-03",
		Preferences: response_models.PreferencesResponse{
			Budget:    "Mid-range",
			Interests: []string{"Food", "Culture"},
		},
		Days: []response_models.DayResponse{
			{
				Day:                1,
				Date:               "Sep 1, 2026",
				TotalEstimatedCost: "$120",
				Activities: []response_models.ActivityResponse{
					{Time: "9:00 AM", Title: "Alfama walking tour", Location: "Alfama", CostEstimate: "$20", Category: "Culture"},
					{Time: "1:00 PM", Title: "Time Out Market lunch", Location: "Cais do Sodre", CostEstimate: "$25", Category: "Food"},
				},
			},
			{
				Day:                2,
				Date:               "Sep 2, 2026",
				TotalEstimatedCost: "$150",
				Activities: []response_models.ActivityResponse{
					{Time: "10:00 AM", Title: "Belem tower", Location: "Belem", CostEstimate: "$10", Category: "Culture"},
				},
			},
		},
		TotalBudget: "$500 - $700",
		CreatedAt:   "2026-08-29T10:00:00Z",
		Currency:    "USD",
	}
}

func tokenFromURL(t *testing.T, link string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(link, testShareBase+"/share/"), "unexpected link %q", link)
	return strings.TrimPrefix(link, testShareBase+"/share/")
}

func TestShareLinkRoundTrip(t *testing.T) {
	svc := newTestShareService()
	src := sampleItinerary()

	link, err := svc.Encode(src)
	require.NoError(t, err)

	got, err := svc.Decode(tokenFromURL(t, link))
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", got.Destination)
	assert.Equal(t, "2026-09-01", got.StartDate)
	assert.Equal(t, "2026-09-03", got.EndDate)
	assert.Equal(t, "Mid-range", got.Preferences.Budget)
	assert.Equal(t, []string{"Food", "Culture"}, got.Preferences.Interests)
	assert.Equal(t, "USD", got.Currency)
	require.Len(t, got.Days, 2)
	assert.Equal(t, "$120", got.Days[0].TotalEstimatedCost)
	require.Len(t, got.Days[0].Activities, 2)
	assert.Equal(t, "Alfama walking tour", got.Days[0].Activities[0].Title)
	assert.Equal(t, "9:00 AM", got.Days[0].Activities[0].Time)
	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestShareLinkTruncation(t *testing.T) {
	svc := newTestShareService()
	src := sampleItinerary()
	src.Preferences.Interests = []string{"Food", "Culture", "Nature", "Adventure", "Shopping"}
	longTitle := strings.Repeat("x", 80)
	src.Days[0].Activities = []response_models.ActivityResponse{
		{Time: "8:00 AM", Title: longTitle},
		{Time: "10:00 AM", Title: "b"},
		{Time: "12:00 PM", Title: "c"},
		{Time: "2:00 PM", Title: "dropped"},
		{Time: "4:00 PM", Title: "dropped too"},
	}

	link, err := svc.Encode(src)
	require.NoError(t, err)
	got, err := svc.Decode(tokenFromURL(t, link))
	require.NoError(t, err)

	assert.Len(t, got.Preferences.Interests, maxSharedInterests)
	require.Len(t, got.Days[0].Activities, maxSharedActivities)
	assert.Len(t, got.Days[0].Activities[0].Title, maxSharedTitle)
}

func TestShareLinkOversizedFallsBackToMinimal(t *testing.T) {
	svc := newTestShareService()
	src := sampleItinerary()
	src.Days = nil
	for i := 1; i <= 20; i++ {
		day := response_models.DayResponse{
			Day:                i,
			Date:               fmt.Sprintf("Sep %d, 2026", i),
			TotalEstimatedCost: "$100",
		}
		for j := 0; j < 3; j++ {
			day.Activities = append(day.Activities, response_models.ActivityResponse{
				Time:     "9:00 AM",
				Title:    strings.Repeat("long activity title ", 3),
				Location: strings.Repeat("somewhere far away ", 2),
			})
		}
		src.Days = append(src.Days, day)
	}

	link, err := svc.Encode(src)
	require.NoError(t, err)

	token := tokenFromURL(t, link)
	assert.Less(t, len(token), maxCompactChars*2, "minimal fallback should stay small")

	got, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Destination)
	require.Len(t, got.Days, 20, "day count survives as placeholders")
	assert.Equal(t, "Day 1", got.Days[0].Date)
	assert.Equal(t, "Varies", got.Days[0].TotalEstimatedCost)
	assert.Empty(t, got.Days[0].Activities)
	assert.Equal(t, "$500 - $700", got.TotalBudget)
}

func TestShareLinkBudgetCodes(t *testing.T) {
	tests := []struct {
		budget string
		want   string
	}{
		{"Budget", "Budget"},
		{"Mid-range", "Mid-range"},
		{"Luxury", "Luxury"},
		{"", "Mid-range"},
		{"Moderate", "Moderate"},
	}
	svc := newTestShareService()
	for _, tt := range tests {
		t.Run("budget "+tt.budget, func(t *testing.T) {
			src := sampleItinerary()
			src.Preferences.Budget = tt.budget

			link, err := svc.Encode(src)
			require.NoError(t, err)
			got, err := svc.Decode(tokenFromURL(t, link))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Preferences.Budget)
		})
	}
}

func TestDecodeLegacyDoubleEscapedToken(t *testing.T) {
	svc := newTestShareService()
	legacyJSON := `{"id":"legacy-1","destination":"Kyoto","startDate":"2025-04-01","endDate":"2025-04-03",` +
		`"preferences":{"budget":"L","interests":["Temples"]},` +
		`"days":[{"day":1,"date":"Apr 1","activities":[{"time":"9:00 AM","title":"Fushimi Inari"}],"totalEstimatedCost":"$80"}],` +
		`"totalBudget":"$900","currency":"JPY"}`
	token := base64.URLEncoding.EncodeToString([]byte(url.QueryEscape(url.QueryEscape(legacyJSON))))

	got, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "legacy-1", got.ID)
	assert.Equal(t, "Kyoto", got.Destination)
	assert.Equal(t, "Luxury", got.Preferences.Budget)
	assert.Equal(t, "JPY", got.Currency)
	require.Len(t, got.Days, 1)
	assert.Equal(t, "Fushimi Inari", got.Days[0].Activities[0].Title)
}

func TestDecodeRawBase64Token(t *testing.T) {
	svc := newTestShareService()
	minimalJSON := `{"d":"Oslo","dc":2}`
	token := base64.RawURLEncoding.EncodeToString([]byte(url.QueryEscape(minimalJSON)))

	got, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "Oslo", got.Destination)
	assert.Len(t, got.Days, 2)
}

func TestDecodeDefaultsForSparseToken(t *testing.T) {
	svc := newTestShareService()
	token := base64.URLEncoding.EncodeToString([]byte(url.QueryEscape(`{}`)))

	got, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Destination", got.Destination)
	assert.Equal(t, "Mid-range", got.Preferences.Budget)
	assert.Equal(t, "Contact for details", got.TotalBudget)
	assert.Equal(t, "USD", got.Currency)
	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, got.CreatedAt)
	assert.Empty(t, got.Days)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	svc := newTestShareService()
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64", "%%%not-base64%%%"},
		{"base64 of non-json", base64.URLEncoding.EncodeToString([]byte("still not json"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Decode(tt.token)
			assert.ErrorIs(t, err, utils.ErrDecodeFailed)
		})
	}
}

func TestEncodeNilItinerary(t *testing.T) {
	svc := newTestShareService()
	_, err := svc.Encode(nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
