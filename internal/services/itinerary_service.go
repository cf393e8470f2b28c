package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type ItineraryServiceInterface interface {
	ListItineraries(ctx context.Context, accountID string, page int, pageSize int) ([]response_models.ItineraryResponse, error)
	GetItinerary(ctx context.Context, accountID string, itineraryID string) (*response_models.ItineraryResponse, error)
	SaveItinerary(ctx context.Context, accountID string, doc *response_models.ItineraryResponse) (*response_models.ItineraryResponse, error)
	DeleteItinerary(ctx context.Context, accountID string, itineraryID string) error
	UpdateDayNotes(ctx context.Context, accountID string, itineraryID string, dayNumber int, notes string) (*response_models.ItineraryResponse, error)
	ToggleActivity(ctx context.Context, accountID string, itineraryID string, dayNumber int, req request_models.ToggleActivityRequest) (*response_models.ItineraryResponse, error)
	CommitSelection(ctx context.Context, accountID string, itineraryID string, dayNumber int, req request_models.CommitSelectionRequest) (*response_models.ItineraryResponse, error)
	DayActivities(ctx context.Context, accountID string, itineraryID string, dayNumber int, manage bool) ([]response_models.ActivityResponse, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	noteStore     repositories.NoteStore
	logger        *zap.Logger
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	noteStore repositories.NoteStore,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		noteStore:     noteStore,
		logger:        logger,
	}
}

func (s *ItineraryService) loadOwned(ctx context.Context, accountID string, itineraryID string) (*dbm.Itinerary, error) {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.AccountID != nil && itinerary.AccountID.String() != accountID {
		return nil, utils.ErrForbidden
	}
	return itinerary, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, accountID string, page int, pageSize int) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, *response_models.BuildItineraryResponse(&itineraries[i]))
	}
	return out, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, accountID string, itineraryID string) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}
	return response_models.BuildItineraryResponse(itinerary), nil
}

// SaveItinerary is the explicit user save: an upsert keyed by the
// itinerary's id, which stays stable across edits and regenerations.
func (s *ItineraryService) SaveItinerary(ctx context.Context, accountID string, doc *response_models.ItineraryResponse) (*response_models.ItineraryResponse, error) {
	if doc == nil || doc.Destination == "" {
		return nil, utils.ErrInvalidInput
	}

	model := itineraryFromDocument(doc, accountID)

	if model.ID != uuid.Nil {
		existing, err := s.itineraryRepo.GetByID(ctx, model.ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			if existing.AccountID != nil && existing.AccountID.String() != accountID {
				return nil, utils.ErrForbidden
			}
			// createdAt is immutable after creation.
			model.CreatedAt = existing.CreatedAt
		}
	}

	if err := s.itineraryRepo.Save(ctx, model); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildItineraryResponse(model), nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, accountID string, itineraryID string) error {
	if _, err := s.loadOwned(ctx, accountID, itineraryID); err != nil {
		return err
	}
	if err := s.itineraryRepo.Delete(ctx, itineraryID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// UpdateDayNotes persists the local snapshot first, then pushes the note to
// the remote store keyed by day number. The remote write is best-effort: a
// failure is logged and dropped, never rolled back into the snapshot.
func (s *ItineraryService) UpdateDayNotes(ctx context.Context, accountID string, itineraryID string, dayNumber int, notes string) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	updated := setDayNotes(itinerary, dayNumber, notes)
	if err := s.itineraryRepo.Save(ctx, updated); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := s.noteStore.Upsert(ctx, itineraryID, dayNumber, notes); err != nil {
		s.logger.Warn("remote note upsert failed, note kept locally only",
			zap.String("itinerary_id", itineraryID),
			zap.Int("day", dayNumber),
			zap.Error(err))
	}

	return response_models.BuildItineraryResponse(updated), nil
}

func (s *ItineraryService) ToggleActivity(ctx context.Context, accountID string, itineraryID string, dayNumber int, req request_models.ToggleActivityRequest) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	updated := toggleActivity(itinerary, dayNumber, req)
	if err := s.itineraryRepo.Save(ctx, updated); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildItineraryResponse(updated), nil
}

func (s *ItineraryService) CommitSelection(ctx context.Context, accountID string, itineraryID string, dayNumber int, req request_models.CommitSelectionRequest) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	updated := commitSelection(itinerary, dayNumber, req.SelectedActivities)
	if err := s.itineraryRepo.Save(ctx, updated); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildItineraryResponse(updated), nil
}

func (s *ItineraryService) DayActivities(ctx context.Context, accountID string, itineraryID string, dayNumber int, manage bool) ([]response_models.ActivityResponse, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	for i := range itinerary.Days {
		day := &itinerary.Days[i]
		if day.DayNumber != dayNumber {
			continue
		}
		acts := displayActivities(day, manage)
		out := make([]response_models.ActivityResponse, 0, len(acts))
		for _, a := range acts {
			out = append(out, response_models.ActivityResponse{
				ID:           a.ID.String(),
				Time:         a.Time,
				Title:        a.Title,
				Description:  a.Description,
				Location:     a.Location,
				CostEstimate: a.CostEstimate,
				Tips:         a.Tips,
				Category:     a.Category,
				Selected:     a.Selected,
			})
		}
		return out, nil
	}

	return nil, utils.ErrDayNotFound
}

// itineraryFromDocument maps the wire document back onto the storage model.
// Unknown or missing ids get fresh ones; a missing createdAt becomes now.
func itineraryFromDocument(doc *response_models.ItineraryResponse, accountID string) *dbm.Itinerary {
	model := &dbm.Itinerary{
		Destination: doc.Destination,
		StartDate:   doc.StartDate,
		EndDate:     doc.EndDate,
		Budget:      doc.Preferences.Budget,
		Interests:   append([]string(nil), doc.Preferences.Interests...),
		TotalBudget: doc.TotalBudget,
		Currency:    doc.Currency,
	}
	if model.Currency == "" {
		model.Currency = "USD"
	}

	if id, err := uuid.Parse(doc.ID); err == nil {
		model.ID = id
	} else {
		model.ID = uuid.New()
	}
	if acc, err := uuid.Parse(accountID); err == nil {
		model.AccountID = &acc
	}
	if ts, err := time.Parse(time.RFC3339, doc.CreatedAt); err == nil {
		model.CreatedAt = ts.Unix()
	} else {
		model.CreatedAt = time.Now().Unix()
	}

	for _, d := range doc.Days {
		day := dbm.ItineraryDay{
			DayNumber:          d.Day,
			Date:               d.Date,
			TotalEstimatedCost: d.TotalEstimatedCost,
			Notes:              d.Notes,
		}
		for _, a := range d.Activities {
			act := dbm.Activity{
				Time:         a.Time,
				Title:        a.Title,
				Description:  a.Description,
				Location:     a.Location,
				CostEstimate: a.CostEstimate,
				Tips:         a.Tips,
				Category:     a.Category,
				Selected:     a.Selected,
			}
			if id, err := uuid.Parse(a.ID); err == nil {
				act.ID = id
			} else {
				act.ID = uuid.New()
			}
			day.Activities = append(day.Activities, act)
		}
		model.Days = append(model.Days, day)
	}

	return model
}
