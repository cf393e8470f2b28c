package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "roamio/internal/models/db_models"
)

type ItineraryRepository interface {
	ListByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]dbm.Itinerary, error)
	GetByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error)
	Save(ctx context.Context, itinerary *dbm.Itinerary) error
	Delete(ctx context.Context, itineraryID string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) ListByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_days.day_number ASC")
		}).
		Preload("Days.Activities").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_days.day_number ASC")
		}).
		Preload("Days.Activities").
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

// Save is an upsert by itinerary id. The day and activity trees are
// replaced wholesale inside one transaction: mutations produce complete
// snapshots, so a partial update would only invite drift.
func (r *itineraryRepository) Save(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if itinerary.ID == uuid.Nil {
			itinerary.ID = uuid.New()
		}

		row := dbm.Itinerary{
			BaseModel:   itinerary.BaseModel,
			AccountID:   itinerary.AccountID,
			Destination: itinerary.Destination,
			StartDate:   itinerary.StartDate,
			EndDate:     itinerary.EndDate,
			Budget:      itinerary.Budget,
			Interests:   itinerary.Interests,
			TotalBudget: itinerary.TotalBudget,
			Currency:    itinerary.Currency,
		}
		var existing dbm.Itinerary
		err := tx.First(&existing, "id = ?", itinerary.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&dbm.Itinerary{}).
				Where("id = ?", itinerary.ID).
				Updates(map[string]interface{}{
					"destination":  row.Destination,
					"start_date":   row.StartDate,
					"end_date":     row.EndDate,
					"budget":       row.Budget,
					"interests":    row.Interests,
					"total_budget": row.TotalBudget,
					"currency":     row.Currency,
				}).Error; err != nil {
				return err
			}
		}

		// Wipe the previous materialized tree.
		subDayIDs := tx.Model(&dbm.ItineraryDay{}).
			Select("id").
			Where("itinerary_id = ?", itinerary.ID)
		if err := tx.Unscoped().
			Where("itinerary_day_id IN (?)", subDayIDs).
			Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("itinerary_id = ?", itinerary.ID).
			Delete(&dbm.ItineraryDay{}).Error; err != nil {
			return err
		}

		for i := range itinerary.Days {
			day := &itinerary.Days[i]
			day.ItineraryID = itinerary.ID
			if day.ID == uuid.Nil {
				day.ID = uuid.New()
			}
			dayRow := dbm.ItineraryDay{
				BaseModel:          day.BaseModel,
				ItineraryID:        day.ItineraryID,
				DayNumber:          day.DayNumber,
				Date:               day.Date,
				TotalEstimatedCost: day.TotalEstimatedCost,
				Notes:              day.Notes,
			}
			if err := tx.Create(&dayRow).Error; err != nil {
				return err
			}

			if len(day.Activities) == 0 {
				continue
			}
			acts := make([]dbm.Activity, 0, len(day.Activities))
			for j := range day.Activities {
				act := day.Activities[j]
				act.ItineraryDayID = day.ID
				if act.ID == uuid.Nil {
					act.ID = uuid.New()
				}
				acts = append(acts, act)
			}
			if err := tx.Create(&acts).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *itineraryRepository) Delete(ctx context.Context, itineraryID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subDayIDs := tx.Model(&dbm.ItineraryDay{}).
			Select("id").
			Where("itinerary_id = ?", itineraryID)
		if err := tx.Where("itinerary_day_id IN (?)", subDayIDs).
			Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", itineraryID).
			Delete(&dbm.ItineraryDay{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", itineraryID).
			Delete(&dbm.Itinerary{}).Error
	})
}
