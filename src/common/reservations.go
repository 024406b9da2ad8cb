package common

import (
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

func preloadReservation(tx *gorm.DB) *gorm.DB {
	return tx.Preload("User").Preload("DiningTable")
}

func ListReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.GetDb().
		Scopes(preloadReservation).
		Order("reservation_time asc").
		Find(&reservations).
		Error
	return reservations, err
}

func UserReservations(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.GetDb().
		Scopes(scopes.WithUserID(userID), scopes.Newest).
		Preload("DiningTable").
		Find(&reservations).
		Error
	return reservations, err
}

func GetReservation(id uint) (*models.Reservation, error) {
	return getReservation(db.GetDb(), id)
}

func getReservation(tx *gorm.DB, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := tx.Scopes(scopes.WithID(id), preloadReservation).First(&reservation).Error; err != nil {
		return nil, notFound(err, "reservation")
	}
	return &reservation, nil
}

// checkOverlap rejects r when another non-cancelled reservation holds the same table for an intersecting window.
func checkOverlap(tx *gorm.DB, r *models.Reservation) error {
	if r.Status == types.RESERVATION_CANCELLED {
		return nil
	}
	var others []models.Reservation
	q := tx.Scopes(scopes.OnTable(r.DiningTableID), scopes.NotCancelled)
	if r.ID != 0 {
		q = q.Where("id <> ?", r.ID)
	}
	if err := q.Find(&others).Error; err != nil {
		return err
	}
	for i := range others {
		if r.Overlaps(&others[i]) {
			return types.ErrTableDoubleBooked
		}
	}
	return nil
}

func reserveTable(tx *gorm.DB, tableID uint) error {
	return setTableStatus(tx, tableID, types.TABLE_RESERVED)
}

// releaseTable sets a table back to available unless another active reservation still claims it.
// Occupied tables are left alone.
func releaseTable(tx *gorm.DB, tableID, releasedBy uint, now time.Time) error {
	var table models.DiningTable
	if err := tx.Scopes(scopes.WithID(tableID)).First(&table).Error; err != nil {
		return notFound(err, "dining table")
	}
	if table.Status == types.TABLE_OCCUPIED {
		return nil
	}
	var others []models.Reservation
	if err := tx.
		Scopes(scopes.OnTable(tableID), scopes.NotCancelled).
		Where("id <> ?", releasedBy).
		Find(&others).
		Error; err != nil {
		return err
	}
	status := types.TABLE_AVAILABLE
	for i := range others {
		if others[i].IsActive(now) {
			status = types.TABLE_RESERVED
			break
		}
	}
	if table.Status == status {
		return nil
	}
	return setTableStatus(tx, tableID, status)
}

func CreateReservation(callerID uint, body *types.CreateReservationRequestBody) (*models.Reservation, error) {
	at, err := types.ParseDateTime(body.ReservationTime)
	if err != nil {
		return nil, types.NewValidationError("reservation_time", "The reservation time is not a valid date.")
	}
	reservation := models.Reservation{
		UserID:          callerID,
		DiningTableID:   body.DiningTableID,
		ReservationTime: at,
		DurationMinutes: body.DurationMinutes,
		Status:          types.RESERVATION_PENDING,
		Notes:           body.Notes,
	}
	if body.UserID != 0 {
		reservation.UserID = body.UserID
	}
	if body.Status != "" {
		reservation.Status = body.Status
	}
	var created *models.Reservation
	err = db.GetDb().Transaction(func(tx *gorm.DB) error {
		verr := types.ValidationErrors{}
		ok, err := exists(tx, &models.User{}, reservation.UserID)
		if err != nil {
			return err
		}
		if !ok {
			verr.Add("user_id", "The selected user id is invalid.")
		}
		ok, err = exists(tx, &models.DiningTable{}, reservation.DiningTableID)
		if err != nil {
			return err
		}
		if !ok {
			verr.Add("dining_table_id", "The selected dining table id is invalid.")
		}
		if err := verr.Err(); err != nil {
			return err
		}
		if err := checkOverlap(tx, &reservation); err != nil {
			return err
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}
		if reservation.Status != types.RESERVATION_CANCELLED {
			if err := reserveTable(tx, reservation.DiningTableID); err != nil {
				return err
			}
		}
		created, err = getReservation(tx, reservation.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func UpdateReservation(id uint, body *types.UpdateReservationRequestBody, now time.Time) (*models.Reservation, error) {
	var updated *models.Reservation
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.Scopes(scopes.WithID(id)).First(&reservation).Error; err != nil {
			return notFound(err, "reservation")
		}
		oldTableID := reservation.DiningTableID
		oldStatus := reservation.Status

		verr := types.ValidationErrors{}
		if body.UserID != nil {
			ok, err := exists(tx, &models.User{}, *body.UserID)
			if err != nil {
				return err
			}
			if !ok {
				verr.Add("user_id", "The selected user id is invalid.")
			}
			reservation.UserID = *body.UserID
		}
		if body.DiningTableID != nil {
			ok, err := exists(tx, &models.DiningTable{}, *body.DiningTableID)
			if err != nil {
				return err
			}
			if !ok {
				verr.Add("dining_table_id", "The selected dining table id is invalid.")
			}
			reservation.DiningTableID = *body.DiningTableID
		}
		if body.ReservationTime != nil {
			at, err := types.ParseDateTime(*body.ReservationTime)
			if err != nil {
				verr.Add("reservation_time", "The reservation time is not a valid date.")
			}
			reservation.ReservationTime = at
		}
		if body.DurationMinutes != nil {
			reservation.DurationMinutes = *body.DurationMinutes
		}
		if body.Status != nil {
			reservation.Status = *body.Status
		}
		if body.Notes != nil {
			reservation.Notes = body.Notes
		}
		if err := verr.Err(); err != nil {
			return err
		}
		if err := checkOverlap(tx, &reservation); err != nil {
			return err
		}
		if err := tx.Omit("User", "DiningTable").Save(&reservation).Error; err != nil {
			return err
		}

		tableChanged := oldTableID != reservation.DiningTableID
		statusChanged := oldStatus != reservation.Status
		if tableChanged {
			if err := releaseTable(tx, oldTableID, reservation.ID, now); err != nil {
				return err
			}
		}
		if reservation.Status == types.RESERVATION_CANCELLED {
			if statusChanged && !tableChanged {
				if err := releaseTable(tx, reservation.DiningTableID, reservation.ID, now); err != nil {
					return err
				}
			}
		} else if tableChanged || statusChanged {
			if err := reserveTable(tx, reservation.DiningTableID); err != nil {
				return err
			}
		}
		var err error
		updated, err = getReservation(tx, reservation.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// confirmReservation marks the reservation confirmed and (re)reserves its table.
func confirmReservation(tx *gorm.DB, reservation *models.Reservation) error {
	if reservation.Status == types.RESERVATION_CANCELLED {
		reservation.Status = types.RESERVATION_CONFIRMED
		if err := checkOverlap(tx, reservation); err != nil {
			return err
		}
	}
	reservation.Status = types.RESERVATION_CONFIRMED
	if err := tx.
		Model(&models.Reservation{}).
		Where("id = ?", reservation.ID).
		Update("status", types.RESERVATION_CONFIRMED).
		Error; err != nil {
		return err
	}
	return reserveTable(tx, reservation.DiningTableID)
}

func DeleteReservation(id uint, now time.Time) error {
	return db.GetDb().Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.Scopes(scopes.WithID(id)).First(&reservation).Error; err != nil {
			return notFound(err, "reservation")
		}
		if err := releaseTable(tx, reservation.DiningTableID, reservation.ID, now); err != nil {
			return err
		}
		if err := tx.
			Model(&models.Order{}).
			Where("reservation_id = ?", reservation.ID).
			Update("reservation_id", nil).
			Error; err != nil {
			return err
		}
		return tx.Delete(&reservation).Error
	})
}

// RecomputeTableStatuses derives every table's status from the full reservation set at now.
// A table with an active reservation is reserved, any other table is available.
// Occupied tables are never touched. Returns the number of tables whose status changed.
func RecomputeTableStatuses(now time.Time) (int, error) {
	changed := 0
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var tables []models.DiningTable
		if err := tx.Order("id asc").Find(&tables).Error; err != nil {
			return err
		}
		var reservations []models.Reservation
		if err := tx.Scopes(scopes.NotCancelled).Find(&reservations).Error; err != nil {
			return err
		}
		claimed := make(map[uint]bool, len(tables))
		for i := range reservations {
			if reservations[i].IsActive(now) {
				claimed[reservations[i].DiningTableID] = true
			}
		}
		for _, table := range tables {
			if table.Status == types.TABLE_OCCUPIED {
				continue
			}
			status := types.TABLE_AVAILABLE
			if claimed[table.ID] {
				status = types.TABLE_RESERVED
			}
			if table.Status == status {
				continue
			}
			if err := setTableStatus(tx, table.ID, status); err != nil {
				return fmt.Errorf("table %d: %w", table.ID, err)
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// SweepTableStatuses is the scheduled form of RecomputeTableStatuses.
func SweepTableStatuses() {
	changed, err := RecomputeTableStatuses(time.Now())
	if err != nil {
		log.Printf("[TableStatusSweep] Error recomputing table statuses: %s\n", err.Error())
		return
	}
	if changed > 0 {
		log.Printf("[TableStatusSweep] %d table(s) updated\n", changed)
	}
}
