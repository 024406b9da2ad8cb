package common

import (
	"cafe/src/config"
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"
	"time"

	"gorm.io/gorm"
)

func preloadShift(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Assignments", func(db *gorm.DB) *gorm.DB {
		return db.Order("id asc")
	}).Preload("Assignments.User")
}

func ListShifts() ([]models.Shift, error) {
	var shifts []models.Shift
	err := db.GetDb().Scopes(preloadShift).Order("start_time asc").Find(&shifts).Error
	return shifts, err
}

func GetShift(id uint) (*models.Shift, error) {
	return getShift(db.GetDb(), id)
}

func getShift(tx *gorm.DB, id uint) (*models.Shift, error) {
	var shift models.Shift
	if err := tx.Scopes(scopes.WithID(id), preloadShift).First(&shift).Error; err != nil {
		return nil, notFound(err, "shift")
	}
	return &shift, nil
}

// UserShifts lists the caller's assignments with their shift, by date.
func UserShifts(userID uint) ([]models.ShiftUser, error) {
	var assignments []models.ShiftUser
	err := db.GetDb().
		Scopes(scopes.WithUserID(userID)).
		Preload("Shift").
		Order("shift_date asc").
		Order("id asc").
		Find(&assignments).
		Error
	return assignments, err
}

func checkShiftWindow(start, end string) types.ValidationErrors {
	verr := types.ValidationErrors{}
	s, err := time.Parse(config.SHIFT_TIME_FORMAT, start)
	if err != nil {
		verr.Add("start_time", "The start time must match the format H:i.")
	}
	e, err := time.Parse(config.SHIFT_TIME_FORMAT, end)
	if err != nil {
		verr.Add("end_time", "The end time must match the format H:i.")
	}
	if len(verr) == 0 && !e.After(s) {
		verr.Add("end_time", "The end time must be a time after start time.")
	}
	return verr
}

// buildAssignments validates the users and pairs them with the shift date.
func buildAssignments(tx *gorm.DB, userIDs []uint, shiftDate *string) ([]models.ShiftUser, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	if shiftDate == nil || *shiftDate == "" {
		return nil, types.NewValidationError("shift_date", "The shift date field is required when user ids is present.")
	}
	if _, err := time.Parse(config.SHIFT_DATE_FORMAT, *shiftDate); err != nil {
		return nil, types.NewValidationError("shift_date", "The shift date is not a valid date.")
	}
	seen := make(map[uint]bool, len(userIDs))
	unique := make([]uint, 0, len(userIDs))
	for _, id := range userIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	var count int64
	if err := tx.Model(&models.User{}).Scopes(scopes.WithIDs(unique...)).Count(&count).Error; err != nil {
		return nil, err
	}
	if int(count) != len(unique) {
		return nil, invalidRef("user_ids")
	}
	assignments := make([]models.ShiftUser, 0, len(unique))
	for _, id := range unique {
		date := *shiftDate
		assignments = append(assignments, models.ShiftUser{UserID: id, ShiftDate: &date})
	}
	return assignments, nil
}

func CreateShift(body *types.CreateShiftRequestBody) (*models.Shift, error) {
	if err := checkShiftWindow(body.StartTime, body.EndTime).Err(); err != nil {
		return nil, err
	}
	shift := models.Shift{Name: body.Name, StartTime: body.StartTime, EndTime: body.EndTime}
	var created *models.Shift
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		assignments, err := buildAssignments(tx, body.UserIDs, body.ShiftDate)
		if err != nil {
			return err
		}
		shift.Assignments = assignments
		if err := tx.Create(&shift).Error; err != nil {
			return err
		}
		created, err = getShift(tx, shift.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateShift patches the shift. A user_ids list replaces the assignments; a shift_date alone
// moves the existing assignments to that date.
func UpdateShift(id uint, body *types.UpdateShiftRequestBody) (*models.Shift, error) {
	var updated *models.Shift
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var shift models.Shift
		if err := tx.Scopes(scopes.WithID(id)).First(&shift).Error; err != nil {
			return notFound(err, "shift")
		}
		if body.Name != nil {
			shift.Name = *body.Name
		}
		if body.StartTime != nil {
			shift.StartTime = *body.StartTime
		}
		if body.EndTime != nil {
			shift.EndTime = *body.EndTime
		}
		if err := checkShiftWindow(shift.StartTime, shift.EndTime).Err(); err != nil {
			return err
		}
		if err := tx.Omit("Assignments").Save(&shift).Error; err != nil {
			return err
		}
		switch {
		case body.UserIDs != nil:
			assignments, err := buildAssignments(tx, *body.UserIDs, body.ShiftDate)
			if err != nil {
				return err
			}
			if err := tx.Where("shift_id = ?", shift.ID).Delete(&models.ShiftUser{}).Error; err != nil {
				return err
			}
			for i := range assignments {
				assignments[i].ShiftID = shift.ID
			}
			if len(assignments) > 0 {
				if err := tx.Create(&assignments).Error; err != nil {
					return err
				}
			}
		case body.ShiftDate != nil:
			if _, err := time.Parse(config.SHIFT_DATE_FORMAT, *body.ShiftDate); err != nil {
				return types.NewValidationError("shift_date", "The shift date is not a valid date.")
			}
			if err := tx.
				Model(&models.ShiftUser{}).
				Where("shift_id = ?", shift.ID).
				Update("shift_date", *body.ShiftDate).
				Error; err != nil {
				return err
			}
		}
		var err error
		updated, err = getShift(tx, shift.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func DeleteShift(id uint) error {
	return db.GetDb().Transaction(func(tx *gorm.DB) error {
		var shift models.Shift
		if err := tx.Scopes(scopes.WithID(id)).First(&shift).Error; err != nil {
			return notFound(err, "shift")
		}
		if err := tx.Where("shift_id = ?", shift.ID).Delete(&models.ShiftUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&shift).Error
	})
}
