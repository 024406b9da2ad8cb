package common

import (
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"

	"gorm.io/gorm"
)

func ListStaffProfiles() ([]models.StaffProfile, error) {
	var profiles []models.StaffProfile
	err := db.GetDb().Preload("User").Order("id asc").Find(&profiles).Error
	return profiles, err
}

func GetStaffProfile(id uint) (*models.StaffProfile, error) {
	var profile models.StaffProfile
	if err := db.GetDb().Scopes(scopes.WithID(id)).Preload("User").First(&profile).Error; err != nil {
		return nil, notFound(err, "staff profile")
	}
	return &profile, nil
}

// ListStaffUsers returns users holding the employee role with their staff profile, if any.
func ListStaffUsers() ([]models.User, error) {
	var users []models.User
	tx := db.GetDb()
	err := tx.
		Where("role_id IN (?)", tx.Model(&models.Role{}).Select("id").Where("name = ?", types.ROLE_EMPLOYEE)).
		Preload("Role").
		Preload("StaffProfile").
		Order("name asc").
		Find(&users).
		Error
	return users, err
}

func checkStaffUser(tx *gorm.DB, userID, profileID uint) error {
	ok, err := exists(tx, &models.User{}, userID)
	if err != nil {
		return err
	}
	if !ok {
		return invalidRef("user_id")
	}
	var count int64
	q := tx.Model(&models.StaffProfile{}).Where("user_id = ?", userID)
	if profileID != 0 {
		q = q.Where("id <> ?", profileID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return types.NewValidationError("user_id", "The user id has already been taken.")
	}
	return nil
}

func CreateStaffProfile(body *types.CreateStaffProfileRequestBody) (*models.StaffProfile, error) {
	profile := models.StaffProfile{
		UserID:    body.UserID,
		Position:  body.Position,
		Salary:    *body.Salary,
		ShiftTime: body.ShiftTime,
	}
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := checkStaffUser(tx, profile.UserID, 0); err != nil {
			return err
		}
		return translateWriteError(tx.Create(&profile).Error, "user_id")
	})
	if err != nil {
		return nil, err
	}
	return GetStaffProfile(profile.ID)
}

func UpdateStaffProfile(id uint, body *types.UpdateStaffProfileRequestBody) (*models.StaffProfile, error) {
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var profile models.StaffProfile
		if err := tx.Scopes(scopes.WithID(id)).First(&profile).Error; err != nil {
			return notFound(err, "staff profile")
		}
		if body.UserID != nil && *body.UserID != profile.UserID {
			if err := checkStaffUser(tx, *body.UserID, profile.ID); err != nil {
				return err
			}
			profile.UserID = *body.UserID
		}
		if body.Position != nil {
			profile.Position = *body.Position
		}
		if body.Salary != nil {
			profile.Salary = *body.Salary
		}
		if body.ShiftTime != nil {
			profile.ShiftTime = *body.ShiftTime
		}
		return translateWriteError(tx.Omit("User").Save(&profile).Error, "user_id")
	})
	if err != nil {
		return nil, err
	}
	return GetStaffProfile(id)
}

func DeleteStaffProfile(id uint) error {
	return deleteByID(&models.StaffProfile{}, id, "staff profile", "id")
}
