package common

import (
	"cafe/src/types"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, types.ErrNotFound)
	}
	return err
}

func translateWriteError(err error, field string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return types.NewValidationError(field, fmt.Sprintf("The %s has already been taken.", humanize(field)))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return types.NewValidationError(field, "The record is referenced by other records.")
	}
	return err
}

func invalidRef(field string) types.ValidationErrors {
	return types.NewValidationError(field, fmt.Sprintf("The selected %s is invalid.", humanize(field)))
}

func humanize(field string) string {
	b := []byte(field)
	for i := range b {
		if b[i] == '_' {
			b[i] = ' '
		}
	}
	return string(b)
}

// exists checks a referenced row by primary key.
func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
