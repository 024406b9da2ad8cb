package types

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrTableUnavailable   = errors.New("table is not available")
	ErrTableDoubleBooked  = errors.New("table is already reserved for this time")
	ErrInvoiceExists      = errors.New("invoice already exists for this order")
	ErrOrderHasInvoice    = errors.New("order has an invoice and cannot be deleted")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNothingToUpdate    = errors.New("no data provided to update")
	ErrDuplicate          = errors.New("record already exists")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationErrors maps a JSON field name to its failure messages.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for k := range v {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(v[f], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil when nothing was added.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func NewValidationError(field, msg string) ValidationErrors {
	v := ValidationErrors{}
	v.Add(field, msg)
	return v
}
