package extrahours

import (
	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

type EntryDTO struct {
	EmployeeID string `json:"id_employee" validate:"required,uuid"`
	Date       string `json:"date" validate:"required"`
	Start      string `json:"start" validate:"required,clockseconds"`
	End        string `json:"end" validate:"required,clockseconds"`
}

func (d EntryDTO) Validate() *errors.AppError {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return validation.Merge(dateField(d.Date), window(d.Start, d.End))
}

func (d EntryDTO) entry() Entry {
	return Entry{EmployeeID: d.EmployeeID, Date: d.Date, Start: d.Start, End: d.End}
}

// UpdateDTO sets the window of an existing entry. Absent fields are kept.
type UpdateDTO struct {
	Start *string `json:"start" validate:"omitempty,clockseconds"`
	End   *string `json:"end" validate:"omitempty,clockseconds"`
}

func (d UpdateDTO) Validate() *errors.AppError {
	if err := validation.Struct(d); err != nil {
		return err
	}
	if d.Start == nil && d.End == nil {
		return errors.NewValidationError("no fields to update", errors.ErrCodeInvalidBody)
	}
	return nil
}

func (d UpdateDTO) merge(e Entry) Entry {
	if d.Start != nil {
		e.Start = *d.Start
	}
	if d.End != nil {
		e.End = *d.End
	}
	return e
}

func dateField(value string) *errors.AppError {
	if !datatype.IsDate(value) {
		return errors.NewValidationFieldError("date", "date must use YYYY-MM-DD", errors.ErrCodeInvalidDate)
	}
	return nil
}

// window compares zero-padded clocks, which order like strings.
func window(start, end string) *errors.AppError {
	if end <= start {
		return errors.NewValidationFieldError("end", "end must be after start", errors.ErrCodeValidationFailed)
	}
	return nil
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
