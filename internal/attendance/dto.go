package attendance

import (
	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

type RecordDTO struct {
	EmployeeID string    `json:"id_employee" validate:"required,uuid"`
	Date       string    `json:"date" validate:"required"`
	Sessions   []Session `json:"sessions" validate:"dive"`
}

func (d RecordDTO) Validate() *errors.AppError {
	return validation.Merge(validation.Struct(d), dateField("date", d.Date))
}

func (d RecordDTO) record() Record {
	sessions := d.Sessions
	if sessions == nil {
		sessions = []Session{}
	}
	return Record{EmployeeID: d.EmployeeID, Date: d.Date, Sessions: sessions}
}

// UpdateDTO carries the fields a PUT may $set. Absent fields are left alone.
type UpdateDTO struct {
	Date     *string    `json:"date"`
	Sessions *[]Session `json:"sessions" validate:"omitempty,dive"`
}

func (d UpdateDTO) Validate() *errors.AppError {
	var date *errors.AppError
	if d.Date != nil {
		date = dateField("date", *d.Date)
	}
	return validation.Merge(validation.Struct(d), date)
}

func (d UpdateDTO) fields() map[string]interface{} {
	out := map[string]interface{}{}
	if d.Date != nil {
		out["date"] = *d.Date
	}
	if d.Sessions != nil {
		out["sessions"] = *d.Sessions
	}
	return out
}

func dateField(field, value string) *errors.AppError {
	if value != "" && !datatype.IsDate(value) {
		return errors.NewValidationFieldError(field, field+" must use YYYY-MM-DD", errors.ErrCodeInvalidDate)
	}
	return nil
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
