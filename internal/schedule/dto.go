package schedule

import (
	"sort"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

type ScheduleDTO struct {
	EmployeeID   string `json:"id_employee" validate:"required,uuid"`
	WorkSchedule Week   `json:"workSchedule"`
}

func (d ScheduleDTO) Validate() *errors.AppError {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return checkWeek(d.WorkSchedule)
}

// UpdateDTO replaces the weekly plan of an existing schedule.
type UpdateDTO struct {
	WorkSchedule *Week `json:"workSchedule" validate:"required"`
}

func (d UpdateDTO) Validate() *errors.AppError {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return checkWeek(*d.WorkSchedule)
}

// checkWeek needs well-formed clocks, so it runs after the tag rules pass.
func checkWeek(w Week) *errors.AppError {
	days := w.Days()
	if len(days) == 0 {
		return errors.NewValidationFieldError("workSchedule", "workSchedule must set at least one day", errors.ErrCodeValidationFailed)
	}

	names := make([]string, 0, len(days))
	for name := range days {
		names = append(names, name)
	}
	sort.Strings(names)

	v := validation.NewValidator()
	for _, name := range names {
		shift := days[name]
		field := "workSchedule." + name + ".end"
		v.Field(field, shift).Custom(func(interface{}) *errors.AppError {
			if shift.End <= shift.Start {
				return errors.NewValidationFieldError(field, field+" must be after start", errors.ErrCodeValidationFailed)
			}
			return nil
		})
	}
	return v.Validate()
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
