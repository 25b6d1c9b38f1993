package calendar

import "github.com/iws-manager/iws-backend-go/internal/pkg/validator"

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	IsFixedDate bool   `json:"is_fixed_date"`
	SequenceNo  *int   `json:"sequence_no,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHolidayRequest struct {
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	IsFixedDate *bool   `json:"is_fixed_date,omitempty"`
	SequenceNo  *int    `json:"sequence_no,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaveSelectionRequest struct {
	StateIDs []int64 `json:"state_ids"`
}

func (r *SaveSelectionRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, id := range r.StateIDs {
		if id <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "state_ids",
				Message: "state_ids must contain positive identifiers",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
