package absence

import "github.com/iws-manager/iws-backend-go/internal/pkg/validator"

type CreateAbsenceDayRequest struct {
	AbsenceDate   string `json:"absence_date"`
	EmployeeID    int64  `json:"employee_id"`
	AbsenceTypeID int64  `json:"absence_type_id"`
}

func (r *CreateAbsenceDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AbsenceDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_date",
			Message: "absence_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.AbsenceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_date",
			Message: "absence_date must be in YYYY-MM-DD format",
		})
	}

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.AbsenceTypeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type_id",
			Message: "absence_type_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAbsenceDayRequest carries a partial update; nil fields keep the
// stored value.
type UpdateAbsenceDayRequest struct {
	AbsenceDate   *string `json:"absence_date,omitempty"`
	EmployeeID    *int64  `json:"employee_id,omitempty"`
	AbsenceTypeID *int64  `json:"absence_type_id,omitempty"`
}

func (r *UpdateAbsenceDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AbsenceDate != nil {
		if _, ok := validator.IsValidDate(*r.AbsenceDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "absence_date",
				Message: "absence_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EmployeeID != nil && *r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive identifier",
		})
	}

	if r.AbsenceTypeID != nil && *r.AbsenceTypeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type_id",
			Message: "absence_type_id must be a positive identifier",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows absence listings. EmployeeID is required; when several
// optional criteria are present the precedence is date range, then year,
// then absence type.
type Filter struct {
	EmployeeID    int64
	StartDate     *string
	EndDate       *string
	Year          *int
	AbsenceTypeID *int64
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if (f.StartDate == nil) != (f.EndDate == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start and end must be provided together",
		})
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end",
				Message: "end must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Year != nil && (*f.Year < 1 || *f.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a valid calendar year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
