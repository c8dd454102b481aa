package bookingform

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError blocks a submit locally; it never reaches the network.
// Messages are keyed by wire field name for inline display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// formValues mirrors Fields with the tags the validator needs.
type formValues struct {
	StudentName string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
}

var validate = validator.New()

// validate checks required fields, the coach requirement for admin sessions
// and the non-empty slot selection.
func (c *Controller) validate() *ValidationError {
	fields := make(map[string]string)

	err := validate.Struct(formValues{
		StudentName: c.fields.StudentName,
		Date:        c.fields.Date,
	})
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.StructField() {
				case "StudentName":
					if fe.Tag() == "required" {
						fields["student_name"] = "student name is required"
					}
				case "Date":
					if fe.Tag() == "required" {
						fields["date"] = "date is required"
					} else {
						fields["date"] = "date must be YYYY-MM-DD"
					}
				}
			}
		}
	}

	// Admins pick the coach explicitly; coach sessions resolve their own.
	if c.sess.IsAdmin() && c.fields.CoachID == 0 {
		fields["coach_id"] = "coach is required"
	}

	if len(c.selected) == 0 {
		fields["time_slots"] = "select at least one time slot"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
