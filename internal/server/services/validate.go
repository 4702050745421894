package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct-tag validation and folds the result into a
// single common.ErrValidation with a readable message.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	var missing, problems []string
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			missing = append(missing, field)
		case "oneof":
			problems = append(problems, fmt.Sprintf("invalid %s (want one of: %s)", field, fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("invalid %s", field))
		}
	}

	if len(missing) > 0 {
		problems = append([]string{"missing fields: " + strings.Join(missing, ", ")}, problems...)
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(problems, "; "))
}
