package serverutils

import (
	"fmt"
	"strings"

	"catalog-chat-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and folds failures into a single
// ValidationError suitable for the error handler.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		reasons := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			reasons = append(reasons, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
		}
		return &apperror.ValidationError{Reason: strings.Join(reasons, "; ")}
	}
	return nil
}
