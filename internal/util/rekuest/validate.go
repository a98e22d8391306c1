package rekuest

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mingpan.dev/backend/internal/pkg/mperr"
	"mingpan.dev/backend/internal/util"
)

var Validate = util.NewValidator()

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func describe(ve validator.ValidationErrors) []*ErrorResponse {
	violations := []*ErrorResponse{}

	for _, fe := range ve {
		violations = append(violations, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Error(),
		})
	}

	return violations
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return describe(errs)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write
// the unmarshalled body to dest and return a nil, otherwise it will return an error.
// Notice that dest shall always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return mperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := validateStruct(dest); err != nil {
		return mperr.NewInvalidViolations(err)
	}

	return nil
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(dest); err != nil {
		return mperr.NewInvalidViolations(err)
	}

	return nil
}
