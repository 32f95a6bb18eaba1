package services

import (
	"fmt"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Password length is bounded in bytes by the hasher, not here.
type credentialsInput struct {
	Username string `validate:"required,max=150"`
	Password string `validate:"required"`
}

type auditInput struct {
	Name   string `validate:"required,max=255"`
	Status string `validate:"required,max=255"`
}

type pageInput struct {
	Skip  int `validate:"gte=0"`
	Limit int `validate:"gt=0"`
}

// validateInput runs struct validation and folds any failure into
// common.ErrValidation, keeping the offending field names in the message.
func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" "+fe.Tag())
			}
			return fmt.Errorf("%w: %v", common.ErrValidation, fields)
		}
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}
