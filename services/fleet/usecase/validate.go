package usecase

import (
	"github.com/riderlink/riderlink/internal/utils"
	"github.com/riderlink/riderlink/services/fleet"
)

// checkInput runs struct validation and converts failures into the
// service's ValidationError. Returns nil when req is valid.
func checkInput(req interface{}) error {
	if fields := utils.ValidateStruct(req); fields != nil {
		return &fleet.ValidationError{Fields: fields}
	}
	return nil
}
