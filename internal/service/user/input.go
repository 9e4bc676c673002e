package user

import "github.com/readlingo/readlingo-backend/internal/domain"

// UpdateTargetLevelInput holds parameters for the target level update.
type UpdateTargetLevelInput struct {
	TargetLevel domain.Level
}

// Validate validates the update target level input.
// "unknown" is a valid estimator output but not a valid study goal.
func (i UpdateTargetLevelInput) Validate() error {
	var errs []domain.FieldError

	if !i.TargetLevel.IsValid() || i.TargetLevel == domain.LevelUnknown {
		errs = append(errs, domain.FieldError{Field: "target_level", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
