package todos

import (
	"errors"
	"strings"
	"time"
)

// ValidateTitle validates the todo title
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}
	return nil
}

// ValidateExpiry validates the expiry timestamp
func ValidateExpiry(expiry *time.Time) error {
	if expiry == nil || expiry.IsZero() {
		return errors.New("expiry is required")
	}
	return nil
}

// ValidatePercent validates a completion percentage
func ValidatePercent(percent int) error {
	if percent < 0 || percent > 100 {
		return errors.New("percentComplete must be between 0 and 100")
	}
	return nil
}

// ValidateCreateTodo validates all fields in CreateTodoRequest
func ValidateCreateTodo(req *CreateTodoRequest) error {
	if err := ValidateTitle(req.Title); err != nil {
		return err
	}
	if err := ValidateExpiry(req.Expiry); err != nil {
		return err
	}
	if req.PercentComplete != nil {
		if err := ValidatePercent(*req.PercentComplete); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpdateTodo validates all fields in UpdateTodoRequest
func ValidateUpdateTodo(req *UpdateTodoRequest) error {
	if err := ValidateTitle(req.Title); err != nil {
		return err
	}
	if err := ValidateExpiry(req.Expiry); err != nil {
		return err
	}
	if req.PercentComplete != nil {
		if err := ValidatePercent(*req.PercentComplete); err != nil {
			return err
		}
	}
	return nil
}
