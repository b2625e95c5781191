package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// clockLayout is the "HH:mm" format used for every time-of-day field.
const clockLayout = "15:04"

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError("%s is required", field)
	}
	return nil
}

// validateClockRange checks optional "HH:mm" start and end values. The end may
// equal the start but not precede it.
func validateClockRange(startField, start, endField, end string) error {
	var s, e time.Time
	var err error
	if start != "" {
		if s, err = time.Parse(clockLayout, start); err != nil {
			return validationError("%s must use HH:mm", startField)
		}
	}
	if end != "" {
		if e, err = time.Parse(clockLayout, end); err != nil {
			return validationError("%s must use HH:mm", endField)
		}
	}
	if start != "" && end != "" && e.Before(s) {
		return validationError("%s must not be before %s", endField, startField)
	}
	return nil
}

// normalizePriority defaults an empty priority to medium and rejects
// unknown labels.
func normalizePriority(p domain.Priority) (domain.Priority, error) {
	if p == "" {
		return domain.PriorityMedium, nil
	}
	if !p.Valid() {
		return "", validationError("priority must be one of %s, %s, %s",
			domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow)
	}
	return p, nil
}
