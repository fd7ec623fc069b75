package services

import (
	"fmt"
	"time"
)

// validISODate checks a form-submitted "YYYY-MM-DD" date.
func validISODate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return nil
}
