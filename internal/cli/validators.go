package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateDate validates a calendar date argument ("2026-10-02")
func ValidateDate(date string) error {
	if date == "" {
		return fmt.Errorf("date cannot be empty")
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", date)
	}
	return nil
}

// ValidateTripType validates a trip type argument
func ValidateTripType(t string) error {
	normalized := strings.ToLower(t)
	if normalized == models.TripTypeDomestic || normalized == models.TripTypeInternational {
		return nil
	}
	return fmt.Errorf("invalid trip type: %s (must be: domestic or international)", t)
}

// ValidatePriority validates a checklist priority argument
func ValidatePriority(p string) error {
	normalized := strings.ToLower(p)
	switch normalized {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return nil
	}
	return fmt.Errorf("invalid priority: %s (must be: high, medium, or low)", p)
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
