package validation

import (
	"errors"
	"fmt"
	"testing"
)

// TestCollector_NoErrors tests the clean path
func TestCollector_NoErrors(t *testing.T) {
	v := NewCollector()
	v.Require("name", "John")
	v.OneOf("gender", "male", "male", "female", "other")
	v.Date("dob", "1980-01-01")
	v.TimeOfDay("time", "09:30")

	if err := v.Err(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

// TestCollector_FirstMessagePerFieldWins tests message precedence
func TestCollector_FirstMessagePerFieldWins(t *testing.T) {
	v := NewCollector()
	v.Require("gender", "")
	v.OneOf("gender", "", "male", "female", "other")
	v.Add("gender", "later message")

	err := v.Err()
	fields, ok := FieldErrors(err)
	if !ok {
		t.Fatalf("Expected validation error, got: %v", err)
	}
	if fields["gender"] != "gender is required" {
		t.Errorf("Expected first message to win, got: %s", fields["gender"])
	}
}

// TestCollector_OneOfIgnoresEmpty tests that optional enums pass when
// absent.
func TestCollector_OneOfIgnoresEmpty(t *testing.T) {
	v := NewCollector()
	v.OneOf("bloodGroup", "", "A+", "O+")
	if err := v.Err(); err != nil {
		t.Errorf("Expected empty optional enum to pass, got: %v", err)
	}
}

// TestDate tests the calendar date check
func TestDate(t *testing.T) {
	bad := []string{"1980-13-01", "1980-02-30", "01/01/1980", "yesterday"}
	for _, value := range bad {
		v := NewCollector()
		v.Date("dob", value)
		if v.Err() == nil {
			t.Errorf("Expected '%s' to be rejected", value)
		}
	}

	v := NewCollector()
	v.Date("dob", "2000-02-29")
	if err := v.Err(); err != nil {
		t.Errorf("Expected leap day to pass, got: %v", err)
	}
}

// TestTimeOfDay tests the zero-padded 24-hour format
func TestTimeOfDay(t *testing.T) {
	bad := []string{"9:00", "09:60", "24:00", "0900", "09:00:00"}
	for _, value := range bad {
		v := NewCollector()
		v.TimeOfDay("time", value)
		if v.Err() == nil {
			t.Errorf("Expected '%s' to be rejected", value)
		}
	}

	good := []string{"00:00", "09:05", "23:59"}
	for _, value := range good {
		v := NewCollector()
		v.TimeOfDay("time", value)
		if err := v.Err(); err != nil {
			t.Errorf("Expected '%s' to pass, got: %v", value, err)
		}
	}
}

// TestFieldErrors_NonValidationError tests the miss case
func TestFieldErrors_NonValidationError(t *testing.T) {
	if _, ok := FieldErrors(errors.New("database down")); ok {
		t.Error("Expected plain errors not to report field errors")
	}
}

// TestFieldErrors_Wrapped tests extraction through error wrapping
func TestFieldErrors_Wrapped(t *testing.T) {
	v := NewCollector()
	v.Require("name", "")
	wrapped := fmt.Errorf("creating patient: %w", v.Err())

	fields, ok := FieldErrors(wrapped)
	if !ok || fields["name"] == "" {
		t.Errorf("Expected field errors through wrapping, got: %v", wrapped)
	}
}
