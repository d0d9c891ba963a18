// Package validation collects per-field request validation failures so
// handlers can report every bad field in one response.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Error carries one message per invalid field.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Collector accumulates field errors during request validation.
type Collector struct {
	fields map[string]string
}

func NewCollector() *Collector {
	return &Collector{fields: map[string]string{}}
}

// Add records a failure for a field. The first message per field wins.
func (c *Collector) Add(field, message string) {
	if _, exists := c.fields[field]; !exists {
		c.fields[field] = message
	}
}

// Require adds an error when value is empty.
func (c *Collector) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.Add(field, field+" is required")
	}
}

// OneOf adds an error when value is not among allowed. Empty values are
// ignored; pair with Require for mandatory enums.
func (c *Collector) OneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	c.Add(field, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
}

// Date adds an error when value is not a YYYY-MM-DD calendar date.
func (c *Collector) Date(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		c.Add(field, field+" must be a valid date in YYYY-MM-DD format")
	}
}

// TimeOfDay adds an error when value is not zero-padded 24-hour HH:MM.
// The padded format keeps lexicographic ordering of times correct.
func (c *Collector) TimeOfDay(field, value string) {
	if value == "" {
		return
	}
	if !timePattern.MatchString(value) {
		c.Add(field, field+" must be a time in 24-hour HH:MM format")
	}
}

// Err returns a *Error when any field failed, nil otherwise.
func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}

// FieldErrors extracts the per-field messages when err is a validation
// error, reporting ok=false otherwise.
func FieldErrors(err error) (map[string]string, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
