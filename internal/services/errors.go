package services

import (
	"errors"
	"strings"
)

// BaseField marks a validation error that is not attributable to a single
// attribute.
const BaseField = "base"

var ErrNotFound = errors.New("group event not found")

type FieldError struct {
	Field  string
	Detail string
}

// ValidationErrors collects every violated rule for one candidate record.
// Rules never short-circuit; the caller sees the full set at once.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + " " + fe.Detail
	}
	return strings.Join(parts, "; ")
}

func (v ValidationErrors) On(field string) []string {
	var details []string
	for _, fe := range v {
		if fe.Field == field {
			details = append(details, fe.Detail)
		}
	}
	return details
}
