package validation

import (
	"fmt"
	"sort"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// RuleTag marks errors reported by struct-level rules. The human readable
// message travels as the error's param.
const RuleTag = "rule"

// FieldErrors maps a JSON field name to every message reported for it.
type FieldErrors map[string][]string

// Add appends msg under field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Merge copies all messages of other into fe.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		fe[field] = append(fe[field], msgs...)
	}
}

// Fields returns the offending field names in sorted order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for k := range fe {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Messages holds the user-facing text for tag failures, keyed by
// "field.tag" or by "field" alone for any tag on that field.
type Messages map[string]string

func (m Messages) lookup(field, tag string) (string, bool) {
	if msg, ok := m[field+"."+tag]; ok {
		return msg, true
	}
	msg, ok := m[field]
	return msg, ok
}

// Report records a struct-level rule violation on field.
func Report(sl validatorv10.StructLevel, value interface{}, field, message string) {
	sl.ReportError(value, field, field, RuleTag, message)
}

// ToFieldErrors converts a validator error into FieldErrors. Errors that
// are not validation errors are reported under the "error" key.
func ToFieldErrors(err error, messages Messages) FieldErrors {
	out := FieldErrors{}
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		out.Add("error", err.Error())
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		if fe.Tag() == RuleTag {
			out.Add(field, fe.Param())
			continue
		}
		if msg, ok := messages.lookup(field, fe.Tag()); ok {
			out.Add(field, msg)
			continue
		}
		out.Add(field, defaultMessage(field, fe))
	}
	return out
}

func defaultMessage(field string, fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required!"
	case "oneof":
		return "Invalid " + field + "!"
	case "email":
		return "Invalid email!"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
