// Package validate implements the declarative field validator used by
// every entity service. Each entity declares a fixed []Rule table; Check
// interprets the table against the raw field values and reports every
// violation at once. There is no rule DSL to parse at call time.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind is the expected type of a field value.
type Kind int

const (
	// Any accepts whatever type the field carries; Min/Max still apply
	// (length for strings, value bound for numbers).
	Any Kind = iota
	String
	Numeric
	Integer
	Date
	Email
)

// Rule describes the constraints of a single field. Min and Max mean
// string length for String/Email fields and a value bound for
// Numeric/Integer fields. Nil means unbounded.
type Rule struct {
	Field    string
	Required bool
	Kind     Kind
	Min      *float64
	Max      *float64
}

// N is a convenience for declaring Min/Max bounds in rule tables.
func N(v float64) *float64 { return &v }

// Values holds the raw field values of a request, keyed by wire name.
type Values map[string]any

// Violations maps a field name to the list of messages for every rule it
// violated.
type Violations map[string][]string

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dateLayouts covers the formats the API accepts for date and datetime
// fields, matching what the MySQL DATE/DATETIME columns store.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Check evaluates every rule against vals and returns the full violation
// map. An empty map means the input is valid. Unlike the consistency
// checks, validation never stops at the first failure.
func Check(vals Values, rules []Rule) Violations {
	out := Violations{}
	for _, r := range rules {
		for _, msg := range checkRule(vals, r) {
			out[r.Field] = append(out[r.Field], msg)
		}
	}
	return out
}

func checkRule(vals Values, r Rule) []string {
	v, ok := vals[r.Field]
	if !ok || v == nil || isEmptyString(v) {
		if r.Required {
			return []string{fmt.Sprintf("O campo %s é obrigatório.", r.Field)}
		}
		// Optional and absent: nothing else to check.
		return nil
	}

	var msgs []string
	switch r.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return []string{fmt.Sprintf("O campo %s deve ser um texto.", r.Field)}
		}
		msgs = append(msgs, checkLength(r, s)...)
	case Email:
		s, ok := v.(string)
		if !ok || !emailRe.MatchString(s) {
			return []string{fmt.Sprintf("O campo %s deve ser um e-mail válido.", r.Field)}
		}
		msgs = append(msgs, checkLength(r, s)...)
	case Numeric:
		n, ok := toNumber(v)
		if !ok {
			return []string{fmt.Sprintf("O campo %s deve ser um número.", r.Field)}
		}
		msgs = append(msgs, checkBounds(r, n)...)
	case Integer:
		n, ok := toNumber(v)
		if !ok || n != float64(int64(n)) {
			return []string{fmt.Sprintf("O campo %s deve ser um número inteiro.", r.Field)}
		}
		msgs = append(msgs, checkBounds(r, n)...)
	case Date:
		s, ok := v.(string)
		if !ok || !isDate(s) {
			return []string{fmt.Sprintf("O campo %s deve ser uma data válida.", r.Field)}
		}
	case Any:
		if s, ok := v.(string); ok {
			msgs = append(msgs, checkLength(r, s)...)
		} else if n, ok := toNumber(v); ok {
			msgs = append(msgs, checkBounds(r, n)...)
		}
	}
	return msgs
}

func checkLength(r Rule, s string) []string {
	var msgs []string
	n := float64(len([]rune(s)))
	if r.Min != nil && n < *r.Min {
		msgs = append(msgs, fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres.", r.Field, fnum(*r.Min)))
	}
	if r.Max != nil && n > *r.Max {
		msgs = append(msgs, fmt.Sprintf("O campo %s deve ter no máximo %s caracteres.", r.Field, fnum(*r.Max)))
	}
	return msgs
}

func checkBounds(r Rule, n float64) []string {
	var msgs []string
	if r.Min != nil && n < *r.Min {
		msgs = append(msgs, fmt.Sprintf("O campo %s deve ser no mínimo %s.", r.Field, fnum(*r.Min)))
	}
	if r.Max != nil && n > *r.Max {
		msgs = append(msgs, fmt.Sprintf("O campo %s deve ser no máximo %s.", r.Field, fnum(*r.Max)))
	}
	return msgs
}

func isEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return n, err == nil
	}
	return 0, false
}

func isDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
