package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a numeric request-body field. The original API accepted
// numbers both bare and as quoted strings ("duracao": "136"), so the
// decoder keeps whatever arrived and leaves judging it to the field
// rules: a non-numeric string becomes a field violation, not a failed
// bind.
type Number struct {
	val float64
	raw string
	ok  bool
	set bool
}

// Num builds a present, parsed Number.
func Num(v float64) Number {
	return Number{val: v, ok: true, set: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	n.set = true
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		n.val, n.ok = f, true
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.raw = s
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		n.val, n.ok = f, true
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	if !n.ok {
		return json.Marshal(n.raw)
	}
	return json.Marshal(n.val)
}

// Present reports whether the field appeared in the request body.
func (n Number) Present() bool { return n.set }

// Float returns the parsed value; zero when the field held no number.
func (n Number) Float() float64 { return n.val }

// fieldValue is what the rule tables see: the parsed number when the
// field held one, otherwise the raw string so the Numeric rule rejects
// it with the proper message.
func (n Number) fieldValue() any {
	if n.ok {
		return n.val
	}
	return n.raw
}
