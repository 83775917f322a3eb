package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type amountState int

const (
	amountUnset amountState = iota
	amountNumber
	amountInvalid
)

// Amount is a monetary value that distinguishes "no value" (rendered as
// null) from "a number" from "uncoercible input". All coercion of raw
// document or request values goes through ParseAmount, so the rest of the
// code never sees a string-typed price.
type Amount struct {
	state amountState
	value float64
}

func UnsetAmount() Amount {
	return Amount{state: amountUnset}
}

func NumberAmount(v float64) Amount {
	return Amount{state: amountNumber, value: v}
}

func InvalidAmount() Amount {
	return Amount{state: amountInvalid}
}

// ParseAmount coerces a raw value into an Amount. Nil and the empty string
// are unset; numeric types and numeric strings are numbers; everything else,
// including NaN and infinities, is invalid.
func ParseAmount(raw any) Amount {
	switch v := raw.(type) {
	case nil:
		return UnsetAmount()
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case int:
		return NumberAmount(float64(v))
	case int64:
		return NumberAmount(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return InvalidAmount()
		}
		return fromFloat(f)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return UnsetAmount()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return InvalidAmount()
		}
		return fromFloat(f)
	default:
		return InvalidAmount()
	}
}

func fromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return InvalidAmount()
	}
	return NumberAmount(f)
}

func (a Amount) IsSet() bool {
	return a.state == amountNumber
}

func (a Amount) IsInvalid() bool {
	return a.state == amountInvalid
}

// Value returns the numeric value; zero when the amount is not a number.
func (a Amount) Value() float64 {
	if a.state != amountNumber {
		return 0
	}
	return a.value
}

// Ptr returns the value for storage: a number, or nil when unset or invalid.
func (a Amount) Ptr() *float64 {
	if a.state != amountNumber {
		return nil
	}
	v := a.value
	return &v
}

// MarshalJSON renders a number or null. Invalid never survives to output;
// it marshals as null like unset.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.state != amountNumber {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON never fails: uncoercible input becomes an invalid Amount so
// the rejection can happen at the write boundary with a proper validation
// error instead of a generic bind failure.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = InvalidAmount()
		return nil
	}
	*a = ParseAmount(raw)
	return nil
}
