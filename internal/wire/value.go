package wire

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Value is a sealed interface over the types the encoder accepts.
type Value interface {
	wireValue()
}

// String is a JSON string.
type String string

func (String) wireValue() {}

// Int is a JSON integer.
type Int int64

func (Int) wireValue() {}

// Bool is a JSON boolean.
type Bool bool

func (Bool) wireValue() {}

// Number is a float written as the shortest decimal that round-trips.
type Number float64

func (Number) wireValue() {}

// Decimal is a float written with at most Places fractional digits,
// rounded half-to-even on the binary value and with trailing zeros trimmed.
type Decimal struct {
	V      float64
	Places int
}

func (Decimal) wireValue() {}

// Array is a JSON array.
type Array []Value

func (Array) wireValue() {}

// Object is a JSON object. Use SortedKeys for deterministic iteration.
type Object map[string]Value

func (Object) wireValue() {}

// Pair is a key-value pair for Object construction.
type Pair struct {
	Key   string
	Value Value
}

// O is shorthand for Pair.
func O(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// NewObject creates an Object from pairs. Later pairs win on duplicate keys.
func NewObject(pairs ...Pair) Object {
	obj := make(Object, len(pairs))
	for _, p := range pairs {
		obj[p.Key] = p.Value
	}
	return obj
}

// SortedKeys returns keys in RFC 8785 order (UTF-16 code units).
// Go's native string order is UTF-8 and differs above U+FFFF.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	return slices.Compare(a16, b16)
}

// FormatNumber renders v as the shortest round-trip decimal without an
// exponent. Negative zero is written as 0.
func FormatNumber(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	return fixNegativeZero(strconv.FormatFloat(v, 'f', -1, 64)), true
}

// FormatDecimal renders v with at most places fractional digits.
func FormatDecimal(v float64, places int) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	s := strconv.FormatFloat(v, 'f', places, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return fixNegativeZero(s), true
}

func fixNegativeZero(s string) string {
	if s == "-0" {
		return "0"
	}
	return s
}
