package utils

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

// CoerceInt converts loosely typed input to an integer the way a form
// field would be read: numbers are truncated, strings use their leading
// integer ("12kg" is 12) and anything else, including "abc", null and
// booleans, becomes 0.
func CoerceInt(v interface{}) int64 {
	switch val := v.(type) {
	case nil, bool:
		return 0
	case string:
		return parseLeadingInt(val)
	case json.Number:
		return parseLeadingInt(val.String())
	case float64:
		return truncate(val)
	case float32:
		return truncate(float64(val))
	}

	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0
	}
	return n
}

func parseLeadingInt(s string) int64 {
	digits := leadingInt.FindString(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(digits), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func truncate(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Trunc(f))
}

// LenientInt is an integer that accepts any JSON value, coerced with CoerceInt
type LenientInt int64

func (n *LenientInt) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		*n = 0
		return nil
	}
	*n = LenientInt(CoerceInt(v))
	return nil
}

// Int64 returns the plain integer value
func (n LenientInt) Int64() int64 {
	return int64(n)
}
