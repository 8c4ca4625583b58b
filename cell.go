package gviz

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// rawValueSentinel stands in for a date cell's "v" while the rest of the
// cell is encoded as ordinary JSON. The quoted sentinel is then spliced out
// for the raw literal. The splice matches the full `"v":"…"` pair, whose
// quotes would be escaped inside any encoded string field, and takes the
// last occurrence so that a structural "v" key nested in the opaque p
// payload cannot match first.
const rawValueSentinel = "::gviz::raw::v::"

// encodeCell serializes one cell under the column's declared type. It
// returns the cached wire fragment and the display string used by Preview.
func encodeCell(ct ColumnType, c Cell, loc *time.Location) (frag, disp string, err error) {
	m := make(map[string]any, 3)

	var fstr string
	hasF := false
	if c.F != nil {
		s, err := cast.ToStringE(c.F)
		if err != nil {
			return "", "", fmt.Errorf("%w: formatted value is not string-coercible: %v", ErrSchema, err)
		}
		m["f"] = s
		fstr = s
		hasF = true
	}
	if c.P != nil {
		if _, err := marshalJSON(c.P); err != nil {
			return "", "", fmt.Errorf("%w: p failed to serialize: %v", ErrSchema, err)
		}
		m["p"] = c.P
	}

	// raw holds the non-JSON literal for date-typed values. Empty when "v"
	// is ordinary JSON.
	var raw string
	switch {
	case c.V == nil:
		m["v"] = nil
	case ct == Boolean:
		m["v"] = truthy(c.V)
	case ct == Number:
		n, err := toNumber(c.V)
		if err != nil {
			return "", "", err
		}
		m["v"] = n
	case ct == String:
		s, err := cast.ToStringE(c.V)
		if err != nil {
			return "", "", fmt.Errorf("%w: cannot coerce %T to a string", ErrEncoding, c.V)
		}
		m["v"] = s
	default: // date, datetime, timeofday
		digits, err := resolveDigits(ct, c.V, loc)
		if err != nil {
			return "", "", err
		}
		raw = dateLiteral(ct, digits)
		m["v"] = rawValueSentinel
	}

	frag, err = marshalJSON(m)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if raw != "" {
		// Splice at the last occurrence: keys come out sorted (f < p < v),
		// so the cell's own "v" is always the final match even when an
		// opaque p payload carries a "v" key holding the sentinel text.
		needle := `"v":"` + rawValueSentinel + `"`
		i := strings.LastIndex(frag, needle)
		frag = frag[:i] + `"v":` + raw + frag[i+len(needle):]
	}

	switch {
	case hasF:
		disp = fstr
	case raw != "":
		disp = raw
	default:
		disp, _ = marshalJSON(m["v"])
	}
	return frag, disp, nil
}

// truthy implements the boolean column's total coercion: bool as itself,
// strings by non-emptiness, numerics by comparison with zero, anything else
// non-nil is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f != 0
	}
	return true
}

// toNumber yields a value that marshals as a bare JSON numeral. Native
// numerics and json.Number pass through exactly; everything else goes
// through cast, so numeric strings like "15.6" become the numeral 15.6.
func toNumber(v any) (any, error) {
	switch x := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return x, nil
	case string:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not numeric", ErrEncoding, x)
		}
		return f, nil
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot coerce %T to a number", ErrEncoding, v)
		}
		return f, nil
	}
}

// resolveDigits resolves a date-typed value to its ordered digit list.
// Priority: an explicit integer list is used verbatim (no slicing; the
// caller supplies correct count and order for the declared type); a bare
// number is epoch seconds decomposed in loc; a time.Time or an RFC 3339
// string is decomposed in its own location. Decomposed clocks are sliced
// per type by sliceDigits.
func resolveDigits(ct ColumnType, v any, loc *time.Location) ([]int, error) {
	switch x := v.(type) {
	case []int:
		out := make([]int, len(x))
		copy(out, x)
		return out, nil
	case []any:
		out := make([]int, len(x))
		for i, e := range x {
			n, err := cast.ToIntE(e)
			if err != nil {
				return nil, fmt.Errorf("%w: digit list element %d: %v", ErrEncoding, i, err)
			}
			// cast truncates floats; digits must be integral.
			if f, ferr := cast.ToFloat64E(e); ferr == nil && f != float64(n) {
				return nil, fmt.Errorf("%w: digit list element %d: %v is not an integer", ErrEncoding, i, e)
			}
			out[i] = n
		}
		return out, nil
	case time.Time:
		return sliceDigits(ct, clockDigits(x)), nil
	case *time.Time:
		if x == nil {
			return nil, fmt.Errorf("%w: unrecognized date source: nil *time.Time", ErrEncoding)
		}
		return sliceDigits(ct, clockDigits(*x)), nil
	case string:
		ts, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return nil, fmt.Errorf("%w: unrecognized date source %q", ErrEncoding, x)
		}
		return sliceDigits(ct, clockDigits(ts)), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		// Epoch seconds; fractional seconds truncate.
		sec, err := cast.ToInt64E(x)
		if err != nil {
			return nil, fmt.Errorf("%w: unrecognized date source %T", ErrEncoding, v)
		}
		return sliceDigits(ct, clockDigits(time.Unix(sec, 0).In(loc))), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized date source %T", ErrEncoding, v)
	}
}

// clockDigits breaks a wall clock into the full 6-digit tuple (full
// calendar year, zero-based month, day, hour, minute, second), plus a
// milliseconds digit when the instant has sub-second precision.
func clockDigits(t time.Time) []int {
	y, mo, d := t.Date()
	digits := []int{y, int(mo) - 1, d, t.Hour(), t.Minute(), t.Second()}
	if ns := t.Nanosecond(); ns != 0 {
		digits = append(digits, ns/1e6)
	}
	return digits
}

// sliceDigits trims a decomposed 6-7 digit tuple to the declared type's
// slice: date keeps the first three and datetime the first six. The
// timeofday slice keeps only the hour and the final digit, reproducing the
// upstream wire behavior; pass an explicit digit list for full control.
func sliceDigits(ct ColumnType, digits []int) []int {
	switch ct {
	case Date:
		return digits[:3]
	case DateTime:
		return digits[:6]
	default: // TimeOfDay
		return []int{digits[3], digits[len(digits)-1]}
	}
}

// dateLiteral renders the raw literal form: a bracketed integer list for
// timeofday, a Date constructor call otherwise.
func dateLiteral(ct ColumnType, digits []int) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(d)
	}
	if ct == TimeOfDay {
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "new Date( " + strings.Join(parts, ", ") + " )"
}
