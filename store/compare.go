package store

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// valuesEqual implements the equality used by the "eq"/"ne"/"in" operators
// and by field diffing. Numeric values compare by value across int and float
// representations, matching the loose typing of records decoded from JSON.
// Non-scalar values fall back to deep equality.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	aNum, aIsNum := toFloat(a)
	bNum, bIsNum := toFloat(b)

	if aIsNum && bIsNum {
		return aNum == bNum
	}

	if aIsNum != bIsNum {
		return false
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv

	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}

	return reflect.DeepEqual(a, b)
}

// compareValues orders two record field values for sorting.
// A nil (or missing) value sorts before any defined value. Two numeric
// values compare numerically, two strings lexicographically, two bools with
// false first. Mixed or non-scalar values compare by their string form so
// that sorting never fails on heterogeneous data.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	aNum, aIsNum := toFloat(a)
	bNum, bIsNum := toFloat(b)

	if aIsNum && bIsNum {
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		default:
			return 0
		}
	}

	aStr, aIsStr := a.(string)
	bStr, bIsStr := b.(string)

	if aIsStr && bIsStr {
		return strings.Compare(aStr, bStr)
	}

	aBool, aIsBool := a.(bool)
	bBool, bIsBool := b.(bool)

	if aIsBool && bIsBool {
		switch {
		case aBool == bBool:
			return 0
		case !aBool:
			return -1
		default:
			return 1
		}
	}

	return strings.Compare(stringify(a), stringify(b))
}

// toFloat normalizes any numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// stringify renders a field value the way the "like" operator sees it.
// Numbers render without a trailing ".0" so that 5 and 5.0 read the same.
func stringify(v any) string {
	if v == nil {
		return ""
	}

	if num, ok := toFloat(v); ok {
		return strconv.FormatFloat(num, 'f', -1, 64)
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}

// lookupKey builds a grouping key for a field value so that tree conversion
// can bucket records by parent id. It uses the same numeric normalization as
// valuesEqual, so an int 1 and a float64 1 address the same parent.
func lookupKey(v any) string {
	if v == nil {
		return "\x00nil"
	}

	if num, ok := toFloat(v); ok {
		return "n:" + strconv.FormatFloat(num, 'f', -1, 64)
	}

	return "s:" + stringify(v)
}
