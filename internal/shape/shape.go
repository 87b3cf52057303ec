// Package shape normalizes driver-ambiguous column values into the API's
// JSON contract in one place. The MySQL text protocol hands DECIMAL columns
// back as strings, boolean flags as 0/1 integers, and folded image URLs as
// a single delimited string; every aggregation result passes through these
// helpers instead of coercing ad hoc at call sites.
package shape

import (
	"database/sql"
	"strings"

	"github.com/spf13/cast"
)

// Decimal converts a driver numeric into a non-negative float64. NULL,
// absent and unparsable values become 0.
func Decimal(v any) float64 {
	f := cast.ToFloat64(unwrap(v))
	if f < 0 {
		return 0
	}
	return f
}

// Count converts a driver integer into an int64, defaulting to 0.
func Count(v any) int64 {
	return cast.ToInt64(unwrap(v))
}

// Flag converts a 0/1 column into a bool.
func Flag(v any) bool {
	return cast.ToBool(unwrap(v))
}

// URLList splits a GROUP_CONCAT image column into its URLs. The result is
// never nil: NULL and empty input yield an empty slice.
func URLList(v any) []string {
	s := cast.ToString(unwrap(v))
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// unwrap reduces sql.Null* wrappers and raw byte slices to plain values so
// cast can take over.
func unwrap(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(t)
	case sql.NullString:
		if !t.Valid {
			return nil
		}
		return t.String
	case sql.NullFloat64:
		if !t.Valid {
			return nil
		}
		return t.Float64
	case sql.NullInt64:
		if !t.Valid {
			return nil
		}
		return t.Int64
	case sql.NullBool:
		if !t.Valid {
			return nil
		}
		return t.Bool
	default:
		return v
	}
}
