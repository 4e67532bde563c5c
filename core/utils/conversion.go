package utils

import "fmt"

// ToString converts various types to string.
// Extraction attributes arrive as numbers, booleans or strings; everything
// funnels through here before entering the model.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		// JSON numbers decode as float64; render integral values without
		// a trailing ".0" so handles and counts stay readable.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
