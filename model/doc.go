package model

import "time"

// Field accessors for schema-less documents. The store hands values back
// as time.Time, string, bool, int64 or float64 depending on how they were
// written; these normalize without panicking on absent or mistyped fields.

func DocString(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func DocBool(data map[string]interface{}, key string) bool {
	if b, ok := data[key].(bool); ok {
		return b
	}
	return false
}

func DocInt(data map[string]interface{}, key string) int {
	switch n := data[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// DocTime accepts both native timestamps and RFC3339 strings, the two
// shapes deadlines and reminder times appear in.
func DocTime(data map[string]interface{}, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func DocMap(data map[string]interface{}, key string) map[string]interface{} {
	if m, ok := data[key].(map[string]interface{}); ok {
		return m
	}
	return nil
}

func DocSlice(data map[string]interface{}, key string) []interface{} {
	if s, ok := data[key].([]interface{}); ok {
		return s
	}
	return nil
}
