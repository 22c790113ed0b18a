package api

import (
	"encoding/json"
	"strings"
)

const redacted = "[REDACTED]"

// maxLoggedBody caps the body text written to the log
const maxLoggedBody = 4096

func isSensitive(field string) bool {
	switch strings.ToLower(field) {
	case "password", "token":
		return true
	}
	return false
}

// redactJSON returns the body for logging with sensitive top-level and
// nested object fields masked. Bodies that are not JSON objects are returned as is.
func redactJSON(data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return truncate(string(data))
	}
	masked, err := json.Marshal(redactValue(v))
	if err != nil {
		return truncate(string(data))
	}
	return truncate(string(masked))
}

func redactValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, inner := range val {
			if isSensitive(k) {
				if inner != nil {
					val[k] = redacted
				}
				continue
			}
			val[k] = redactValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = redactValue(inner)
		}
		return val
	default:
		return v
	}
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "...(truncated)"
}
