package cli

import (
	"testing"

	"github.com/tbtb-research/riset/internal/testutil"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	return testutil.ParseJSON(t, output)
}

// JSONData returns the "data" field of a successful JSON response
func JSONData(t *testing.T, output string) interface{} {
	t.Helper()

	result := ParseJSON(t, output)
	if success, _ := result["success"].(bool); !success {
		t.Fatalf("Expected success response, got: %s", output)
	}
	return result["data"]
}

// JSONError returns the "error" object of a failed JSON response
func JSONError(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	result := ParseJSON(t, output)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected error response, got: %s", output)
	}
	return errObj
}
