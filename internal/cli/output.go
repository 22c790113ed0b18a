package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr at call time
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// idGetter is implemented by every model with an ID
type idGetter interface{ GetID() string }

// Success outputs successful operation result.
// human renders the human-readable form; when nil the data is printed as is.
func (f *OutputFormatter) Success(data interface{}, human func(w io.Writer) error) error {
	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	if f.Quiet {
		f.printIDs(data)
		return nil
	}

	if human != nil {
		return human(f.out())
	}
	return f.prettyPrint(data)
}

// PrintID writes a single ID line for quiet mode; empty IDs are skipped
func (f *OutputFormatter) PrintID(id string) error {
	if id == "" {
		return nil
	}
	_, err := fmt.Fprintln(f.out(), id)
	return err
}

// printIDs writes one ID per line for a model or a slice of models
func (f *OutputFormatter) printIDs(data interface{}) bool {
	if g, ok := data.(idGetter); ok {
		fmt.Fprintln(f.out(), g.GetID())
		return true
	}

	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		item := v.Index(i)
		g, ok := item.Interface().(idGetter)
		if !ok && item.CanAddr() {
			g, ok = item.Addr().Interface().(idGetter)
		}
		if !ok {
			return false
		}
		fmt.Fprintln(f.out(), g.GetID())
	}
	return true
}

// Message outputs a confirmation without data, such as a delete acknowledgment
func (f *OutputFormatter) Message(message string, extra map[string]interface{}) error {
	if f.JSON {
		payload := map[string]interface{}{
			"success": true,
			"message": message,
		}
		for k, v := range extra {
			payload[k] = v
		}
		return json.NewEncoder(f.out()).Encode(payload)
	}
	if f.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(f.out(), "✓ %s\n", message)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.err(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.err(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
