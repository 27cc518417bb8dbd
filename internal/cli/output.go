package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result.
// Quiet mode prints only the id when data has one.
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.JSONSuccess(data)
	}

	return f.prettyPrint(data)
}

// JSONSuccess writes the {"success":true,"data":...} envelope
func (f *OutputFormatter) JSONSuccess(data any) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Warn prints a notice to stderr; JSON and quiet stdout stay clean
func (f *OutputFormatter) Warn(message string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", message)
}

func (f *OutputFormatter) prettyPrint(data any) error {
	fmt.Printf("%+v\n", data)
	return nil
}
