// Package debugdump writes and reads arbitrary JSON snapshots to disk,
// for dumping a parsed config to a file for offline inspection.
package debugdump

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON marshals value and writes it to file, creating or
// truncating it as needed.
func WriteJSON[T any](value T, file string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

// ReadJSON reads file and unmarshals it into a value of type T.
func ReadJSON[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if err != nil {
		return value, fmt.Errorf("read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("unmarshal %s: %w", file, err)
	}
	return value, nil
}
