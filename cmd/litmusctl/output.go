package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// print writes v in the selected format. Strings are written as-is so
// manifests can be piped straight to kubectl.
func (a *app) print(v interface{}) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if a.output == "json" {
		_, err = fmt.Fprintln(a.out, string(raw))
		return err
	}

	// Round-trip through JSON so YAML keys match the API's field names.
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return enc.Close()
}
