package storage

import (
	"encoding/json"
	"fmt"
	"maps"
)

// ExtensionState is a bag of free-form JSON attributes keyed by name. Values
// stay raw until a consumer asks for them with a concrete type.
type ExtensionState map[string]json.RawMessage

// Set stores v under key after marshalling it to JSON.
func (e *ExtensionState) Set(k string, v any) error {
	if *e == nil {
		*e = ExtensionState{}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal extension %q: %w", k, err)
	}

	(*e)[k] = json.RawMessage(b)
	return nil
}

// Get unmarshals the extension value at key into out.
// Returns (found=false, nil) if not present.
func (e ExtensionState) Get(key string, out any) (bool, error) {
	if e == nil {
		return false, nil
	}

	raw, ok := e[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal extension %q: %w", key, err)
	}
	return true, nil
}

// Raw returns the undecoded value at key.
func (e ExtensionState) Raw(key string) (json.RawMessage, bool) {
	raw, ok := e[key]
	return raw, ok && len(raw) > 0
}

// Delete removes the extension key, if present.
func (e ExtensionState) Delete(key string) {
	if e == nil {
		return
	}
	delete(e, key)
}

// Merge returns a new state holding e overlaid with every key of over.
// Neither input is modified.
func (e ExtensionState) Merge(over ExtensionState) ExtensionState {
	if len(e) == 0 && len(over) == 0 {
		return nil
	}
	out := make(ExtensionState, len(e)+len(over))
	maps.Copy(out, e)
	maps.Copy(out, over)
	return out
}
