package sqlite

import (
	"encoding/json"
	"fmt"
)

// encodeRecord renders a record as the JSON body stored in its table row.
func encodeRecord[T any](rec T) (string, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}
	return string(b), nil
}

// decodeRecord parses a stored JSON body back into a record.
func decodeRecord[T any](body string) (T, error) {
	var rec T
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return rec, fmt.Errorf("parsing record body: %w", err)
	}
	return rec, nil
}
