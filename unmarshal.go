package jsonh

import "encoding/json"

// Unmarshal parses a single JSONH element from data and stores the result
// in v. It follows the same struct-tag and type-unpacking rules as
// encoding/json: Unmarshal internally round-trips the parsed value
// through json.Marshal, so `json:"..."` tags, json.Unmarshaler, and
// encoding.TextUnmarshaler implementations on v all apply exactly as they
// would for a regular JSON payload.
func Unmarshal(data string, v any, opts ...Options) error {
	val, err := ParseElementFromString(data, opts...)
	if err != nil {
		return err
	}
	buf, err := json.Marshal(val.Native())
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, v)
}
