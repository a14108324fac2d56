// Package jsonh reads JSONH, a human-friendly superset of JSON: comments,
// trailing commas, unquoted and multi-quoted strings, braceless root
// objects, and a permissive number grammar. It exposes a lazy token
// reader for streaming consumers alongside the usual parse-to-value and
// struct-unmarshal entry points.
package jsonh

// ParseElementFromString reads one JSONH element from input and returns
// it as a *Value tree. When opts[0].ParseSingleElement is set, trailing
// content after the element (other than whitespace and comments) is an
// error.
func ParseElementFromString(input string, opts ...Options) (*Value, error) {
	options := Options{}
	if len(opts) > 0 {
		options = opts[0]
	}
	r := NewReader(input, options)
	val, err := BuildValue(r.ReadElement())
	if err != nil {
		return nil, err
	}
	if options.ParseSingleElement {
		for _, err := range r.ReadEndOfElements() {
			if err != nil {
				return nil, err
			}
		}
	}
	return val, nil
}

// Parse reads a single complete JSONH element from input, requiring that
// nothing but whitespace and comments follow it.
func Parse(input string) (*Value, error) {
	return ParseElementFromString(input, Options{ParseSingleElement: true})
}
