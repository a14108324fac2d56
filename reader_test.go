package jsonh

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseNative(t *testing.T, input string) any {
	t.Helper()
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return v.Native()
}

func TestParseBasicObject(t *testing.T) {
	got := parseNative(t, `{"a": 1, "b": [true, false, null]}`)
	want := map[string]any{
		"a": 1.0,
		"b": []any{true, false, nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNestableComments(t *testing.T) {
	input := "/=* outer /=* inner *=/ still outer *=/\n1"
	got := parseNative(t, input)
	if got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
}

func TestParseArrayWithNewlineSeparators(t *testing.T) {
	input := "[\n  1\n  2\n  3\n]"
	got := parseNative(t, input)
	want := []any{1.0, 2.0, 3.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMultiQuotedStripsIndent(t *testing.T) {
	input := "'''\n    line one\n    line two\n    '''"
	got := parseNative(t, input)
	want := "line one\nline two"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseBracelessRootObject(t *testing.T) {
	got := parseNative(t, "a: 1\nb: 2")
	want := map[string]any{"a": 1.0, "b": 2.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFirstPropertyNameReinterpretedAsString(t *testing.T) {
	tests := []struct {
		input string
		want  map[string]any
	}{
		{"0: b", map[string]any{"0": "b"}},
		{"true: b", map[string]any{"true": "b"}},
		{"false: b", map[string]any{"false": "b"}},
		{"null: b", map[string]any{"null": "b"}},
	}
	for _, tt := range tests {
		got := parseNative(t, tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseQuotelessKeywordDiscrimination(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"true", true},
		{"false", false},
		{"null", nil},
		{"truely", "truely"},
		{"nulla", "nulla"},
	}
	for _, tt := range tests {
		got := parseNative(t, tt.input)
		if got != tt.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParseDottedQuotelessString(t *testing.T) {
	got := parseNative(t, "a.b.c")
	if got != "a.b.c" {
		t.Errorf("got %#v, want %q", got, "a.b.c")
	}
}

func TestParseInvalidNumberFallsBackToString(t *testing.T) {
	got := parseNative(t, "0e")
	if got != "0e" {
		t.Errorf("got %#v, want %q", got, "0e")
	}
}

func TestParseTrailingCommaAndBracelessErrorInArray(t *testing.T) {
	got := parseNative(t, "[1, 2, 3,]")
	want := []any{1.0, 2.0, 3.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := Parse("[a: 1]"); err == nil {
		t.Errorf("expected error for braceless object nested in array")
	}
}

func TestParseVerbatimStrings(t *testing.T) {
	input := `{a\\: b\\
@c\\: @d\\
@e\\: f\\}`
	v, err := ParseElementFromString(input)
	if err != nil {
		t.Fatalf("ParseElementFromString: %v", err)
	}
	check := func(key, want string) {
		t.Helper()
		got, err := v.Key(key).AsString()
		if err != nil || got != want {
			t.Errorf("Key(%q) = %q, %v, want %q", key, got, err, want)
		}
	}
	check(`a\`, `b\`)
	check(`c\\`, `d\\`)
	check(`e\\`, `f\`)
}

func TestParseVerbatimStringsV1(t *testing.T) {
	input := `{a\\: b\\
@c\\: @d\\
@e\\: f\\}`
	v, err := ParseElementFromString(input, Options{Version: V1})
	if err != nil {
		t.Fatalf("ParseElementFromString: %v", err)
	}
	check := func(key, want string) {
		t.Helper()
		got, err := v.Key(key).AsString()
		if err != nil || got != want {
			t.Errorf("Key(%q) = %q, %v, want %q", key, got, err, want)
		}
	}
	check(`a\`, `b\`)
	check(`@c\`, `@d\`)
	check(`@e\`, `f\`)
}

func TestParseSingleElementRejectsTrailingContent(t *testing.T) {
	if _, err := Parse("1\n2"); err == nil {
		t.Errorf("expected error for trailing content after single element")
	}
	if _, err := ParseElementFromString("1\n2"); err != nil {
		t.Errorf("ParseElementFromString without ParseSingleElement should not error: %v", err)
	}
}

func TestReadElementYieldsComments(t *testing.T) {
	r := NewReader("# hi\n1", Options{})
	var kinds []TokenKind
	for tok, err := range r.ReadElement() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{Comment, Number}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
