package jsonh

import "testing"

func TestDecodeEscape(t *testing.T) {
	type tc struct {
		desc    string
		input   string
		want    string
		wantErr bool
	}
	tests := []tc{
		{desc: "newline", input: "\\n", want: "\n"},
		{desc: "tab", input: "\\t", want: "\t"},
		{desc: "backslash", input: "\\\\", want: "\\"},
		{desc: "line continuation lf", input: "\\\n", want: ""},
		{desc: "line continuation crlf", input: "\\\r\n", want: ""},
		{desc: "hex byte", input: "\\x41", want: "A"},
		{desc: "short unicode escape", input: "\\u00e9", want: "é"},
		{desc: "surrogate pair", input: "\\uD83D\\uDE00", want: "\U0001F600"},
		{desc: "long unicode", input: "\\U0001F600", want: "\U0001F600"},
		{desc: "escaped punctuation", input: "\\#", want: "#"},
		{desc: "escaped slash", input: "\\/", want: "/"},
		{desc: "unknown escape", input: "\\q", wantErr: true},
		{desc: "unpaired high surrogate", input: "\\uD83D", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			runes := []rune(tt.input)
			got, _, err := decodeEscape(runes, 0)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("decodeEscape(%q) = %q, nil, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeEscape(%q): unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("decodeEscape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeQuoteless(t *testing.T) {
	got, err := decodeQuoteless("a\\\\")
	if err != nil {
		t.Fatalf("decodeQuoteless: %v", err)
	}
	if want := "a\\"; got != want {
		t.Errorf("decodeQuoteless(a\\\\) = %q, want %q", got, want)
	}
}
