package jsonh

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		desc    string
		lexeme  string
		want    float64
		wantErr bool
	}{
		{desc: "integer", lexeme: "123", want: 123},
		{desc: "negative", lexeme: "-42", want: -42},
		{desc: "plus sign", lexeme: "+7", want: 7},
		{desc: "leading dot", lexeme: ".5", want: 0.5},
		{desc: "trailing dot", lexeme: "5.", want: 5},
		{desc: "underscores", lexeme: "1_000_000", want: 1000000},
		{desc: "hex", lexeme: "0xFF", want: 255},
		{desc: "hex uppercase prefix", lexeme: "0XFF", want: 255},
		{desc: "binary", lexeme: "0b101", want: 5},
		{desc: "octal", lexeme: "0o17", want: 15},
		{desc: "decimal exponent", lexeme: "1e3", want: 1000},
		{desc: "negative exponent", lexeme: "1e-2", want: 0.01},
		{desc: "fractional exponent", lexeme: "1e0.5", want: 3.16227766016838},
		{desc: "bare dot invalid", lexeme: ".", wantErr: true},
		{desc: "empty mantissa with exponent", lexeme: "e5", wantErr: true},
		{desc: "trailing e no exponent digits invalid", lexeme: "0e", wantErr: true},
		{desc: "letters are not a number", lexeme: "nulla", wantErr: true},
		{desc: "hex digit e not treated as exponent", lexeme: "0xe5", want: 0xe5},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := ParseNumber(tt.lexeme)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseNumber(%q) = %v, nil, want error", tt.lexeme, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumber(%q): unexpected error: %v", tt.lexeme, err)
			}
			if diff := abs(got - tt.want); diff > 1e-9*abs(tt.want)+1e-12 {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.lexeme, got, tt.want)
			}
		})
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
