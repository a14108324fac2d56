package jsonh

import (
	"math/big"
	"strings"
)

// DefaultDecimals is the number of decimal places fractional-exponent
// results are rounded to, per spec: implementations may expose this as a
// knob but must default to 15.
const DefaultDecimals = 15

// ln10Digits is ln(10) to 60 significant decimal digits, used as the seed
// for the high-precision exp(x*ln10) evaluation a fractional exponent
// requires.
const ln10Digits = "2.30258509299404568401799145468436420760110148862877297603332"

// NumberParser decodes a JSONH number lexeme into a float64, per spec
// §4.3. The zero value is ready to use.
type NumberParser struct {
	// Decimals is the rounding precision for fractional exponents.
	// Zero means DefaultDecimals.
	Decimals int
}

// ParseNumber decodes lexeme with the default decimal precision.
func ParseNumber(lexeme string) (float64, error) {
	return NumberParser{}.Parse(lexeme)
}

// Parse decodes a trimmed numeric lexeme into a float64. Any violation of
// the number grammar returns an error; callers (the tokenizer) treat that
// as a signal to emit the lexeme as a quoteless string instead.
func (p NumberParser) Parse(lexeme string) (float64, error) {
	decimals := p.Decimals
	if decimals <= 0 {
		decimals = DefaultDecimals
	}

	s := strings.TrimSpace(lexeme)
	if s == "" {
		return 0, newError(0, "empty number")
	}
	if s == "." || s == "-." || s == "+." {
		return 0, newError(0, "bare dot is not a number")
	}
	s = strings.ReplaceAll(s, "_", "")

	sign := 1.0
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return 0, newError(0, "number has no digits")
	}

	base := 10
	baseDigits := "0123456789"
	switch {
	case hasFoldPrefix(s, "0x"):
		base, baseDigits, s = 16, "0123456789abcdef", s[2:]
	case hasFoldPrefix(s, "0b"):
		base, baseDigits, s = 2, "01", s[2:]
	case hasFoldPrefix(s, "0o"):
		base, baseDigits, s = 8, "01234567", s[2:]
	}
	if s == "" {
		return 0, newError(0, "number has no digits after base prefix")
	}

	mantissaPart, exponentPart, hasExponent := splitExponent(s, baseDigits)
	if hasExponent {
		if !containsAnyDigit(mantissaPart, baseDigits) {
			return 0, newError(0, "number is missing mantissa digits")
		}
		if exponentPart == "" || !containsAnyDigit(exponentPart, baseDigits) {
			return 0, newError(0, "number is missing exponent digits")
		}
	}

	mantissa, err := parseFractional(mantissaPart, base, baseDigits, false)
	if err != nil {
		return 0, err
	}

	var result *big.Float
	fractionalExponent := false
	if !hasExponent {
		result = mantissa
	} else {
		exponent, err := parseFractional(exponentPart, 10, "0123456789", true)
		if err != nil {
			return 0, err
		}
		pow, isFractional, err := pow10(exponent, decimals)
		if err != nil {
			return 0, err
		}
		fractionalExponent = isFractional
		result = new(big.Float).SetPrec(mantissa.Prec()).Mul(mantissa, pow)
	}

	if sign < 0 {
		result = new(big.Float).Neg(result)
	}
	if fractionalExponent {
		result = roundDecimalPlaces(result, decimals)
	}

	f, _ := result.Float64()
	return f, nil
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// splitExponent splits digits into mantissa and exponent parts. For
// decimal inputs, the split happens at any e/E. For non-decimal bases, a
// trailing e/E is only treated as an exponent marker when immediately
// followed by a sign (otherwise 'e' is a valid hex digit).
func splitExponent(digits, baseDigits string) (mantissa, exponent string, has bool) {
	if strings.ContainsRune(baseDigits, 'e') {
		for i, ch := range digits {
			if ch != 'e' && ch != 'E' {
				continue
			}
			if i+1 < len(digits) && (digits[i+1] == '+' || digits[i+1] == '-') {
				return digits[:i], digits[i+1:], true
			}
		}
		return digits, "", false
	}
	i := strings.IndexAny(digits, "eE")
	if i < 0 {
		return digits, "", false
	}
	return digits[:i], digits[i+1:], true
}

func containsAnyDigit(text, baseDigits string) bool {
	for _, ch := range text {
		if strings.ContainsRune(baseDigits, foldDigit(ch)) {
			return true
		}
	}
	return false
}

func foldDigit(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// parseFractional parses digits (optionally containing one '.') as a
// signed fractional number in the given base. allowSign permits a leading
// +/- (used for exponents).
func parseFractional(digits string, base int, baseDigits string, allowSign bool) (*big.Float, error) {
	s := strings.TrimSpace(digits)
	if s == "" {
		return nil, newError(0, "missing digits")
	}
	sign := 1
	if allowSign && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
		if s == "" {
			return nil, newError(0, "sign with no digits")
		}
	}
	const prec = 256
	whole, frac, hasDot := strings.Cut(s, ".")
	if !hasDot {
		n, err := parseWholeBig(whole, base, baseDigits, false)
		if err != nil {
			return nil, err
		}
		n.SetPrec(prec)
		if sign < 0 {
			n.Neg(n)
		}
		return n, nil
	}
	wholeVal, err := parseWholeBig(whole, base, baseDigits, true)
	if err != nil {
		return nil, err
	}
	if frac == "" {
		wholeVal.SetPrec(prec)
		if sign < 0 {
			wholeVal.Neg(wholeVal)
		}
		return wholeVal, nil
	}
	fracVal, err := parseWholeBig(frac, base, baseDigits, true)
	if err != nil {
		return nil, err
	}
	scale := new(big.Float).SetPrec(prec).SetInt(pow(int64(base), len(frac)))
	fracVal.SetPrec(prec)
	fracVal.Quo(fracVal, scale)
	out := new(big.Float).SetPrec(prec).Add(wholeVal, fracVal)
	if sign < 0 {
		out.Neg(out)
	}
	return out, nil
}

func parseWholeBig(digits string, base int, baseDigits string, allowEmpty bool) (*big.Float, error) {
	s := strings.TrimSpace(digits)
	if s == "" {
		if allowEmpty {
			return new(big.Float).SetPrec(256), nil
		}
		return nil, newError(0, "missing digits")
	}
	n := new(big.Int)
	b := big.NewInt(int64(base))
	for _, ch := range s {
		d, ok := digitValue(foldDigit(ch), baseDigits)
		if !ok {
			return nil, newError(0, "invalid digit %q for base %d", ch, base)
		}
		n.Mul(n, b)
		n.Add(n, big.NewInt(int64(d)))
	}
	return new(big.Float).SetPrec(256).SetInt(n), nil
}

func digitValue(ch rune, baseDigits string) (int, bool) {
	i := strings.IndexRune(baseDigits, ch)
	if i < 0 {
		return 0, false
	}
	return i, true
}

func pow(base int64, n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(n)), nil)
}

// pow10 computes 10^exponent. An integer exponent is computed exactly
// (as a power of ten); a fractional exponent needs a transcendental
// evaluation (exp(exponent * ln 10)) at high precision. The caller
// multiplies the result by the mantissa.
func pow10(exponent *big.Float, decimals int) (result *big.Float, fractional bool, err error) {
	if isIntegerFloat(exponent) {
		n, _ := exponent.Int64()
		prec := uint(256)
		if n >= 0 {
			return new(big.Float).SetPrec(prec).SetInt(pow(10, int(n))), false, nil
		}
		one := new(big.Float).SetPrec(prec).SetInt64(1)
		denom := new(big.Float).SetPrec(prec).SetInt(pow(10, int(-n)))
		return new(big.Float).SetPrec(prec).Quo(one, denom), false, nil
	}

	prec := precisionBits(decimals)
	ln10, _, err2 := big.ParseFloat(ln10Digits, 10, prec, big.ToNearestEven)
	if err2 != nil {
		return nil, false, newError(0, "internal: bad ln10 constant")
	}
	x := new(big.Float).SetPrec(prec).Mul(exponent, ln10)
	return bigExp(x, prec), true, nil
}

func precisionBits(decimals int) uint {
	digits := decimals + 25
	bits := uint(float64(digits)*3.3219281+64) + 32
	if bits < 128 {
		bits = 128
	}
	return bits
}

func isIntegerFloat(f *big.Float) bool {
	i, acc := f.Int(nil)
	_ = i
	return acc == big.Exact
}

// bigExp computes exp(x) using argument reduction (repeated halving) plus
// a Taylor series, which converges quickly once the reduced argument's
// magnitude is below 1.
func bigExp(x *big.Float, prec uint) *big.Float {
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	one := new(big.Float).SetPrec(prec).SetInt64(1)

	reduced := new(big.Float).SetPrec(prec).Copy(x)
	halvings := 0
	abs := new(big.Float).SetPrec(prec).Abs(reduced)
	for abs.Cmp(one) > 0 && halvings < 64 {
		reduced.Quo(reduced, two)
		abs.Quo(abs, two)
		halvings++
	}

	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	for n := 1; n <= 200; n++ {
		term.Mul(term, reduced)
		term.Quo(term, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
		sum.Add(sum, term)
		if term.Sign() == 0 {
			break
		}
	}
	for ; halvings > 0; halvings-- {
		sum.Mul(sum, sum)
	}
	return sum
}

func roundDecimalPlaces(x *big.Float, decimals int) *big.Float {
	prec := x.Prec()
	scale := new(big.Float).SetPrec(prec).SetInt(pow(10, decimals))
	scaled := new(big.Float).SetPrec(prec).Mul(x, scale)
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	if scaled.Sign() < 0 {
		scaled.Sub(scaled, half)
	} else {
		scaled.Add(scaled, half)
	}
	i, _ := scaled.Int(nil)
	rounded := new(big.Float).SetPrec(prec).SetInt(i)
	return rounded.Quo(rounded, scale)
}
