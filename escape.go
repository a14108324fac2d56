package jsonh

import "strings"

// escapablePunct are the JSONH structural characters that may be escaped
// to produce themselves literally inside a quoteless string or key.
const escapablePunct = ",:[]{}#@"

// decodeEscape decodes one backslash escape sequence starting at
// input[i] == '\\'. It returns the decoded text (empty for a line
// continuation), the index just past the escape, and an error if the
// escape is malformed.
func decodeEscape(input []rune, i int) (string, int, error) {
	start := i
	i++ // consume '\\'
	if i >= len(input) {
		return "", i, newError(start, "unterminated escape sequence")
	}
	c := input[i]
	switch c {
	case '\n':
		return "", i + 1, nil
	case '\r':
		i++
		if i < len(input) && input[i] == '\n' {
			i++
		}
		return "", i, nil
	case ' ':
		return " ", i + 1, nil
	case 'n':
		return "\n", i + 1, nil
	case 'r':
		return "\r", i + 1, nil
	case 't':
		return "\t", i + 1, nil
	case '\\':
		return "\\", i + 1, nil
	case '"':
		return "\"", i + 1, nil
	case '\'':
		return "'", i + 1, nil
	case '/':
		return "/", i + 1, nil
	case 'b':
		return "\b", i + 1, nil
	case 'f':
		return "\f", i + 1, nil
	case 'v':
		return "\v", i + 1, nil
	case '0':
		return "\x00", i + 1, nil
	case 'a':
		return "\a", i + 1, nil
	case 'e':
		return "\x1b", i + 1, nil
	case 'x':
		cp, next, err := readHex(input, i+1, 2, start)
		if err != nil {
			return "", next, err
		}
		return string(rune(cp)), next, nil
	case 'u':
		hi, next, err := readHex(input, i+1, 4, start)
		if err != nil {
			return "", next, err
		}
		if hi >= 0xD800 && hi <= 0xDBFF {
			if next+1 < len(input) && input[next] == '\\' && input[next+1] == 'u' {
				lo, next2, err := readHex(input, next+2, 4, start)
				if err == nil && lo >= 0xDC00 && lo <= 0xDFFF {
					cp := 0x10000 + ((hi - 0xD800) << 10) + (lo - 0xDC00)
					return string(rune(cp)), next2, nil
				}
			}
			return "", next, newError(start, "unpaired high surrogate \\u%04X", hi)
		}
		return string(rune(hi)), next, nil
	case 'U':
		cp, next, err := readHex(input, i+1, 8, start)
		if err != nil {
			return "", next, err
		}
		return string(rune(cp)), next, nil
	default:
		if strings.ContainsRune(escapablePunct, c) {
			return string(c), i + 1, nil
		}
		return "", i, newError(start, "invalid escape \\%c", c)
	}
}

// readHex reads exactly n hex digits starting at index i and returns the
// decoded value and the index just past them.
func readHex(input []rune, i, n, errPos int) (int, int, error) {
	if i+n > len(input) {
		return 0, len(input), newError(errPos, "incomplete hex escape")
	}
	val := 0
	for k := 0; k < n; k++ {
		d, ok := hexDigit(input[i+k])
		if !ok {
			return 0, i + k, newError(errPos, "invalid hex digit %q", input[i+k])
		}
		val = val<<4 | d
	}
	return val, i + n, nil
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}
