package jsonh

import (
	"iter"
	"strings"
	"unicode"
)

// Version selects which generation of verbatim-string semantics a Reader
// uses. The default, VCurrent, always treats '@' as the verbatim-prefix
// sigil. V1 instead lets '@' bind as an ordinary (escape-decoded)
// quoteless-string character whenever it isn't immediately followed by a
// quote.
type Version int8

const (
	VCurrent Version = iota
	V1
)

// Options configures a Reader's two semantic switches.
type Options struct {
	Version             Version
	ParseSingleElement  bool
}

// Reader reads JSONH tokens from an in-memory string via a rune cursor.
// It owns its input exclusively; tokens it yields hold decoded text by
// value, never aliasing into the input.
type Reader struct {
	input   []rune
	cursor  int
	options Options
}

// NewReader constructs a Reader over input with the given options.
func NewReader(input string, options Options) *Reader {
	return &Reader{input: []rune(input), options: options}
}

// Cursor reports the current rune-index cursor position, for diagnostics.
func (r *Reader) Cursor() int { return r.cursor }

func (r *Reader) eof() bool { return r.cursor >= len(r.input) }

func (r *Reader) peek(offset int) (rune, bool) {
	i := r.cursor + offset
	if i < 0 || i >= len(r.input) {
		return 0, false
	}
	return r.input[i], true
}

func (r *Reader) peekRune() (rune, bool) { return r.peek(0) }

func (r *Reader) peekIs(offset int, c rune) bool {
	v, has := r.peek(offset)
	return has && v == c
}

// consumeNewline advances past the newline sequence starting at the
// cursor (LF, CR, or CRLF as one unit).
func (r *Reader) consumeNewline() {
	c := r.input[r.cursor]
	r.cursor++
	if c == '\r' && !r.eof() && r.input[r.cursor] == '\n' {
		r.cursor++
	}
}

const reservedChars = "\\,:[]{}/#\"'@"

func isReserved(r rune) bool {
	return strings.ContainsRune(reservedChars, r)
}

func isNewlineRune(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

func isWhitespaceRune(r rune) bool {
	return unicode.IsSpace(r)
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// tokenizer holds the per-read-call state for the lazy, recursive,
// range-over-func token generator. stopped is set once the consumer asks
// to stop (yield returns false) or an error has been reported; emit and
// fail check it, so nothing further is yielded once it is set.
type tokenizer struct {
	r       *Reader
	yield   func(Token, error) bool
	stopped bool
}

func (t *tokenizer) emit(tok Token) bool {
	if t.stopped {
		return false
	}
	if !t.yield(tok, nil) {
		t.stopped = true
		return false
	}
	return true
}

func (t *tokenizer) fail(err error) {
	if t.stopped {
		return
	}
	t.yield(Token{}, err)
	t.stopped = true
}

// ReadElement reads one JSONH element (a full object, array, or primitive,
// including a root-level braceless object) as a lazy sequence of tokens.
func (r *Reader) ReadElement() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		t := &tokenizer{r: r, yield: yield}
		t.readElement()
	}
}

// ReadEndOfElements yields a Comment token for each trailing comment and,
// if anything other than whitespace and comments remains, a single error.
func (r *Reader) ReadEndOfElements() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		t := &tokenizer{r: r, yield: yield}
		if _, ok := t.skip(); !ok {
			return
		}
		if !t.r.eof() {
			t.fail(newError(t.r.cursor, "expected end of input, found trailing content"))
		}
	}
}

// skip consumes whitespace and comments, emitting a Comment token for
// each comment encountered. It reports whether a newline was crossed
// (used to satisfy the newline-as-separator rule) and whether the caller
// should keep going (false means stop: either the consumer asked to stop
// or an error was reported).
func (t *tokenizer) skip() (hadNewline bool, ok bool) {
	for {
		r, has := t.r.peekRune()
		if !has {
			return hadNewline, true
		}
		switch {
		case r == ' ' || r == '\t':
			t.r.cursor++
		case isNewlineRune(r):
			hadNewline = true
			t.r.consumeNewline()
		case isWhitespaceRune(r):
			t.r.cursor++
		case r == '#' && t.canStartLineComment():
			if !t.readLineComment(1) {
				return hadNewline, false
			}
		case r == '/' && t.r.peekIs(1, '/') && t.canStartLineComment():
			if !t.readLineComment(2) {
				return hadNewline, false
			}
		case r == '/' && t.r.peekIs(1, '*') && t.canStartBlockComment():
			if !t.readBlockComment() {
				return hadNewline, false
			}
		case r == '/' && t.r.peekIs(1, '=') && t.canStartBlockComment():
			matched, ok2 := t.tryReadNestableBlockComment()
			if !ok2 {
				return hadNewline, false
			}
			if !matched {
				return hadNewline, true
			}
		default:
			return hadNewline, true
		}
	}
}

func (t *tokenizer) canStartLineComment() bool {
	if t.r.cursor == 0 {
		return true
	}
	prev := t.r.input[t.r.cursor-1]
	return isWhitespaceRune(prev) || isNewlineRune(prev)
}

func (t *tokenizer) canStartBlockComment() bool {
	if t.r.cursor == 0 {
		return true
	}
	prev := t.r.input[t.r.cursor-1]
	if isWhitespaceRune(prev) || isNewlineRune(prev) {
		return true
	}
	switch prev {
	case '{', '[', ',', ':':
		return true
	}
	return false
}

func (t *tokenizer) readLineComment(markerLen int) bool {
	t.r.cursor += markerLen
	start := t.r.cursor
	for {
		r, has := t.r.peekRune()
		if !has || isNewlineRune(r) {
			break
		}
		t.r.cursor++
	}
	lexeme := string(t.r.input[start:t.r.cursor])
	return t.emit(Token{Kind: Comment, Lexeme: lexeme})
}

func (t *tokenizer) readBlockComment() bool {
	openPos := t.r.cursor
	t.r.cursor += 2 // skip "/*"
	start := t.r.cursor
	for {
		if t.r.eof() {
			t.fail(newError(openPos, "unterminated block comment"))
			return false
		}
		if t.r.peekIs(0, '*') && t.r.peekIs(1, '/') {
			lexeme := string(t.r.input[start:t.r.cursor])
			t.r.cursor += 2
			return t.emit(Token{Kind: Comment, Lexeme: lexeme})
		}
		t.r.cursor++
	}
}

// tryReadNestableBlockComment attempts to read a comment of the form
// /==*...*==/ with matching '='-arity, nesting via a stack of open
// arities. If the opening lookahead fails to find a '*' after the run of
// '=' signs, the cursor is restored and matched=false is returned (the
// caller treats the leading '/' as an ordinary character).
func (t *tokenizer) tryReadNestableBlockComment() (matched bool, ok bool) {
	save := t.r.cursor
	openPos := save
	t.r.cursor++ // skip '/'
	k := 0
	for t.r.peekIs(0, '=') {
		k++
		t.r.cursor++
	}
	if !t.r.peekIs(0, '*') {
		t.r.cursor = save
		return false, true
	}
	t.r.cursor++ // skip '*'
	start := t.r.cursor
	stack := []int{k}
	for {
		if t.r.eof() {
			t.fail(newError(openPos, "unterminated nestable block comment"))
			return true, false
		}
		if t.r.peekIs(0, '/') {
			j := t.r.cursor + 1
			k2 := 0
			for j < len(t.r.input) && t.r.input[j] == '=' {
				k2++
				j++
			}
			if j < len(t.r.input) && t.r.input[j] == '*' {
				stack = append(stack, k2)
				t.r.cursor = j + 1
				continue
			}
		}
		if t.r.peekIs(0, '*') {
			top := stack[len(stack)-1]
			j := t.r.cursor + 1
			match := true
			for x := 0; x < top; x++ {
				if j+x >= len(t.r.input) || t.r.input[j+x] != '=' {
					match = false
					break
				}
			}
			if match && j+top < len(t.r.input) && t.r.input[j+top] == '/' {
				closeStart := t.r.cursor
				stack = stack[:len(stack)-1]
				t.r.cursor = j + top + 1
				if len(stack) == 0 {
					lexeme := string(t.r.input[start:closeStart])
					return true, t.emit(Token{Kind: Comment, Lexeme: lexeme})
				}
				continue
			}
		}
		t.r.cursor++
	}
}

// peekAfterWhitespace looks past (plain) whitespace without moving the
// cursor, reporting the next non-whitespace rune if any. It does not
// consider comments, matching the literal "next non-whitespace character"
// rule used to detect a root-level braceless object.
func (t *tokenizer) peekAfterWhitespace() (rune, bool) {
	i := t.r.cursor
	for i < len(t.r.input) {
		r := t.r.input[i]
		if r == ' ' || r == '\t' || isNewlineRune(r) || isWhitespaceRune(r) {
			i++
			continue
		}
		return r, true
	}
	return 0, false
}

// readElement is the top-level dispatch (spec §4.1 read_element).
func (t *tokenizer) readElement() bool {
	if _, ok := t.skip(); !ok {
		return false
	}
	r, has := t.r.peekRune()
	if !has {
		t.fail(newError(t.r.cursor, "Expected token, got end of input"))
		return false
	}
	switch r {
	case '{':
		return t.readObject()
	case '[':
		return t.readArray()
	default:
		tok, ok := t.readPrimitive()
		if !ok {
			return false
		}
		if key, reinterpret := bracelessKeyLexeme(tok); reinterpret {
			if c, has := t.peekAfterWhitespace(); has && c == ':' {
				return t.readBracelessObject(Token{Kind: String, Lexeme: key})
			}
		}
		return t.emit(tok)
	}
}

// bracelessKeyLexeme reports the string form a root-level primitive takes
// when it turns out to be the first property name of a braceless object.
// Spec §4.1: a lexeme that would otherwise have parsed as a number or as
// the keywords true/false/null is reinterpreted as a plain string when the
// next non-whitespace character is ':'.
func bracelessKeyLexeme(tok Token) (string, bool) {
	switch tok.Kind {
	case String, Number:
		return tok.Lexeme, true
	case True:
		return "true", true
	case False:
		return "false", true
	case Null:
		return "null", true
	}
	return "", false
}

// afterPair consumes the separator between two container entries and
// reports whether the container closed. closer is '}' or ']'; braceless
// objects close on end-of-input instead and pass closer=0.
func (t *tokenizer) afterPair(closer rune, braceless bool) (closed bool, ok bool) {
	hadNewline, ok2 := t.skip()
	if !ok2 {
		return false, false
	}
	closes := func() bool {
		if braceless {
			return t.r.eof()
		}
		return t.r.peekIs(0, closer)
	}
	if closes() {
		if !braceless {
			t.r.cursor++
		}
		return true, true
	}
	if t.r.peekIs(0, ',') {
		t.r.cursor++
		if _, ok3 := t.skip(); !ok3 {
			return false, false
		}
		if closes() {
			if !braceless {
				t.r.cursor++
			}
			return true, true
		}
		return false, true
	}
	if hadNewline {
		return false, true
	}
	var msg string
	if braceless {
		msg = "Expected ',' or newline after pair"
	} else {
		msg = "Expected ',', newline, or '" + string(closer) + "' after pair"
	}
	t.fail(newError(t.r.cursor, "%s", msg))
	return false, false
}

func (t *tokenizer) readObject() bool {
	t.r.cursor++ // consume '{'
	if !t.emit(Token{Kind: StartObject}) {
		return false
	}
	if _, ok := t.skip(); !ok {
		return false
	}
	if t.r.peekIs(0, '}') {
		t.r.cursor++
		return t.emit(Token{Kind: EndObject})
	}
	for {
		if !t.readProperty() {
			return false
		}
		closed, ok := t.afterPair('}', false)
		if !ok {
			return false
		}
		if closed {
			return t.emit(Token{Kind: EndObject})
		}
	}
}

func (t *tokenizer) readArray() bool {
	t.r.cursor++ // consume '['
	if !t.emit(Token{Kind: StartArray}) {
		return false
	}
	if _, ok := t.skip(); !ok {
		return false
	}
	if t.r.peekIs(0, ']') {
		t.r.cursor++
		return t.emit(Token{Kind: EndArray})
	}
	for {
		if !t.readArrayItem() {
			return false
		}
		closed, ok := t.afterPair(']', false)
		if !ok {
			return false
		}
		if closed {
			return t.emit(Token{Kind: EndArray})
		}
	}
}

// readBracelessObject is entered at root when the first primitive read is
// a String, or a Number/True/False/Null reinterpreted as one by
// bracelessKeyLexeme, immediately followed (modulo whitespace) by ':'. It emits a
// synthetic StartObject before the first property and a synthetic
// EndObject at end-of-input.
func (t *tokenizer) readBracelessObject(firstKey Token) bool {
	if !t.emit(Token{Kind: StartObject}) {
		return false
	}
	if !t.emit(Token{Kind: PropertyName, Lexeme: firstKey.Lexeme}) {
		return false
	}
	if !t.consumeColon() {
		return false
	}
	if !t.readElementValue() {
		return false
	}
	for {
		closed, ok := t.afterPair(0, true)
		if !ok {
			return false
		}
		if closed {
			return t.emit(Token{Kind: EndObject})
		}
		if !t.readProperty() {
			return false
		}
	}
}

func (t *tokenizer) readProperty() bool {
	if _, ok := t.skip(); !ok {
		return false
	}
	keyTok, ok := t.readKey()
	if !ok {
		return false
	}
	if !t.emit(Token{Kind: PropertyName, Lexeme: keyTok.Lexeme}) {
		return false
	}
	if !t.consumeColon() {
		return false
	}
	return t.readElementValue()
}

func (t *tokenizer) consumeColon() bool {
	if _, ok := t.skip(); !ok {
		return false
	}
	if !t.r.peekIs(0, ':') {
		t.fail(newError(t.r.cursor, "Expected ':' after property name"))
		return false
	}
	t.r.cursor++
	return true
}

// readElementValue reads a value in a context where root-level braceless
// reinterpretation never applies (property values of braced and braceless
// objects; array items are read by readArrayItem instead).
func (t *tokenizer) readElementValue() bool {
	if _, ok := t.skip(); !ok {
		return false
	}
	r, has := t.r.peekRune()
	if !has {
		t.fail(newError(t.r.cursor, "Expected token, got end of input"))
		return false
	}
	switch r {
	case '{':
		return t.readObject()
	case '[':
		return t.readArray()
	default:
		tok, ok := t.readPrimitive()
		if !ok {
			return false
		}
		return t.emit(tok)
	}
}

// readArrayItem reads one array element, rejecting the nested braceless
// object form (property-name-shaped items are only legal at the root).
func (t *tokenizer) readArrayItem() bool {
	if _, ok := t.skip(); !ok {
		return false
	}
	r, has := t.r.peekRune()
	if !has {
		t.fail(newError(t.r.cursor, "Expected token, got end of input"))
		return false
	}
	switch r {
	case '{':
		return t.readObject()
	case '[':
		return t.readArray()
	default:
		tok, ok := t.readPrimitive()
		if !ok {
			return false
		}
		if tok.Kind == String {
			if c, has := t.peekAfterWhitespace(); has && c == ':' {
				t.fail(newError(t.r.cursor, "braceless object is not allowed as an array item"))
				return false
			}
		}
		return t.emit(tok)
	}
}

// readKey reads a property name in any string form. Unlike readPrimitive,
// it never attempts a number or keyword interpretation: a bare token that
// would otherwise parse as a number or as true/false/null is reinterpreted
// as a plain string key.
func (t *tokenizer) readKey() (Token, bool) {
	if _, ok := t.skip(); !ok {
		return Token{}, false
	}
	r, has := t.r.peekRune()
	if !has {
		t.fail(newError(t.r.cursor, "Expected property name"))
		return Token{}, false
	}
	switch {
	case r == '"' || r == '\'':
		return t.readStringLiteral(r)
	case r == '@':
		return t.readAtDispatch()
	case isReserved(r):
		t.fail(newError(t.r.cursor, "unexpected character %q in property name", r))
		return Token{}, false
	default:
		return t.readQuotelessKey()
	}
}

func (t *tokenizer) readQuotelessKey() (Token, bool) {
	raw, ok := t.readBareSpan()
	if !ok {
		return Token{}, false
	}
	decoded, err := decodeQuoteless(raw)
	if err != nil {
		t.fail(err)
		return Token{}, false
	}
	return Token{Kind: String, Lexeme: decoded}, true
}

// readPrimitive reads a value-position primitive per spec §4.1's
// disambiguation table.
func (t *tokenizer) readPrimitive() (Token, bool) {
	r, has := t.r.peekRune()
	if !has {
		t.fail(newError(t.r.cursor, "Expected token, got end of input"))
		return Token{}, false
	}
	switch {
	case r == '"' || r == '\'':
		return t.readStringLiteral(r)
	case r == '@':
		return t.readAtDispatch()
	case r == '+' || r == '-' || r == '.' || isASCIIDigit(r):
		return t.readNumberOrQuoteless()
	case isReserved(r):
		t.fail(newError(t.r.cursor, "unexpected character %q", r))
		return Token{}, false
	default:
		return t.readQuotelessValue()
	}
}

func (t *tokenizer) readQuotelessValue() (Token, bool) {
	raw, ok := t.readBareSpan()
	if !ok {
		return Token{}, false
	}
	switch raw {
	case "true":
		return Token{Kind: True}, true
	case "false":
		return Token{Kind: False}, true
	case "null":
		return Token{Kind: Null}, true
	}
	decoded, err := decodeQuoteless(raw)
	if err != nil {
		t.fail(err)
		return Token{}, false
	}
	return Token{Kind: String, Lexeme: decoded}, true
}

func (t *tokenizer) readNumberOrQuoteless() (Token, bool) {
	raw, ok := t.readBareSpan()
	if !ok {
		return Token{}, false
	}
	if _, err := ParseNumber(raw); err == nil {
		return Token{Kind: Number, Lexeme: raw}, true
	}
	decoded, err := decodeQuoteless(raw)
	if err != nil {
		t.fail(err)
		return Token{}, false
	}
	return Token{Kind: String, Lexeme: decoded}, true
}

// readBareSpan reads raw (not yet escape-decoded, but line-continuations
// already collapsed) quoteless text up to the next unescaped newline or
// unescaped reserved character, then trims it.
func (t *tokenizer) readBareSpan() (string, bool) {
	return t.readBareSpanWithPrefix(nil)
}

func (t *tokenizer) readBareSpanWithPrefix(prefix []rune) (string, bool) {
	buf := append([]rune(nil), prefix...)
	for {
		r, has := t.r.peekRune()
		if !has || isNewlineRune(r) {
			break
		}
		if isReserved(r) && r != '\\' {
			break
		}
		if r == '\\' {
			t.r.cursor++ // consume backslash
			nr, nhas := t.r.peekRune()
			if !nhas {
				buf = append(buf, '\\')
				break
			}
			if nr == '\n' {
				t.r.cursor++
				continue
			}
			if nr == '\r' {
				t.r.consumeNewline()
				continue
			}
			buf = append(buf, '\\', nr)
			t.r.cursor++
			continue
		}
		buf = append(buf, r)
		t.r.cursor++
	}
	return strings.TrimSpace(string(buf)), true
}

// decodeQuoteless escape-decodes a raw quoteless value or key span and
// trims the result.
func decodeQuoteless(raw string) (string, error) {
	runes := []rune(raw)
	var out []rune
	i := 0
	for i < len(runes) {
		if runes[i] == '\\' {
			dec, next, err := decodeEscape(runes, i)
			if err != nil {
				return "", err
			}
			out = append(out, []rune(dec)...)
			i = next
			continue
		}
		out = append(out, runes[i])
		i++
	}
	return strings.TrimSpace(string(out)), nil
}

// readStringLiteral reads a quoted or multi-quoted string (n>=3 identical
// quotes), dispatched by counting the opening quote run.
func (t *tokenizer) readStringLiteral(quote rune) (Token, bool) {
	count := t.quoteRunLength(quote)
	if count >= 3 {
		return t.readMultiQuoted(quote, count)
	}
	return t.readQuoted(quote)
}

func (t *tokenizer) quoteRunLength(quote rune) int {
	count := 0
	for t.r.peekIs(count, quote) {
		count++
	}
	return count
}

func (t *tokenizer) readQuoted(quote rune) (Token, bool) {
	openPos := t.r.cursor
	t.r.cursor++ // opening quote
	var out []rune
	for {
		r, has := t.r.peekRune()
		if !has {
			t.fail(newError(openPos, "unterminated string"))
			return Token{}, false
		}
		if r == quote {
			t.r.cursor++
			return Token{Kind: String, Lexeme: string(out)}, true
		}
		if r == '\\' {
			dec, next, err := decodeEscape(t.r.input, t.r.cursor)
			if err != nil {
				t.fail(err)
				return Token{}, false
			}
			out = append(out, []rune(dec)...)
			t.r.cursor = next
			continue
		}
		out = append(out, r)
		t.r.cursor++
	}
}

func (t *tokenizer) readMultiQuoted(quote rune, count int) (Token, bool) {
	raw, ok := t.scanMultiQuotedRaw(quote, count)
	if !ok {
		return Token{}, false
	}
	decoded, err := decodeMultiQuoteEscapes(raw)
	if err != nil {
		t.fail(err)
		return Token{}, false
	}
	return Token{Kind: String, Lexeme: decoded}, true
}

// scanMultiQuotedRaw consumes the opening run of count quote characters,
// scans for the first subsequent run of exactly count identical quotes,
// applies indent/newline-framing stripping, and returns the (still
// escape-undecoded) content.
func (t *tokenizer) scanMultiQuotedRaw(quote rune, count int) (string, bool) {
	openPos := t.r.cursor
	t.r.cursor += count
	start := t.r.cursor
	for {
		if t.r.eof() {
			t.fail(newError(openPos, "unterminated multi-quoted string"))
			return "", false
		}
		if t.matchesExactQuoteRun(quote, count) {
			closeStart := t.r.cursor
			content := string(t.r.input[start:closeStart])
			t.r.cursor = closeStart + count
			return stripMultiQuoteIndent(t.r.input, closeStart, content), true
		}
		t.r.cursor++
	}
}

func (t *tokenizer) matchesExactQuoteRun(quote rune, count int) bool {
	for k := 0; k < count; k++ {
		if !t.r.peekIs(k, quote) {
			return false
		}
	}
	return !t.r.peekIs(count, quote)
}

// readAtDispatch handles the '@' sigil, honoring the Version option: under
// V1, '@' followed by a non-quote character binds as ordinary quoteless
// content instead of a verbatim prefix.
func (t *tokenizer) readAtDispatch() (Token, bool) {
	nxt, has := t.r.peek(1)
	isQuoteNext := has && (nxt == '"' || nxt == '\'')
	if t.r.options.Version == V1 && !isQuoteNext {
		return t.readAtPrefixedQuoteless()
	}
	return t.readVerbatim()
}

func (t *tokenizer) readAtPrefixedQuoteless() (Token, bool) {
	t.r.cursor++ // consume '@'
	raw, ok := t.readBareSpanWithPrefix([]rune{'@'})
	if !ok {
		return Token{}, false
	}
	decoded, err := decodeQuoteless(raw)
	if err != nil {
		t.fail(err)
		return Token{}, false
	}
	return Token{Kind: String, Lexeme: decoded}, true
}

func (t *tokenizer) readVerbatim() (Token, bool) {
	atPos := t.r.cursor
	t.r.cursor++ // consume '@'
	r, has := t.r.peekRune()
	if !has || isWhitespaceRune(r) || isNewlineRune(r) || r == '#' || r == '/' {
		t.fail(newError(atPos, "expected string immediately after '@'"))
		return Token{}, false
	}
	if r == '"' || r == '\'' {
		return t.readVerbatimQuoted(r)
	}
	return t.readVerbatimQuoteless()
}

func (t *tokenizer) readVerbatimQuoted(quote rune) (Token, bool) {
	count := t.quoteRunLength(quote)
	if count >= 3 {
		raw, ok := t.scanMultiQuotedRaw(quote, count)
		if !ok {
			return Token{}, false
		}
		return Token{Kind: String, Lexeme: raw}, true
	}
	openPos := t.r.cursor
	t.r.cursor++ // opening quote
	start := t.r.cursor
	for {
		r, has := t.r.peekRune()
		if !has {
			t.fail(newError(openPos, "unterminated verbatim string"))
			return Token{}, false
		}
		if r == quote {
			lexeme := string(t.r.input[start:t.r.cursor])
			t.r.cursor++
			return Token{Kind: String, Lexeme: lexeme}, true
		}
		t.r.cursor++
	}
}

func (t *tokenizer) readVerbatimQuoteless() (Token, bool) {
	var buf []rune
	for {
		r, has := t.r.peekRune()
		if !has || isNewlineRune(r) {
			break
		}
		if r != '\\' && isReserved(r) {
			break
		}
		buf = append(buf, r)
		t.r.cursor++
	}
	return Token{Kind: String, Lexeme: strings.TrimSpace(string(buf))}, true
}
