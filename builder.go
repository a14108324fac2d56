package jsonh

import "iter"

// builder consumes a token stream into a materialized Value tree, per the
// dispatch table in spec §4.4: a stack of open containers plus a pending
// property name.
type builder struct {
	stack      []*Value
	pendingKey *string
}

// BuildValue drains tokens until a complete root value has been built,
// then returns it without consuming any further tokens from the sequence.
func BuildValue(tokens iter.Seq2[Token, error]) (*Value, error) {
	b := &builder{}
	for tok, err := range tokens {
		if err != nil {
			return nil, err
		}
		val, done, err := b.step(tok)
		if err != nil {
			return nil, err
		}
		if done {
			return val, nil
		}
	}
	return nil, newError(0, "unexpected end of token stream")
}

// submit binds v under the innermost open container (array append, or
// object Set under the pending key) and reports whether v is in fact the
// root value (stack empty).
func (b *builder) submit(v *Value) bool {
	if len(b.stack) == 0 {
		return true
	}
	top := b.stack[len(b.stack)-1]
	if top.kind == KindArray {
		top.Append(v)
		return false
	}
	key := ""
	if b.pendingKey != nil {
		key = *b.pendingKey
	}
	top.Set(key, v)
	b.pendingKey = nil
	return false
}

func (b *builder) step(tok Token) (*Value, bool, error) {
	switch tok.Kind {
	case Null:
		v := NullValue()
		return v, b.submit(v), nil
	case True:
		v := BoolValue(true)
		return v, b.submit(v), nil
	case False:
		v := BoolValue(false)
		return v, b.submit(v), nil
	case String:
		v := StringValue(tok.Lexeme)
		return v, b.submit(v), nil
	case Number:
		n, err := ParseNumber(tok.Lexeme)
		if err != nil {
			return nil, false, err
		}
		v := NumberValue(n)
		return v, b.submit(v), nil
	case StartObject:
		v := ObjectValue()
		b.submit(v)
		b.stack = append(b.stack, v)
		return nil, false, nil
	case StartArray:
		v := ArrayValue()
		b.submit(v)
		b.stack = append(b.stack, v)
		return nil, false, nil
	case EndObject, EndArray:
		if len(b.stack) == 0 {
			return nil, false, newError(0, "unexpected container end")
		}
		top := b.stack[len(b.stack)-1]
		if len(b.stack) > 1 {
			b.stack = b.stack[:len(b.stack)-1]
			return nil, false, nil
		}
		return top, true, nil
	case PropertyName:
		key := tok.Lexeme
		b.pendingKey = &key
		return nil, false, nil
	case Comment:
		return nil, false, nil
	default:
		return nil, false, newError(0, "unexpected token kind %v", tok.Kind)
	}
}
