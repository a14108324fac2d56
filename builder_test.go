package jsonh

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenSeq turns a fixed token slice into an iter.Seq2, counting how many
// tokens the consumer actually pulled before stopping.
func tokenSeq(tokens []Token, pulled *int) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for _, tok := range tokens {
			*pulled++
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func TestBuildValueNestedContainers(t *testing.T) {
	tokens := []Token{
		{Kind: StartObject},
		{Kind: PropertyName, Lexeme: "a"},
		{Kind: StartArray},
		{Kind: Number, Lexeme: "1"},
		{Kind: Number, Lexeme: "2"},
		{Kind: EndArray},
		{Kind: PropertyName, Lexeme: "b"},
		{Kind: String, Lexeme: "hi"},
		{Kind: EndObject},
	}
	var pulled int
	got, err := BuildValue(tokenSeq(tokens, &pulled))
	if err != nil {
		t.Fatalf("BuildValue: %v", err)
	}
	want := ObjectValue()
	want.Set("a", ArrayValue(NumberValue(1), NumberValue(2)))
	want.Set("b", StringValue("hi"))
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Value{})); diff != "" {
		t.Errorf("BuildValue mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildValueDuplicateKeyOverwritesInPlace(t *testing.T) {
	tokens := []Token{
		{Kind: StartObject},
		{Kind: PropertyName, Lexeme: "a"},
		{Kind: Number, Lexeme: "1"},
		{Kind: PropertyName, Lexeme: "b"},
		{Kind: Number, Lexeme: "2"},
		{Kind: PropertyName, Lexeme: "a"},
		{Kind: Number, Lexeme: "3"},
		{Kind: EndObject},
	}
	var pulled int
	got, err := BuildValue(tokenSeq(tokens, &pulled))
	if err != nil {
		t.Fatalf("BuildValue: %v", err)
	}
	pairs, err := got.AsObject()
	if err != nil {
		t.Fatalf("AsObject: %v", err)
	}
	want := []Pair{
		{Key: "a", Value: NumberValue(3)},
		{Key: "b", Value: NumberValue(2)},
	}
	if diff := cmp.Diff(want, pairs, cmp.AllowUnexported(Value{})); diff != "" {
		t.Errorf("AsObject() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildValueStopsAfterRootWithoutDrainingSequence(t *testing.T) {
	tokens := []Token{
		{Kind: Number, Lexeme: "1"},
		{Kind: Number, Lexeme: "2"},
		{Kind: Number, Lexeme: "3"},
	}
	var pulled int
	got, err := BuildValue(tokenSeq(tokens, &pulled))
	if err != nil {
		t.Fatalf("BuildValue: %v", err)
	}
	n, err := got.AsNumber()
	if err != nil || n != 1 {
		t.Errorf("AsNumber() = %v, %v, want 1", n, err)
	}
	if pulled != 1 {
		t.Errorf("BuildValue pulled %d tokens, want 1 (should stop once root is complete)", pulled)
	}
}

func TestBuildValueUnexpectedContainerEndErrors(t *testing.T) {
	tokens := []Token{{Kind: EndObject}}
	var pulled int
	if _, err := BuildValue(tokenSeq(tokens, &pulled)); err == nil {
		t.Errorf("expected error for unmatched EndObject")
	}
}

func TestBuildValueEmptyStreamErrors(t *testing.T) {
	var pulled int
	if _, err := BuildValue(tokenSeq(nil, &pulled)); err == nil {
		t.Errorf("expected error for empty token stream")
	}
}
