/*
File    : mini-script/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typesOf(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

func TestTokenize_OperatorsAndPunctuation(t *testing.T) {
	tokens, err := Tokenize(`x = 1 + 2 * (3 - 4) / 5; y[0] == y[1];`, "test.ms")
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{
		IDENTIFIER_ID, ASSIGN_OP, INT_LIT, PLUS_OP, INT_LIT, MUL_OP,
		LEFT_PAREN, INT_LIT, MINUS_OP, INT_LIT, RIGHT_PAREN, DIV_OP, INT_LIT, SEMICOLON,
		IDENTIFIER_ID, LEFT_BRACKET, INT_LIT, RIGHT_BRACKET, EQ_OP,
		IDENTIFIER_ID, LEFT_BRACKET, INT_LIT, RIGHT_BRACKET, SEMICOLON,
		EOF_TYPE,
	}, typesOf(tokens))
}

func TestTokenize_Keywords(t *testing.T) {
	tokens, err := Tokenize(`function f() { if (true) { return 1; } else { return nil; } }`, "test.ms")
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{
		FUNCTION_KEY, IDENTIFIER_ID, LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE,
		IF_KEY, LEFT_PAREN, TRUE_KEY, RIGHT_PAREN, LEFT_BRACE,
		RETURN_KEY, INT_LIT, SEMICOLON, RIGHT_BRACE,
		ELSE_KEY, LEFT_BRACE,
		RETURN_KEY, NIL_KEY, SEMICOLON, RIGHT_BRACE,
		RIGHT_BRACE, EOF_TYPE,
	}, typesOf(tokens))
}

func TestTokenize_TwoCharOperators(t *testing.T) {
	tokens, err := Tokenize(`a == b != c <= d >= e && f || !g`, "test.ms")
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{
		IDENTIFIER_ID, EQ_OP, IDENTIFIER_ID, NE_OP, IDENTIFIER_ID, LE_OP,
		IDENTIFIER_ID, GE_OP, IDENTIFIER_ID, AND_OP, IDENTIFIER_ID, OR_OP,
		NOT_OP, IDENTIFIER_ID, EOF_TYPE,
	}, typesOf(tokens))
}

func TestTokenize_LiteralPayloads(t *testing.T) {
	tokens, err := Tokenize(`42 3.14 "hi" 'c' true false nil`, "test.ms")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, "hi", tokens[2].Literal)
	assert.Equal(t, byte('c'), tokens[3].Literal)
	assert.Equal(t, true, tokens[4].Literal)
	assert.Equal(t, false, tokens[5].Literal)
	assert.Nil(t, tokens[6].Literal)
}

func TestTokenize_LineComment(t *testing.T) {
	tokens, err := Tokenize("1 // a comment\n2", "test.ms")
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{INT_LIT, INT_LIT, EOF_TYPE}, typesOf(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestTokenize_UnterminatedStringIsLexError(t *testing.T) {
	_, err := Tokenize(`"hello`, "test.ms")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string literal")
}

func TestTokenize_LoneAmpersandIsLexError(t *testing.T) {
	_, err := Tokenize(`a & b`, "test.ms")
	assert.Error(t, err)
}

func TestTokenize_LoneBarIsLexError(t *testing.T) {
	_, err := Tokenize(`a | b`, "test.ms")
	assert.Error(t, err)
}

func TestTokenize_StringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"a\nb\tc\\d\"e"`, "test.ms")
	assert.NoError(t, err)
	assert.Equal(t, "a\nb\tc\\d\"e", tokens[0].Literal)
}

func TestTokenize_CarriageReturnIsWhitespace(t *testing.T) {
	tokens, err := Tokenize("1\r\n2", "test.ms")
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{INT_LIT, INT_LIT, EOF_TYPE}, typesOf(tokens))
}
