package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcastorina/flowc/internal/lexer"
	"github.com/mcastorina/flowc/internal/token"
)

func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()
	l := lexer.New(input)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestLexPunctuationAndKeywords(t *testing.T) {
	toks := lexAll(t, `fn main() -> (out stream<u8>) { return; }`)
	require.Equal(t, []token.Type{
		token.KEYWORD_FN, token.IDENT, token.LPAREN, token.RPAREN,
		token.ARROW, token.LPAREN, token.IDENT, token.IDENT, token.LT, token.IDENT, token.GT, token.RPAREN,
		token.LBRACE, token.KEYWORD_RETURN, token.SEMICOLON, token.RBRACE, token.EOF,
	}, types(toks))
}

func TestLexTwoCharOperatorsDisambiguatedFromOneChar(t *testing.T) {
	toks := lexAll(t, `:: := -> && || == != <= >= ++ --`)
	require.Equal(t, []token.Type{
		token.DCOLON, token.DECLARE, token.ARROW, token.AND, token.OR,
		token.EQ, token.NEQ, token.LTE, token.GTE, token.INC, token.DEC, token.EOF,
	}, types(toks))
}

func TestLexStringBothDelimiters(t *testing.T) {
	toks := lexAll(t, `"double" 'single'`)
	require.Equal(t, []token.Type{token.STRING, token.STRING, token.EOF}, types(toks))
	require.Equal(t, `"double"`, toks[0].Lexeme)
	require.Equal(t, `'single'`, toks[1].Lexeme)
}

func TestLexByteLiteral(t *testing.T) {
	toks := lexAll(t, "`a` `\\n`")
	require.Equal(t, []token.Type{token.BYTE, token.BYTE, token.EOF}, types(toks))
}

func TestLexIntegerAcceptsUnderscores(t *testing.T) {
	toks := lexAll(t, "1_000_000")
	require.Equal(t, token.INT, toks[0].Type)
	require.Equal(t, "1_000_000", toks[0].Lexeme)
}

func TestLexLineCommentSkipped(t *testing.T) {
	toks := lexAll(t, "a // this is a comment\nb")
	require.Equal(t, []token.Type{token.IDENT, token.IDENT, token.EOF}, types(toks))
}

func TestLexUnrecognizedCharacterErrors(t *testing.T) {
	l := lexer.New("@")
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestLexUnterminatedStringErrors(t *testing.T) {
	l := lexer.New(`"abc`)
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestTokenSpanMatchesSourceSlice(t *testing.T) {
	source := "foobar"
	toks := lexAll(t, source)
	require.Equal(t, source, source[toks[0].Start:toks[0].End])
}
