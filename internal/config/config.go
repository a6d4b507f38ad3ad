// Package config is the single source of truth for keyword and
// primitive-type tables shared by the lexer and the checker, mirroring the
// teacher's "config is the single source of truth" convention.
package config

import "github.com/mcastorina/flowc/internal/token"

// Keywords maps reserved words to their token type. An identifier not in
// this table lexes as token.IDENT.
var Keywords = map[string]token.Type{
	"break":    token.KEYWORD_BREAK,
	"continue": token.KEYWORD_CONTINUE,
	"else":     token.KEYWORD_ELSE,
	"false":    token.KEYWORD_FALSE,
	"for":      token.KEYWORD_FOR,
	"fn":       token.KEYWORD_FN,
	"if":       token.KEYWORD_IF,
	"in":       token.KEYWORD_IN,
	"none":     token.KEYWORD_NONE,
	"return":   token.KEYWORD_RETURN,
	"true":     token.KEYWORD_TRUE,
	"while":    token.KEYWORD_WHILE,
}

// PrimitiveTypes is the whitelist of zero-arity type names the checker
// accepts in checker.checkType.
var PrimitiveTypes = map[string]bool{
	"bool": true,
	"u8":   true,
	"u16":  true,
	"u32":  true,
	"u64":  true,
	"i8":   true,
	"i16":  true,
	"i32":  true,
	"i64":  true,
}

// StreamType is the one built-in generic type constructor the checker
// recognizes, taking exactly one type argument.
const StreamType = "stream"
