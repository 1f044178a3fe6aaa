/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import "fmt"

/*
TokenKind is the closed enumeration of token kinds produced by a
LexerSnapshot (multiline fragments already fused). LineTokenKind (in
linetoken.go) is
the richer per-line enumeration that additionally distinguishes
*Start/*Content/*End pieces of a multiline token.
*/
type TokenKind int

const (
	TokenKindUnknown TokenKind = iota

	// Keywords
	TokenKindAnd
	TokenKindAs
	TokenKindEach
	TokenKindElse
	TokenKindError
	TokenKindFalse
	TokenKindIf
	TokenKindIn
	TokenKindIs
	TokenKindLet
	TokenKindMeta
	TokenKindNot
	TokenKindOr
	TokenKindOtherwise
	TokenKindSection
	TokenKindShared
	TokenKindThen
	TokenKindTrue
	TokenKindTry
	TokenKindType
	TokenKindCatch

	// Hash keywords
	TokenKindHashBinary
	TokenKindHashDate
	TokenKindHashDateTime
	TokenKindHashDateTimeZone
	TokenKindHashDuration
	TokenKindHashInfinity
	TokenKindHashNan
	TokenKindHashSections
	TokenKindHashShared
	TokenKindHashTable
	TokenKindHashTime

	// Literals
	TokenKindNumericLiteral
	TokenKindHexLiteral
	TokenKindTextLiteral
	TokenKindNullLiteral

	// Identifiers
	TokenKindIdentifier
	TokenKindQuotedIdentifier

	// Punctuation / operators
	TokenKindLeftParenthesis
	TokenKindRightParenthesis
	TokenKindLeftBracket
	TokenKindRightBracket
	TokenKindLeftBrace
	TokenKindRightBrace
	TokenKindComma
	TokenKindSemicolon
	TokenKindAt
	TokenKindQuestionMark
	TokenKindNullCoalescingOperator // ??
	TokenKindFatArrow               // =>
	TokenKindDotDot                 // ..
	TokenKindEllipsis                // ...
	TokenKindDot
	TokenKindEqual
	TokenKindNotEqual
	TokenKindLessThan
	TokenKindLessThanEqualTo
	TokenKindGreaterThan
	TokenKindGreaterThanEqualTo
	TokenKindPlus
	TokenKindMinus
	TokenKindAsterisk
	TokenKindDivision
	TokenKindAmpersand
	TokenKindComment // line-comment content, stripped into the side channel at snapshot time

	TokenKindEof
)

var tokenKindNames = map[TokenKind]string{
	TokenKindUnknown:                "Unknown",
	TokenKindAnd:                    "And",
	TokenKindAs:                     "As",
	TokenKindEach:                   "Each",
	TokenKindElse:                   "Else",
	TokenKindError:                  "Error",
	TokenKindFalse:                  "False",
	TokenKindIf:                     "If",
	TokenKindIn:                     "In",
	TokenKindIs:                     "Is",
	TokenKindLet:                    "Let",
	TokenKindMeta:                   "Meta",
	TokenKindNot:                    "Not",
	TokenKindOr:                     "Or",
	TokenKindOtherwise:              "Otherwise",
	TokenKindSection:                "Section",
	TokenKindShared:                 "Shared",
	TokenKindThen:                   "Then",
	TokenKindTrue:                   "True",
	TokenKindTry:                    "Try",
	TokenKindType:                   "Type",
	TokenKindCatch:                  "Catch",
	TokenKindHashBinary:             "#binary",
	TokenKindHashDate:               "#date",
	TokenKindHashDateTime:           "#datetime",
	TokenKindHashDateTimeZone:       "#datetimezone",
	TokenKindHashDuration:           "#duration",
	TokenKindHashInfinity:           "#infinity",
	TokenKindHashNan:                "#nan",
	TokenKindHashSections:           "#sections",
	TokenKindHashShared:             "#shared",
	TokenKindHashTable:              "#table",
	TokenKindHashTime:               "#time",
	TokenKindNumericLiteral:         "NumericLiteral",
	TokenKindHexLiteral:             "HexLiteral",
	TokenKindTextLiteral:            "TextLiteral",
	TokenKindNullLiteral:            "NullLiteral",
	TokenKindIdentifier:             "Identifier",
	TokenKindQuotedIdentifier:       "QuotedIdentifier",
	TokenKindLeftParenthesis:        "(",
	TokenKindRightParenthesis:       ")",
	TokenKindLeftBracket:            "[",
	TokenKindRightBracket:           "]",
	TokenKindLeftBrace:              "{",
	TokenKindRightBrace:             "}",
	TokenKindComma:                  ",",
	TokenKindSemicolon:              ";",
	TokenKindAt:                     "@",
	TokenKindQuestionMark:           "?",
	TokenKindNullCoalescingOperator: "??",
	TokenKindFatArrow:               "=>",
	TokenKindDotDot:                 "..",
	TokenKindEllipsis:               "...",
	TokenKindDot:                    ".",
	TokenKindEqual:                  "=",
	TokenKindNotEqual:               "<>",
	TokenKindLessThan:               "<",
	TokenKindLessThanEqualTo:        "<=",
	TokenKindGreaterThan:            ">",
	TokenKindGreaterThanEqualTo:     ">=",
	TokenKindPlus:                   "+",
	TokenKindMinus:                  "-",
	TokenKindAsterisk:               "*",
	TokenKindDivision:               "/",
	TokenKindAmpersand:              "&",
	TokenKindComment:                "Comment",
	TokenKindEof:                    "Eof",
}

func (k TokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

/*
KeywordMap is the closed set of bare keywords - these require a word
boundary on both sides, mirroring krotik-ecal's KeywordMap convention in
lexer.go (there: "requires spaces between them").
*/
var KeywordMap = map[string]TokenKind{
	"and":       TokenKindAnd,
	"as":        TokenKindAs,
	"each":      TokenKindEach,
	"else":      TokenKindElse,
	"error":     TokenKindError,
	"false":     TokenKindFalse,
	"if":        TokenKindIf,
	"in":        TokenKindIn,
	"is":        TokenKindIs,
	"let":       TokenKindLet,
	"meta":      TokenKindMeta,
	"not":       TokenKindNot,
	"or":        TokenKindOr,
	"otherwise": TokenKindOtherwise,
	"section":   TokenKindSection,
	"shared":    TokenKindShared,
	"then":      TokenKindThen,
	"true":      TokenKindTrue,
	"try":       TokenKindTry,
	"type":      TokenKindType,
	"catch":     TokenKindCatch,
}

/*
HashKeywordMap is the set of '#'-prefixed keywords, recognized only when
the '#' is immediately followed by one of these exact identifiers (no
quoting) - otherwise '#' followed by '"' starts a quoted identifier.
*/
var HashKeywordMap = map[string]TokenKind{
	"#binary":       TokenKindHashBinary,
	"#date":         TokenKindHashDate,
	"#datetime":     TokenKindHashDateTime,
	"#datetimezone": TokenKindHashDateTimeZone,
	"#duration":     TokenKindHashDuration,
	"#infinity":     TokenKindHashInfinity,
	"#nan":          TokenKindHashNan,
	"#sections":     TokenKindHashSections,
	"#shared":       TokenKindHashShared,
	"#table":        TokenKindHashTable,
	"#time":         TokenKindHashTime,
}

/*
SymbolMap is the fixed punctuation/operator set, longest-match-first
(mirrors krotik-ecal's SymbolMap in lexer.go, extended with the
multi-character M operators: "??", "=>", "..", "...").
*/
var SymbolMap = map[string]TokenKind{
	"(":   TokenKindLeftParenthesis,
	")":   TokenKindRightParenthesis,
	"[":   TokenKindLeftBracket,
	"]":   TokenKindRightBracket,
	"{":   TokenKindLeftBrace,
	"}":   TokenKindRightBrace,
	",":   TokenKindComma,
	";":   TokenKindSemicolon,
	"@":   TokenKindAt,
	"?":   TokenKindQuestionMark,
	"??":  TokenKindNullCoalescingOperator,
	"=>":  TokenKindFatArrow,
	"...": TokenKindEllipsis,
	"..":  TokenKindDotDot,
	".":   TokenKindDot,
	"=":   TokenKindEqual,
	"<>":  TokenKindNotEqual,
	"<=":  TokenKindLessThanEqualTo,
	"<":   TokenKindLessThan,
	">=":  TokenKindGreaterThanEqualTo,
	">":   TokenKindGreaterThan,
	"+":   TokenKindPlus,
	"-":   TokenKindMinus,
	"*":   TokenKindAsterisk,
	"/":   TokenKindDivision,
	"&":   TokenKindAmpersand,
}

/*
symbolsByLength lists SymbolMap keys grouped by length, longest first, so
the scanner can try the longest match at each position without sorting on
every call.
*/
var symbolsByLength = [][]string{
	{"..."},
	{"??", "=>", "..", "<>", "<=", ">="},
	{"(", ")", "[", "]", "{", "}", ",", ";", "@", "?", ".", "=", "<", ">", "+", "-", "*", "/", "&"},
}

/*
Token is a flattened (post-snapshot) token: multiline pieces already
fused, absolute positions resolved.
*/
type Token struct {
	Kind  TokenKind
	Value string
	Range TokenRange
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Value, t.Range)
}
