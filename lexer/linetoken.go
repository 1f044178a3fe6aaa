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
LineTokenKind is the per-line token enumeration: a superset of TokenKind
that additionally distinguishes the Start/Content/End pieces of a token
that spans multiple lines (multiline comment, text literal, quoted
identifier). LexerSnapshot fuses adjacent Start/Content/End runs back
into a single TokenKind.
*/
type LineTokenKind int

const (
	LineTokenKindUnknown LineTokenKind = iota

	LineTokenKindAnd
	LineTokenKindAs
	LineTokenKindEach
	LineTokenKindElse
	LineTokenKindError
	LineTokenKindFalse
	LineTokenKindIf
	LineTokenKindIn
	LineTokenKindIs
	LineTokenKindLet
	LineTokenKindMeta
	LineTokenKindNot
	LineTokenKindOr
	LineTokenKindOtherwise
	LineTokenKindSection
	LineTokenKindShared
	LineTokenKindThen
	LineTokenKindTrue
	LineTokenKindTry
	LineTokenKindType
	LineTokenKindCatch

	LineTokenKindHashBinary
	LineTokenKindHashDate
	LineTokenKindHashDateTime
	LineTokenKindHashDateTimeZone
	LineTokenKindHashDuration
	LineTokenKindHashInfinity
	LineTokenKindHashNan
	LineTokenKindHashSections
	LineTokenKindHashShared
	LineTokenKindHashTable
	LineTokenKindHashTime

	LineTokenKindNumericLiteral
	LineTokenKindHexLiteral
	LineTokenKindNullLiteral
	LineTokenKindIdentifier

	// Text literal pieces
	LineTokenKindTextLiteral        // fits entirely on one line
	LineTokenKindTextLiteralStart
	LineTokenKindTextLiteralContent
	LineTokenKindTextLiteralEnd

	// Quoted identifier pieces
	LineTokenKindQuotedIdentifier
	LineTokenKindQuotedIdentifierStart
	LineTokenKindQuotedIdentifierContent
	LineTokenKindQuotedIdentifierEnd

	// Multiline comment pieces (note: single-line "/* ... */" is represented
	// with Start+End on the same line so fusion logic is uniform)
	LineTokenKindMultilineCommentStart
	LineTokenKindMultilineCommentContent
	LineTokenKindMultilineCommentEnd

	LineTokenKindLineComment

	LineTokenKindLeftParenthesis
	LineTokenKindRightParenthesis
	LineTokenKindLeftBracket
	LineTokenKindRightBracket
	LineTokenKindLeftBrace
	LineTokenKindRightBrace
	LineTokenKindComma
	LineTokenKindSemicolon
	LineTokenKindAt
	LineTokenKindQuestionMark
	LineTokenKindNullCoalescingOperator
	LineTokenKindFatArrow
	LineTokenKindDotDot
	LineTokenKindEllipsis
	LineTokenKindDot
	LineTokenKindEqual
	LineTokenKindNotEqual
	LineTokenKindLessThan
	LineTokenKindLessThanEqualTo
	LineTokenKindGreaterThan
	LineTokenKindGreaterThanEqualTo
	LineTokenKindPlus
	LineTokenKindMinus
	LineTokenKindAsterisk
	LineTokenKindDivision
	LineTokenKindAmpersand
)

/*
LineToken is a single token scanned on one line. Data carries the
line-local text (for *Content pieces: everything between the delimiters
on this line). LineStart/LineEnd are code-unit offsets local to the line.
*/
type LineToken struct {
	Kind      LineTokenKind
	Data      string
	LineStart uint32
	LineEnd   uint32
}

/*
fusedTokenKind returns the TokenKind a completed (non-multiline-piece)
LineTokenKind maps to, and whether the mapping is meaningful (comments
aren't - they're stripped into the snapshot's side channel instead).
*/
func fusedTokenKind(k LineTokenKind) (TokenKind, bool) {
	switch k {
	case LineTokenKindAnd:
		return TokenKindAnd, true
	case LineTokenKindAs:
		return TokenKindAs, true
	case LineTokenKindEach:
		return TokenKindEach, true
	case LineTokenKindElse:
		return TokenKindElse, true
	case LineTokenKindError:
		return TokenKindError, true
	case LineTokenKindFalse:
		return TokenKindFalse, true
	case LineTokenKindIf:
		return TokenKindIf, true
	case LineTokenKindIn:
		return TokenKindIn, true
	case LineTokenKindIs:
		return TokenKindIs, true
	case LineTokenKindLet:
		return TokenKindLet, true
	case LineTokenKindMeta:
		return TokenKindMeta, true
	case LineTokenKindNot:
		return TokenKindNot, true
	case LineTokenKindOr:
		return TokenKindOr, true
	case LineTokenKindOtherwise:
		return TokenKindOtherwise, true
	case LineTokenKindSection:
		return TokenKindSection, true
	case LineTokenKindShared:
		return TokenKindShared, true
	case LineTokenKindThen:
		return TokenKindThen, true
	case LineTokenKindTrue:
		return TokenKindTrue, true
	case LineTokenKindTry:
		return TokenKindTry, true
	case LineTokenKindType:
		return TokenKindType, true
	case LineTokenKindCatch:
		return TokenKindCatch, true
	case LineTokenKindHashBinary:
		return TokenKindHashBinary, true
	case LineTokenKindHashDate:
		return TokenKindHashDate, true
	case LineTokenKindHashDateTime:
		return TokenKindHashDateTime, true
	case LineTokenKindHashDateTimeZone:
		return TokenKindHashDateTimeZone, true
	case LineTokenKindHashDuration:
		return TokenKindHashDuration, true
	case LineTokenKindHashInfinity:
		return TokenKindHashInfinity, true
	case LineTokenKindHashNan:
		return TokenKindHashNan, true
	case LineTokenKindHashSections:
		return TokenKindHashSections, true
	case LineTokenKindHashShared:
		return TokenKindHashShared, true
	case LineTokenKindHashTable:
		return TokenKindHashTable, true
	case LineTokenKindHashTime:
		return TokenKindHashTime, true
	case LineTokenKindNumericLiteral:
		return TokenKindNumericLiteral, true
	case LineTokenKindHexLiteral:
		return TokenKindHexLiteral, true
	case LineTokenKindNullLiteral:
		return TokenKindNullLiteral, true
	case LineTokenKindIdentifier:
		return TokenKindIdentifier, true
	case LineTokenKindTextLiteral:
		return TokenKindTextLiteral, true
	case LineTokenKindQuotedIdentifier:
		return TokenKindQuotedIdentifier, true
	case LineTokenKindLeftParenthesis:
		return TokenKindLeftParenthesis, true
	case LineTokenKindRightParenthesis:
		return TokenKindRightParenthesis, true
	case LineTokenKindLeftBracket:
		return TokenKindLeftBracket, true
	case LineTokenKindRightBracket:
		return TokenKindRightBracket, true
	case LineTokenKindLeftBrace:
		return TokenKindLeftBrace, true
	case LineTokenKindRightBrace:
		return TokenKindRightBrace, true
	case LineTokenKindComma:
		return TokenKindComma, true
	case LineTokenKindSemicolon:
		return TokenKindSemicolon, true
	case LineTokenKindAt:
		return TokenKindAt, true
	case LineTokenKindQuestionMark:
		return TokenKindQuestionMark, true
	case LineTokenKindNullCoalescingOperator:
		return TokenKindNullCoalescingOperator, true
	case LineTokenKindFatArrow:
		return TokenKindFatArrow, true
	case LineTokenKindDotDot:
		return TokenKindDotDot, true
	case LineTokenKindEllipsis:
		return TokenKindEllipsis, true
	case LineTokenKindDot:
		return TokenKindDot, true
	case LineTokenKindEqual:
		return TokenKindEqual, true
	case LineTokenKindNotEqual:
		return TokenKindNotEqual, true
	case LineTokenKindLessThan:
		return TokenKindLessThan, true
	case LineTokenKindLessThanEqualTo:
		return TokenKindLessThanEqualTo, true
	case LineTokenKindGreaterThan:
		return TokenKindGreaterThan, true
	case LineTokenKindGreaterThanEqualTo:
		return TokenKindGreaterThanEqualTo, true
	case LineTokenKindPlus:
		return TokenKindPlus, true
	case LineTokenKindMinus:
		return TokenKindMinus, true
	case LineTokenKindAsterisk:
		return TokenKindAsterisk, true
	case LineTokenKindDivision:
		return TokenKindDivision, true
	case LineTokenKindAmpersand:
		return TokenKindAmpersand, true
	}
	return TokenKindUnknown, false
}

func (k LineTokenKind) String() string {
	return fmt.Sprintf("LineTokenKind(%d)", int(k))
}

/*
isMultilineStart reports whether a LineTokenKind opens a multiline run
that needs a matching *End on a later (or the same) line, and which
LineMode it puts the lexer into.
*/
func isMultilineStart(k LineTokenKind) (LineMode, bool) {
	switch k {
	case LineTokenKindMultilineCommentStart:
		return LineModeComment, true
	case LineTokenKindTextLiteralStart:
		return LineModeText, true
	case LineTokenKindQuotedIdentifierStart:
		return LineModeQuotedIdentifier, true
	}
	return LineModeDefault, false
}
