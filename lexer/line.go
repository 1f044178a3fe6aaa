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

/*
LineMode is the state a line starts in / hands off to the next line. The
invariant lines[i].ModeStart == lines[i-1].ModeEnd holds for every
LexerState produced by any sequence of edits.
*/
type LineMode int

const (
	LineModeDefault LineMode = iota
	LineModeComment
	LineModeText
	LineModeQuotedIdentifier
)

func (m LineMode) String() string {
	switch m {
	case LineModeDefault:
		return "Default"
	case LineModeComment:
		return "Comment"
	case LineModeText:
		return "Text"
	case LineModeQuotedIdentifier:
		return "QuotedIdentifier"
	}
	return "Unknown"
}

/*
LineTerminator records which newline sequence ended a line, so
reassembly round-trips exactly. The final line of a document has
LineTerminatorNone.
*/
type LineTerminator int

const (
	LineTerminatorNone LineTerminator = iota
	LineTerminatorLf
	LineTerminatorCrLf
	LineTerminatorCr
)

func (t LineTerminator) String() string {
	switch t {
	case LineTerminatorLf:
		return "\n"
	case LineTerminatorCrLf:
		return "\r\n"
	case LineTerminatorCr:
		return "\r"
	}
	return ""
}

/*
Line is a single tokenized line: its raw text (without the terminator),
the terminator, the inherited/produced line modes, its tokens, and any
per-line lex error (stored on the line itself - the lexer never panics
or returns an error for a per-line problem; see spec.md §4.1).
*/
type Line struct {
	LineString     string
	LineTerminator LineTerminator
	ModeStart      LineMode
	ModeEnd        LineMode
	Tokens         []LineToken
	Error          *LexError
}

/*
CodeUnitLength returns the line's length in code units (here: UTF-16 code
units, per SPEC_FULL.md's position pin).
*/
func (l *Line) CodeUnitLength() uint32 {
	return utf16Len(l.LineString)
}
