/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package lexer implements the incremental, line-oriented tokenizer for the
M formula language: per-line tokenization with resumable multiline line
modes, range-based edit operations, and the flattening into a
LexerSnapshot that the parser consumes.
*/
package lexer

import "fmt"

/*
Position identifies a zero-based line number and a zero-based code-unit
offset into that line. CodeUnit is the absolute offset into the
flattened snapshot's token stream and is only guaranteed to be set once a
LexerSnapshot has been produced - in lexer-space (e.g. describing where a
line-local token starts) it is left nil. See SPEC_FULL.md's "code unit"
pin: a code unit here means a UTF-16 code unit, matching what an LSP
client sends, not a Go byte offset nor a rune count.
*/
type Position struct {
	LineNumber   uint32
	LineCodeUnit uint32
	CodeUnit     *uint32
}

/*
WithCodeUnit returns a copy of the position with CodeUnit set. Used by
the snapshot builder, which is the only place lexer-space positions gain
an absolute code unit.
*/
func (p Position) WithCodeUnit(unit uint32) Position {
	p.CodeUnit = &unit
	return p
}

/*
Equal compares two positions by line/code-unit only; CodeUnit is ignored
when either side omits it.
*/
func (p Position) Equal(other Position) bool {
	if p.LineNumber != other.LineNumber || p.LineCodeUnit != other.LineCodeUnit {
		return false
	}
	if p.CodeUnit == nil || other.CodeUnit == nil {
		return true
	}
	return *p.CodeUnit == *other.CodeUnit
}

/*
Less reports whether p sorts strictly before other in document order.
*/
func (p Position) Less(other Position) bool {
	if p.LineNumber != other.LineNumber {
		return p.LineNumber < other.LineNumber
	}
	return p.LineCodeUnit < other.LineCodeUnit
}

/*
LessEqual reports p.Less(other) || p.Equal(other) in line/code-unit terms.
*/
func (p Position) LessEqual(other Position) bool {
	return p.Less(other) || (p.LineNumber == other.LineNumber && p.LineCodeUnit == other.LineCodeUnit)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.LineNumber, p.LineCodeUnit)
}

/*
TokenRange is a half-open span [Start, End) over Positions, carrying
absolute CodeUnits once resolved against a LexerSnapshot.
*/
type TokenRange struct {
	Start Position
	End   Position
}

/*
ContainsPosition reports whether pos falls within [Start, End). An empty
range (Start == End) never contains anything.
*/
func (r TokenRange) ContainsPosition(pos Position) bool {
	return r.Start.LessEqual(pos) && pos.Less(r.End)
}

func (r TokenRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
