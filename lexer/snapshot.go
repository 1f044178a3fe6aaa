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

import (
	"github.com/devt-tools/pqparse/common"
)

/*
Comment is a line-comment or multiline-comment stripped into the
snapshot's side channel (spec.md §4.2).
*/
type Comment struct {
	Text  string
	Range TokenRange
}

/*
Snapshot is the flat, comment-stripped view the parser consumes: fused
multiline tokens, absolute positions, and a position<->code-unit mapping.
*/
type Snapshot struct {
	Tokens          []Token
	Comments        []Comment
	LineTerminators []LineTerminator

	lineStartUnits []uint32 // absolute code-unit offset of the start of each line
}

/*
TriedLexerSnapshot is the Ok(Snapshot) | Err(error) result of TrySnapshot.
*/
type TriedLexerSnapshot struct {
	Snapshot *Snapshot
	Err      error
}

/*
TrySnapshot flattens state's Lines into a Snapshot. It fails if any line
carries a stored *LexError, or if a multiline run (comment / text /
quoted identifier) has a Start but no End (spec.md §4.2, scenario 7).
*/
func TrySnapshot(settings Settings, state *State) (result TriedLexerSnapshot) {
	defer common.RecoverCommon(&result.Err)

	common.CheckCancellation(settings.CancellationToken)

	lineStartUnits := make([]uint32, len(state.Lines))
	var running uint32
	for i, line := range state.Lines {
		lineStartUnits[i] = running
		running += line.CodeUnitLength() + 1 // +1 for the conceptual line-break unit
	}

	snap := &Snapshot{lineStartUnits: lineStartUnits}

	var pendingStart *pendingMultiline

	for lineNum, line := range state.Lines {
		common.CheckCancellation(settings.CancellationToken)

		if line.Error != nil {
			err := *line.Error
			err.Position = Position{LineNumber: uint32(lineNum), LineCodeUnit: err.Position.LineCodeUnit}
			result.Err = &err
			return result
		}

		snap.LineTerminators = append(snap.LineTerminators, line.LineTerminator)

		for _, lt := range line.Tokens {
			if mode, isStart := isMultilineStart(lt.Kind); isStart {
				common.AssertTrue(pendingStart == nil, "multiline token opened while another is still pending")
				pendingStart = &pendingMultiline{
					mode:      mode,
					startLine: lineNum,
					startUnit: lt.LineStart,
				}
				continue
			}

			if isMultilineContent(lt.Kind) {
				continue // interior lines contribute nothing but keep the run open
			}

			if isMultilineEnd(lt.Kind) {
				common.AssertTrue(pendingStart != nil, "multiline end token with no matching start")
				startPos := Position{LineNumber: uint32(pendingStart.startLine), LineCodeUnit: pendingStart.startUnit}
				endPos := Position{LineNumber: uint32(lineNum), LineCodeUnit: lt.LineEnd}
				tr := TokenRange{
					Start: startPos.WithCodeUnit(snap.absoluteUnit(startPos)),
					End:   endPos.WithCodeUnit(snap.absoluteUnit(endPos)),
				}

				if kind, isComment := multilineCommentKind(pendingStart.mode); isComment {
					_ = kind
					snap.Comments = append(snap.Comments, Comment{Text: multilineContentAcrossLines(state, *pendingStart, lineNum), Range: tr})
				} else {
					tk, _ := fusedKindForMode(pendingStart.mode)
					snap.Tokens = append(snap.Tokens, Token{Kind: tk, Value: multilineContentAcrossLines(state, *pendingStart, lineNum), Range: tr})
				}
				pendingStart = nil
				continue
			}

			if lt.Kind == LineTokenKindLineComment {
				startPos := Position{LineNumber: uint32(lineNum), LineCodeUnit: lt.LineStart}
				endPos := Position{LineNumber: uint32(lineNum), LineCodeUnit: lt.LineEnd}
				tr := TokenRange{
					Start: startPos.WithCodeUnit(snap.absoluteUnit(startPos)),
					End:   endPos.WithCodeUnit(snap.absoluteUnit(endPos)),
				}
				snap.Comments = append(snap.Comments, Comment{Text: lt.Data, Range: tr})
				continue
			}

			tk, ok := fusedTokenKind(lt.Kind)
			common.AssertTrue(ok, "unexpected line token kind reaching the snapshot fuser")

			startPos := Position{LineNumber: uint32(lineNum), LineCodeUnit: lt.LineStart}
			endPos := Position{LineNumber: uint32(lineNum), LineCodeUnit: lt.LineEnd}
			tr := TokenRange{
				Start: startPos.WithCodeUnit(snap.absoluteUnit(startPos)),
				End:   endPos.WithCodeUnit(snap.absoluteUnit(endPos)),
			}
			snap.Tokens = append(snap.Tokens, Token{Kind: tk, Value: lt.Data, Range: tr})
		}
	}

	if pendingStart != nil {
		kind := multilineErrorKind(pendingStart.mode)
		result.Err = NewUnterminatedMultilineTokenError(kind, Position{LineNumber: uint32(pendingStart.startLine), LineCodeUnit: pendingStart.startUnit})
		return result
	}

	result.Snapshot = snap
	return result
}

type pendingMultiline struct {
	mode      LineMode
	startLine int
	startUnit uint32
}

func isMultilineContent(k LineTokenKind) bool {
	switch k {
	case LineTokenKindMultilineCommentContent, LineTokenKindTextLiteralContent, LineTokenKindQuotedIdentifierContent:
		return true
	}
	return false
}

func isMultilineEnd(k LineTokenKind) bool {
	switch k {
	case LineTokenKindMultilineCommentEnd, LineTokenKindTextLiteralEnd, LineTokenKindQuotedIdentifierEnd:
		return true
	}
	return false
}

func multilineCommentKind(mode LineMode) (MultilineTokenKind, bool) {
	if mode == LineModeComment {
		return MultilineTokenKindComment, true
	}
	return 0, false
}

func fusedKindForMode(mode LineMode) (TokenKind, bool) {
	switch mode {
	case LineModeText:
		return TokenKindTextLiteral, true
	case LineModeQuotedIdentifier:
		return TokenKindQuotedIdentifier, true
	}
	return TokenKindUnknown, false
}

func multilineErrorKind(mode LineMode) MultilineTokenKind {
	switch mode {
	case LineModeComment:
		return MultilineTokenKindComment
	case LineModeText:
		return MultilineTokenKindText
	case LineModeQuotedIdentifier:
		return MultilineTokenKindQuotedIdentifier
	}
	return MultilineTokenKindComment
}

/*
multilineContentAcrossLines reassembles the logical value of a multiline
token (without delimiters) by concatenating the Start/Content/End pieces
across [startLine, endLine], joined with "\n" for interior line breaks.
*/
func multilineContentAcrossLines(state *State, p pendingMultiline, endLine int) string {
	var lineParts []string
	for ln := p.startLine; ln <= endLine; ln++ {
		var perLine string
		for _, lt := range state.Lines[ln].Tokens {
			// pieces of another multiline token sharing the start or end line
			if ln == p.startLine && lt.LineStart < p.startUnit {
				continue
			}
			switch lt.Kind {
			case LineTokenKindMultilineCommentStart, LineTokenKindTextLiteralStart, LineTokenKindQuotedIdentifierStart,
				LineTokenKindMultilineCommentContent, LineTokenKindTextLiteralContent, LineTokenKindQuotedIdentifierContent,
				LineTokenKindMultilineCommentEnd, LineTokenKindTextLiteralEnd, LineTokenKindQuotedIdentifierEnd:
				perLine += lt.Data
			}
			if ln == endLine && isMultilineEnd(lt.Kind) {
				break
			}
		}
		lineParts = append(lineParts, perLine)
	}
	out := ""
	for i, p := range lineParts {
		if i > 0 {
			out += "\n"
		}
		out += p
	}
	return out
}

/*
absoluteUnit resolves a lexer-space Position to its absolute code-unit
offset in this snapshot.
*/
func (s *Snapshot) absoluteUnit(pos Position) uint32 {
	if int(pos.LineNumber) >= len(s.lineStartUnits) {
		return 0
	}
	return s.lineStartUnits[pos.LineNumber] + pos.LineCodeUnit
}

/*
PositionFromCodeUnit is the reverse mapping: absolute code unit ->
Position, used by inspection and IDE clients that only track a flat
offset.
*/
func (s *Snapshot) PositionFromCodeUnit(unit uint32) Position {
	line := 0
	for i := 0; i < len(s.lineStartUnits); i++ {
		if i+1 < len(s.lineStartUnits) && s.lineStartUnits[i+1] <= unit {
			continue
		}
		line = i
		break
	}
	local := unit - s.lineStartUnits[line]
	return Position{LineNumber: uint32(line), LineCodeUnit: local}.WithCodeUnit(unit)
}
