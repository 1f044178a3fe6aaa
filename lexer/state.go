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
	"strings"

	"github.com/devt-tools/pqparse/common"
)

/*
Settings bundles everything a lexer entry point needs beyond the text
itself: locale for diagnostic message ids and an optional cancellation
capability (spec.md §5/§6).
*/
type Settings struct {
	Locale            string
	CancellationToken common.CancellationToken
}

/*
State holds the ordered sequence of Lines produced by tryLex and
subsequent edits. lines[i].ModeStart == lines[i-1].ModeEnd is maintained
as an invariant across every edit operation.
*/
type State struct {
	Locale string
	Lines  []Line
}

/*
TriedLex is the Ok(State) | Err(error) result of every lexer entry point.
*/
type TriedLex struct {
	State *State
	Err   error
}

/*
splitLines splits text on \n|\r\n|\r, keeping track of which terminator
ended each line. The final element has LineTerminatorNone.
*/
func splitLines(text string) []struct {
	text string
	term LineTerminator
} {
	text = strings.TrimPrefix(text, string(rune(0xFEFF))) // strip leading BOM (spec.md §6)

	var out []struct {
		text string
		term LineTerminator
	}

	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c == '\n' {
			out = append(out, struct {
				text string
				term LineTerminator
			}{text[start:i], LineTerminatorLf})
			i++
			start = i
			continue
		}
		if c == '\r' {
			if i+1 < len(text) && text[i+1] == '\n' {
				out = append(out, struct {
					text string
					term LineTerminator
				}{text[start:i], LineTerminatorCrLf})
				i += 2
				start = i
				continue
			}
			out = append(out, struct {
				text string
				term LineTerminator
			}{text[start:i], LineTerminatorCr})
			i++
			start = i
			continue
		}
		i++
	}
	out = append(out, struct {
		text string
		term LineTerminator
	}{text[start:], LineTerminatorNone})

	return out
}

/*
tokenizeLine runs scanLine and packages the result (including any
per-line error) into a Line, given the inherited mode.
*/
func tokenizeLine(text string, term LineTerminator, modeStart LineMode) Line {
	tokens, modeEnd, lexErr := scanLine(text, modeStart)
	return Line{
		LineString:     text,
		LineTerminator: term,
		ModeStart:      modeStart,
		ModeEnd:        modeEnd,
		Tokens:         tokens,
		Error:          lexErr,
	}
}

/*
TryLex tokenizes text from scratch, mirroring Lexer.tryLex in spec.md §6.
*/
func TryLex(settings Settings, text string) (result TriedLex) {
	defer common.RecoverCommon(&result.Err)

	common.CheckCancellation(settings.CancellationToken)

	parts := splitLines(text)
	lines := make([]Line, 0, len(parts))

	mode := LineModeDefault
	for _, part := range parts {
		common.CheckCancellation(settings.CancellationToken)
		line := tokenizeLine(part.text, part.term, mode)
		lines = append(lines, line)
		mode = line.ModeEnd
	}

	result.State = &State{Locale: settings.Locale, Lines: lines}
	return result
}

/*
TryAppendLine appends a new line of text after the last line of state,
mirroring Lexer.tryAppendLine. terminator becomes the terminator of the
previous last line (the line break that now separates it from text); the
appended line itself gets LineTerminatorNone.
*/
func TryAppendLine(settings Settings, state *State, text string, terminator LineTerminator) (result TriedLex) {
	defer common.RecoverCommon(&result.Err)

	common.CheckCancellation(settings.CancellationToken)

	newState := cloneState(state)

	mode := LineModeDefault
	if n := len(newState.Lines); n > 0 {
		mode = newState.Lines[n-1].ModeEnd
		// retroactively give the previous last line its real terminator
		newState.Lines[n-1].LineTerminator = terminator
	}

	newState.Lines = append(newState.Lines, tokenizeLine(text, LineTerminatorNone, mode))

	result.State = newState
	return result
}

/*
TryDeleteLine removes lineNumber and re-lexes every subsequent line,
stopping early once the re-tokenized ModeEnd converges with what was
previously stored (spec.md §4.1).
*/
func TryDeleteLine(settings Settings, state *State, lineNumber int) (result TriedLex) {
	defer common.RecoverCommon(&result.Err)

	if err := validateLineNumber(state, lineNumber); err != nil {
		result.Err = err
		return result
	}

	newState := cloneState(state)
	newState.Lines = append(newState.Lines[:lineNumber], newState.Lines[lineNumber+1:]...)

	relexFrom(settings, newState, lineNumber)

	result.State = newState
	return result
}

/*
TryUpdateLine retokenizes lineNumber with new text and propagates mode
changes downward, mirroring Lexer.tryUpdateLine.
*/
func TryUpdateLine(settings Settings, state *State, lineNumber int, text string) (result TriedLex) {
	defer common.RecoverCommon(&result.Err)

	if err := validateLineNumber(state, lineNumber); err != nil {
		result.Err = err
		return result
	}

	newState := cloneState(state)
	newState.Lines[lineNumber].LineString = text

	relexFrom(settings, newState, lineNumber)

	result.State = newState
	return result
}

/*
Range identifies a half-open [Start, End) edit region across one or more
lines, in line-number/code-unit terms (not yet resolved against a
snapshot).
*/
type Range struct {
	StartLine     int
	StartCodeUnit uint32
	EndLine       int
	EndCodeUnit   uint32
}

/*
TryUpdateRange replaces the half-open region described by r with text,
re-lexing only from the smallest affected line downward and stopping as
soon as the newly computed ModeEnd equals the previously stored one
(spec.md §4.1). TryUpdateRange(state, fullRange, text) is equivalent to
TryLex(settings, text) as a state (spec.md §8 round-trip property).
*/
func TryUpdateRange(settings Settings, state *State, r Range, text string) (result TriedLex) {
	defer common.RecoverCommon(&result.Err)

	if err := validateRange(state, r); err != nil {
		result.Err = err
		return result
	}

	newState := cloneState(state)

	prefix := newState.Lines[r.StartLine].LineString[:codeUnitToByteOffset(newState.Lines[r.StartLine].LineString, r.StartCodeUnit)]
	suffix := newState.Lines[r.EndLine].LineString[codeUnitToByteOffset(newState.Lines[r.EndLine].LineString, r.EndCodeUnit):]
	replacement := prefix + text + suffix

	parts := splitLines(replacement)
	replacementLines := make([]Line, 0, len(parts))
	for i, part := range parts {
		term := part.term
		if i == len(parts)-1 {
			// the final synthesized line inherits the terminator of the
			// original line whose suffix it absorbed.
			term = newState.Lines[r.EndLine].LineTerminator
		}
		replacementLines = append(replacementLines, Line{LineString: part.text, LineTerminator: term})
	}

	tail := append([]Line{}, newState.Lines[r.EndLine+1:]...)
	newState.Lines = append(newState.Lines[:r.StartLine], replacementLines...)
	newState.Lines = append(newState.Lines, tail...)

	relexFrom(settings, newState, r.StartLine)

	result.State = newState
	return result
}

/*
relexFrom re-tokenizes every line starting at index from until the
computed ModeEnd matches what was already stored there (meaning
downstream lines are still valid), or until lines run out.
*/
func relexFrom(settings Settings, state *State, from int) {
	mode := LineModeDefault
	if from > 0 {
		mode = state.Lines[from-1].ModeEnd
	}

	for i := from; i < len(state.Lines); i++ {
		common.CheckCancellation(settings.CancellationToken)

		previousModeEnd := state.Lines[i].ModeEnd
		hadTokensAlready := state.Lines[i].Tokens != nil || state.Lines[i].Error != nil

		state.Lines[i] = tokenizeLine(state.Lines[i].LineString, state.Lines[i].LineTerminator, mode)

		mode = state.Lines[i].ModeEnd

		if hadTokensAlready && mode == previousModeEnd && i != from {
			break
		}
	}
}

func cloneState(state *State) *State {
	lines := make([]Line, len(state.Lines))
	copy(lines, state.Lines)
	return &State{Locale: state.Locale, Lines: lines}
}

func validateLineNumber(state *State, lineNumber int) error {
	if lineNumber < 0 {
		return &LexError{Kind: ErrBadLineNumberLessThanZero}
	}
	if lineNumber >= len(state.Lines) {
		return &LexError{Kind: ErrBadLineNumberGreaterThanNumLines}
	}
	return nil
}

func validateRange(state *State, r Range) error {
	if r.StartLine < 0 {
		return &LexError{Kind: ErrBadRangeLineNumberStartLessThanZero}
	}
	if r.StartLine >= len(state.Lines) {
		return &LexError{Kind: ErrBadRangeLineNumberStartGreaterThanNumLines}
	}
	if r.EndLine >= len(state.Lines) {
		return &LexError{Kind: ErrBadRangeLineNumberEndGreaterThanNumLines}
	}
	if r.StartLine > r.EndLine {
		return &LexError{Kind: ErrBadRangeLineNumberStartGreaterThanEnd}
	}
	if r.StartLine == r.EndLine && r.StartCodeUnit > r.EndCodeUnit {
		return &LexError{Kind: ErrBadRangeSameLineStartHigher}
	}
	if r.StartCodeUnit > state.Lines[r.StartLine].CodeUnitLength() {
		return &LexError{Kind: ErrBadRangeLineCodeUnitStartGreaterThanLineLength}
	}
	if r.EndCodeUnit > state.Lines[r.EndLine].CodeUnitLength() {
		return &LexError{Kind: ErrBadRangeLineCodeUnitEndGreaterThanLineLength}
	}
	return nil
}

/*
codeUnitToByteOffset converts a UTF-16 code unit offset within s to a Go
byte offset, for slicing the underlying UTF-8 string.
*/
func codeUnitToByteOffset(s string, codeUnit uint32) int {
	runes := []rune(s)
	var unitsSoFar uint32
	for i, r := range runes {
		if unitsSoFar >= codeUnit {
			return len(string(runes[:i]))
		}
		if r > 0xFFFF {
			unitsSoFar += 2
		} else {
			unitsSoFar++
		}
	}
	return len(s)
}
