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

import "unicode/utf16"

/*
utf16Len returns the number of UTF-16 code units s would occupy. Go
source text is UTF-8 internally but positions are defined in code units
matching what an LSP client sends (see SPEC_FULL.md), so every
line-length / offset computation goes through this conversion rather than
len(s) or utf8.RuneCountInString(s).
*/
func utf16Len(s string) uint32 {
	return uint32(len(utf16.Encode([]rune(s))))
}

/*
utf16IndexFromRunes converts a rune index within runes to a UTF-16 code
unit offset.
*/
func utf16IndexFromRunes(runes []rune, runeIdx int) uint32 {
	return utf16Len(string(runes[:runeIdx]))
}
