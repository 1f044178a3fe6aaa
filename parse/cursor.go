/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parse

import (
	"github.com/devt-tools/pqparse/common"
	"github.com/devt-tools/pqparse/lexer"
)

/*
cursor is the token stream both parser strategies consume, shared via the
same interface described in spec.md §4.4 ("Both share the token cursor
and ParseContext"). It generalizes krotik-ecal's LABuffer (parser.go) -
look-ahead buffer over a lexer channel - into a plain index over an
already-flattened lexer.Snapshot.
*/
type cursor struct {
	tokens            []lexer.Token
	pos               int
	cancellationToken common.CancellationToken
}

func newCursor(snapshot *lexer.Snapshot, token common.CancellationToken) *cursor {
	return &cursor{tokens: snapshot.Tokens, cancellationToken: token}
}

/*
current returns the token at the cursor, or nil at end of input.
*/
func (c *cursor) current() *lexer.Token {
	if c.pos >= len(c.tokens) {
		return nil
	}
	return &c.tokens[c.pos]
}

/*
peek returns the token offset positions ahead of the cursor, or nil.
*/
func (c *cursor) peek(offset int) *lexer.Token {
	i := c.pos + offset
	if i < 0 || i >= len(c.tokens) {
		return nil
	}
	return &c.tokens[i]
}

/*
advance moves the cursor forward one token, checking cancellation first
(spec.md §5: "start of every token consumed").
*/
func (c *cursor) advance() {
	common.CheckCancellation(c.cancellationToken)
	c.pos++
}

func (c *cursor) isDone() bool {
	return c.pos >= len(c.tokens)
}

/*
isAt reports whether the current token has kind k.
*/
func (c *cursor) isAt(k lexer.TokenKind) bool {
	t := c.current()
	return t != nil && t.Kind == k
}

/*
isAtAny reports whether the current token's kind is in ks.
*/
func (c *cursor) isAtAny(ks ...lexer.TokenKind) bool {
	t := c.current()
	if t == nil {
		return false
	}
	for _, k := range ks {
		if t.Kind == k {
			return true
		}
	}
	return false
}

/*
isNotDoneAndNotAny mirrors krotik-ecal's IsNotEndAndNotTokens: true while
there is input left and the current token isn't one of ks. Parsers use
this as a csv/member loop condition.
*/
func (c *cursor) isNotDoneAndNotAny(ks ...lexer.TokenKind) bool {
	return !c.isDone() && !c.isAtAny(ks...)
}
