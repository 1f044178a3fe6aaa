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
	"errors"
	"fmt"

	"github.com/devt-tools/pqparse/lexer"
)

/*
Parse error kind sentinels (spec.md §7).
*/
var (
	ErrExpectedAnyTokenKind          = errors.New("expected any of a set of token kinds")
	ErrExpectedTokenKind             = errors.New("expected a specific token kind")
	ErrExpectedGeneralizedIdentifier = errors.New("expected a generalized identifier")
	ErrInvalidPrimitiveType          = errors.New("invalid primitive type")
	ErrUnusedTokensRemain            = errors.New("unused tokens remain after parsing")
)

/*
ParseError carries the offending token (or nil if parsing ran off the end
of input) plus the ParseContext snapshot at the point of failure, so the
caller can still drive Inspection over the partial tree (spec.md §4.4
"Error recovery").
*/
type ParseError struct {
	Kind    error
	Token   *lexer.Token
	Context *ParseContext
	Detail  string
}

func (e *ParseError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("parse error: %v at %s (token %q)", e.Kind, e.Token.Range, e.Token.Value)
	}
	return fmt.Sprintf("parse error: %v at end of input", e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
