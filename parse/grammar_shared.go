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
	"github.com/devt-tools/pqparse/lexer"
)

/*
parserState is the state both strategies thread through their grammar
functions: the shared cursor and ParseContext (spec.md §4.4 "Both
implement the same interface... share the token cursor and
ParseContext"), plus the settings that pick which strategy's binary
expression reader readExpression dispatches to.
*/
type parserState struct {
	cursor   *cursor
	ctx      *ParseContext
	settings Settings
}

func (p *parserState) fail(kind error, detail string) {
	panic(&ParseError{Kind: kind, Token: p.cursor.current(), Detail: detail})
}

func (p *parserState) failExpectedToken(kind lexer.TokenKind) {
	panic(&ParseError{Kind: ErrExpectedTokenKind, Token: p.cursor.current(), Detail: kind.String()})
}

/*
expect consumes the current token if it has kind k and returns it,
otherwise raises ExpectedTokenKind.
*/
func (p *parserState) expect(k lexer.TokenKind) lexer.Token {
	t := p.cursor.current()
	if t == nil || t.Kind != k {
		p.failExpectedToken(k)
	}
	tok := *t
	p.cursor.advance()
	return tok
}

/*
tryConsume consumes and returns the current token if it has kind k,
reporting ok=false (without failing) otherwise - used for optional
grammar pieces.
*/
func (p *parserState) tryConsume(k lexer.TokenKind) (lexer.Token, bool) {
	t := p.cursor.current()
	if t == nil || t.Kind != k {
		return lexer.Token{}, false
	}
	tok := *t
	p.cursor.advance()
	return tok, true
}

/*
startNode opens a new ContextNode of kind, recording the current token's
start position for the partial tree inspection relies on.
*/
func (p *parserState) startNode(kind NodeKind) *ContextNode {
	ctx := p.ctx.Start(kind)
	if t := p.cursor.current(); t != nil {
		start := t.Range.Start
		ctx.MaybeTokenStart = &start
	}
	return ctx
}

/*
endNode completes the context currently open, wrapping startRange..the
last consumed token into the node's TokenRange, with children in
attribute-index order.
*/
func (p *parserState) endNode(kind NodeKind, startToken *lexer.Token, children []*AstNode) *AstNode {
	var tr lexer.TokenRange
	if startToken != nil {
		tr.Start = startToken.Range.Start
	}
	if prev := p.cursor.peek(-1); prev != nil {
		tr.End = prev.Range.End
	} else if startToken != nil {
		tr.End = startToken.Range.End
	}

	node := &AstNode{Kind: kind, TokenRange: tr, Children: children}
	p.ctx.EndAst(node)
	return node
}

/*
leaf builds and immediately completes a terminal AstNode wrapping tok,
with Literal set to literal (callers pass the token's lexeme; an
identifier's '@' prefix is its own token and never part of it).
*/
func (p *parserState) leaf(kind NodeKind, tok lexer.Token, literal string) *AstNode {
	p.ctx.Start(kind)
	node := &AstNode{Kind: kind, TokenRange: tok.Range, Token: &tok, Literal: literal}
	p.ctx.EndAst(node)
	return node
}

// Constants and identifiers
// ==========================

/*
readConstant wraps a required fixed-lexeme token (keywords, punctuation)
as a NodeKindConstant leaf - the CST is "concrete": every token,
including punctuation, is retained (spec.md glossary "CST").
*/
func (p *parserState) readConstant(k lexer.TokenKind) *AstNode {
	tok := p.expect(k)
	return p.leaf(NodeKindConstant, tok, tok.Value)
}

func (p *parserState) tryReadConstant(k lexer.TokenKind) *AstNode {
	tok, ok := p.tryConsume(k)
	if !ok {
		return nil
	}
	return p.leaf(NodeKindConstant, tok, tok.Value)
}

/*
readIdentifier reads a bare or quoted identifier leaf. Quoted identifiers
(#"x") are always identifiers, never keywords (spec.md §4.4 tie-break).
*/
func (p *parserState) readIdentifier() *AstNode {
	t := p.cursor.current()
	if t == nil || !isIdentifierLikeTokenKind(t.Kind) {
		p.failExpectedToken(lexer.TokenKindIdentifier)
	}
	tok := *t
	p.cursor.advance()
	return p.leaf(NodeKindIdentifier, tok, tok.Value)
}

/*
isIdentifierLikeTokenKind reports whether k can stand in identifier
position: a plain or quoted identifier, or one of the '#'-prefixed
keyword constructors (#date, #binary, ...), which the grammar treats as
ordinary identifiers that happen to always be followed by an
InvokeExpression (spec.md glossary "Hash keywords").
*/
func (p *parserState) isAtIdentifierLike() bool {
	t := p.cursor.current()
	return t != nil && isIdentifierLikeTokenKind(t.Kind)
}

func isIdentifierLikeTokenKind(k lexer.TokenKind) bool {
	switch k {
	case lexer.TokenKindIdentifier, lexer.TokenKindQuotedIdentifier,
		lexer.TokenKindHashBinary, lexer.TokenKindHashDate, lexer.TokenKindHashDateTime,
		lexer.TokenKindHashDateTimeZone, lexer.TokenKindHashDuration, lexer.TokenKindHashInfinity,
		lexer.TokenKindHashNan, lexer.TokenKindHashSections, lexer.TokenKindHashShared,
		lexer.TokenKindHashTable, lexer.TokenKindHashTime:
		return true
	}
	return false
}

/*
readIdentifierExpression reads an optional '@' prefix followed by an
identifier - the '@' binds tighter than any suffix (spec.md §4.4).
*/
func (p *parserState) readIdentifierExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindIdentifierExpression)

	var children []*AstNode
	if at := p.tryReadConstant(lexer.TokenKindAt); at != nil {
		children = append(children, at)
	}
	children = append(children, p.readIdentifier())

	return p.endNode(NodeKindIdentifierExpression, startTok, children)
}

/*
readGeneralizedIdentifier reads a run of identifier/keyword tokens and
'.' separated words as a single generalized identifier (used for field
names, which may contain keyword-shaped words). Raises
ExpectedGeneralizedIdentifier if the current token can't start one.
*/
func (p *parserState) readGeneralizedIdentifier() *AstNode {
	t := p.cursor.current()
	if t == nil || !isGeneralizedIdentifierPiece(t.Kind) {
		p.fail(ErrExpectedGeneralizedIdentifier, "")
	}

	startTok := p.cursor.current()
	p.startNode(NodeKindGeneralizedIdentifier)

	literal := ""
	for {
		piece := p.cursor.current()
		if piece == nil || !isGeneralizedIdentifierPiece(piece.Kind) {
			break
		}
		literal += piece.Value
		p.cursor.advance()

		if p.cursor.isAt(lexer.TokenKindDot) {
			literal += "."
			p.cursor.advance()
			continue
		}
		break
	}

	tr := lexer.TokenRange{Start: startTok.Range.Start}
	if prev := p.cursor.peek(-1); prev != nil {
		tr.End = prev.Range.End
	}
	node := &AstNode{Kind: NodeKindGeneralizedIdentifier, TokenRange: tr, Literal: literal}
	p.ctx.EndAst(node)
	return node
}

func isGeneralizedIdentifierPiece(k lexer.TokenKind) bool {
	if k == lexer.TokenKindIdentifier || k == lexer.TokenKindQuotedIdentifier {
		return true
	}
	_, isKeyword := keywordKindByToken(k)
	return isKeyword
}

func keywordKindByToken(k lexer.TokenKind) (lexer.TokenKind, bool) {
	switch k {
	case lexer.TokenKindAnd, lexer.TokenKindAs, lexer.TokenKindEach, lexer.TokenKindElse,
		lexer.TokenKindError, lexer.TokenKindFalse, lexer.TokenKindIf, lexer.TokenKindIn,
		lexer.TokenKindIs, lexer.TokenKindLet, lexer.TokenKindMeta, lexer.TokenKindNot,
		lexer.TokenKindOr, lexer.TokenKindOtherwise, lexer.TokenKindSection, lexer.TokenKindShared,
		lexer.TokenKindThen, lexer.TokenKindTrue, lexer.TokenKindTry, lexer.TokenKindType,
		lexer.TokenKindCatch:
		return k, true
	}
	return lexer.TokenKindUnknown, false
}

// Literals
// ========

func (p *parserState) isAtLiteral() bool {
	return p.cursor.isAtAny(
		lexer.TokenKindNumericLiteral, lexer.TokenKindHexLiteral, lexer.TokenKindTextLiteral,
		lexer.TokenKindNullLiteral, lexer.TokenKindTrue, lexer.TokenKindFalse,
	)
}

func (p *parserState) readLiteralExpression() *AstNode {
	t := p.cursor.current()
	if t == nil || !p.isAtLiteral() {
		p.fail(ErrExpectedAnyTokenKind, "literal")
	}
	tok := *t
	p.cursor.advance()
	return p.leaf(NodeKindLiteralExpression, tok, tok.Value)
}

// Csv helper
// ==========

/*
readCsv reads a comma-separated list terminated by closer, wrapping the
whole list in an ArrayWrapper of Csv nodes (each Csv wraps one element
plus its optional trailing comma Constant), mirroring the grammar's
"Csv" wrapper node kind.
*/
func (p *parserState) readCsv(closer lexer.TokenKind, element func() *AstNode) *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindArrayWrapper)

	var items []*AstNode
	for p.cursor.isNotDoneAndNotAny(closer) {
		itemStartTok := p.cursor.current()
		p.startNode(NodeKindCsv)

		var csvChildren []*AstNode
		csvChildren = append(csvChildren, element())

		if comma := p.tryReadConstant(lexer.TokenKindComma); comma != nil {
			csvChildren = append(csvChildren, comma)
			items = append(items, p.endNode(NodeKindCsv, itemStartTok, csvChildren))
			continue
		}

		items = append(items, p.endNode(NodeKindCsv, itemStartTok, csvChildren))
		break
	}

	return p.endNode(NodeKindArrayWrapper, startTok, items)
}

// let / if / each / error / function
// ===================================

func (p *parserState) readLetExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindLetExpression)

	var children []*AstNode
	children = append(children, p.readConstant(lexer.TokenKindLet))
	children = append(children, p.readCsv(lexer.TokenKindIn, p.readIdentifierPairedExpression))
	children = append(children, p.readConstant(lexer.TokenKindIn))
	children = append(children, p.readExpression())

	return p.endNode(NodeKindLetExpression, startTok, children)
}

func (p *parserState) readIdentifierPairedExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindIdentifierPairedExpression)

	children := []*AstNode{
		p.readIdentifier(),
		p.readConstant(lexer.TokenKindEqual),
		p.readExpression(),
	}

	return p.endNode(NodeKindIdentifierPairedExpression, startTok, children)
}

func (p *parserState) readGeneralizedIdentifierPairedExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindGeneralizedIdentifierPairedExpression)

	children := []*AstNode{
		p.readGeneralizedIdentifier(),
		p.readConstant(lexer.TokenKindEqual),
		p.readExpression(),
	}

	return p.endNode(NodeKindGeneralizedIdentifierPairedExpression, startTok, children)
}

func (p *parserState) readIfExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindIfExpression)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindIf),
		p.readExpression(),
		p.readConstant(lexer.TokenKindThen),
		p.readExpression(),
		p.readConstant(lexer.TokenKindElse),
		p.readExpression(),
	}

	return p.endNode(NodeKindIfExpression, startTok, children)
}

func (p *parserState) readEachExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindEachExpression)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindEach),
		p.readExpression(),
	}

	return p.endNode(NodeKindEachExpression, startTok, children)
}

func (p *parserState) readErrorRaisingExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindErrorRaisingExpression)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindError),
		p.readExpression(),
	}

	return p.endNode(NodeKindErrorRaisingExpression, startTok, children)
}

/*
readErrorHandlingExpression reads "try <expr>" followed by either an
"otherwise <expr>" trailer or a "catch (x) => <expr>" trailer (the latter
is the newer-corpus variant per spec.md §9 open question - both are
ErrorHandlingExpression with an optional OtherwiseExpression or
CatchExpression child).
*/
func (p *parserState) readErrorHandlingExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindErrorHandlingExpression)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindTry),
		p.readExpression(),
	}

	if p.cursor.isAt(lexer.TokenKindOtherwise) {
		otherwiseStart := p.cursor.current()
		p.startNode(NodeKindOtherwiseExpression)
		otherwiseChildren := []*AstNode{
			p.readConstant(lexer.TokenKindOtherwise),
			p.readExpression(),
		}
		children = append(children, p.endNode(NodeKindOtherwiseExpression, otherwiseStart, otherwiseChildren))
	} else if p.cursor.isAt(lexer.TokenKindCatch) {
		catchStart := p.cursor.current()
		p.startNode(NodeKindCatchExpression)
		catchChildren := []*AstNode{
			p.readConstant(lexer.TokenKindCatch),
			p.readConstant(lexer.TokenKindLeftParenthesis),
			p.readIdentifier(),
			p.readConstant(lexer.TokenKindRightParenthesis),
			p.readConstant(lexer.TokenKindFatArrow),
			p.readExpression(),
		}
		children = append(children, p.endNode(NodeKindCatchExpression, catchStart, catchChildren))
	}

	return p.endNode(NodeKindErrorHandlingExpression, startTok, children)
}

/*
readParameterList reads "(" param-csv ")", optionally requiring each
parameter to carry a type annotation (used by the
ParameterSpecificationList entry point).
*/
func (p *parserState) readParameterList(requireType bool) *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindParameterList)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftParenthesis),
		p.readCsv(lexer.TokenKindRightParenthesis, func() *AstNode { return p.readParameter(requireType) }),
		p.readConstant(lexer.TokenKindRightParenthesis),
	}

	return p.endNode(NodeKindParameterList, startTok, children)
}

func (p *parserState) readParameter(requireType bool) *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindParameter)

	var children []*AstNode
	if opt := p.tryReadConstant(lexer.TokenKindQuestionMark); opt != nil {
		children = append(children, opt)
	}
	children = append(children, p.readIdentifier())

	if p.cursor.isAt(lexer.TokenKindAs) || requireType {
		children = append(children, p.readAsType())
	}

	return p.endNode(NodeKindParameter, startTok, children)
}

func (p *parserState) readAsType() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindAsType)
	children := []*AstNode{
		p.readConstant(lexer.TokenKindAs),
		p.readTypeExpression(),
	}
	return p.endNode(NodeKindAsType, startTok, children)
}

/*
readFunctionExpression reads "(params) as T => body" - the "as T" return
annotation is optional.
*/
func (p *parserState) readFunctionExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindFunctionExpression)

	children := []*AstNode{p.readParameterList(false)}

	if p.cursor.isAt(lexer.TokenKindAs) {
		asStart := p.cursor.current()
		p.startNode(NodeKindAsNullablePrimitiveType)
		asChildren := []*AstNode{p.readConstant(lexer.TokenKindAs), p.readNullablePrimitiveType()}
		children = append(children, p.endNode(NodeKindAsNullablePrimitiveType, asStart, asChildren))
	}

	children = append(children, p.readConstant(lexer.TokenKindFatArrow))
	children = append(children, p.readExpression())

	return p.endNode(NodeKindFunctionExpression, startTok, children)
}

// record / list
// =============

/*
readRecordExpression disambiguates M's two record productions by bounded
lookahead (spec.md §4.4 "Disambiguation", the same technique
readFieldSelectorOrProjection and readParenthesizedOrFunctionExpression
use): every field value in "[a = 1, b = [c = 2]]" reduces to the
restricted any-literal grammar, so it is a RecordLiteral; the moment a
field value is a full expression ("[a = f(1)]"), the literal attempt
panics partway through and the parser restores and retries as the
general RecordExpression, whose GeneralizedIdentifierPairedExpression
fields admit any expression.
*/
func (p *parserState) readRecordExpression() *AstNode {
	snap := p.ctx.TakeSnapshot()
	savedPos := p.cursor.pos

	if lit := p.tryReadRecordLiteral(); lit != nil {
		return lit
	}

	p.ctx.Restore(snap)
	p.cursor.pos = savedPos

	return p.readRecordExpressionGeneral()
}

func (p *parserState) tryReadRecordLiteral() (result *AstNode) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()
	return p.readRecordLiteralStrict()
}

func (p *parserState) readRecordLiteralStrict() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindRecordLiteral)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBracket),
		p.readCsv(lexer.TokenKindRightBracket, p.readGeneralizedIdentifierPairedAnyLiteral),
		p.readConstant(lexer.TokenKindRightBracket),
	}

	return p.endNode(NodeKindRecordLiteral, startTok, children)
}

func (p *parserState) readRecordExpressionGeneral() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindRecordExpression)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBracket),
		p.readCsv(lexer.TokenKindRightBracket, p.readGeneralizedIdentifierPairedExpression),
		p.readConstant(lexer.TokenKindRightBracket),
	}

	return p.endNode(NodeKindRecordExpression, startTok, children)
}

/*
readGeneralizedIdentifierPairedAnyLiteral is the RecordLiteral field form:
same "identifier = value" shape as GeneralizedIdentifierPairedExpression,
but value is restricted to readAnyLiteral's any-literal grammar.
*/
func (p *parserState) readGeneralizedIdentifierPairedAnyLiteral() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindGeneralizedIdentifierPairedAnyLiteral)

	children := []*AstNode{
		p.readGeneralizedIdentifier(),
		p.readConstant(lexer.TokenKindEqual),
		p.readAnyLiteral(),
	}

	return p.endNode(NodeKindGeneralizedIdentifierPairedAnyLiteral, startTok, children)
}

/*
readAnyLiteral reads M's restricted "any-literal" production: a plain
literal token, or a nested record-literal / list-literal. It never
recurses into a full expression, so a non-literal value anywhere inside
unwinds the panic back to the nearest tryReadRecordLiteral/
tryReadListLiteral, which is exactly what tells the caller to fall back
to the general Record/ListExpression production instead.
*/
func (p *parserState) readAnyLiteral() *AstNode {
	switch {
	case p.cursor.isAt(lexer.TokenKindLeftBracket):
		return p.readRecordLiteralStrict()
	case p.cursor.isAt(lexer.TokenKindLeftBrace):
		return p.readListLiteralStrict()
	case p.isAtLiteral():
		return p.readLiteralExpression()
	default:
		p.fail(ErrExpectedAnyTokenKind, "literal")
		return nil
	}
}

/*
readListExpression disambiguates RecordExpression's list counterpart the
same way: "{1, 2, {3, 4}}" reduces entirely to any-literal items, so it
is a ListLiteral; a bare ".." range item or any other non-literal
element falls back to the general ListExpression (which is also where
"{1..2} is a RangeExpression inside a ListExpression", spec.md §4.4,
still applies).
*/
func (p *parserState) readListExpression() *AstNode {
	snap := p.ctx.TakeSnapshot()
	savedPos := p.cursor.pos

	if lit := p.tryReadListLiteral(); lit != nil {
		return lit
	}

	p.ctx.Restore(snap)
	p.cursor.pos = savedPos

	return p.readListExpressionGeneral()
}

func (p *parserState) tryReadListLiteral() (result *AstNode) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()
	return p.readListLiteralStrict()
}

func (p *parserState) readListLiteralStrict() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindListLiteral)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBrace),
		p.readCsv(lexer.TokenKindRightBrace, p.readAnyLiteral),
		p.readConstant(lexer.TokenKindRightBrace),
	}

	return p.endNode(NodeKindListLiteral, startTok, children)
}

func (p *parserState) readListExpressionGeneral() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindListExpression)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBrace),
		p.readCsv(lexer.TokenKindRightBrace, p.readListItem),
		p.readConstant(lexer.TokenKindRightBrace),
	}

	return p.endNode(NodeKindListExpression, startTok, children)
}

func (p *parserState) readListItem() *AstNode {
	left := p.readExpression()

	if p.cursor.isAt(lexer.TokenKindDotDot) {
		dots := p.readConstant(lexer.TokenKindDotDot)
		right := p.readExpression()
		return p.ctx.Rewrap(NodeKindRangeExpression, left, dots, right)
	}

	return left
}

// type expressions
// =================

var primitiveTypeNames = map[string]bool{
	"any": true, "anynonnull": true, "binary": true, "date": true, "datetime": true,
	"datetimezone": true, "duration": true, "function": true, "list": true, "logical": true,
	"none": true, "null": true, "number": true, "record": true, "table": true, "text": true, "type": true,
	"time": true, "action": true,
}

func (p *parserState) isAtPrimitiveTypeName() bool {
	t := p.cursor.current()
	if t == nil || t.Kind != lexer.TokenKindIdentifier {
		return false
	}
	return primitiveTypeNames[t.Value]
}

/*
readTypeExpression reads "type <primary-type>" or falls through to a
plain expression when the type grammar's first-set isn't matched (a
TypePrimaryType is always introduced by the 'type' keyword; bare
primitive names like "number" appearing where a type is expected are
parsed directly as PrimitiveType without a leading 'type' keyword, which
is how M's inline field-type annotations work).
*/
func (p *parserState) readTypeExpression() *AstNode {
	if p.cursor.isAt(lexer.TokenKindType) {
		startTok := p.cursor.current()
		p.startNode(NodeKindTypePrimaryType)
		children := []*AstNode{p.readConstant(lexer.TokenKindType), p.readPrimaryType()}
		return p.endNode(NodeKindTypePrimaryType, startTok, children)
	}
	return p.readPrimaryType()
}

func (p *parserState) readNullablePrimitiveType() *AstNode {
	if p.cursor.current() != nil && p.cursor.current().Kind == lexer.TokenKindIdentifier && p.cursor.current().Value == "nullable" {
		startTok := p.cursor.current()
		p.startNode(NodeKindNullablePrimitiveType)
		p.cursor.advance()
		nullableKw := p.leaf(NodeKindConstant, lexer.Token{Value: "nullable", Range: startTok.Range}, "nullable")
		children := []*AstNode{nullableKw, p.readPrimaryType()}
		return p.endNode(NodeKindNullablePrimitiveType, startTok, children)
	}
	return p.readPrimaryType()
}

func (p *parserState) readPrimaryType() *AstNode {
	switch {
	case p.cursor.isAt(lexer.TokenKindLeftBracket):
		return p.readRecordType()
	case p.cursor.isAt(lexer.TokenKindLeftBrace):
		return p.readListType()
	case p.isAtTableTypeStart():
		return p.readTableType()
	case p.isAtFunctionTypeStart():
		return p.readFunctionType()
	case p.isAtNullableTypeStart():
		return p.readNullableType()
	case p.isAtPrimitiveTypeName():
		tok := *p.cursor.current()
		p.cursor.advance()
		return p.leaf(NodeKindPrimitiveType, tok, tok.Value)
	default:
		return p.readPrimaryExpression()
	}
}

func (p *parserState) isAtTableTypeStart() bool {
	t := p.cursor.current()
	return t != nil && t.Kind == lexer.TokenKindIdentifier && t.Value == "table" && p.cursor.peek(1) != nil && p.cursor.peek(1).Kind == lexer.TokenKindLeftBracket
}

func (p *parserState) isAtFunctionTypeStart() bool {
	t := p.cursor.current()
	return t != nil && t.Kind == lexer.TokenKindIdentifier && t.Value == "function" && p.cursor.peek(1) != nil && p.cursor.peek(1).Kind == lexer.TokenKindLeftParenthesis
}

func (p *parserState) isAtNullableTypeStart() bool {
	t := p.cursor.current()
	return t != nil && t.Kind == lexer.TokenKindIdentifier && t.Value == "nullable"
}

func (p *parserState) readRecordType() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindRecordType)
	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBracket),
		p.readFieldSpecificationList(),
		p.readConstant(lexer.TokenKindRightBracket),
	}
	return p.endNode(NodeKindRecordType, startTok, children)
}

func (p *parserState) readFieldSpecificationList() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindFieldSpecificationList)
	var items []*AstNode
	for p.cursor.isNotDoneAndNotAny(lexer.TokenKindRightBracket) {
		items = append(items, p.readFieldSpecification())
		if p.tryReadConstant(lexer.TokenKindComma) == nil {
			break
		}
	}
	return p.endNode(NodeKindFieldSpecificationList, startTok, items)
}

/*
readFieldSpecification reads an optional leading contextual "optional"
keyword (not a reserved word - any other identifier use of "optional" is
unaffected) followed by the field's name and an optional type
annotation.
*/
func (p *parserState) readFieldSpecification() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindFieldSpecification)

	var children []*AstNode
	if t := p.cursor.current(); t != nil && t.Kind == lexer.TokenKindIdentifier && t.Value == "optional" {
		children = append(children, p.leafKeywordIdentifier("optional"))
	}
	children = append(children, p.readGeneralizedIdentifier())

	if p.cursor.isAt(lexer.TokenKindEqual) {
		fieldTypeStart := p.cursor.current()
		p.startNode(NodeKindFieldTypeSpecification)
		ftChildren := []*AstNode{p.readConstant(lexer.TokenKindEqual), p.readTypeExpression()}
		children = append(children, p.endNode(NodeKindFieldTypeSpecification, fieldTypeStart, ftChildren))
	}

	return p.endNode(NodeKindFieldSpecification, startTok, children)
}

func (p *parserState) readListType() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindListType)
	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBrace),
		p.readTypeExpression(),
		p.readConstant(lexer.TokenKindRightBrace),
	}
	return p.endNode(NodeKindListType, startTok, children)
}

func (p *parserState) readTableType() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindTableType)
	tableKw := p.leafKeywordIdentifier("table")
	children := []*AstNode{tableKw, p.readRecordType()}
	return p.endNode(NodeKindTableType, startTok, children)
}

func (p *parserState) readFunctionType() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindFunctionType)
	functionKw := p.leafKeywordIdentifier("function")
	children := []*AstNode{functionKw, p.readParameterList(true)}

	asStart := p.cursor.current()
	p.startNode(NodeKindAsType)
	asChildren := []*AstNode{p.readConstant(lexer.TokenKindAs), p.readTypeExpression()}
	children = append(children, p.endNode(NodeKindAsType, asStart, asChildren))

	return p.endNode(NodeKindFunctionType, startTok, children)
}

func (p *parserState) readNullableType() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindNullableType)
	nullableKw := p.leafKeywordIdentifier("nullable")
	children := []*AstNode{nullableKw, p.readTypeExpression()}
	return p.endNode(NodeKindNullableType, startTok, children)
}

func (p *parserState) leafKeywordIdentifier(word string) *AstNode {
	tok := p.expect(lexer.TokenKindIdentifier)
	if tok.Value != word {
		panic(&ParseError{Kind: ErrInvalidPrimitiveType, Token: &tok, Detail: word})
	}
	return p.leaf(NodeKindConstant, tok, tok.Value)
}

// recursive primary expression chain
// ===================================

/*
readPrimaryExpression reads a base primary (parenthesized, literal,
identifier, record/list literal, not-implemented "...", or a type
primary) and then chains zero or more InvokeExpression / ItemAccess /
FieldSelector / FieldProjection suffixes left-to-right into a
RecursivePrimaryExpression (spec.md §4.4 tie-break).
*/
func (p *parserState) readPrimaryExpression() *AstNode {
	base := p.readPrimaryBase()

	if !p.isAtRecursiveSuffix() {
		return base
	}

	// base and every suffix below were each parsed (and completed) as if
	// they were ordinary siblings under whatever production is currently
	// open; Rewrap folds them into one RecursivePrimaryExpression node
	// occupying base's former slot, same trick buildBinaryNode uses.
	nodes := []*AstNode{base}
	for p.isAtRecursiveSuffix() {
		nodes = append(nodes, p.readRecursiveSuffix())
	}

	return p.ctx.Rewrap(NodeKindRecursivePrimaryExpression, nodes...)
}

func (p *parserState) isAtRecursiveSuffix() bool {
	return p.cursor.isAtAny(lexer.TokenKindLeftParenthesis, lexer.TokenKindLeftBrace, lexer.TokenKindLeftBracket)
}

func (p *parserState) readRecursiveSuffix() *AstNode {
	switch {
	case p.cursor.isAt(lexer.TokenKindLeftParenthesis):
		return p.readInvokeExpression()
	case p.cursor.isAt(lexer.TokenKindLeftBrace):
		return p.readItemAccessExpression()
	default:
		return p.readFieldSelectorOrProjection()
	}
}

func (p *parserState) readInvokeExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindInvokeExpression)
	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftParenthesis),
		p.readCsv(lexer.TokenKindRightParenthesis, p.readExpression),
		p.readConstant(lexer.TokenKindRightParenthesis),
	}
	return p.endNode(NodeKindInvokeExpression, startTok, children)
}

func (p *parserState) readItemAccessExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindItemAccessExpression)
	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBrace),
		p.readExpression(),
		p.readConstant(lexer.TokenKindRightBrace),
	}
	return p.endNode(NodeKindItemAccessExpression, startTok, children)
}

/*
readFieldSelectorOrProjection disambiguates "[name]" (FieldSelector) from
"[name1, name2]" / "[name1, name2]?" (FieldProjection) by bounded
lookahead: start a FieldSelector, and if a comma turns up before the
closing ']', restore and retry as a FieldProjection (spec.md §4.4
"Disambiguation").
*/
func (p *parserState) readFieldSelectorOrProjection() *AstNode {
	snap := p.ctx.TakeSnapshot()
	savedPos := p.cursor.pos

	selector := p.tryReadFieldSelector()
	if selector != nil {
		return selector
	}

	p.ctx.Restore(snap)
	p.cursor.pos = savedPos

	return p.readFieldProjection()
}

func (p *parserState) tryReadFieldSelector() (result *AstNode) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()

	startTok := p.cursor.current()
	p.startNode(NodeKindFieldSelector)
	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBracket),
		p.readGeneralizedIdentifier(),
		p.readConstant(lexer.TokenKindRightBracket),
	}

	if p.cursor.isAt(lexer.TokenKindComma) {
		panic(&ParseError{Kind: ErrExpectedTokenKind, Token: p.cursor.current(), Detail: "not a field selector"})
	}

	return p.endNode(NodeKindFieldSelector, startTok, children)
}

func (p *parserState) readFieldProjection() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindFieldProjection)

	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftBracket),
		p.readCsv(lexer.TokenKindRightBracket, p.readGeneralizedIdentifier),
		p.readConstant(lexer.TokenKindRightBracket),
	}

	if opt := p.tryReadConstant(lexer.TokenKindQuestionMark); opt != nil {
		children = append(children, opt)
	}

	return p.endNode(NodeKindFieldProjection, startTok, children)
}

/*
readPrimaryBase reads the non-recursive primary forms: parenthesized
expressions (disambiguated from function expressions), record/list
literals, literals, identifier expressions, let/if/each/error/try/type.
*/
func (p *parserState) readPrimaryBase() *AstNode {
	switch {
	case p.cursor.isAt(lexer.TokenKindLeftParenthesis):
		return p.readParenthesizedOrFunctionExpression()
	case p.cursor.isAt(lexer.TokenKindLeftBracket):
		return p.readRecordExpression()
	case p.cursor.isAt(lexer.TokenKindLeftBrace):
		return p.readListExpression()
	case p.cursor.isAt(lexer.TokenKindEllipsis):
		tok := p.expect(lexer.TokenKindEllipsis)
		return p.leaf(NodeKindNotImplementedExpression, tok, tok.Value)
	case p.cursor.isAt(lexer.TokenKindLet):
		return p.readLetExpression()
	case p.cursor.isAt(lexer.TokenKindIf):
		return p.readIfExpression()
	case p.cursor.isAt(lexer.TokenKindEach):
		return p.readEachExpression()
	case p.cursor.isAt(lexer.TokenKindError):
		return p.readErrorRaisingExpression()
	case p.cursor.isAt(lexer.TokenKindTry):
		return p.readErrorHandlingExpression()
	case p.cursor.isAt(lexer.TokenKindType):
		return p.readTypeExpression()
	case p.cursor.isAt(lexer.TokenKindAt), p.isAtIdentifierLike():
		return p.readIdentifierExpression()
	case p.isAtLiteral():
		return p.readLiteralExpression()
	default:
		return p.readUnaryExpression()
	}
}

/*
readParenthesizedOrFunctionExpression disambiguates "(x, y) => body" from
"(expr)" via bounded lookahead (spec.md §4.4): try the function
production; on failure restore and parse a parenthesized expression.
*/
func (p *parserState) readParenthesizedOrFunctionExpression() *AstNode {
	snap := p.ctx.TakeSnapshot()
	savedPos := p.cursor.pos

	fn := p.tryReadFunctionExpression()
	if fn != nil {
		return fn
	}

	p.ctx.Restore(snap)
	p.cursor.pos = savedPos

	return p.readParenthesizedExpression()
}

func (p *parserState) tryReadFunctionExpression() (result *AstNode) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()
	return p.readFunctionExpression()
}

func (p *parserState) readParenthesizedExpression() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindParenthesizedExpression)
	children := []*AstNode{
		p.readConstant(lexer.TokenKindLeftParenthesis),
		p.readExpression(),
		p.readConstant(lexer.TokenKindRightParenthesis),
	}
	return p.endNode(NodeKindParenthesizedExpression, startTok, children)
}

/*
readUnaryExpression reads a prefix '+'/'-'/'not' applied to a primary
expression (power has no operator per spec.md §4.4 - precedence between
unary and primary is handled by readPrimaryExpression calling back into
the non-unary primaries first).
*/
func (p *parserState) readUnaryExpression() *AstNode {
	if !p.cursor.isAtAny(lexer.TokenKindPlus, lexer.TokenKindMinus, lexer.TokenKindNot) {
		p.fail(ErrExpectedAnyTokenKind, "expression")
	}

	startTok := p.cursor.current()
	p.startNode(NodeKindUnaryExpression)
	op := p.readConstant(p.cursor.current().Kind)
	operand := p.readPrimaryExpression()

	return p.endNode(NodeKindUnaryExpression, startTok, []*AstNode{op, operand})
}

// binary expression dispatch
// ==========================

/*
readExpression is the shared entry point every grammar production above
calls for a nested expression. It dispatches to whichever strategy
Settings.Strategy selected; both strategies bottom out in the same
readPrimaryExpression/readUnaryExpression pair above, so they build
identical trees despite using different binary-operator techniques
(spec.md §9 "Two parsers, one interface").
*/
func (p *parserState) readExpression() *AstNode {
	if p.settings.Strategy == StrategyCombinatorial {
		return p.readExpressionCombinatorial()
	}
	return p.readExpressionRecursiveDescent()
}

/*
buildBinaryNode left-associates one more (operator, right) pair onto
left, producing a node of the given kind. left, the operator constant
and right are initially parsed as ordinary siblings under whatever
production is currently open; Rewrap folds the three of them into one
binary node occupying left's former slot (spec.md §4.4's
left-associative binary expressions), so a RecursiveDescent tree and a
Combinatorial tree end up structurally indistinguishable.
*/
func (p *parserState) buildBinaryNode(kind NodeKind, left *AstNode, opTok lexer.Token, right *AstNode) *AstNode {
	op := p.leaf(NodeKindConstant, opTok, opTok.Value)
	return p.ctx.Rewrap(kind, left, op, right)
}

// isExpression / asExpression (type-valued right-hand side)
// ==========================================================

func (p *parserState) readIsExpression(left *AstNode) *AstNode {
	for p.cursor.isAt(lexer.TokenKindIs) {
		opTok := p.expect(lexer.TokenKindIs)
		right := p.readNullablePrimitiveType()
		left = p.buildBinaryNode(NodeKindIsExpression, left, opTok, right)
	}
	return left
}

func (p *parserState) readAsExpression(left *AstNode) *AstNode {
	for p.cursor.isAt(lexer.TokenKindAs) {
		opTok := p.expect(lexer.TokenKindAs)
		right := p.readNullablePrimitiveType()
		left = p.buildBinaryNode(NodeKindAsExpression, left, opTok, right)
	}
	return left
}

/*
readUnaryOrPrimary is the level every binary precedence chain bottoms
out at - a unary expression if the token is '+'/'-'/'not', otherwise a
(possibly suffixed) primary expression.
*/
func (p *parserState) readUnaryOrPrimary() *AstNode {
	return p.readPrimaryExpression()
}

// section / document
// ===================

func (p *parserState) readDocument() *AstNode {
	if p.cursor.isAt(lexer.TokenKindSection) {
		return p.readSection()
	}
	return p.readExpression()
}

func (p *parserState) readSection() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindSection)

	var children []*AstNode
	children = append(children, p.readConstant(lexer.TokenKindSection))

	if p.cursor.isAtAny(lexer.TokenKindIdentifier, lexer.TokenKindQuotedIdentifier) {
		children = append(children, p.readIdentifier())
	}

	children = append(children, p.readConstant(lexer.TokenKindSemicolon))

	for p.cursor.isNotDoneAndNotAny() && p.cursor.isAtAny(lexer.TokenKindShared, lexer.TokenKindIdentifier, lexer.TokenKindQuotedIdentifier) {
		children = append(children, p.readSectionMember())
	}

	return p.endNode(NodeKindSection, startTok, children)
}

func (p *parserState) readSectionMember() *AstNode {
	startTok := p.cursor.current()
	p.startNode(NodeKindSectionMember)

	var children []*AstNode
	if shared := p.tryReadConstant(lexer.TokenKindShared); shared != nil {
		children = append(children, shared)
	}

	children = append(children, p.readIdentifierPairedExpression())
	children = append(children, p.readConstant(lexer.TokenKindSemicolon))

	return p.endNode(NodeKindSectionMember, startTok, children)
}
