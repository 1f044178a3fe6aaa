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

import "testing"

/*
TestRecordLiteral_AllFieldsLiteral pins the literal-restricted production:
a record whose every field value reduces to the any-literal grammar
(including a nested list/record literal) must parse as NodeKindRecordLiteral,
not the general NodeKindRecordExpression.
*/
func TestRecordLiteral_AllFieldsLiteral(t *testing.T) {
	eachStrategy(t, func(t *testing.T, strategy StrategyKind) {
		root := parseExpression(t, `[a = 1, b = {2, 3}, c = [d = "x"]]`, strategy)

		if root.Kind != NodeKindRecordLiteral {
			t.Fatalf("got root kind %v, want %v", root.Kind, NodeKindRecordLiteral)
		}

		fields := recordFields(t, root)
		if len(fields) != 3 {
			t.Fatalf("got %d fields, want 3", len(fields))
		}
		for _, f := range fields {
			if f.Kind != NodeKindGeneralizedIdentifierPairedAnyLiteral {
				t.Fatalf("got field kind %v, want %v", f.Kind, NodeKindGeneralizedIdentifierPairedAnyLiteral)
			}
		}

		nestedList := fields[1].Children[2]
		if nestedList.Kind != NodeKindListLiteral {
			t.Fatalf("got nested list kind %v, want %v", nestedList.Kind, NodeKindListLiteral)
		}
		nestedRecord := fields[2].Children[2]
		if nestedRecord.Kind != NodeKindRecordLiteral {
			t.Fatalf("got nested record kind %v, want %v", nestedRecord.Kind, NodeKindRecordLiteral)
		}
	})
}

/*
TestRecordExpression_NonLiteralField pins the fallback: the moment one
field's value is not a literal (here, an invocation), the whole record
must parse as the general NodeKindRecordExpression with
NodeKindGeneralizedIdentifierPairedExpression fields, not RecordLiteral.
*/
func TestRecordExpression_NonLiteralField(t *testing.T) {
	eachStrategy(t, func(t *testing.T, strategy StrategyKind) {
		root := parseExpression(t, "[a = 1, b = f(2)]", strategy)

		if root.Kind != NodeKindRecordExpression {
			t.Fatalf("got root kind %v, want %v", root.Kind, NodeKindRecordExpression)
		}

		fields := recordFields(t, root)
		if len(fields) != 2 {
			t.Fatalf("got %d fields, want 2", len(fields))
		}
		for _, f := range fields {
			if f.Kind != NodeKindGeneralizedIdentifierPairedExpression {
				t.Fatalf("got field kind %v, want %v", f.Kind, NodeKindGeneralizedIdentifierPairedExpression)
			}
		}
	})
}

/*
TestListLiteral_AllItemsLiteral mirrors the record case for lists: every
item reducing to the any-literal grammar makes it a NodeKindListLiteral.
*/
func TestListLiteral_AllItemsLiteral(t *testing.T) {
	eachStrategy(t, func(t *testing.T, strategy StrategyKind) {
		root := parseExpression(t, "{1, 2, {3, 4}}", strategy)

		if root.Kind != NodeKindListLiteral {
			t.Fatalf("got root kind %v, want %v", root.Kind, NodeKindListLiteral)
		}
	})
}

/*
TestListExpression_RangeItem pins the other documented fallback: a bare
".." range item is not part of the any-literal grammar, so the list must
fall back to the general NodeKindListExpression (spec.md §4.4's
"{1..2} is a RangeExpression inside a ListExpression" still applies).
*/
func TestListExpression_RangeItem(t *testing.T) {
	eachStrategy(t, func(t *testing.T, strategy StrategyKind) {
		root := parseExpression(t, "{1..2}", strategy)

		if root.Kind != NodeKindListExpression {
			t.Fatalf("got root kind %v, want %v", root.Kind, NodeKindListExpression)
		}
	})
}

/*
recordFields unwraps a Record{Literal,Expression}'s ArrayWrapper/Csv
nesting down to the bare field-pair nodes.
*/
func recordFields(t *testing.T, record *AstNode) []*AstNode {
	t.Helper()
	if len(record.Children) < 2 {
		t.Fatalf("record has %d children, want at least 2", len(record.Children))
	}
	wrapper := record.Children[1]
	if wrapper.Kind != NodeKindArrayWrapper {
		t.Fatalf("got %v, want %v", wrapper.Kind, NodeKindArrayWrapper)
	}
	var fields []*AstNode
	for _, csv := range wrapper.Children {
		if csv.Kind != NodeKindCsv || len(csv.Children) == 0 {
			t.Fatalf("got %v, want a non-empty Csv wrapper", csv.Kind)
		}
		fields = append(fields, csv.Children[0])
	}
	return fields
}
