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
Package parse implements the recoverable CST parser: two strategies
(RecursiveDescent, Combinatorial) sharing a ParseContext and producing the
same AstNode / ContextNode shape, addressable by a stable numeric id via
NodeIdMap.
*/
package parse

/*
NodeKind is the closed set of CST node kinds (spec.md §3). It doubles as
the role krotik-ecal's ASTNode.Name string plays in helper.go, but kept
as a typed enum instead of a bare string so switches over it are
exhaustiveness-checkable.
*/
type NodeKind int

const (
	NodeKindUnknown NodeKind = iota

	NodeKindSection
	NodeKindSectionMember
	NodeKindLetExpression
	NodeKindIfExpression
	NodeKindErrorHandlingExpression
	NodeKindOtherwiseExpression
	NodeKindCatchExpression
	NodeKindErrorRaisingExpression
	NodeKindEachExpression
	NodeKindFunctionExpression
	NodeKindParameter
	NodeKindParameterList
	NodeKindRecordExpression
	NodeKindRecordLiteral
	NodeKindListExpression
	NodeKindListLiteral
	NodeKindListType
	NodeKindRecordType
	NodeKindTableType
	NodeKindFunctionType
	NodeKindNullablePrimitiveType
	NodeKindNullableType
	NodeKindPrimitiveType
	NodeKindTypePrimaryType
	NodeKindInvokeExpression
	NodeKindItemAccessExpression
	NodeKindFieldSelector
	NodeKindFieldProjection
	NodeKindFieldSpecification
	NodeKindFieldSpecificationList
	NodeKindFieldTypeSpecification
	NodeKindIdentifier
	NodeKindIdentifierExpression
	NodeKindGeneralizedIdentifier
	NodeKindGeneralizedIdentifierPairedExpression
	NodeKindGeneralizedIdentifierPairedAnyLiteral
	NodeKindIdentifierPairedExpression
	NodeKindLiteralExpression
	NodeKindRangeExpression
	NodeKindArithmeticExpression
	NodeKindEqualityExpression
	NodeKindRelationalExpression
	NodeKindLogicalExpression
	NodeKindIsExpression
	NodeKindAsExpression
	NodeKindMetadataExpression
	NodeKindNullCoalescingExpression
	NodeKindNotImplementedExpression
	NodeKindParenthesizedExpression
	NodeKindUnaryExpression
	NodeKindRecursivePrimaryExpression
	NodeKindCsv
	NodeKindArrayWrapper
	NodeKindConstant
	NodeKindAsType
	NodeKindAsNullablePrimitiveType
)

var nodeKindNames = [...]string{
	NodeKindUnknown:                                "Unknown",
	NodeKindSection:                                 "Section",
	NodeKindSectionMember:                           "SectionMember",
	NodeKindLetExpression:                           "LetExpression",
	NodeKindIfExpression:                            "IfExpression",
	NodeKindErrorHandlingExpression:                 "ErrorHandlingExpression",
	NodeKindOtherwiseExpression:                     "OtherwiseExpression",
	NodeKindCatchExpression:                         "CatchExpression",
	NodeKindErrorRaisingExpression:                  "ErrorRaisingExpression",
	NodeKindEachExpression:                          "EachExpression",
	NodeKindFunctionExpression:                      "FunctionExpression",
	NodeKindParameter:                               "Parameter",
	NodeKindParameterList:                           "ParameterList",
	NodeKindRecordExpression:                        "RecordExpression",
	NodeKindRecordLiteral:                           "RecordLiteral",
	NodeKindListExpression:                          "ListExpression",
	NodeKindListLiteral:                             "ListLiteral",
	NodeKindListType:                                "ListType",
	NodeKindRecordType:                              "RecordType",
	NodeKindTableType:                               "TableType",
	NodeKindFunctionType:                            "FunctionType",
	NodeKindNullablePrimitiveType:                   "NullablePrimitiveType",
	NodeKindNullableType:                            "NullableType",
	NodeKindPrimitiveType:                           "PrimitiveType",
	NodeKindTypePrimaryType:                         "TypePrimaryType",
	NodeKindInvokeExpression:                        "InvokeExpression",
	NodeKindItemAccessExpression:                    "ItemAccessExpression",
	NodeKindFieldSelector:                           "FieldSelector",
	NodeKindFieldProjection:                         "FieldProjection",
	NodeKindFieldSpecification:                      "FieldSpecification",
	NodeKindFieldSpecificationList:                  "FieldSpecificationList",
	NodeKindFieldTypeSpecification:                  "FieldTypeSpecification",
	NodeKindIdentifier:                              "Identifier",
	NodeKindIdentifierExpression:                    "IdentifierExpression",
	NodeKindGeneralizedIdentifier:                   "GeneralizedIdentifier",
	NodeKindGeneralizedIdentifierPairedExpression:   "GeneralizedIdentifierPairedExpression",
	NodeKindGeneralizedIdentifierPairedAnyLiteral:   "GeneralizedIdentifierPairedAnyLiteral",
	NodeKindIdentifierPairedExpression:               "IdentifierPairedExpression",
	NodeKindLiteralExpression:                       "LiteralExpression",
	NodeKindRangeExpression:                         "RangeExpression",
	NodeKindArithmeticExpression:                    "ArithmeticExpression",
	NodeKindEqualityExpression:                       "EqualityExpression",
	NodeKindRelationalExpression:                    "RelationalExpression",
	NodeKindLogicalExpression:                        "LogicalExpression",
	NodeKindIsExpression:                             "IsExpression",
	NodeKindAsExpression:                             "AsExpression",
	NodeKindMetadataExpression:                       "MetadataExpression",
	NodeKindNullCoalescingExpression:                 "NullCoalescingExpression",
	NodeKindNotImplementedExpression:                 "NotImplementedExpression",
	NodeKindParenthesizedExpression:                  "ParenthesizedExpression",
	NodeKindUnaryExpression:                          "UnaryExpression",
	NodeKindRecursivePrimaryExpression:               "RecursivePrimaryExpression",
	NodeKindCsv:                                      "Csv",
	NodeKindArrayWrapper:                             "ArrayWrapper",
	NodeKindConstant:                                 "Constant",
	NodeKindAsType:                                   "AsType",
	NodeKindAsNullablePrimitiveType:                  "AsNullablePrimitiveType",
}

func (k NodeKind) String() string {
	if int(k) >= 0 && int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return "Unknown"
}

/*
LeafKind discriminates which XorNode is "under" the cursor for an
ActiveNode (spec.md §4.5a).
*/
type LeafKind int

const (
	LeafKindDefault LeafKind = iota
	LeafKindShiftedRight
	LeafKindContextNode
)

func (k LeafKind) String() string {
	switch k {
	case LeafKindDefault:
		return "Default"
	case LeafKindShiftedRight:
		return "ShiftedRight"
	case LeafKindContextNode:
		return "ContextNode"
	}
	return "Unknown"
}
