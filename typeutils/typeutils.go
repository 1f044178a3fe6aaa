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
Package typeutils implements the small subtype-compatibility lattice
spec.md §4.6 describes: isCompatible(value, schema) and the structural
record/table/list/function checks, including one that validates an
invocation's arguments against a callee's declared parameter types. The
package stands alone; the inspect package does not call it. There
is no evaluator in this module (spec.md's Non-goals exclude M evaluation
wholesale), so Value and Schema are standalone descriptions - Value
describes what a literal or a built-up argument looks like; Schema
describes what a PrimitiveType/NullablePrimitiveType CST node declared.
*/
package typeutils

/*
Kind is the closed set of M's primitive type names, plus the three
bookkeeping kinds isCompatible needs: NotApplicable/Unknown (schema sides
that make compatibility undefined) and None (the "absence of a value"
kind distinct from Null, per spec.md §4.6 "None is not compatible with
Any").
*/
type Kind int

const (
	KindNotApplicable Kind = iota
	KindUnknown
	KindAny
	KindAnyNonNull
	KindNone
	KindNull
	KindNumber
	KindText
	KindLogical
	KindDate
	KindDateTime
	KindDateTimeZone
	KindDuration
	KindTime
	KindBinary
	KindFunction
	KindList
	KindRecord
	KindTable
	KindType
	KindAction
)

/*
Schema describes a declared type: a PrimitiveType/NullablePrimitiveType
leaf for scalar kinds, or the field/element shape for Record, Table and
List.
*/
type Schema struct {
	Kind       Kind
	Nullable   bool
	FieldOrder []string          // Record/Table: declared field order
	Fields     map[string]Schema // Record/Table: field name -> field schema
	Element    *Schema           // List: element schema
}

/*
Value describes the thing being checked against a Schema: either a bare
primitive-kind literal, or a built-up record/table/list of Values.
*/
type Value struct {
	Kind       Kind
	Nullable   bool
	IsNull     bool
	FieldOrder []string
	Fields     map[string]Value
	Elements   []Value
}

/*
IsCompatible implements spec.md §4.6's isCompatible(value, schema): nil
("undefined") for a NotApplicable/Unknown schema; every kind is
compatible with Any except None; nullable values are never compatible
with AnyNonNull; otherwise a value is compatible with its schema when
their Kind matches and, for a non-nullable schema, the value isn't null.
*/
func IsCompatible(value Value, schema Schema) *bool {
	if schema.Kind == KindNotApplicable || schema.Kind == KindUnknown {
		return nil
	}

	if schema.Kind == KindAny {
		return boolPtr(value.Kind != KindNone)
	}

	if schema.Kind == KindAnyNonNull {
		return boolPtr(value.Kind != KindNone && !value.Nullable && !value.IsNull)
	}

	if value.IsNull {
		return boolPtr(schema.Nullable || schema.Kind == KindNull)
	}

	switch schema.Kind {
	case KindRecord:
		if value.Kind != KindRecord {
			return boolPtr(false)
		}
		check := CheckRecordFields(value, schema)
		return boolPtr(len(check.Invalid) == 0 && len(check.Missing) == 0)
	case KindTable:
		if value.Kind != KindTable {
			return boolPtr(false)
		}
		check := CheckTableFields(value, schema)
		return boolPtr(len(check.Invalid) == 0 && len(check.Missing) == 0)
	case KindList:
		return boolPtr(value.Kind == KindList && isListCompatible(value, schema))
	}

	return boolPtr(value.Kind == schema.Kind)
}

func isListCompatible(value Value, schema Schema) bool {
	if schema.Element == nil {
		return true
	}
	for _, el := range value.Elements {
		if ok := IsCompatible(el, *schema.Element); ok == nil || !*ok {
			return false
		}
	}
	return true
}

func boolPtr(b bool) *bool {
	return &b
}
