/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package typeutils

import "testing"

func requireBool(t *testing.T, got *bool, want bool) {
	t.Helper()
	if got == nil {
		t.Fatal("expected a definite result, got undefined")
	}
	if *got != want {
		t.Fatalf("expected %v, got %v", want, *got)
	}
}

func TestIsCompatible_UndefinedForNotApplicableOrUnknown(t *testing.T) {
	v := Value{Kind: KindNumber}
	if got := IsCompatible(v, Schema{Kind: KindNotApplicable}); got != nil {
		t.Fatalf("expected undefined, got %v", *got)
	}
	if got := IsCompatible(v, Schema{Kind: KindUnknown}); got != nil {
		t.Fatalf("expected undefined, got %v", *got)
	}
}

func TestIsCompatible_AnyAcceptsEverythingExceptNone(t *testing.T) {
	requireBool(t, IsCompatible(Value{Kind: KindNumber}, Schema{Kind: KindAny}), true)
	requireBool(t, IsCompatible(Value{Kind: KindNull, IsNull: true}, Schema{Kind: KindAny}), true)
	requireBool(t, IsCompatible(Value{Kind: KindNone}, Schema{Kind: KindAny}), false)
}

func TestIsCompatible_AnyNonNullRejectsNullable(t *testing.T) {
	requireBool(t, IsCompatible(Value{Kind: KindNumber}, Schema{Kind: KindAnyNonNull}), true)
	requireBool(t, IsCompatible(Value{Kind: KindNumber, Nullable: true}, Schema{Kind: KindAnyNonNull}), false)
	requireBool(t, IsCompatible(Value{Kind: KindNumber, IsNull: true}, Schema{Kind: KindAnyNonNull}), false)
}

func TestIsCompatible_NullRequiresNullableSchema(t *testing.T) {
	requireBool(t, IsCompatible(Value{Kind: KindNumber, IsNull: true}, Schema{Kind: KindNumber, Nullable: true}), true)
	requireBool(t, IsCompatible(Value{Kind: KindNumber, IsNull: true}, Schema{Kind: KindNumber}), false)
}

func TestIsCompatible_PrimitiveMatch(t *testing.T) {
	requireBool(t, IsCompatible(Value{Kind: KindText}, Schema{Kind: KindText}), true)
	requireBool(t, IsCompatible(Value{Kind: KindText}, Schema{Kind: KindNumber}), false)
}

func TestIsCompatible_RecordStructural(t *testing.T) {
	schema := Schema{
		Kind:       KindRecord,
		FieldOrder: []string{"a", "b"},
		Fields: map[string]Schema{
			"a": {Kind: KindNumber},
			"b": {Kind: KindText},
		},
	}

	ok := Value{
		Kind:       KindRecord,
		FieldOrder: []string{"a", "b"},
		Fields: map[string]Value{
			"a": {Kind: KindNumber},
			"b": {Kind: KindText},
		},
	}
	requireBool(t, IsCompatible(ok, schema), true)

	missingField := Value{
		Kind:       KindRecord,
		FieldOrder: []string{"a"},
		Fields:     map[string]Value{"a": {Kind: KindNumber}},
	}
	requireBool(t, IsCompatible(missingField, schema), false)

	wrongType := Value{
		Kind:       KindRecord,
		FieldOrder: []string{"a", "b"},
		Fields: map[string]Value{
			"a": {Kind: KindText},
			"b": {Kind: KindText},
		},
	}
	requireBool(t, IsCompatible(wrongType, schema), false)
}

func TestIsCompatible_ListStructural(t *testing.T) {
	schema := Schema{Kind: KindList, Element: &Schema{Kind: KindNumber}}

	requireBool(t, IsCompatible(Value{Kind: KindList, Elements: []Value{{Kind: KindNumber}, {Kind: KindNumber}}}, schema), true)
	requireBool(t, IsCompatible(Value{Kind: KindList, Elements: []Value{{Kind: KindText}}}, schema), false)
}

func TestCheckRecordFields_ReportsExtraneous(t *testing.T) {
	schema := Schema{
		Kind:       KindRecord,
		FieldOrder: []string{"a"},
		Fields:     map[string]Schema{"a": {Kind: KindNumber}},
	}
	value := Value{
		Kind:       KindRecord,
		FieldOrder: []string{"a", "extra"},
		Fields: map[string]Value{
			"a":     {Kind: KindNumber},
			"extra": {Kind: KindText},
		},
	}

	result := CheckRecordFields(value, schema)
	if len(result.Valid) != 1 || result.Valid[0] != "a" {
		t.Fatalf("expected a to be valid, got %v", result.Valid)
	}
	if len(result.Extraneous) != 1 || result.Extraneous[0] != "extra" {
		t.Fatalf("expected extra to be extraneous, got %v", result.Extraneous)
	}
	if len(result.Missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", result.Missing)
	}
}

func TestCheckInvocation_MissingOptionalAndExtraneous(t *testing.T) {
	schema := FunctionSchema{
		Parameters: []Parameter{
			{Name: "x", Schema: Schema{Kind: KindNumber}},
			{Name: "y", Schema: Schema{Kind: KindText}, Optional: true},
		},
	}

	result := CheckInvocation([]Value{{Kind: KindNumber}, {Kind: KindText}, {Kind: KindLogical}}, schema)
	if len(result.Valid) != 2 {
		t.Fatalf("expected both parameters valid, got %v", result.Valid)
	}
	if len(result.Extraneous) != 1 || result.Extraneous[0] != "2" {
		t.Fatalf("expected argument 2 extraneous, got %v", result.Extraneous)
	}

	missingRequired := CheckInvocation(nil, schema)
	if len(missingRequired.Missing) != 1 || missingRequired.Missing[0] != "x" {
		t.Fatalf("expected x missing, got %v", missingRequired.Missing)
	}
}
