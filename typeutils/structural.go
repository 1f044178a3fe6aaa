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

import "strconv"

/*
FieldCheckResult is the {valid, invalid, extraneous, missing} breakdown
spec.md §4.6 wants out of a structural record/table field check: field
names present and compatible, present but incompatible, present but not
declared, and declared but absent. Names are reported in the schema's
declared order, with extraneous fields appended in the value's own order.
*/
type FieldCheckResult struct {
	Valid      []string
	Invalid    []string
	Extraneous []string
	Missing    []string
}

/*
CheckRecordFields compares value's fields against schema's declared
fields. Used for both KindRecord and KindTable schemas, since a table row
is structurally a record (spec.md §4.6 groups them together).
*/
func CheckRecordFields(value Value, schema Schema) FieldCheckResult {
	var result FieldCheckResult

	for _, name := range schema.FieldOrder {
		fieldSchema := schema.Fields[name]
		fieldValue, present := value.Fields[name]
		if !present {
			result.Missing = append(result.Missing, name)
			continue
		}
		if ok := IsCompatible(fieldValue, fieldSchema); ok != nil && !*ok {
			result.Invalid = append(result.Invalid, name)
			continue
		}
		result.Valid = append(result.Valid, name)
	}

	declared := make(map[string]bool, len(schema.FieldOrder))
	for _, name := range schema.FieldOrder {
		declared[name] = true
	}
	for _, name := range value.FieldOrder {
		if !declared[name] {
			result.Extraneous = append(result.Extraneous, name)
		}
	}

	return result
}

/*
CheckTableFields is CheckRecordFields under the name spec.md §4.6 uses
for a table's row schema.
*/
func CheckTableFields(value Value, schema Schema) FieldCheckResult {
	return CheckRecordFields(value, schema)
}

/*
CheckListElements reports, by index, which of value's elements are
compatible with schema's declared element type. An unconstrained list
schema (no Element) reports every index valid.
*/
func CheckListElements(value Value, schema Schema) FieldCheckResult {
	var result FieldCheckResult
	if schema.Element == nil {
		for i := range value.Elements {
			result.Valid = append(result.Valid, indexName(i))
		}
		return result
	}
	for i, el := range value.Elements {
		name := indexName(i)
		if ok := IsCompatible(el, *schema.Element); ok != nil && !*ok {
			result.Invalid = append(result.Invalid, name)
			continue
		}
		result.Valid = append(result.Valid, name)
	}
	return result
}

func indexName(i int) string {
	return strconv.Itoa(i)
}
