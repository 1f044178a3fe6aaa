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

/*
Parameter is one declared parameter of a FunctionSchema: its name (for
reporting) and its declared type.
*/
type Parameter struct {
	Name     string
	Schema   Schema
	Optional bool
}

/*
FunctionSchema describes a callee's signature well enough to validate an
InvokeExpression's arguments against it - the function counterpart of
Schema's record/table field maps.
*/
type FunctionSchema struct {
	Parameters []Parameter
	Return     Schema
}

/*
CheckInvocation validates a positional argument list against schema,
reusing FieldCheckResult's {valid, invalid, extraneous, missing} shape
keyed by parameter name (extraneous arguments are keyed by their
positional index instead, since they have no declared name).
*/
func CheckInvocation(args []Value, schema FunctionSchema) FieldCheckResult {
	var result FieldCheckResult

	for i, param := range schema.Parameters {
		if i >= len(args) {
			if !param.Optional {
				result.Missing = append(result.Missing, param.Name)
			}
			continue
		}
		if ok := IsCompatible(args[i], param.Schema); ok != nil && !*ok {
			result.Invalid = append(result.Invalid, param.Name)
			continue
		}
		result.Valid = append(result.Valid, param.Name)
	}

	for i := len(schema.Parameters); i < len(args); i++ {
		result.Extraneous = append(result.Extraneous, indexName(i))
	}

	return result
}
