/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/devt-tools/pqparse/inspect"
	"github.com/devt-tools/pqparse/lexer"
	"github.com/devt-tools/pqparse/parse"
)

var (
	inspectLine   uint32
	inspectColumn uint32
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Run the active-node/scope/autocomplete passes at a cursor position",
	Long: `Parse M source (tolerating a trailing parse error, the way an editor's
language service does) and run the position-driven inspection passes at
--line/--column: the enclosing ancestry, the bindings in scope, whether
the cursor sits on an identifier and what it resolves to, the enclosing
invoke expression's argument position, and the legal autocomplete
continuations.

If no file is given, inspect reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Uint32Var(&inspectLine, "line", 0, "zero-based line number of the cursor")
	inspectCmd.Flags().Uint32Var(&inspectColumn, "column", 0, "zero-based code-unit column of the cursor")
}

func runInspect(cmd *cobra.Command, args []string) error {
	text, err := readSource(args)
	if err != nil {
		return err
	}

	snapshot, err := lexAndSnapshot(text)
	if err != nil {
		return err
	}

	tried := parse.TryRead(parse.Settings{Strategy: strategyFromFlag("")}, snapshot)

	var collection *parse.Collection
	var parseErr error

	if tried.Result != nil {
		collection = tried.Result.Collection
	} else if pe, ok := tried.Err.(*parse.ParseError); ok && pe.Context != nil {
		collection = pe.Context.Collection()
		parseErr = pe
	} else {
		return tried.Err
	}

	pos := lexer.Position{LineNumber: inspectLine, LineCodeUnit: inspectColumn}
	result := inspect.TryFrom(inspect.Settings{}, pos, collection, parseErr)
	if result.Err != nil {
		return result.Err
	}

	if jsonOut {
		return printInspectedJSON(result.Inspected)
	}
	printInspectedText(result.Inspected)
	return nil
}

func printInspectedText(in *inspect.Inspected) {
	fmt.Printf("active node: %s (%d ancestors), leaf kind %v\n",
		in.ActiveNode.Leaf().Kind(), len(in.ActiveNode.Ancestry), in.ActiveNode.LeafKind)

	fmt.Printf("scope (%d): %s\n", in.Scope.Len(), strings.Join(in.Scope.Names(), ", "))

	switch in.IdentifierUnderPosition.Kind {
	case inspect.IdentifierUnderPositionLocal:
		fmt.Printf("identifier: %q resolves to %s\n", in.IdentifierUnderPosition.Identifier, in.IdentifierUnderPosition.DefinitionStart)
	case inspect.IdentifierUnderPositionUndefined:
		fmt.Printf("identifier: %q is undefined\n", in.IdentifierUnderPosition.Identifier)
	default:
		fmt.Println("identifier: none")
	}

	if in.InvokeExpression != nil {
		name := "<anonymous>"
		if in.InvokeExpression.MaybeName != nil {
			name = *in.InvokeExpression.MaybeName
		}
		if in.InvokeExpression.MaybeArguments != nil {
			fmt.Printf("invoke: %s argument %d of %d\n", name,
				in.InvokeExpression.MaybeArguments.PositionArgumentIndex,
				in.InvokeExpression.MaybeArguments.NumArguments)
		} else {
			fmt.Printf("invoke: %s\n", name)
		}
	}

	if in.Autocomplete.MaybeRequiredAutocomplete != nil {
		fmt.Printf("autocomplete: required %q\n", *in.Autocomplete.MaybeRequiredAutocomplete)
	} else if len(in.Autocomplete.AllowedAutocompleteKeywords) > 0 {
		fmt.Printf("autocomplete: %s\n", strings.Join(in.Autocomplete.AllowedAutocompleteKeywords, ", "))
	}
}

func printInspectedJSON(in *inspect.Inspected) error {
	out := "{}"
	var err error

	if out, err = sjson.Set(out, "activeNode.kind", in.ActiveNode.Leaf().Kind().String()); err != nil {
		return err
	}
	if out, err = sjson.Set(out, "activeNode.ancestryLength", len(in.ActiveNode.Ancestry)); err != nil {
		return err
	}
	if out, err = sjson.Set(out, "scope", in.Scope.Names()); err != nil {
		return err
	}
	if out, err = sjson.Set(out, "identifier.kind", int(in.IdentifierUnderPosition.Kind)); err != nil {
		return err
	}
	if in.IdentifierUnderPosition.Identifier != "" {
		if out, err = sjson.Set(out, "identifier.name", in.IdentifierUnderPosition.Identifier); err != nil {
			return err
		}
	}
	if in.InvokeExpression != nil && in.InvokeExpression.MaybeName != nil {
		if out, err = sjson.Set(out, "invoke.name", *in.InvokeExpression.MaybeName); err != nil {
			return err
		}
	}
	if in.InvokeExpression != nil && in.InvokeExpression.MaybeArguments != nil {
		if out, err = sjson.Set(out, "invoke.argumentIndex", in.InvokeExpression.MaybeArguments.PositionArgumentIndex); err != nil {
			return err
		}
		if out, err = sjson.Set(out, "invoke.argumentCount", in.InvokeExpression.MaybeArguments.NumArguments); err != nil {
			return err
		}
	}
	if out, err = sjson.Set(out, "autocomplete.keywords", in.Autocomplete.AllowedAutocompleteKeywords); err != nil {
		return err
	}
	if in.Autocomplete.MaybeRequiredAutocomplete != nil {
		if out, err = sjson.Set(out, "autocomplete.required", *in.Autocomplete.MaybeRequiredAutocomplete); err != nil {
			return err
		}
	}

	printJSON(out)
	return nil
}
