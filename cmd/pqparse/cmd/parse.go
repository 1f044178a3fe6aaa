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

	"github.com/devt-tools/pqparse/parse"
)

var (
	parseEntry    string
	parseStrategy string
	parseDumpAST  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse M source and print the reconstructed source or its CST",
	Long: `Parse M source into a concrete syntax tree and, by default, pretty
print it back to source text via the CST printer (a round trip that
normalizes whitespace). Use --dump-ast to see the tree shape instead.

If parsing fails partway through, parse still prints whatever ancestry
the partial tree covers before reporting the error, since the parser
keeps the in-progress tree around for exactly this reason.

If no file is given, parse reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseEntry, "entry", "document", "grammar entry point: document, section, expression, or parameter-list")
	parseCmd.Flags().StringVar(&parseStrategy, "strategy", "", "parser strategy: recursive-descent or combinatorial (default from config)")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the CST structure instead of reprinting source")
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readSource(args)
	if err != nil {
		return err
	}

	snapshot, err := lexAndSnapshot(text)
	if err != nil {
		return err
	}

	settings := parse.Settings{
		Strategy:   strategyFromFlag(parseStrategy),
		EntryPoint: entryPointFromFlag(parseEntry),
	}

	tried := parse.TryRead(settings, snapshot)

	if tried.Result != nil {
		return renderParse(tried.Result.Root, tried.Result.Collection)
	}

	if pe, ok := tried.Err.(*parse.ParseError); ok && pe.Context != nil {
		collection := pe.Context.Collection()
		for _, id := range collection.RootIds() {
			if node, ok := collection.XorNodeById(id); ok {
				if renderErr := renderPartial(node, collection); renderErr != nil {
					return renderErr
				}
			}
		}
	}

	return tried.Err
}

func entryPointFromFlag(flag string) parse.EntryPoint {
	switch flag {
	case "section":
		return parse.EntryPointSection
	case "expression":
		return parse.EntryPointExpression
	case "parameter-list":
		return parse.EntryPointParameterSpecificationList
	default:
		return parse.EntryPointDocument
	}
}

func renderParse(root *parse.AstNode, collection *parse.Collection) error {
	node := parse.XorNode{Ast: root}

	if parseDumpAST {
		dumpNode(node, collection, 0)
		return nil
	}

	if jsonOut {
		out, err := sjson.Set("{}", "source", parse.Sprint(node, collection))
		if err != nil {
			return err
		}
		printJSON(out)
		return nil
	}

	fmt.Println(parse.Sprint(node, collection))
	return nil
}

func renderPartial(node parse.XorNode, collection *parse.Collection) error {
	if parseDumpAST {
		dumpNode(node, collection, 0)
		return nil
	}
	fmt.Println(parse.Sprint(node, collection))
	return nil
}

/*
dumpNode prints one indented line per node, loosely following
krotik-ecal's cmd/dump-ast helper: the node's Kind, followed by "(open)"
for an in-progress ContextNode or by the quoted literal for a completed
leaf. No child count is printed.
*/
func dumpNode(node parse.XorNode, collection *parse.Collection, depth int) {
	indent := strings.Repeat("  ", depth)

	if node.IsContext() {
		fmt.Printf("%s%s (open)\n", indent, node.Kind())
	} else if node.Ast.IsLeaf() {
		fmt.Printf("%s%s %q\n", indent, node.Kind(), node.Ast.Literal)
	} else {
		fmt.Printf("%s%s\n", indent, node.Kind())
	}

	for _, child := range collection.ChildrenOf(node.Id()) {
		dumpNode(child, collection, depth+1)
	}
}
