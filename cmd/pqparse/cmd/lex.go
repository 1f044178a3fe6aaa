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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/devt-tools/pqparse/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an M formula language file or expression",
	Long: `Tokenize (lex) M source and print the resulting token stream,
including the comments the flattened snapshot strips out of the main
token list.

If no file is given, lex reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	text, err := readSource(args)
	if err != nil {
		return err
	}

	snapshot, err := lexAndSnapshot(text)
	if err != nil {
		return err
	}

	if jsonOut {
		return printTokensJSON(snapshot)
	}
	return printTokensText(snapshot)
}

func printTokensText(snapshot *lexer.Snapshot) error {
	for _, tok := range snapshot.Tokens {
		fmt.Println(tok.String())
	}
	if len(snapshot.Comments) > 0 {
		fmt.Println("---")
		for _, c := range snapshot.Comments {
			fmt.Printf("comment %q %s\n", c.Text, c.Range)
		}
	}
	return nil
}

func printTokensJSON(snapshot *lexer.Snapshot) error {
	out := "{}"
	var err error

	for i, tok := range snapshot.Tokens {
		out, err = sjson.Set(out, fmt.Sprintf("tokens.%d.kind", i), tok.Kind.String())
		if err != nil {
			return err
		}
		out, err = sjson.Set(out, fmt.Sprintf("tokens.%d.value", i), tok.Value)
		if err != nil {
			return err
		}
		out, err = setRange(out, "tokens."+strconv.Itoa(i)+".range", tok.Range)
		if err != nil {
			return err
		}
	}

	for i, c := range snapshot.Comments {
		out, err = sjson.Set(out, fmt.Sprintf("comments.%d.text", i), c.Text)
		if err != nil {
			return err
		}
		out, err = setRange(out, "comments."+strconv.Itoa(i)+".range", c.Range)
		if err != nil {
			return err
		}
	}

	printJSON(out)
	return nil
}

/*
setRange writes a TokenRange's start/end line and code-unit fields at
path, the json shape every subcommand's --json output shares.
*/
func setRange(out, path string, r lexer.TokenRange) (string, error) {
	var err error
	if out, err = sjson.Set(out, path+".start.line", r.Start.LineNumber); err != nil {
		return out, err
	}
	if out, err = sjson.Set(out, path+".start.codeUnit", r.Start.LineCodeUnit); err != nil {
		return out, err
	}
	if out, err = sjson.Set(out, path+".end.line", r.End.LineNumber); err != nil {
		return out, err
	}
	return sjson.Set(out, path+".end.codeUnit", r.End.LineCodeUnit)
}
