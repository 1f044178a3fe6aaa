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
	"io"
	"os"

	"github.com/tidwall/gjson"

	"github.com/devt-tools/pqparse/config"
	"github.com/devt-tools/pqparse/lexer"
	"github.com/devt-tools/pqparse/parse"
)

/*
readSource returns args[0]'s file contents, or stdin if no path was
given - the same fallback every subcommand's input handling uses.
*/
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

/*
lexAndSnapshot runs the two lexer phases a parse (or a standalone lex)
needs: TryLex tokenizes, TrySnapshot fuses multiline runs and resolves
absolute positions.
*/
func lexAndSnapshot(text string) (*lexer.Snapshot, error) {
	settings := lexer.Settings{Locale: config.Str(config.Locale)}

	lexed := lexer.TryLex(settings, text)
	if lexed.Err != nil {
		return nil, lexed.Err
	}

	snapped := lexer.TrySnapshot(settings, lexed.State)
	if snapped.Err != nil {
		return nil, snapped.Err
	}

	return snapped.Snapshot, nil
}

/*
strategyFromFlag maps the --strategy flag value onto parse.StrategyKind,
defaulting to config's Strategy key when flag is empty.
*/
func strategyFromFlag(flag string) parse.StrategyKind {
	if flag == "" {
		flag = config.Str(config.Strategy)
	}
	if flag == "combinatorial" {
		return parse.StrategyCombinatorial
	}
	return parse.StrategyRecursiveDescent
}

/*
printJSON prints a compact sjson-built document through gjson's @pretty
modifier, the same "build with sjson, render with gjson" split every
--json subcommand uses.
*/
func printJSON(compact string) {
	fmt.Println(gjson.Get(compact, "@pretty").String())
}
