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
Package cmd implements the pqparse command line tool: lex, parse and
inspect subcommands over the M formula language front end, following
krotik-ecal's cli/tool split of one concern per file, adapted to cobra's
command-tree idiom (per the rest of the example pack's CLI tools).
*/
package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/devt-tools/pqparse/config"
)

var (
	cfgFile string
	locale  string
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "pqparse",
	Short: "pqparse - an M formula language lexer, parser and inspector",
	Long: `pqparse tokenizes, parses and inspects Power Query / M formula
language source, the same way an editor's language service would: a
resumable lexer, two independent parser strategies over one shared CST,
and the position-driven inspection passes (active node, scope,
identifier lookup, invoke-expression argument position, autocomplete).`,
	Version:           config.ProductVersion,
	PersistentPreRunE: loadConfigOverlay,
}

/*
Execute runs the root command.
*/
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a pqparse.yaml config overlay")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale for diagnostic message ids (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON instead of text")
}

/*
loadConfigOverlay reads --config (if given) as YAML and overlays it onto
config.Config, mirroring krotik-ecal's pattern of a package-level Config
map seeded with defaults and mutated once at startup.
*/
func loadConfigOverlay(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		data, err := os.ReadFile(cfgFile)
		if err != nil {
			return err
		}

		var override map[string]interface{}
		if err := yaml.Unmarshal(data, &override); err != nil {
			return err
		}

		config.Overlay(override)
	}

	if locale != "" {
		config.Overlay(map[string]interface{}{config.Locale: locale})
	}

	return nil
}
