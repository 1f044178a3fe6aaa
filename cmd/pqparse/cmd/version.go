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

	"github.com/spf13/cobra"

	"github.com/devt-tools/pqparse/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pqparse version %s\n", config.ProductVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
