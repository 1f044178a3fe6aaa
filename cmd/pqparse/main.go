/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"log"
	"os"

	"github.com/devt-tools/pqparse/cmd/pqparse/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pqparse: ")

	if err := cmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
