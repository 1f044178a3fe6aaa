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
Package config holds cmd/pqparse's settings-bag, following krotik-ecal's
map[string]interface{} idiom (config/config.go): a
DefaultConfig map seeds the live Config map, and Str/Int/Bool read typed
values out of it. The core lexer/parse/inspect/typeutils packages never
import this package - only the CLI does, to resolve a pqparse.yaml
overlay into parser Settings.
*/
package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of pqparse.
*/
const ProductVersion = "0.1.0"

/*
Known configuration options for pqparse.
*/
const (
	Locale   = "Locale"
	Strategy = "Strategy"
)

/*
DefaultConfig is the default configuration. Locale follows the grammar's
en-US default; Strategy picks which of the two parser implementations
cmd/pqparse drives by default.
*/
var DefaultConfig = map[string]interface{}{
	Locale:   "en-US",
	Strategy: "recursive-descent",
}

/*
Config is the actual config which is used, seeded from DefaultConfig and
then overlaid by any pqparse.yaml the CLI loads.
*/
var Config map[string]interface{}

/*
Initialise the config
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

/*
Overlay merges override values (typically unmarshaled from a
pqparse.yaml file) on top of the current Config, leaving keys override
doesn't mention untouched.
*/
func Overlay(override map[string]interface{}) {
	for k, v := range override {
		Config[k] = v
	}
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
