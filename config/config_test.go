/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestDefaults(t *testing.T) {

	if res := Str(Locale); res != "en-US" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(Strategy); res != "recursive-descent" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestOverlay(t *testing.T) {
	defer Overlay(map[string]interface{}{
		Locale:   DefaultConfig[Locale],
		Strategy: DefaultConfig[Strategy],
	})

	Overlay(map[string]interface{}{
		Locale: "fr-FR",
	})

	if res := Str(Locale); res != "fr-FR" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(Strategy); res != "recursive-descent" {
		t.Error("Overlay should not touch untouched keys:", res)
		return
	}
}
