/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parse

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/devt-tools/pqparse/lexer"
)

/*
corpusFixtures is a small battery of representative M source snippets -
one per major construct this package prints - snapshotted end to end
(lex -> snapshot -> parse -> Sprint) the way CWBudde-go-dws's fixture_test.go
snapshots its interpreter's output, adapted here to a parser toolkit's
natural golden artifact: the reconstructed, normalized source text.
*/
var corpusFixtures = map[string]string{
	"arithmetic":               "1 + 2 * 3",
	"let":                      "let x = 1, y = x + 1 in y",
	"record":                   "[ a = 1, b = 2 ]",
	"list":                     "{1, 2, 3}",
	"conditional":              "if true then 1 else 2",
	"invoke":                   "foo(1, 2)",
	"section":                  "section; shared x = 1;",
	"meta-over-logical":        "a meta b or c",
	"relational-over-equality": "a < b = c",
	"record-literal":           "[ a = 1, b = {2, 3}, c = [ d = \"x\" ] ]",
	"record-expression":        "[ a = 1, b = f(2) ]",
}

func TestCorpus_SprintSnapshots(t *testing.T) {
	for name, source := range corpusFixtures {
		name, source := name, source
		t.Run(name, func(t *testing.T) {
			lexed := lexer.TryLex(lexer.Settings{}, source)
			if lexed.Err != nil {
				t.Fatalf("lex error: %v", lexed.Err)
			}

			snapped := lexer.TrySnapshot(lexer.Settings{}, lexed.State)
			if snapped.Err != nil {
				t.Fatalf("snapshot error: %v", snapped.Err)
			}

			tried := TryRead(Settings{}, snapped.Snapshot)
			if tried.Err != nil {
				t.Fatalf("parse error: %v", tried.Err)
			}

			printed := Sprint(XorNode{Ast: tried.Result.Root}, tried.Result.Collection)
			snaps.MatchSnapshot(t, printed)
		})
	}
}
