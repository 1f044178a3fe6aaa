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
Package common contains cross-phase error taxonomy and the cancellation
capability shared by the lexer, parser and inspection phases.
*/
package common

import "time"

/*
CancellationToken is the capability every settings-accepting entry point
accepts. This package defines the contract plus one implementation,
TimedCancellation; callers that don't need cancellation pass nil.
*/
type CancellationToken interface {

	/*
		ThrowIfCancelled panics with a *CancellationError if the token has
		been triggered. It is the only suspension point in the core: it is
		called at stable checkpoints (start of each line lexed, start of
		each token consumed, start of each ancestor visited) and nowhere
		inside inner loops.
	*/
	ThrowIfCancelled()

	/*
		IsCancelled reports the current cancellation state without panicking.
	*/
	IsCancelled() bool
}

/*
TimedCancellation is a CancellationToken that triggers once a wall-clock
duration has elapsed since it was created. A duration of 0 fires
immediately on the first check.
*/
type TimedCancellation struct {
	deadline time.Time
}

/*
NewTimedCancellation creates a TimedCancellation that fires after ms
milliseconds have elapsed.
*/
func NewTimedCancellation(ms int) *TimedCancellation {
	return &TimedCancellation{deadline: time.Now().Add(time.Duration(ms) * time.Millisecond)}
}

/*
IsCancelled reports whether the deadline has passed.
*/
func (t *TimedCancellation) IsCancelled() bool {
	return !time.Now().Before(t.deadline)
}

/*
ThrowIfCancelled panics with a *CancellationError once the deadline has
passed.
*/
func (t *TimedCancellation) ThrowIfCancelled() {
	if t.IsCancelled() {
		panic(&CancellationError{})
	}
}

/*
CheckCancellation is a no-op safe helper callers use at checkpoints
instead of nil-checking the token themselves.
*/
func CheckCancellation(token CancellationToken) {
	if token != nil {
		token.ThrowIfCancelled()
	}
}
