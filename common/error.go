/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package common

import "fmt"

/*
InvariantError signals a core bug (a violated invariant). Unlike every
other error in this module it is not meant to be handled by callers -
recovering from a panicking assertion and wrapping it as an
InvariantError is the only legitimate use, and the process should
terminate shortly after observing one.
*/
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s", e.Reason)
}

/*
CancellationError signals that a CancellationToken fired mid-operation.
*/
type CancellationError struct{}

func (e *CancellationError) Error() string {
	return "operation was cancelled"
}

/*
CommonError wraps the two error kinds every phase entry point may
surface regardless of what it was doing: a bug (InvariantError) or a
cancellation (CancellationError).
*/
type CommonError struct {
	Inner error
}

func (e *CommonError) Error() string {
	return fmt.Sprintf("common error: %v", e.Inner)
}

func (e *CommonError) Unwrap() error {
	return e.Inner
}

/*
AssertTrue panics with an *InvariantError if cond is false. Mirrors
krotik-ecal's errorutil.AssertTrue convention: invariant checks are written
as assertions rather than manually constructed error returns, and are
recovered exactly once at each phase's top-level entry point via
RecoverCommon.
*/
func AssertTrue(cond bool, reason string) {
	if !cond {
		panic(&InvariantError{Reason: reason})
	}
}

/*
AssertOk panics with an *InvariantError if err is non-nil. Used where an
error is only possible if a prior invariant was already violated (e.g. a
map lookup that must have succeeded).
*/
func AssertOk(err error) {
	if err != nil {
		panic(&InvariantError{Reason: err.Error()})
	}
}

/*
RecoverCommon recovers a panicking InvariantError or CancellationError
and stores it, wrapped in a *CommonError, into errOut. It is deferred at
every phase-level Try* entry point. Any other panic value is re-raised
unchanged - only the two sanctioned panic kinds are core-recoverable.
*/
func RecoverCommon(errOut *error) {
	r := recover()
	if r == nil {
		return
	}

	switch v := r.(type) {
	case *InvariantError:
		*errOut = &CommonError{Inner: v}
	case *CancellationError:
		*errOut = &CommonError{Inner: v}
	default:
		panic(r)
	}
}
