/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"

	"bennypowers.dev/tokman/token"
)

// Sentinel errors for resolution.
var (
	// ErrNameConflict indicates two tokens share a name under a strict policy.
	ErrNameConflict = errors.New("token name conflict")

	// ErrInvalidPolicy indicates an unrecognized conflict resolution policy.
	ErrInvalidPolicy = errors.New("invalid conflict resolution policy")
)

// ConflictError reports a name collision under a strict policy.
type ConflictError struct {
	Name     string
	Existing token.Source
	Incoming token.Source
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("token name conflict for %q between sources %q and %q", e.Name, e.Existing, e.Incoming)
}

// Unwrap lets errors.Is match ErrNameConflict.
func (e *ConflictError) Unwrap() error {
	return ErrNameConflict
}
