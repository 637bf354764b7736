/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform turns source records into normalized tokens.
//
// Transformers are pure: they never fail on a single bad record. Records
// that cannot produce a usable value are dropped and reported as
// Diagnostics, and styles whose values need node data that is not
// available become placeholder tokens with NeedsNodeData set.
package transform

import "bennypowers.dev/tokman/token"

// Options configures name derivation.
type Options struct {
	// Separator joins path segments. Defaults to "-".
	Separator string
}

func (o Options) separator() string {
	if o.Separator == "" {
		return token.DefaultSeparator
	}
	return o.Separator
}
