/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// ErrUnknownVersion indicates an unrecognized schema version.
var ErrUnknownVersion = errors.New("unknown schema version")
