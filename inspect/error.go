/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package inspect

import "errors"

/*
ErrNoActiveNode is returned when the collection has no root node at all
(an empty parse with zero tokens consumed).
*/
var ErrNoActiveNode = errors.New("inspect: collection has no active node")
