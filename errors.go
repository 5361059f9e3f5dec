/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package smartenum

import (
	"errors"
	"fmt"
)

// ErrInvalidConversion indicates a narrowing conversion from a scalar or a
// name that no declared instance matches. FromValue, FromName and
// MustFromValue wrap it; unwrap with errors.Is.
var ErrInvalidConversion = errors.New("smartenum: invalid conversion")

// DuplicateError reports two declared instances of one concrete type
// sharing a value or a name. It is a programming error in the type's
// declarations: the registry build fails and every operation on the type
// panics with this error, so the conflict cannot be silently resolved by
// keeping one of the two instances.
type DuplicateError struct {
	Type string // concrete enum type name
	Kind string // "value" or "name"
	Dup  string // the duplicated value or name, rendered as a string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("smartenum: duplicate %s %q declared on %s", e.Kind, e.Dup, e.Type)
}
