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
	"fmt"
	"hash/maphash"
	"strings"
)

// hashSeed is fixed for the process so Hash stays a pure function of the
// underlying value.
var hashSeed = maphash.MakeSeed()

// TryFromValue returns the instance of E whose underlying value is v.
// The second result is false when no declared instance matches; the
// lookup itself never fails.
func TryFromValue[E Enum[E, V], V Value](v V) (E, bool) {
	m, ok := registryOf[E, V]().byValue[v]
	return m, ok
}

// TryFromName returns the instance of E with the given name, compared
// byte-exact (case-sensitive, no normalization). The second result is
// false when no declared instance matches.
func TryFromName[E Enum[E, V], V Value](name string) (E, bool) {
	m, ok := registryOf[E, V]().byName[name]
	return m, ok
}

// TryFromNameFold returns the first instance of E, in declaration order,
// whose name matches under Unicode case folding. Unlike the O(1) exact
// lookups this scans the member list.
func TryFromNameFold[E Enum[E, V], V Value](name string) (E, bool) {
	for _, m := range registryOf[E, V]().members {
		if strings.EqualFold(m.Name(), name) {
			return m, true
		}
	}
	var zero E
	return zero, false
}

// FromValue is the narrowing conversion from a raw scalar to an instance
// of E. It fails with ErrInvalidConversion when v is unmapped.
func FromValue[E Enum[E, V], V Value](v V) (E, error) {
	m, ok := registryOf[E, V]().byValue[v]
	if !ok {
		var zero E
		return zero, fmt.Errorf("%w: no %T with value %v", ErrInvalidConversion, zero, v)
	}
	return m, nil
}

// FromName converts a name to an instance of E, failing with
// ErrInvalidConversion when the name is unmapped.
func FromName[E Enum[E, V], V Value](name string) (E, error) {
	m, ok := registryOf[E, V]().byName[name]
	if !ok {
		var zero E
		return zero, fmt.Errorf("%w: no %T named %q", ErrInvalidConversion, zero, name)
	}
	return m, nil
}

// MustFromValue is FromValue panicking on an unmapped scalar. Intended
// for package-level variable initialization from known-good values.
func MustFromValue[E Enum[E, V], V Value](v V) E {
	m, err := FromValue[E, V](v)
	if err != nil {
		panic(err)
	}
	return m
}

// FromValueOr returns the instance whose underlying value is v, or
// fallback when v is unmapped.
func FromValueOr[E Enum[E, V], V Value](v V, fallback E) E {
	if m, ok := registryOf[E, V]().byValue[v]; ok {
		return m
	}
	return fallback
}

// All returns every declared instance of E in declaration order. The
// slice is a fresh copy on each call; repeated calls yield identical
// contents.
func All[E Enum[E, V], V Value]() []E {
	members := registryOf[E, V]().members
	result := make([]E, len(members))
	copy(result, members)
	return result
}

// Names returns the declared instance names of E in declaration order.
func Names[E Enum[E, V], V Value]() []string {
	members := registryOf[E, V]().members
	result := make([]string, len(members))
	for i, m := range members {
		result[i] = m.Name()
	}
	return result
}

// Values returns the declared underlying values of E in declaration order.
func Values[E Enum[E, V], V Value]() []V {
	members := registryOf[E, V]().members
	result := make([]V, len(members))
	for i, m := range members {
		result[i] = m.Value()
	}
	return result
}

// Count returns the number of declared instances of E.
func Count[E Enum[E, V], V Value]() int {
	return len(registryOf[E, V]().members)
}

// Contains reports whether some instance of E has the underlying value v.
func Contains[E Enum[E, V], V Value](v V) bool {
	_, ok := registryOf[E, V]().byValue[v]
	return ok
}

// Equal reports whether a and b are the same enum member, judged by
// underlying value alone. Either operand being nil yields false; the
// comparison never panics.
func Equal[E Enum[E, V], V Value](a, b *E) bool {
	if a == nil || b == nil {
		return false
	}
	return (*a).Value() == (*b).Value()
}

// Hash returns a hash of e derived from its underlying value only, so
// instances that are Equal hash identically. The result is stable within
// one process.
func Hash[E Enum[E, V], V Value](e E) uint64 {
	return maphash.Comparable(hashSeed, e.Value())
}

// Compare orders two instances by underlying value, returning a negative
// number, zero, or a positive number.
func Compare[E Enum[E, V], V Value](a, b E) int {
	switch {
	case a.Value() < b.Value():
		return -1
	case a.Value() > b.Value():
		return 1
	default:
		return 0
	}
}
