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

// Set provides instance-style access to one concrete enum type. All Set
// values for the same type share the single per-type registry, so a Set
// is only a convenience handle over the package-level operations.
type Set[E Enum[E, V], V Value] interface {
	// TryFromValue returns the instance with underlying value v, if any.
	TryFromValue(v V) (E, bool)

	// TryFromName returns the instance with the given name, if any.
	TryFromName(name string) (E, bool)

	// FromValue is the narrowing scalar conversion; it fails with
	// ErrInvalidConversion on an unmapped value.
	FromValue(v V) (E, error)

	// FromName converts a name to an instance, failing with
	// ErrInvalidConversion on an unmapped name.
	FromName(name string) (E, error)

	// All returns every declared instance in declaration order.
	All() []E

	// Names returns the declared names in declaration order.
	Names() []string

	// Values returns the declared underlying values in declaration order.
	Values() []V

	// Count returns the number of declared instances.
	Count() int

	// Contains reports whether some instance has the underlying value v.
	Contains(v V) bool
}

type baseSetImpl[E Enum[E, V], V Value] struct{}

// NewSet returns a Set bound to the concrete enum type E, backed by the
// shared per-type registry which is built lazily on first lookup.
func NewSet[E Enum[E, V], V Value]() Set[E, V] {
	return baseSetImpl[E, V]{}
}

// registry resolves the shared per-type registry on every call, one map
// load, so a broken declaration set raises the same DuplicateError on
// each use instead of being shadowed by a cached nil.
func (s baseSetImpl[E, V]) registry() *registry[E, V] {
	return registryOf[E, V]()
}

func (s baseSetImpl[E, V]) TryFromValue(v V) (E, bool) {
	m, ok := s.registry().byValue[v]
	return m, ok
}

func (s baseSetImpl[E, V]) TryFromName(name string) (E, bool) {
	m, ok := s.registry().byName[name]
	return m, ok
}

func (s baseSetImpl[E, V]) FromValue(v V) (E, error) {
	return FromValue[E, V](v)
}

func (s baseSetImpl[E, V]) FromName(name string) (E, error) {
	return FromName[E, V](name)
}

func (s baseSetImpl[E, V]) All() []E {
	return All[E, V]()
}

func (s baseSetImpl[E, V]) Names() []string {
	return Names[E, V]()
}

func (s baseSetImpl[E, V]) Values() []V {
	return Values[E, V]()
}

func (s baseSetImpl[E, V]) Count() int {
	return len(s.registry().members)
}

func (s baseSetImpl[E, V]) Contains(v V) bool {
	_, ok := s.registry().byValue[v]
	return ok
}
