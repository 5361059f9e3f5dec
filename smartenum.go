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

// Package smartenum implements enum types as named, valued singletons:
// a closed set of instances declared as package-level variables, with
// value-keyed identity, name and value lookup tables built once per
// concrete type, and conversion helpers between instances and their
// underlying scalar values.
package smartenum

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Value bounds the scalar types an enum may be backed by: fixed-size,
// hashable, equality-comparable integers.
type Value = constraints.Integer

// Enum is the contract a concrete enum type satisfies. E is the concrete
// type itself (self-referential, so lookups return the concrete type),
// V its underlying scalar type.
//
// A concrete type embeds Member (or one of the scalar aliases in
// scalar.go) and implements Members returning its declared instances:
//
//	type Color struct{ smartenum.Int }
//
//	var (
//		ColorRed   = Color{smartenum.NewInt("Red", 1)}
//		ColorGreen = Color{smartenum.NewInt("Green", 2)}
//	)
//
//	func (Color) Members() []Color { return []Color{ColorRed, ColorGreen} }
//
// Members must return the declared instances in declaration order and must
// be callable on the zero value. Names and values must each be unique
// within the type; a duplicate of either is reported as a DuplicateError
// on first use.
type Enum[E any, V Value] interface {
	// Members returns every declared instance in declaration order.
	Members() []E

	// Name returns the instance's string identifier.
	Name() string

	// Value returns the instance's underlying scalar value.
	Value() V
}

// Member is the embeddable base of a concrete enum type. It carries the
// immutable name and value pair fixed at declaration time; identity is
// defined by the value alone.
type Member[V Value] struct {
	name  string
	value V
}

// New constructs an enum member with the given name and underlying value.
// It is intended to be called only from a concrete type's package-level
// variable declarations.
func New[V Value](name string, value V) Member[V] {
	return Member[V]{name: name, value: value}
}

// Name returns the member's string identifier.
func (m Member[V]) Name() string {
	return m.name
}

// identity seals the Matchable contract to types embedding Member and
// exposes the value-only identity the matcher compares by.
func (m Member[V]) identity() any {
	return m.value
}

// Value returns the member's underlying scalar value. The conversion is
// total and lossless.
func (m Member[V]) Value() V {
	return m.value
}

// String returns the member's name, making members print as their
// identifier in formatted output.
func (m Member[V]) String() string {
	return m.name
}

// Compare orders two members by underlying value. It returns a negative
// number, zero, or a positive number as m sorts before, equal to, or
// after other.
func (m Member[V]) Compare(other Member[V]) int {
	return cmp.Compare(m.value, other.value)
}
