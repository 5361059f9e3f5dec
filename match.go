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

// Matchable is satisfied by any type embedding Member. The unexported
// method keeps the contract sealed to this package while letting the
// matcher work through argument inference alone.
type Matchable interface {
	identity() any
}

// Matcher is a fluent switch over an enum instance:
//
//	smartenum.When(color).
//		Is(ColorRed, ColorGreen).Then(func() { ... }).
//		Is(ColorBlue).Then(func() { ... }).
//		Else(func() { ... })
//
// The first Is arm listing the subject wins; later arms and Else are
// skipped. Arms compare by underlying value, the same identity relation
// as Equal and Hash, so an equal-value instance matches regardless of
// which in-memory copy either side holds.
type Matcher[E Matchable] struct {
	subject E
	matched bool
	armHit  bool
}

// When starts a match over subject.
func When[E Matchable](subject E) *Matcher[E] {
	return &Matcher[E]{subject: subject}
}

// Is opens an arm matching any of the given candidates.
func (m *Matcher[E]) Is(candidates ...E) *Matcher[E] {
	m.armHit = false
	if m.matched {
		return m
	}
	for _, c := range candidates {
		if c.identity() == m.subject.identity() {
			m.armHit = true
			break
		}
	}
	return m
}

// Then runs fn when the preceding Is arm matched and no earlier arm had
// already won.
func (m *Matcher[E]) Then(fn func()) *Matcher[E] {
	if m.armHit && !m.matched {
		m.matched = true
		fn()
	}
	m.armHit = false
	return m
}

// Else runs fn when no arm matched.
func (m *Matcher[E]) Else(fn func()) {
	if !m.matched {
		fn()
	}
}
