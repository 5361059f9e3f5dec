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
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/tomoncle/smartenum/utils"
)

var logger = utils.NewLogger("SMARTENUM")

// registries is the process-wide table of built registries, keyed by the
// concrete enum type. LoadOrCompute runs the build under a bucket lock,
// so the build executes exactly once per type and concurrent first
// callers only ever observe the finished registry. Values are *registry
// instances stored as any; the concrete type is recovered at the generic
// call site.
var registries = xsync.NewMapOf[reflect.Type, any]()

// registry holds the immutable lookup state of one concrete enum type.
// After the one-time build it is never written again, so reads need no
// synchronization.
type registry[E any, V Value] struct {
	members []E          // declaration order
	byValue map[V]E      // value -> instance
	byName  map[string]E // name -> instance, byte-exact keys
	err     *DuplicateError
}

// registryOf returns the built registry for E, building it on first use.
// A broken declaration set (duplicate value or name) panics on this and
// every later use of the type.
func registryOf[E Enum[E, V], V Value]() *registry[E, V] {
	key := reflect.TypeOf((*E)(nil)).Elem()
	v, _ := registries.LoadOrCompute(key, func() any {
		return buildRegistry[E, V](key)
	})
	r := v.(*registry[E, V])
	if r.err != nil {
		panic(r.err)
	}
	return r
}

func buildRegistry[E Enum[E, V], V Value](key reflect.Type) *registry[E, V] {
	var zero E
	declared := zero.Members()
	r := &registry[E, V]{
		members: make([]E, 0, len(declared)),
		byValue: make(map[V]E, len(declared)),
		byName:  make(map[string]E, len(declared)),
	}
	for _, m := range declared {
		if _, exists := r.byValue[m.Value()]; exists {
			r.err = &DuplicateError{Type: key.String(), Kind: "value", Dup: fmt.Sprintf("%v", m.Value())}
			return r
		}
		if _, exists := r.byName[m.Name()]; exists {
			r.err = &DuplicateError{Type: key.String(), Kind: "name", Dup: m.Name()}
			return r
		}
		r.byValue[m.Value()] = m
		r.byName[m.Name()] = m
		r.members = append(r.members, m)
	}
	logger.Debugf("registered enum type %s with %d members", key, len(r.members))
	return r
}
