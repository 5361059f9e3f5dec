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

// Int is the embeddable base for int-backed enum types.
type Int = Member[int]

// NewInt declares an int-backed member.
func NewInt(name string, value int) Int { return New[int](name, value) }

// Int64 is the embeddable base for int64-backed enum types.
type Int64 = Member[int64]

// NewInt64 declares an int64-backed member.
func NewInt64(name string, value int64) Int64 { return New[int64](name, value) }
