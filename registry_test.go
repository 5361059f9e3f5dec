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

package smartenum_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomoncle/smartenum"
)

// brokenValue declares two members sharing the value 1.
type brokenValue struct{ smartenum.Int }

var (
	brokenValueOn  = brokenValue{smartenum.NewInt("On", 1)}
	brokenValueOff = brokenValue{smartenum.NewInt("Off", 1)}
)

func (brokenValue) Members() []brokenValue { return []brokenValue{brokenValueOn, brokenValueOff} }

// brokenName declares two members sharing the name "On".
type brokenName struct{ smartenum.Int }

var (
	brokenNameFirst  = brokenName{smartenum.NewInt("On", 1)}
	brokenNameSecond = brokenName{smartenum.NewInt("On", 2)}
)

func (brokenName) Members() []brokenName { return []brokenName{brokenNameFirst, brokenNameSecond} }

func TestDuplicateValuePanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		dup, ok := r.(*smartenum.DuplicateError)
		require.True(t, ok, "panic value should be *DuplicateError, got %T", r)
		require.Equal(t, "value", dup.Kind)
		require.Equal(t, "1", dup.Dup)
	}()
	smartenum.All[brokenValue, int]()
}

func TestDuplicateNamePanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		dup, ok := r.(*smartenum.DuplicateError)
		require.True(t, ok, "panic value should be *DuplicateError, got %T", r)
		require.Equal(t, "name", dup.Kind)
		require.Equal(t, "On", dup.Dup)
	}()
	smartenum.TryFromName[brokenName, int]("On")
}

func TestBrokenTypeKeepsPanicking(t *testing.T) {
	// the conflict is not resolved by dropping one member: every later
	// use fails the same way
	for i := 0; i < 3; i++ {
		require.Panics(t, func() { smartenum.TryFromValue[brokenValue, int](1) })
	}
}

// currency is declared here and touched only by the concurrency test, so
// the goroutines below race on building its registry.
type currency struct{ smartenum.Int }

var (
	currencyUSD = currency{smartenum.NewInt("USD", 840)}
	currencyEUR = currency{smartenum.NewInt("EUR", 978)}
	currencyJPY = currency{smartenum.NewInt("JPY", 392)}
	currencyGBP = currency{smartenum.NewInt("GBP", 826)}
)

func (currency) Members() []currency {
	return []currency{currencyUSD, currencyEUR, currencyJPY, currencyGBP}
}

func TestConcurrentFirstAccess(t *testing.T) {
	const callers = 64
	expected := []currency{currencyUSD, currencyEUR, currencyJPY, currencyGBP}

	start := make(chan struct{})
	results := make([][]currency, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = smartenum.All[currency, int]()
		}(i)
	}
	close(start)
	wg.Wait()

	for i, got := range results {
		require.Equal(t, expected, got, "caller %d observed a wrong member list", i)
	}
}

// tokenA and tokenB deliberately declare members with identical underlying
// values; their registries must stay independent.
type tokenA struct{ smartenum.Int }

var tokenAOne = tokenA{smartenum.NewInt("One", 1)}

func (tokenA) Members() []tokenA { return []tokenA{tokenAOne} }

type tokenB struct{ smartenum.Int }

var tokenBSolo = tokenB{smartenum.NewInt("Solo", 1)}

func (tokenB) Members() []tokenB { return []tokenB{tokenBSolo} }

func TestCrossTypeDistinctness(t *testing.T) {
	a, ok := smartenum.TryFromValue[tokenA, int](1)
	require.True(t, ok)
	b, ok := smartenum.TryFromValue[tokenB, int](1)
	require.True(t, ok)

	require.Equal(t, tokenAOne, a)
	require.Equal(t, tokenBSolo, b)
	require.Equal(t, "One", a.Name())
	require.Equal(t, "Solo", b.Name())

	require.Equal(t, []string{"One"}, smartenum.Names[tokenA, int]())
	require.Equal(t, []string{"Solo"}, smartenum.Names[tokenB, int]())
}

func TestDeclarationOrderPreserved(t *testing.T) {
	// values are deliberately not sorted; All must follow declaration
	// order, not value order
	require.Equal(t, []int{840, 978, 392, 826}, smartenum.Values[currency, int]())
}
