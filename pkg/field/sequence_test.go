// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"math/big"
	"slices"
	"testing"

	"github.com/consensys/go-primefield/pkg/util/assert"
	"github.com/consensys/go-primefield/pkg/util/collection/iter"
)

func Test_Multiples_00(t *testing.T) {
	// Multiplication by a nonzero element is a bijection.
	c := calculator(t, 19)
	//
	for _, k := range []int64{1, 3, 7, 13, 18} {
		checkSequence(t, c.Multiples(big.NewInt(k)), rangeOf(19))
	}
}

func Test_Multiples_01(t *testing.T) {
	c := calculator(t, 19)
	checkSequence(t, c.Multiples(big.NewInt(0)), make([]int64, 19))
}

// Exhaustively compare against brute force for both prime and composite
// moduli, including operands which are negative or out of range.
func Test_Multiples_02(t *testing.T) {
	for p := int64(1); p <= 36; p++ {
		for num := -p; num <= 2*p; num++ {
			checkSequence(t, Multiples(big.NewInt(num), big.NewInt(p)), bruteForceMultiples(num, p))
		}
	}
}

func Test_Multiples_03(t *testing.T) {
	seq := Multiples(big.NewInt(6), big.NewInt(9))
	assert.Equal(t, 9, seq.Len())
	// Partially drain, then clone and reset
	assert.Equal(t, 0, seq.Next())
	assert.Equal(t, 0, seq.Next())
	assert.Equal(t, 0, seq.Next())
	assert.Equal(t, 3, seq.Next())
	//
	clone := seq.Clone()
	assert.Equal(t, 3, seq.Next())
	assert.Equal(t, 3, clone.Next())
	//
	seq.Reset()
	assert.Equal(t, []int64{0, 0, 0, 3, 3, 3, 6, 6, 6}, toInt64s(seq.Collect()))
	assert.Equal(t, []int64{3, 6, 6, 6}, toInt64s(clone.Collect()))
	assert.False(t, seq.HasNext())
}

func Test_Multiples_04(t *testing.T) {
	// The sequence is lazy, hence huge fields are fine.
	c, err := SECP256K1.Calculator()
	assert.NoError(t, err)
	//
	multiples := c.Multiples(big.NewInt(2))
	//
	for i := range 1000 {
		assert.Equal(t, i, multiples.Next())
	}
	//
	assert.True(t, multiples.HasNext())
}

func Test_Powers_00(t *testing.T) {
	c := calculator(t, 31)
	powers := c.Powers(ints(7, 11, 17, 31, 43)...)
	//
	for _, p := range []int64{7, 11, 17, 31, 43} {
		assert.True(t, powers.HasNext())
		//
		table := powers.Next()
		assert.Equal(t, p, table.Prime)
		assert.Equal(t, p-1, int64(len(table.Residues)))
		assert.True(t, table.AllOne(), "Fermat's little theorem in GF(%d)", p)
	}
	//
	assert.False(t, powers.HasNext())
}

func Test_Powers_01(t *testing.T) {
	// 15 is not prime: i^14 mod 15 for i in [1,15)
	table := Powers(big.NewInt(15)).Next()
	assert.False(t, table.AllOne())
	assert.Equal(t, bruteForcePowers(15), toInt64s(table.Residues))
}

func Test_Powers_02(t *testing.T) {
	for p := int64(0); p <= 40; p++ {
		table := Powers(big.NewInt(p)).Next()
		assert.Equal(t, bruteForcePowers(p), toInt64s(table.Residues), "powers mod %d", p)
		assert.Equal(t, isPrime(p), p >= 2 && table.AllOne(), "primality of %d", p)
	}
}

func Test_Powers_03(t *testing.T) {
	// Candidates are copied, and tables only computed on demand
	candidates := ints(5, 7)
	powers := Powers(candidates...)
	candidates[0].SetInt64(4)
	//
	clone := powers.Clone()
	tables := powers.Collect()
	assert.Equal(t, 2, len(tables))
	assert.Equal(t, 5, tables[0].Prime)
	assert.True(t, iter.All[PowerTable](clone, PowerTable.AllOne))
	assert.Equal(t, "5: [1 1 1 1]", tables[0].String())
}

// ===================================================================
// Helpers
// ===================================================================

func checkSequence(t *testing.T, seq *Sequence, expected []int64) {
	t.Helper()
	//
	clone := seq.Clone()
	//
	assert.Equal(t, expected, toInt64s(seq.Collect()))
	// Restarting gives the same sequence again
	seq.Reset()
	assert.Equal(t, expected, toInt64s(iter.Collect[*big.Int](seq)))
	assert.Equal(t, expected, toInt64s(clone.Collect()))
}

func bruteForceMultiples(num, p int64) []int64 {
	items := make([]int64, p)
	//
	for i := range p {
		items[i] = ((num*i)%p + p) % p
	}
	//
	slices.Sort(items)
	//
	return items
}

func bruteForcePowers(p int64) []int64 {
	items := make([]int64, 0)
	//
	for i := int64(1); i < p; i++ {
		acc := int64(1)
		//
		for range p - 1 {
			acc = (acc * i) % p
		}
		//
		items = append(items, acc)
	}
	//
	slices.Sort(items)
	//
	return items
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	//
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	//
	return true
}

func rangeOf(n int64) []int64 {
	items := make([]int64, n)
	//
	for i := range n {
		items[i] = i
	}
	//
	return items
}

func toInt64s(nums []*big.Int) []int64 {
	items := make([]int64, len(nums))
	//
	for i, x := range nums {
		items[i] = x.Int64()
	}
	//
	return items
}
