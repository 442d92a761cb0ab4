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

	"github.com/consensys/go-primefield/pkg/util/collection/iter"
)

// Calculator performs field operations directly on plain integers against a
// fixed prime, without wrapping them as elements.  The operands given at
// construction are checked to lie within the field.  However, operands passed
// to individual operations are trusted and NOT checked: they may be negative
// or exceed the prime, and are simply reduced.  Every result is within [0,
// prime).
type Calculator struct {
	operands []*big.Int
	prime    *big.Int
}

// NewCalculator constructs a calculator for GF(prime), failing with a
// RangeError on the first operand outside [0, prime).  A prime which is not
// positive leaves no valid range at all, and is likewise rejected.
func NewCalculator(operands []*big.Int, prime *big.Int) (*Calculator, error) {
	if prime.Sign() <= 0 {
		return nil, newRangeError(prime, prime)
	}
	//
	nums := make([]*big.Int, len(operands))
	//
	for i, x := range operands {
		if !inRange(x, prime) {
			return nil, newRangeError(x, prime)
		}
		//
		nums[i] = new(big.Int).Set(x)
	}
	//
	return &Calculator{nums, new(big.Int).Set(prime)}, nil
}

// Operands returns (a copy of) the operands this calculator was constructed
// with.
func (c *Calculator) Operands() []*big.Int {
	nums := make([]*big.Int, len(c.operands))
	//
	for i, x := range c.operands {
		nums[i] = new(big.Int).Set(x)
	}
	//
	return nums
}

// Prime returns the modulus of this calculator.
func (c *Calculator) Prime() *big.Int {
	return new(big.Int).Set(c.prime)
}

// AddAll computes (x0 + x1 + ...) mod p over one or more operands.
func (c *Calculator) AddAll(nums ...*big.Int) (*big.Int, error) {
	if len(nums) == 0 {
		return nil, &ArityError{"add", "at least 1", 0}
	}
	//
	var sum big.Int
	//
	for _, x := range nums {
		sum.Add(&sum, x)
	}
	//
	return reduce(&sum, c.prime), nil
}

// SubtractAll computes (x0 - x1 - ...) mod p over one or more operands.  A
// single operand is simply reduced.
func (c *Calculator) SubtractAll(nums ...*big.Int) (*big.Int, error) {
	if len(nums) == 0 {
		return nil, &ArityError{"subtract", "at least 1", 0}
	}
	//
	total := new(big.Int).Set(nums[0])
	//
	for _, x := range nums[1:] {
		total.Sub(total, x)
	}
	//
	return total.Mod(total, c.prime), nil
}

// MultiplyAll computes (x0 * x1 * ...) mod p over one or more operands.  The
// product is accumulated in full and only reduced at the end.
func (c *Calculator) MultiplyAll(nums ...*big.Int) (*big.Int, error) {
	if len(nums) == 0 {
		return nil, &ArityError{"multiply", "at least 1", 0}
	}
	//
	total := new(big.Int).Set(nums[0])
	//
	for _, x := range nums[1:] {
		total.Mul(total, x)
	}
	//
	return total.Mod(total, c.prime), nil
}

// Exponentiate computes base^k mod p, where the (possibly negative) exponent k
// is first normalised modulo p-1.
func (c *Calculator) Exponentiate(base, k *big.Int) *big.Int {
	return expMod(base, k, c.prime)
}

// DivideAll computes a * b^(p-2) mod p for exactly two operands [a, b].  As
// for elements, dividing by zero yields zero.
func (c *Calculator) DivideAll(nums ...*big.Int) (*big.Int, error) {
	if len(nums) != 2 {
		return nil, &ArityError{"divide", "exactly 2", len(nums)}
	}
	//
	return divMod(nums[0], nums[1], c.prime), nil
}

// Multiples returns the sorted multiples of num in this field.  See Multiples.
func (c *Calculator) Multiples(num *big.Int) *Sequence {
	return Multiples(num, c.prime)
}

// Powers returns one power table per candidate modulus.  Observe this does not
// depend upon the calculator's own prime.  See Powers.
func (c *Calculator) Powers(candidates ...*big.Int) iter.Iterator[PowerTable] {
	return Powers(candidates...)
}
