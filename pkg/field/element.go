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
	"fmt"
	"math/big"
)

// Element of a prime-order field GF(p).  An element pairs a residue with the
// modulus of the field it belongs to, and maintains the invariant 0 <= residue
// < prime.  Elements are immutable: every operation returns a fresh element,
// and neither the residue nor the prime is ever shared with a caller.  Two
// elements are field-compatible iff their primes match; binary operations on
// incompatible elements fail with a FieldMismatchError.
//
// Observe that the prime is not checked for primality.  Addition, subtraction
// and multiplication are well-defined for any modulus, but division and
// exponent normalisation rely on Fermat's little theorem and are only
// meaningful when the modulus is actually prime.
type Element struct {
	residue *big.Int
	prime   *big.Int
}

// New constructs an element of GF(prime) with the given residue, failing with
// a RangeError if the residue is not within [0, prime).
func New(residue, prime *big.Int) (Element, error) {
	if !inRange(residue, prime) {
		return Element{}, newRangeError(residue, prime)
	}
	//
	return Element{new(big.Int).Set(residue), new(big.Int).Set(prime)}, nil
}

// NewInt64 is a convenience wrapper around New for small fields.
func NewInt64(residue, prime int64) (Element, error) {
	return New(big.NewInt(residue), big.NewInt(prime))
}

// MustNew constructs an element of GF(prime), panicking if the residue is out
// of range.
func MustNew(residue, prime int64) Element {
	e, err := NewInt64(residue, prime)
	if err != nil {
		panic(err)
	}
	//
	return e
}

// Residue returns the canonical representative of this element.
func (x Element) Residue() *big.Int {
	return new(big.Int).Set(x.residue)
}

// Prime returns the modulus of the field this element belongs to.
func (x Element) Prime() *big.Int {
	return new(big.Int).Set(x.prime)
}

// Equals checks whether two elements have the same residue and belong to the
// same field.  Comparing against nil yields false.
func (x Element) Equals(other *Element) bool {
	if other == nil {
		return false
	} else if x.prime == nil || other.prime == nil {
		// at least one side is the (invalid) zero value
		return x.prime == nil && other.prime == nil
	}
	//
	return x.residue.Cmp(other.residue) == 0 && x.prime.Cmp(other.prime) == 0
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.  Elements are ordered
// first by field, then by residue.
func (x Element) Cmp(y Element) int {
	if c := x.prime.Cmp(y.prime); c != 0 {
		return c
	}
	//
	return x.residue.Cmp(y.residue)
}

// IsZero checks whether this is the additive identity.
func (x Element) IsZero() bool {
	return x.residue.Sign() == 0
}

// IsOne checks whether this is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.residue.Cmp(one) == 0
}

// Add x + y
func (x Element) Add(y Element) (Element, error) {
	return x.binary("add", y, func(a, b, p *big.Int) *big.Int {
		res := new(big.Int).Add(a, b)
		return res.Mod(res, p)
	})
}

// Sub x - y
func (x Element) Sub(y Element) (Element, error) {
	return x.binary("subtract", y, func(a, b, p *big.Int) *big.Int {
		res := new(big.Int).Sub(a, b)
		return res.Mod(res, p)
	})
}

// Mul x * y
func (x Element) Mul(y Element) (Element, error) {
	return x.binary("multiply", y, func(a, b, p *big.Int) *big.Int {
		res := new(big.Int).Mul(a, b)
		return res.Mod(res, p)
	})
}

// Div x / y, computed as x * y^(p-2).  Dividing by zero is not rejected, and
// (for p > 2) yields zero.
func (x Element) Div(y Element) (Element, error) {
	return x.binary("divide", y, divMod)
}

// Neg -x
func (x Element) Neg() Element {
	res := new(big.Int).Neg(x.residue)
	//
	return Element{res.Mod(res, x.prime), x.prime}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	if x.IsZero() {
		// 0^(p-2) is 1 (not 0) when p = 2
		return x
	}
	//
	return Element{inverse(x.residue, x.prime), x.prime}
}

// Pow computes x^k for an arbitrary (possibly negative) exponent k.  The
// exponent is first normalised modulo p-1, after which fast modular
// exponentiation is used.
func (x Element) Pow(k *big.Int) Element {
	return Element{expMod(x.residue, k, x.prime), x.prime}
}

// PowInt64 is a convenience wrapper around Pow.
func (x Element) PowInt64(k int64) Element {
	return x.Pow(big.NewInt(k))
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.residue.Text(base)
}

func (x Element) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", x.prime, x.residue)
}

// Apply a binary operation after checking both operands belong to the same
// field.  The operation must return a value already reduced into [0, p).
func (x Element) binary(op string, y Element, fn func(a, b, p *big.Int) *big.Int) (Element, error) {
	if x.prime.Cmp(y.prime) != 0 {
		return Element{}, &FieldMismatchError{op, x.Prime(), y.Prime()}
	}
	//
	return Element{fn(x.residue, y.residue, x.prime), x.prime}, nil
}
