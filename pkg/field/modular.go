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

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// inRange checks 0 <= x < p.
func inRange(x, p *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(p) < 0
}

// reduce returns x mod p as a fresh value in [0, p).  Note that big.Int.Mod
// implements Euclidean modulus, hence negative values are normalised as well.
func reduce(x, p *big.Int) *big.Int {
	return new(big.Int).Mod(x, p)
}

// normaliseExponent maps an arbitrary (possibly negative) exponent k onto
// k mod (p-1).  By Fermat's little theorem a^(p-1) = 1 for every nonzero a,
// so exponents only matter modulo p-1.  For the degenerate field of order 1
// there is nothing to reduce against and the exponent collapses to 0.
func normaliseExponent(k, p *big.Int) *big.Int {
	var order big.Int
	//
	order.Sub(p, one)
	//
	if order.Sign() == 0 {
		return new(big.Int)
	}
	//
	return new(big.Int).Mod(k, &order)
}

// expMod computes base^k mod p, where the exponent is first normalised modulo
// p-1.  The base need not be reduced beforehand.
func expMod(base, k, p *big.Int) *big.Int {
	n := normaliseExponent(k, p)
	//
	return new(big.Int).Exp(reduce(base, p), n, p)
}

// inverse computes x^(p-2) mod p, which is the multiplicative inverse of x
// whenever p is prime and x is nonzero.  Zero maps to zero for p > 2, and
// every value maps to zero in the field of order 1.
func inverse(x, p *big.Int) *big.Int {
	if p.Cmp(one) == 0 {
		return new(big.Int)
	}
	//
	var k big.Int
	//
	k.Sub(p, two)
	//
	return new(big.Int).Exp(reduce(x, p), &k, p)
}

// divMod computes a * b^(p-2) mod p.
func divMod(a, b, p *big.Int) *big.Int {
	res := new(big.Int).Mul(a, inverse(b, p))
	//
	return res.Mod(res, p)
}
