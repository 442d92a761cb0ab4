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
	"testing"

	"github.com/consensys/go-primefield/pkg/util/assert"
)

// Small primes which are checked exhaustively.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 31, 97}

func Test_Element_Range_00(t *testing.T) {
	for _, p := range smallPrimes {
		_, err := NewInt64(p, p)
		e := assert.ErrorAs[*RangeError](t, err, "residue %d in GF(%d)", p, p)
		assert.Equal(t, p, e.Value)
		assert.Equal(t, p, e.Modulus)
	}
}

func Test_Element_Range_01(t *testing.T) {
	for _, p := range smallPrimes {
		_, err := NewInt64(-1, p)
		assert.ErrorAs[*RangeError](t, err, "residue -1 in GF(%d)", p)
	}
}

func Test_Element_Range_02(t *testing.T) {
	for _, p := range smallPrimes {
		for a := range p {
			x, err := NewInt64(a, p)
			assert.NoError(t, err)
			assert.Equal(t, a, x.Residue())
			assert.Equal(t, p, x.Prime())
		}
	}
}

func Test_Element_Range_03(t *testing.T) {
	_, err := NewInt64(7, 31)
	assert.NoError(t, err)
	_, err = NewInt64(31, 31)
	assert.Equal(t, "31 not in field range 0 to 30", err.Error())
}

func Test_Element_Equals_00(t *testing.T) {
	assert.False(t, MustNew(7, 13).Equals(nil))
}

func Test_Element_Equals_01(t *testing.T) {
	x, y := MustNew(7, 13), MustNew(7, 13)
	assert.True(t, x.Equals(&y))
	assert.True(t, y.Equals(&x))
}

func Test_Element_Equals_02(t *testing.T) {
	x, y := MustNew(7, 13), MustNew(6, 13)
	assert.False(t, x.Equals(&y))
}

func Test_Element_Equals_03(t *testing.T) {
	x, y := MustNew(7, 13), MustNew(7, 17)
	assert.False(t, x.Equals(&y))
	assert.Equal(t, -1, x.Cmp(y))
}

func Test_Element_Immutable_00(t *testing.T) {
	r, p := big.NewInt(3), big.NewInt(31)
	x, err := New(r, p)
	assert.NoError(t, err)
	// Mutating inputs must not affect the element
	r.SetInt64(5)
	p.SetInt64(37)
	assert.Equal(t, 3, x.Residue())
	assert.Equal(t, 31, x.Prime())
	// Mutating outputs must not affect the element
	x.Residue().SetInt64(9)
	assert.Equal(t, 3, x.Residue())
}

func Test_Element_Immutable_01(t *testing.T) {
	x, y := MustNew(3, 31), MustNew(30, 31)
	z, err := x.Add(y)
	assert.NoError(t, err)
	assert.Equal(t, 2, z.Residue())
	assert.Equal(t, 3, x.Residue())
	assert.Equal(t, 30, y.Residue())
}

func Test_Element_String_00(t *testing.T) {
	assert.Equal(t, "FieldElement_31(4)", MustNew(4, 31).String())
	assert.Equal(t, "1f", MustNew(31, 223).Text(16))
}

func Test_Element_Closure_00(t *testing.T) {
	for _, p := range smallPrimes {
		checkClosure(t, p)
	}
}

func Test_Element_Mismatch_00(t *testing.T) {
	var (
		x = MustNew(1, 31)
		y = MustNew(1, 37)
		//
		ops = map[string]func(Element, Element) (Element, error){
			"add":      Element.Add,
			"subtract": Element.Sub,
			"multiply": Element.Mul,
			"divide":   Element.Div,
		}
	)
	//
	for name, op := range ops {
		_, err := op(x, y)
		e := assert.ErrorAs[*FieldMismatchError](t, err, "%s across fields", name)
		assert.Equal(t, name, e.Op)
		assert.Equal(t, 31, e.Left)
		assert.Equal(t, 37, e.Right)
	}
}

func Test_Element_Fermat_00(t *testing.T) {
	for _, p := range smallPrimes {
		for a := int64(1); a < p; a++ {
			assert.True(t, MustNew(a, p).PowInt64(p-1).IsOne(), "%d^%d in GF(%d)", a, p-1, p)
		}
	}
}

func Test_Element_AdditiveInverse_00(t *testing.T) {
	for _, p := range smallPrimes {
		zero := MustNew(0, p)
		//
		for a := range p {
			x := MustNew(a, p)
			neg, err := zero.Sub(x)
			assert.NoError(t, err)
			sum, err := x.Add(neg)
			assert.NoError(t, err)
			assert.True(t, sum.IsZero(), "%d + (0 - %d) in GF(%d)", a, a, p)
			assert.Equal(t, neg.Residue(), x.Neg().Residue())
		}
	}
}

func Test_Element_DivisionRoundTrip_00(t *testing.T) {
	for _, p := range smallPrimes {
		for a := range p {
			for b := int64(1); b < p; b++ {
				x, y := MustNew(a, p), MustNew(b, p)
				q, err := x.Div(y)
				assert.NoError(t, err)
				r, err := q.Mul(y)
				assert.NoError(t, err)
				assert.True(t, r.Equals(&x), "(%d / %d) * %d in GF(%d)", a, b, b, p)
			}
		}
	}
}

func Test_Element_DivisionByZero_00(t *testing.T) {
	for _, p := range []int64{3, 5, 31} {
		for a := range p {
			q, err := MustNew(a, p).Div(MustNew(0, p))
			assert.NoError(t, err)
			assert.True(t, q.IsZero(), "%d / 0 in GF(%d)", a, p)
		}
	}
}

func Test_Element_Inverse_00(t *testing.T) {
	for _, p := range smallPrimes {
		assert.True(t, MustNew(0, p).Inverse().IsZero())
		//
		for a := int64(1); a < p; a++ {
			x := MustNew(a, p)
			r, err := x.Mul(x.Inverse())
			assert.NoError(t, err)
			assert.True(t, r.IsOne(), "%d * %d⁻¹ in GF(%d)", a, a, p)
		}
	}
}

func Test_Element_NegativeExponent_00(t *testing.T) {
	for _, p := range smallPrimes {
		for a := range p {
			x := MustNew(a, p)
			//
			for k := int64(1); k < p-1; k++ {
				assert.Equal(t, x.PowInt64(p-1-k).Residue(), x.PowInt64(-k).Residue(), "%d^-%d in GF(%d)", a, k, p)
			}
		}
	}
}

func Test_Element_Pow_00(t *testing.T) {
	// 17^-3 = 17^27 = 29 in GF(31)
	assert.Equal(t, 29, MustNew(17, 31).PowInt64(-3).Residue())
	// 4^-4 = 4^26 = 4 in GF(31)
	assert.Equal(t, 4, MustNew(4, 31).PowInt64(-4).Residue())
}

func Test_Element_Pow_01(t *testing.T) {
	var k big.Int
	// Exponents far beyond machine words are normalised first.
	k.Exp(big.NewInt(10), big.NewInt(40), nil)
	k.Mul(&k, big.NewInt(30))
	k.Add(&k, big.NewInt(3))
	// 30·10^40 + 3 = 3 mod 30 hence 17^k = 17^3 = 4913 = 15 mod 31
	assert.Equal(t, 15, MustNew(17, 31).Pow(&k).Residue())
	k.Neg(&k)
	// -k = -3 = 27 mod 30
	assert.Equal(t, 29, MustNew(17, 31).Pow(&k).Residue())
}

func Test_Element_TrivialField_00(t *testing.T) {
	x := MustNew(0, 1)
	assert.True(t, x.PowInt64(-5).IsZero())
	assert.True(t, x.Inverse().IsZero())
	//
	q, err := x.Div(x)
	assert.NoError(t, err)
	assert.True(t, q.IsZero())
}

// ===================================================================
// Helpers
// ===================================================================

// Check every pair of elements in GF(p) produces in-range results which
// agree with plain integer arithmetic.
func checkClosure(t *testing.T, p int64) {
	for a := range p {
		for b := range p {
			x, y := MustNew(a, p), MustNew(b, p)
			//
			checkResult(t, (a+b)%p, p)(x.Add(y))
			checkResult(t, ((a-b)%p+p)%p, p)(x.Sub(y))
			checkResult(t, (a*b)%p, p)(x.Mul(y))
			//
			if b != 0 {
				q, err := x.Div(y)
				assert.NoError(t, err)
				checkInRange(t, q)
				assert.Equal(t, a, (q.Residue().Int64()*b)%p, "%d / %d in GF(%d)", a, b, p)
			}
			// exponents can be any integer
			for k := -2 * p; k <= 2*p; k += 3 {
				checkInRange(t, x.PowInt64(k))
			}
		}
	}
}

func checkResult(t *testing.T, expected int64, p int64) func(Element, error) {
	return func(actual Element, err error) {
		assert.NoError(t, err)
		checkInRange(t, actual)
		assert.Equal(t, expected, actual.Residue(), "in GF(%d)", p)
		assert.Equal(t, p, actual.Prime())
	}
}

func checkInRange(t *testing.T, x Element) {
	r := x.Residue()
	assert.True(t, r.Sign() >= 0 && r.Cmp(x.Prime()) < 0, "%s out of range", x)
}
