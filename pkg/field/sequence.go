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
	"slices"

	"github.com/consensys/go-primefield/pkg/util/collection/iter"
)

// Multiples constructs the sorted sequence of values (num * i) mod p, for i in
// [0, p).  When num is nonzero and p is prime, multiplication by num is a
// bijection on the field and this sequence is exactly 0, 1, ..., p-1.
//
// The sequence is computed lazily in closed form.  Let g = gcd(num mod p, p).
// Then num*i mod p visits every multiple of g below p, each exactly g times.
// Hence the jth item of the sorted sequence is simply ⌊j/g⌋·g.  The modulus
// must be positive.
func Multiples(num, p *big.Int) *Sequence {
	var step big.Int
	// Observe gcd(0, p) = p, in which case every item is zero.
	step.GCD(nil, nil, reduce(num, p), p)
	//
	return &Sequence{new(big.Int).Set(p), &step, new(big.Int)}
}

// Sequence is a lazy, finite and restartable enumeration of the sorted
// multiples of some value in a given field.  A sequence is not safe for
// concurrent use.
type Sequence struct {
	modulus *big.Int
	step    *big.Int
	// index of next item
	index *big.Int
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *Sequence) HasNext() bool {
	return p.index.Cmp(p.modulus) < 0
}

// Next returns the next item, and advances the sequence.
func (p *Sequence) Next() *big.Int {
	if !p.HasNext() {
		panic("sequence out-of-bounds")
	}
	//
	var item big.Int
	//
	item.Quo(p.index, p.step)
	item.Mul(&item, p.step)
	p.index.Add(p.index, one)
	//
	return &item
}

// Reset rewinds the sequence back to its first item.
func (p *Sequence) Reset() {
	p.index.SetUint64(0)
}

// Len returns the total number of items in the sequence (i.e. the modulus).
func (p *Sequence) Len() *big.Int {
	return new(big.Int).Set(p.modulus)
}

// Clone creates a copy of this sequence at the current cursor position.
func (p *Sequence) Clone() iter.Iterator[*big.Int] {
	return &Sequence{p.modulus, p.step, new(big.Int).Set(p.index)}
}

// Collect allocates a new array containing the remaining items of this
// sequence.  This drains the sequence.
func (p *Sequence) Collect() []*big.Int {
	return iter.Collect[*big.Int](p)
}

// PowerTable records, for some candidate modulus p, the sorted values i^(p-1)
// mod p for every i in [1, p).  By Fermat's little theorem every value is 1
// when p is prime.
type PowerTable struct {
	// Candidate modulus.
	Prime *big.Int
	// Sorted residues i^(p-1) mod p.
	Residues []*big.Int
}

// AllOne checks whether every residue in the table is one, as Fermat's little
// theorem requires when the candidate is prime.
func (t PowerTable) AllOne() bool {
	for _, r := range t.Residues {
		if r.Cmp(one) != 0 {
			return false
		}
	}
	//
	return true
}

func (t PowerTable) String() string {
	return fmt.Sprintf("%s: %v", t.Prime, t.Residues)
}

// Powers lazily constructs one PowerTable per candidate modulus.  Each table
// is only computed when visited, and requires time and space linear in the
// candidate.  Candidates below two produce empty tables.
func Powers(candidates ...*big.Int) iter.Iterator[PowerTable] {
	items := make([]*big.Int, len(candidates))
	//
	for i, c := range candidates {
		items[i] = new(big.Int).Set(c)
	}
	//
	return iter.NewProjectIterator(iter.NewArrayIterator(items), powerTable)
}

func powerTable(p *big.Int) PowerTable {
	var (
		residues []*big.Int
		k        big.Int
	)
	//
	k.Sub(p, one)
	//
	for i := big.NewInt(1); i.Cmp(p) < 0; i.Add(i, one) {
		residues = append(residues, new(big.Int).Exp(i, &k, p))
	}
	//
	slices.SortFunc(residues, func(a, b *big.Int) int { return a.Cmp(b) })
	//
	return PowerTable{p, residues}
}
