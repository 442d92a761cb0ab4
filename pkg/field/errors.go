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

// RangeError is reported when a residue (or calculator operand) lies outside
// the range [0, prime) of the field it is being placed in.
type RangeError struct {
	// Value which was out of range.
	Value *big.Int
	// Modulus of the field in question.
	Modulus *big.Int
}

func newRangeError(value, modulus *big.Int) *RangeError {
	return &RangeError{new(big.Int).Set(value), new(big.Int).Set(modulus)}
}

func (e *RangeError) Error() string {
	var upper big.Int
	//
	upper.Sub(e.Modulus, one)
	//
	return fmt.Sprintf("%s not in field range 0 to %s", e.Value, &upper)
}

// FieldMismatchError is reported when a binary operation is applied to two
// elements from fields of different order.
type FieldMismatchError struct {
	// Op names the operation attempted (e.g. "add").
	Op string
	// Left and Right are the moduli of the two operands.
	Left, Right *big.Int
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("cannot %s numbers in different fields (GF(%s) vs GF(%s))", e.Op, e.Left, e.Right)
}

// ArityError is reported when a calculator operation receives an unsupported
// number of operands.
type ArityError struct {
	// Op names the operation attempted.
	Op string
	// Expected describes the accepted operand count (e.g. "exactly 2").
	Expected string
	// Actual number of operands supplied.
	Actual int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %s operand(s), got %d", e.Op, e.Expected, e.Actual)
}
