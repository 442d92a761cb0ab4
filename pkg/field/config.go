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

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/consensys/gnark-crypto/field/koalabear"
)

// GF_31 is the tiny prime field used by the demo command.
var GF_31 = Config{"GF_31", big.NewInt(31)}

// GF_223 is the field over which the toy secp256k1-style curve y²=x³+7 is
// usually introduced.
var GF_223 = Config{"GF_223", big.NewInt(223)}

// GF_251 is the largest prime field whose elements fit in a byte.
var GF_251 = Config{"GF_251", big.NewInt(251)}

// GF_8209 is small prime field used exclusively for testing.
var GF_8209 = Config{"GF_8209", big.NewInt(8209)}

// BABYBEAR is the 31-bit prime field 2³¹ - 2²⁷ + 1.
var BABYBEAR = Config{"BABYBEAR", babybear.Modulus()}

// KOALABEAR is the 31-bit prime field 2³¹ - 2²⁴ + 1.
var KOALABEAR = Config{"KOALABEAR", koalabear.Modulus()}

// GOLDILOCKS is the 64-bit prime field 2⁶⁴ - 2³² + 1.
var GOLDILOCKS = Config{"GOLDILOCKS", goldilocks.Modulus()}

// BN254 is the scalar field of the BN254 curve.
var BN254 = Config{"BN254", ecc.BN254.ScalarField()}

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"BLS12_377", fr.Modulus()}

// SECP256K1 is the base field of the secp256k1 curve used by Bitcoin.
var SECP256K1 = Config{"SECP256K1", ecc.SECP256K1.BaseField()}

// FIELD_CONFIGS determines the set of named fields.
var FIELD_CONFIGS = []Config{
	GF_31,
	GF_223,
	GF_251,
	GF_8209,
	BABYBEAR,
	KOALABEAR,
	GOLDILOCKS,
	BN254,
	BLS12_377,
	SECP256K1,
}

// Config associates a name with the modulus of a well-known prime field.
type Config struct {
	// Name suitable for identifying the config.
	Name    string
	modulus *big.Int
}

// Modulus returns the (prime) order of this field.
func (c Config) Modulus() *big.Int {
	return new(big.Int).Set(c.modulus)
}

// Element constructs an element of this field.
func (c Config) Element(residue *big.Int) (Element, error) {
	return New(residue, c.modulus)
}

// Calculator constructs a calculator for this field.
func (c Config) Calculator(operands ...*big.Int) (*Calculator, error) {
	return NewCalculator(operands, c.modulus)
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}
