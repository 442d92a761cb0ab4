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
package cmd

import (
	"math/big"
	"strings"

	"github.com/consensys/go-primefield/pkg/field"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// foldOp describes a binary field operation which is folded (from the left)
// over one or more operands.
type foldOp struct {
	name   string
	symbol string
	// Evaluate on raw integers (i.e. the default)
	loose func(*field.Calculator, ...*big.Int) (*big.Int, error)
	// Evaluate on elements (i.e. under --strict)
	strict func(field.Element, field.Element) (field.Element, error)
}

var addOp = foldOp{"add", "+", (*field.Calculator).AddAll, field.Element.Add}
var subOp = foldOp{"sub", "-", (*field.Calculator).SubtractAll, field.Element.Sub}
var mulOp = foldOp{"mul", "*", (*field.Calculator).MultiplyAll, field.Element.Mul}
var divOp = foldOp{"div", "/", (*field.Calculator).DivideAll, field.Element.Div}

func newFoldCmd(op foldOp, use string, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFold(cmd, op, args)
		},
	}
}

func runFold(cmd *cobra.Command, op foldOp, args []string) error {
	name, prime, err := fieldConfig(cmd)
	if err != nil {
		return err
	}
	//
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	//
	var res *big.Int
	//
	if GetFlag(cmd, "strict") {
		res, err = evalStrict(op, nums, prime)
	} else {
		var calc *field.Calculator
		// Operands are not validated against the field
		if calc, err = field.NewCalculator(nil, prime); err == nil {
			res, err = op.loose(calc, nums...)
		}
	}
	//
	if err != nil {
		return err
	}
	//
	log.Debugf("%s %v in %s gives %s", op.name, args, name, res)
	//
	return report(cmd, strings.Join(args, " "+op.symbol+" "), Result{
		Field: name, Prime: prime.String(), Op: op.name, Args: args, Value: res,
	})
}

// Evaluate an operation by first constructing elements for all operands, thus
// ensuring they are within the field.
func evalStrict(op foldOp, nums []*big.Int, prime *big.Int) (*big.Int, error) {
	acc, err := field.New(nums[0], prime)
	if err != nil {
		return nil, err
	}
	//
	for _, n := range nums[1:] {
		var ith field.Element
		//
		if ith, err = field.New(n, prime); err != nil {
			return nil, err
		} else if acc, err = op.strict(acc, ith); err != nil {
			return nil, err
		}
	}
	//
	return acc.Residue(), nil
}

var powCmd = &cobra.Command{
	Use:   "pow [flags] [--] base exponent",
	Short: "Raise a value to an arbitrary (possibly negative) power.",
	Long: `Raise a value to an arbitrary power.  The exponent is first normalised
	modulo p-1, hence negative exponents are permitted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, prime, err := fieldConfig(cmd)
		if err != nil {
			return err
		}
		//
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		//
		var res *big.Int
		//
		if GetFlag(cmd, "strict") {
			base, err := field.New(nums[0], prime)
			if err != nil {
				return err
			}
			//
			res = base.Pow(nums[1]).Residue()
		} else {
			calc, err := field.NewCalculator(nil, prime)
			if err != nil {
				return err
			}
			//
			res = calc.Exponentiate(nums[0], nums[1])
		}
		//
		log.Debugf("pow %v in %s gives %s", args, name, res)
		//
		return report(cmd, args[0]+"^"+args[1], Result{
			Field: name, Prime: prime.String(), Op: "pow", Args: args, Value: res,
		})
	},
}

func init() {
	rootCmd.AddCommand(newFoldCmd(addOp, "add [flags] [--] x0 x1 ...", "Add one or more values.",
		cobra.MinimumNArgs(1)))
	rootCmd.AddCommand(newFoldCmd(subOp, "sub [flags] [--] x0 x1 ...", "Subtract one or more values from the first.",
		cobra.MinimumNArgs(1)))
	rootCmd.AddCommand(newFoldCmd(mulOp, "mul [flags] [--] x0 x1 ...", "Multiply one or more values.",
		cobra.MinimumNArgs(1)))
	rootCmd.AddCommand(newFoldCmd(divOp, "div [flags] [--] x y", "Divide one value by another.",
		cobra.ExactArgs(2)))
	rootCmd.AddCommand(powCmd)
}
