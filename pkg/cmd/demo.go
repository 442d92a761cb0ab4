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
	"fmt"
	"math/big"

	"github.com/consensys/go-primefield/pkg/field"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a few worked examples in GF(31).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, err := field.GF_31.Calculator(big.NewInt(0))
		if err != nil {
			return err
		}
		//
		out := cmd.OutOrStdout()
		// 3 / 24
		quotient, err := calc.DivideAll(big.NewInt(3), big.NewInt(24))
		if err != nil {
			return err
		}
		//
		fmt.Fprintf(out, "answer: %s\n", quotient)
		// 17^-3
		fmt.Fprintf(out, "exp answer: %s\n", calc.Exponentiate(big.NewInt(17), big.NewInt(-3)))
		// 4^-4 * 11
		product, err := calc.MultiplyAll(calc.Exponentiate(big.NewInt(4), big.NewInt(-4)), big.NewInt(11))
		if err != nil {
			return err
		}
		//
		fmt.Fprintf(out, "answer: %s\n", product)
		//
		log.Debugf("demo complete in %s", field.GF_31.Name)
		//
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
