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
	"github.com/consensys/go-primefield/pkg/util"
	"github.com/consensys/go-primefield/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var fermatCmd = &cobra.Command{
	Use:   "fermat [flags] p0 p1 ...",
	Short: "Print the Fermat power table of one or more candidate primes.",
	Long: `For each candidate p, print the sorted values i^(p-1) mod p for every i
	in [1,p).  By Fermat's little theorem, these are all one when p is prime.
	Tables require space linear in p, hence candidates are bounded by --max.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates, err := parseInts(args)
		if err != nil {
			return err
		}
		//
		bound := new(big.Int).SetUint64(uint64(GetUint(cmd, "max")))
		//
		for _, c := range candidates {
			if c.Cmp(bound) > 0 {
				return fmt.Errorf("candidate %s exceeds maximum %s (see --max)", c, bound)
			}
		}
		//
		stats := util.NewPerfStats()
		tables := field.Powers(candidates...).Collect()
		//
		stats.Log("Constructing power tables")
		//
		if GetFlag(cmd, "json") {
			for i, t := range tables {
				err := report(cmd, "", Result{
					Field: fmt.Sprintf("GF(%s)", t.Prime), Prime: t.Prime.String(), Op: "fermat",
					Args: args[i : i+1], Value: t.Residues,
				})
				//
				if err != nil {
					return err
				}
			}
			//
			return nil
		}
		//
		printPowerTables(cmd, tables)
		//
		return nil
	},
}

// Print power tables as a table, highlighting those which satisfy Fermat's
// little theorem in green, and those which don't in red.
func printPowerTables(cmd *cobra.Command, tables []field.PowerTable) {
	tp := termio.NewTablePrinter(3)
	//
	for _, t := range tables {
		var (
			status = "composite"
			colour = termio.TERM_RED
		)
		//
		if t.Prime.Cmp(big.NewInt(2)) < 0 {
			status = "n/a"
			colour = termio.TERM_YELLOW
		} else if t.AllOne() {
			status = "prime"
			colour = termio.TERM_GREEN
		}
		//
		log.Debugf("power table for %s has %d residues", t.Prime, len(t.Residues))
		//
		row := tp.AddRow(t.Prime.String(), status, fmt.Sprint(t.Residues))
		tp.SetEscape(1, row, termio.NewAnsiEscape().FgColour(colour))
	}
	//
	tp.SetMaxWidth(2, GetUint(cmd, "width"))
	tp.AnsiEscapes(ansiEscapes(cmd))
	tp.Print(cmd.OutOrStdout())
}

func init() {
	fermatCmd.Flags().Uint("max", 1<<16, "largest candidate accepted")
	fermatCmd.Flags().Uint("width", 80, "maximum width of the residues column")
	rootCmd.AddCommand(fermatCmd)
}
