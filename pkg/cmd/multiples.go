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

	"github.com/consensys/go-primefield/pkg/field"
	"github.com/consensys/go-primefield/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var multiplesCmd = &cobra.Command{
	Use:   "multiples [flags] [--] n0 n1 ...",
	Short: "Print the sorted multiples of one or more values.",
	Long: `For each value n, print the sorted sequence of n*i mod p for every i in
	[0,p).  When p is prime and n is nonzero this is just 0, 1, ..., p-1.  Since
	fields can be very large, at most --limit items are printed for each value.`,
	Args: cobra.MinimumNArgs(1),
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
		calc, err := field.NewCalculator(nil, prime)
		if err != nil {
			return err
		}
		//
		limit := GetUint(cmd, "limit")
		strict := GetFlag(cmd, "strict")
		//
		for i, n := range nums {
			if strict {
				if _, err := field.New(n, prime); err != nil {
					return err
				}
			}
			//
			stats := util.NewPerfStats()
			seq := calc.Multiples(n)
			items := make([]string, 0)
			//
			for seq.HasNext() && uint(len(items)) < limit {
				items = append(items, seq.Next().String())
			}
			//
			if seq.HasNext() {
				log.Debugf("truncated multiples of %s after %d items", n, limit)
				//
				items = append(items, "...")
			}
			//
			stats.Log(fmt.Sprintf("Enumerating multiples of %s", n))
			//
			err := report(cmd, fmt.Sprintf("%s * [0..%s)", args[i], prime), Result{
				Field: name, Prime: prime.String(), Op: "multiples", Args: args[i : i+1], Value: items,
			})
			//
			if err != nil {
				return err
			}
		}
		//
		return nil
	},
}

func init() {
	multiplesCmd.Flags().Uint("limit", 1024, "maximum number of items to print for each value")
	rootCmd.AddCommand(multiplesCmd)
}
