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
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "primefield",
	Short: "A calculator for prime-order finite fields.",
	Long: `A calculator (and general toolbox) for arithmetic over prime-order
	finite fields, as used in elliptic-curve cryptography.  Negative operands
	must follow "--" to avoid being read as flags (e.g. "pow -- 17 -3").`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, "primefield ")
			if Version != "" {
				// Built via "make"
				fmt.Fprintf(out, "%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Fprintf(out, "%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Fprintf(out, "(unknown version)")
			}
			fmt.Fprintln(out)
		} else {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().StringP("prime", "p", "31", "modulus of the field (decimal, or prefixed e.g. 0x)")
	rootCmd.PersistentFlags().StringP("field", "f", "", "use a named field (overrides --prime)")
	rootCmd.PersistentFlags().Bool("strict", false, "check operands are in the field, and evaluate using field elements")
	rootCmd.PersistentFlags().Bool("json", false, "report results as JSON")
	rootCmd.PersistentFlags().Bool("ansi-escapes", false, "highlight results (default when stdout is a terminal)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
