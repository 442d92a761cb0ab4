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
	"os"
	"strings"

	"github.com/consensys/go-primefield/pkg/field"
	"github.com/consensys/go-primefield/pkg/util/termio"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// fieldConfig determines the field selected on the command line.  A named
// field (--field) takes precedence over an explicit modulus (--prime).
func fieldConfig(cmd *cobra.Command) (string, *big.Int, error) {
	if name := GetString(cmd, "field"); name != "" {
		cfg := field.GetConfig(strings.ToUpper(name))
		if cfg == nil {
			return "", nil, fmt.Errorf("unknown field %q (see \"fields\" command)", name)
		}
		//
		return cfg.Name, cfg.Modulus(), nil
	}
	//
	prime, err := parseInt(GetString(cmd, "prime"))
	if err != nil {
		return "", nil, fmt.Errorf("invalid prime: %w", err)
	} else if prime.Sign() <= 0 {
		return "", nil, fmt.Errorf("invalid prime: %s is not positive", prime)
	}
	//
	return fmt.Sprintf("GF(%s)", prime), prime, nil
}

// parseInt parses an arbitrary precision integer given in decimal, or with a
// base prefix such as 0x.
func parseInt(arg string) (*big.Int, error) {
	val, ok := new(big.Int).SetString(arg, 0)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", arg)
	}
	//
	return val, nil
}

func parseInts(args []string) ([]*big.Int, error) {
	vals := make([]*big.Int, len(args))
	//
	for i, arg := range args {
		val, err := parseInt(arg)
		if err != nil {
			return nil, err
		}
		//
		vals[i] = val
	}
	//
	return vals, nil
}

// Result of some command, as reported to the user.
type Result struct {
	// Name of field in question.
	Field string `json:"field"`
	// Modulus of field in question.
	Prime string `json:"prime"`
	// Operation being reported
	Op string `json:"op"`
	// Operands of operation
	Args []string `json:"args,omitempty"`
	// Outcome of operation
	Value any `json:"result"`
}

// Report a result either as text or as JSON, depending on the command-line
// flags.  Text is written as "<expr> = <result>", with the result highlighted
// (if applicable).
func report(cmd *cobra.Command, expr string, res Result) error {
	out := cmd.OutOrStdout()
	//
	if GetFlag(cmd, "json") {
		bytes, err := json.Marshal(res)
		if err != nil {
			return err
		}
		//
		_, err = fmt.Fprintln(out, string(bytes))
		//
		return err
	}
	//
	value := fmt.Sprint(res.Value)
	//
	if ansiEscapes(cmd) {
		value = termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN).Wrap(value)
	}
	//
	if expr == "" {
		_, err := fmt.Fprintln(out, value)
		return err
	}
	//
	_, err := fmt.Fprintf(out, "%s = %s\n", expr, value)
	//
	return err
}

// Determine whether ANSI escapes should be used.  Unless explicitly set, this
// depends on whether stdout is a terminal.
func ansiEscapes(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("ansi-escapes") {
		return GetFlag(cmd, "ansi-escapes")
	}
	//
	return cmd.OutOrStdout() == os.Stdout && termio.IsTerminal(os.Stdout)
}

func toStrings(vals []*big.Int) []string {
	strs := make([]string, len(vals))
	//
	for i, v := range vals {
		strs[i] = v.String()
	}
	//
	return strs
}
