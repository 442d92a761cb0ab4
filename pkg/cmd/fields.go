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
	"github.com/consensys/go-primefield/pkg/util/termio"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the named fields available via --field.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if GetFlag(cmd, "json") {
			fields := make(map[string]string)
			//
			for _, cfg := range field.FIELD_CONFIGS {
				fields[cfg.Name] = cfg.Modulus().String()
			}
			//
			bytes, err := json.Marshal(fields)
			if err != nil {
				return err
			}
			//
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
			//
			return err
		}
		//
		tp := termio.NewTablePrinter(3)
		header := tp.AddRow("name", "bits", "modulus")
		//
		for col := range uint(3) {
			tp.SetEscape(col, header, termio.BoldAnsiEscape())
		}
		//
		for _, cfg := range field.FIELD_CONFIGS {
			m := cfg.Modulus()
			tp.AddRow(cfg.Name, fmt.Sprint(m.BitLen()), m.String())
		}
		//
		tp.SetMaxWidth(2, GetUint(cmd, "width"))
		tp.AnsiEscapes(ansiEscapes(cmd))
		tp.Print(cmd.OutOrStdout())
		//
		return nil
	},
}

func init() {
	fieldsCmd.Flags().Uint("width", 80, "maximum width of the modulus column")
	rootCmd.AddCommand(fieldsCmd)
}
