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

	"github.com/spf13/cobra"

	"github.com/consensys/go-starkvm/pkg/table"
)

// layoutCmd prints the master table's column layout: per table, the global
// offsets and widths of its main and aux columns.
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the master table column layout.",
	Run: func(cmd *cobra.Command, args []string) {
		registry := table.NativeRegistry()
		//
		fmt.Printf("%-16s %12s %12s\n", "table", "main", "aux")
		//
		for id := table.Program; id <= table.DegreeLowering; id++ {
			fmt.Printf("%-16s %5d..%-5d %5d..%-5d\n", id,
				registry.MainStart(id), registry.MainStart(id)+registry.MainWidth(id),
				registry.AuxStart(id), registry.AuxStart(id)+registry.AuxWidth(id))
		}
		//
		fmt.Printf("%-16s %12d %12d\n", "total",
			registry.NumMainColumns(), registry.NumAuxColumns())
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
