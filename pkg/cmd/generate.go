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
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-starkvm/pkg/codegen"
	"github.com/consensys/go-starkvm/pkg/table"
)

// generateCmd runs the whole pipeline: collect every table's constraints,
// lower them to the target degree, fold in the substitution constraints and
// emit the generated evaluators plus the layout artifact.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate constraint evaluator code.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		outDir := GetString(cmd, "out")
		degree := GetInt(cmd, "degree")
		//
		info := table.DefaultDegreeLoweringInfo()
		info.TargetDegree = degree
		//
		constraints := table.AllConstraints()
		log.Debugf("collected %d constraints", constraints.Len())
		//
		substitutions := constraints.LowerToTargetDegreeThroughSubstitutions(info)
		log.Debugf("degree lowering to %d allocated %d main and %d aux columns",
			degree, substitutions.Main.Len(), substitutions.Aux.Len())
		//
		constraints.CombineWithSubstitutionInducedConstraints(substitutions)
		set := codegen.NewConstraintSet(constraints)
		log.Debugf("generating evaluators for %d constraints", set.Len())
		//
		writeArtifact(outDir, codegen.GoBackend{}.FileName(), codegen.GoBackend{}.Generate(set))
		writeArtifact(outDir, codegen.VMBackend{}.FileName(), codegen.VMBackend{}.Generate(set))
		//
		layout := codegen.LayoutGenerator{Substitutions: substitutions}
		writeArtifact(outDir, layout.FileName(), layout.Generate())
	},
}

func writeArtifact(dir, name, content string) {
	filename := filepath.Join(dir, name)
	//
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("wrote %s", filename)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().String("out", ".", "directory to write generated artifacts to")
	generateCmd.Flags().Int("degree", table.DefaultTargetDegree, "target degree to lower constraints to")
}
