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
package codegen

import (
	"fmt"
	"strings"

	"github.com/consensys/go-starkvm/pkg/table"
)

// LayoutGenerator emits Go source pinning down the master table layout
// after degree lowering: total widths, per-table start offsets and the
// degree lowering table's column names.  The generated evaluator indexes
// rows positionally, so this artifact is what keeps a trace builder and the
// evaluator in agreement.
type LayoutGenerator struct {
	Substitutions table.AllSubstitutions
	// PackageName of the generated file, "evaluator" if empty.
	PackageName string
}

// FileName returns the artifact's file name within the output directory.
func (l LayoutGenerator) FileName() string {
	return "layout.go"
}

// Generate renders the artifact.
func (l LayoutGenerator) Generate() string {
	pkg := l.PackageName
	if pkg == "" {
		pkg = "evaluator"
	}
	//
	registry := table.NewRegistry(l.Substitutions.Main.Len(), l.Substitutions.Aux.Len())
	//
	var sb strings.Builder
	//
	sb.WriteString(licenseHeader)
	sb.WriteString("\n")
	sb.WriteString(generatedMarker)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)
	//
	fmt.Fprintf(&sb, "const (\n\tNumMainColumns = %d\n\tNumAuxColumns = %d\n)\n\n",
		registry.NumMainColumns(), registry.NumAuxColumns())
	//
	sb.WriteString("// Start offsets of each table's columns within the master table.\nconst (\n")
	//
	for id := table.Program; id <= table.DegreeLowering; id++ {
		fmt.Fprintf(&sb, "\t%sTableMainStart = %d\n", id, registry.MainStart(id))
	}
	//
	for id := table.Program; id <= table.DegreeLowering; id++ {
		fmt.Fprintf(&sb, "\t%sTableAuxStart = %d\n", id, registry.AuxStart(id))
	}
	//
	sb.WriteString(")\n\n")
	//
	emitNameSlice(&sb, "DegreeLoweringMainColumnNames", l.Substitutions.Main.ColumnNames("Main"))
	emitNameSlice(&sb, "DegreeLoweringAuxColumnNames", l.Substitutions.Aux.ColumnNames("Aux"))
	//
	return sb.String()
}

func emitNameSlice(sb *strings.Builder, name string, names []string) {
	fmt.Fprintf(sb, "var %s = []string{\n", name)
	//
	for _, n := range names {
		fmt.Fprintf(sb, "\t%q,\n", n)
	}
	//
	sb.WriteString("}\n\n")
}
