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

	"github.com/consensys/go-starkvm/pkg/circuit"
)

// GoBackend renders the constraint set as a native Go evaluator: one
// function per bucket, taking master table rows and the challenge vector,
// returning one value per constraint.  Shared DAG nodes are emitted as
// locals exactly once.
type GoBackend struct {
	// PackageName of the generated file, "evaluator" if empty.
	PackageName string
}

// FileName implementation for the Backend interface.
func (g GoBackend) FileName() string {
	return "evaluator.go"
}

// Generate implementation for the Backend interface.
func (g GoBackend) Generate(set *ConstraintSet) string {
	pkg := g.PackageName
	if pkg == "" {
		pkg = "evaluator"
	}
	//
	var sb strings.Builder
	//
	sb.WriteString(licenseHeader)
	sb.WriteString("\n")
	sb.WriteString(generatedMarker)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)
	sb.WriteString("import (\n\t\"github.com/consensys/go-starkvm/pkg/field\"\n)\n")
	//
	singleRowRef := func(ii circuit.SingleRowIndicator) string {
		if ii.IsAuxColumn() {
			return fmt.Sprintf("auxRow[%d]", ii.Column())
		}
		//
		return fmt.Sprintf("mainRow[%d]", ii.Column())
	}
	dualRowRef := func(ii circuit.DualRowIndicator) string {
		row := "current"
		if ii.IsNextRow() {
			row = "next"
		}
		//
		space := "Main"
		if ii.IsAuxColumn() {
			space = "Aux"
		}
		//
		return fmt.Sprintf("%s%sRow[%d]", row, space, ii.Column())
	}
	//
	emitGoFunction(&sb, "EvaluateInitialConstraints",
		"mainRow, auxRow, challenges []field.XFieldElement", set.Init, singleRowRef)
	emitGoFunction(&sb, "EvaluateConsistencyConstraints",
		"mainRow, auxRow, challenges []field.XFieldElement", set.Cons, singleRowRef)
	emitGoFunction(&sb, "EvaluateTransitionConstraints",
		"currentMainRow, currentAuxRow, nextMainRow, nextAuxRow, challenges []field.XFieldElement",
		set.Tran, dualRowRef)
	emitGoFunction(&sb, "EvaluateTerminalConstraints",
		"mainRow, auxRow, challenges []field.XFieldElement", set.Term, singleRowRef)
	//
	return sb.String()
}

func emitGoFunction[II circuit.InputIndicator[II]](
	sb *strings.Builder, name, params string,
	circuits []circuit.Circuit[II], inputRef func(II) string,
) {
	fmt.Fprintf(sb, "\nfunc %s(%s) []field.XFieldElement {\n", name, params)
	//
	if len(circuits) == 0 {
		sb.WriteString("\treturn nil\n}\n")
		return
	}
	//
	for _, id := range evaluationOrder(circuits) {
		n := circuits[0].Node(id)
		//
		switch n.Op {
		case circuit.OpInput:
			fmt.Fprintf(sb, "\tn%d := %s\n", id, inputRef(n.Input))
		case circuit.OpChallenge:
			fmt.Fprintf(sb, "\tn%d := challenges[%d]\n", id, n.Challenge)
		case circuit.OpBConstant:
			fmt.Fprintf(sb, "\tn%d := field.XOf(%d)\n", id, n.BConstant.Uint64())
		case circuit.OpXConstant:
			fmt.Fprintf(sb, "\tn%d := field.XOf(%d, %d, %d)\n", id,
				n.XConstant.Coefficients[0].Uint64(),
				n.XConstant.Coefficients[1].Uint64(),
				n.XConstant.Coefficients[2].Uint64())
		case circuit.OpAdd:
			fmt.Fprintf(sb, "\tn%d := field.XAdd(n%d, n%d)\n", id, n.Left, n.Right)
		case circuit.OpSub:
			fmt.Fprintf(sb, "\tn%d := field.XSub(n%d, n%d)\n", id, n.Left, n.Right)
		case circuit.OpMul:
			fmt.Fprintf(sb, "\tn%d := field.XMul(n%d, n%d)\n", id, n.Left, n.Right)
		}
	}
	//
	sb.WriteString("\t//\n\treturn []field.XFieldElement{\n")
	//
	for _, c := range circuits {
		fmt.Fprintf(sb, "\t\tn%d,\n", c.Root())
	}
	//
	sb.WriteString("\t}\n}\n")
}
