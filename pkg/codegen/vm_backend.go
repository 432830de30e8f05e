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

// VMBackend renders the constraint set as stack machine programs, one per
// bucket: push instructions for leaves, add/sub/mul over the top of stack,
// and an output instruction per constraint.  Unlike the Go backend, shared
// nodes are re-expanded; the stack machine has no registers to hold them.
type VMBackend struct{}

// FileName implementation for the Backend interface.
func (v VMBackend) FileName() string {
	return "evaluator.vasm"
}

// Generate implementation for the Backend interface.
func (v VMBackend) Generate(set *ConstraintSet) string {
	var sb strings.Builder
	//
	sb.WriteString("# Code generated by go-starkvm. DO NOT EDIT.\n")
	//
	singleRowPush := func(ii circuit.SingleRowIndicator) string {
		if ii.IsAuxColumn() {
			return fmt.Sprintf("push_aux %d", ii.Column())
		}
		//
		return fmt.Sprintf("push_main %d", ii.Column())
	}
	dualRowPush := func(ii circuit.DualRowIndicator) string {
		row := "curr"
		if ii.IsNextRow() {
			row = "next"
		}
		//
		space := "main"
		if ii.IsAuxColumn() {
			space = "aux"
		}
		//
		return fmt.Sprintf("push_%s_%s %d", row, space, ii.Column())
	}
	//
	emitVMProgram(&sb, "initial", set.Init, singleRowPush)
	emitVMProgram(&sb, "consistency", set.Cons, singleRowPush)
	emitVMProgram(&sb, "transition", set.Tran, dualRowPush)
	emitVMProgram(&sb, "terminal", set.Term, singleRowPush)
	//
	return sb.String()
}

func emitVMProgram[II circuit.InputIndicator[II]](
	sb *strings.Builder, name string,
	circuits []circuit.Circuit[II], pushInput func(II) string,
) {
	fmt.Fprintf(sb, "\n.%s\n", name)
	//
	for _, c := range circuits {
		emitVMExpression(sb, c, c.Root(), pushInput)
		sb.WriteString("output\n")
	}
}

func emitVMExpression[II circuit.InputIndicator[II]](
	sb *strings.Builder, c circuit.Circuit[II], id uint, pushInput func(II) string,
) {
	n := c.Node(id)
	//
	switch n.Op {
	case circuit.OpInput:
		sb.WriteString(pushInput(n.Input))
		sb.WriteString("\n")
	case circuit.OpChallenge:
		fmt.Fprintf(sb, "push_challenge %d\n", n.Challenge)
	case circuit.OpBConstant:
		fmt.Fprintf(sb, "push_const %d 0 0\n", n.BConstant.Uint64())
	case circuit.OpXConstant:
		fmt.Fprintf(sb, "push_const %d %d %d\n",
			n.XConstant.Coefficients[0].Uint64(),
			n.XConstant.Coefficients[1].Uint64(),
			n.XConstant.Coefficients[2].Uint64())
	default:
		emitVMExpression(sb, c, n.Left, pushInput)
		emitVMExpression(sb, c, n.Right, pushInput)
		//
		switch n.Op {
		case circuit.OpAdd:
			sb.WriteString("add\n")
		case circuit.OpSub:
			sb.WriteString("sub\n")
		case circuit.OpMul:
			sb.WriteString("mul\n")
		}
	}
}
