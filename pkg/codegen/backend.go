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
	"github.com/consensys/go-starkvm/pkg/circuit"
	"github.com/consensys/go-starkvm/pkg/table"
)

// ConstraintSet is a finalized constraint system: every bucket lowered to
// the target degree, combined with its substitution constraints and consumed
// into immutable circuits.  This is the only input a backend sees; backends
// never reach back into the construction phase.
type ConstraintSet struct {
	Init []circuit.Circuit[circuit.SingleRowIndicator]
	Cons []circuit.Circuit[circuit.SingleRowIndicator]
	Tran []circuit.Circuit[circuit.DualRowIndicator]
	Term []circuit.Circuit[circuit.SingleRowIndicator]
}

// NewConstraintSet consumes the given (already lowered and combined)
// constraints into a backend-ready set.
func NewConstraintSet(constraints *table.Constraints) *ConstraintSet {
	return &ConstraintSet{
		Init: constraints.InitialCircuits(),
		Cons: constraints.ConsistencyCircuits(),
		Tran: constraints.TransitionCircuits(),
		Term: constraints.TerminalCircuits(),
	}
}

// Len returns the total number of constraints across all buckets.
func (s *ConstraintSet) Len() uint {
	return uint(len(s.Init) + len(s.Cons) + len(s.Tran) + len(s.Term))
}

// Backend turns a constraint set into one generated artifact.
type Backend interface {
	// FileName is the artifact's file name within the output directory.
	FileName() string
	// Generate renders the artifact.
	Generate(set *ConstraintSet) string
}

// licenseHeader is prepended to every generated artifact.
const licenseHeader = `// Copyright Consensys Software Inc.
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
`

const generatedMarker = "// Code generated by go-starkvm. DO NOT EDIT."

// evaluationOrder returns the arena ids reachable from the given circuits'
// roots, topologically sorted so operands always precede their operations.
// Arena ids alone do not provide that order: degree lowering redirects
// operands to substitution leaves minted after their parents.  The order is
// deterministic, driven by root order and operand order only.
func evaluationOrder[II circuit.InputIndicator[II]](circuits []circuit.Circuit[II]) []uint {
	seen := make(map[uint]bool)
	var order []uint
	//
	var visit func(id uint)
	//
	visit = func(id uint) {
		if seen[id] {
			return
		}
		//
		seen[id] = true
		//
		if n := circuits[0].Node(id); !n.Op.IsLeaf() {
			visit(n.Left)
			visit(n.Right)
		}
		//
		order = append(order, id)
	}
	//
	for _, c := range circuits {
		visit(c.Root())
	}
	//
	return order
}
