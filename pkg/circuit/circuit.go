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
package circuit

import (
	"fmt"

	"github.com/consensys/go-starkvm/pkg/field"
)

// Operation identifies the payload of a circuit node.
type Operation uint8

const (
	// OpInput is a leaf referencing a trace cell.
	OpInput Operation = iota
	// OpChallenge is a leaf referencing a verifier-supplied challenge.
	OpChallenge
	// OpBConstant is a base field constant leaf.
	OpBConstant
	// OpXConstant is an extension field constant leaf.
	OpXConstant
	// OpAdd is a binary addition node.
	OpAdd
	// OpSub is a binary subtraction node.
	OpSub
	// OpMul is a binary multiplication node.
	OpMul
)

// IsLeaf reports whether the operation carries no operands.
func (op Operation) IsLeaf() bool {
	return op < OpAdd
}

func (op Operation) String() string {
	switch op {
	case OpInput:
		return "input"
	case OpChallenge:
		return "challenge"
	case OpBConstant:
		return "bconst"
	case OpXConstant:
		return "xconst"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	default:
		return "unknown"
	}
}

// Node is one vertex of the shared expression DAG.  Nodes live in an arena
// owned by a Builder and reference their operands by arena index, so
// structurally identical subexpressions are shared rather than copied.
type Node[II InputIndicator[II]] struct {
	// Op determines which of the following payload fields are meaningful.
	Op Operation
	// Input payload (OpInput only).
	Input II
	// Challenge payload (OpChallenge only).
	Challenge uint
	// BConstant payload (OpBConstant only).
	BConstant field.BFieldElement
	// XConstant payload (OpXConstant only).
	XConstant field.XFieldElement
	// Left and Right are operand node ids (binary operations only).
	Left  uint
	Right uint
	// Degree is the memoised total polynomial degree of the subexpression
	// rooted at this node.
	Degree int
}

// fingerprint is the structural identity of a node, used for deduplication.
// It is the node payload without the memoised degree.
type fingerprint[II comparable] struct {
	op        Operation
	input     II
	challenge uint
	bconstant field.BFieldElement
	xconstant field.XFieldElement
	left      uint
	right     uint
}

func (n Node[II]) fingerprint() fingerprint[II] {
	return fingerprint[II]{
		op:        n.Op,
		input:     n.Input,
		challenge: n.Challenge,
		bconstant: n.BConstant,
		xconstant: n.XConstant,
		left:      n.Left,
		right:     n.Right,
	}
}

// Circuit is a single constraint, detached from its Builder.  It is
// immutable: no rewriting is possible after consumption, which is exactly
// what makes it safe to hand to a code generator.  Circuits consumed
// together share one frozen arena, so node ids are stable across a whole
// bucket of constraints.
type Circuit[II InputIndicator[II]] struct {
	nodes []Node[II]
	root  uint
}

// Root returns the arena id of the constraint's root node.
func (c Circuit[II]) Root() uint {
	return c.root
}

// Node returns the node with the given arena id.
func (c Circuit[II]) Node(id uint) Node[II] {
	return c.nodes[id]
}

// Degree returns the total polynomial degree of the constraint.
func (c Circuit[II]) Degree() int {
	return c.nodes[c.root].Degree
}

// EvalAt evaluates the constraint over the given rows and challenges.  A
// satisfied constraint evaluates to zero.
func (c Circuit[II]) EvalAt(rows RowPair, challenges []field.XFieldElement) field.XFieldElement {
	memo := make(map[uint]field.XFieldElement)
	return evalNode(c.nodes, c.root, rows, challenges, memo)
}

func evalNode[II InputIndicator[II]](
	nodes []Node[II], id uint, rows RowPair, challenges []field.XFieldElement,
	memo map[uint]field.XFieldElement,
) field.XFieldElement {
	if v, ok := memo[id]; ok {
		return v
	}
	//
	var value field.XFieldElement
	//
	n := nodes[id]
	//
	switch n.Op {
	case OpInput:
		value = n.Input.Value(rows)
	case OpChallenge:
		value = challenges[n.Challenge]
	case OpBConstant:
		value = field.NewXFieldElement(n.BConstant)
	case OpXConstant:
		value = n.XConstant
	default:
		left := evalNode(nodes, n.Left, rows, challenges, memo)
		right := evalNode(nodes, n.Right, rows, challenges, memo)
		//
		switch n.Op {
		case OpAdd:
			value.Add(&left, &right)
		case OpSub:
			value.Sub(&left, &right)
		case OpMul:
			value.Mul(&left, &right)
		}
	}
	//
	memo[id] = value
	//
	return value
}

// Consume detaches the given constraints from their (shared) builder into
// immutable circuits, asserting that node ids are globally consistent.  This
// is the one-way transition between the mutable construction phase and the
// immutable codegen phase.
func Consume[II InputIndicator[II]](monads []Monad[II]) []Circuit[II] {
	if len(monads) == 0 {
		return nil
	}
	//
	builder := monads[0].builder
	//
	for _, m := range monads {
		if m.builder != builder {
			panic("cannot consume constraints from distinct builders")
		}
	}
	// Freeze the arena.  All resulting circuits share the snapshot.
	frozen := make([]Node[II], len(builder.nodes))
	copy(frozen, builder.nodes)
	//
	circuits := make([]Circuit[II], len(monads))
	for i, m := range monads {
		circuits[i] = Circuit[II]{nodes: frozen, root: m.id}
	}
	//
	AssertUniqueIDs(circuits)
	//
	return circuits
}

// AssertUniqueIDs checks that, across all given circuits, every node id
// refers to exactly one structural expression.  A violation indicates a
// deduplication or rewriting defect and is fatal: such circuits must never
// reach the code generator.
func AssertUniqueIDs[II InputIndicator[II]](circuits []Circuit[II]) {
	seen := make(map[uint]fingerprint[II])
	//
	for _, c := range circuits {
		for id := range walk(c.nodes, c.root) {
			fp := c.nodes[id].fingerprint()
			if prior, ok := seen[id]; ok && prior != fp {
				panic(fmt.Sprintf("node id %d refers to distinct expressions", id))
			}
			//
			seen[id] = fp
		}
	}
}

// walk returns the set of node ids reachable from the given root.
func walk[II InputIndicator[II]](nodes []Node[II], root uint) map[uint]bool {
	reached := make(map[uint]bool)
	stack := []uint{root}
	//
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		//
		if reached[id] {
			continue
		}
		//
		reached[id] = true
		//
		if n := nodes[id]; !n.Op.IsLeaf() {
			stack = append(stack, n.Left, n.Right)
		}
	}
	//
	return reached
}
