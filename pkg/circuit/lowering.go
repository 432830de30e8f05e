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
)

// DegreeLoweringInfo configures degree lowering: the maximum degree any
// constraint may have afterwards, and the numbers of main and aux columns
// already allocated.  The latter ensure substitution columns receive fresh,
// non-colliding indices; buckets are lowered in a fixed order and the counts
// are threaded forward from one bucket to the next.
type DegreeLoweringInfo struct {
	TargetDegree   int
	NumMainColumns uint
	NumAuxColumns  uint
}

// LowerToDegree rewrites all given constraints such that no constraint
// exceeds the target degree, by extracting high degree subexpressions into
// freshly allocated columns.  The roots slice is updated in place.  Returned
// are the substitution constraints of the form "new column - extracted
// subexpression", split by column space: base field valued subexpressions
// claim main columns, all others claim aux columns.  Their order is the
// allocation order, so the i-th main substitution defines main column
// info.NumMainColumns + i (and likewise for aux).
//
// Lowering is deterministic: identical inputs produce identical substitution
// records on every run, a requirement for the generated code to be
// committable.
func LowerToDegree[II InputIndicator[II]](
	roots []Monad[II], info DegreeLoweringInfo,
) (mainSubstitutions, auxSubstitutions []Monad[II]) {
	if info.TargetDegree < 1 {
		panic(fmt.Sprintf("invalid target degree %d", info.TargetDegree))
	} else if len(roots) == 0 {
		return nil, nil
	}
	//
	builder := roots[0].builder
	//
	for _, r := range roots {
		if r.builder != builder {
			panic("cannot lower constraints from distinct builders")
		}
	}
	//
	numMain, numAux := info.NumMainColumns, info.NumAuxColumns
	//
	for maxDegree(roots) > info.TargetDegree {
		candidate, ok := pickNodeToSubstitute(builder, roots, info.TargetDegree)
		if !ok {
			panic(fmt.Sprintf("target degree %d is infeasible for this constraint set", info.TargetDegree))
		}
		// Allocate the next column in the appropriate space.
		aux := builder.auxValued(candidate)
		//
		var column uint
		//
		if aux {
			column, numAux = numAux, numAux+1
		} else {
			column, numMain = numMain, numMain+1
		}
		//
		var derived II
		//
		leaf := builder.Input(derived.DerivedInput(aux, column))
		// The substitution constraint references the extracted subexpression
		// as-is; it must be built before any references are redirected.
		substitution := leaf.Sub(Monad[II]{builder: builder, id: candidate})
		// Redirect every other reference to the extracted node, including
		// references from within earlier substitution constraints, but not
		// the defining occurrence just created.
		builder.redirect(candidate, leaf.id, substitution.id)
		//
		for i := range roots {
			if roots[i].id == candidate {
				roots[i] = leaf
			}
		}
		//
		if aux {
			auxSubstitutions = append(auxSubstitutions, substitution)
		} else {
			mainSubstitutions = append(mainSubstitutions, substitution)
		}
		//
		builder.recomputeDegrees()
		builder.rebuildIndex()
	}
	//
	return mainSubstitutions, auxSubstitutions
}

func maxDegree[II InputIndicator[II]](roots []Monad[II]) int {
	degree := 0
	//
	for _, r := range roots {
		degree = max(degree, r.Degree())
	}
	//
	return degree
}

// pickNodeToSubstitute selects the next subexpression to extract into a
// column: among all non-leaf nodes reachable from a currently over-degree
// root whose degree lies in (1, target], the one with the highest degree
// wins; ties break by smallest node id, i.e. arena insertion order.  The
// upper bound guarantees the emitted substitution constraint itself meets
// the target.
func pickNodeToSubstitute[II InputIndicator[II]](
	builder *Builder[II], roots []Monad[II], target int,
) (uint, bool) {
	reachable := make([]bool, len(builder.nodes))
	//
	for _, r := range roots {
		if r.Degree() > target {
			markReachable(builder, r.id, reachable)
		}
	}
	//
	var (
		best       uint
		bestDegree int
	)
	// Ascending scan keeps the smallest id among equal degrees.
	for id := uint(0); id < uint(len(builder.nodes)); id++ {
		if !reachable[id] {
			continue
		}
		//
		n := builder.node(id)
		//
		if !n.Op.IsLeaf() && n.Degree > 1 && n.Degree <= target && n.Degree > bestDegree {
			best, bestDegree = id, n.Degree
		}
	}
	//
	return best, bestDegree > 0
}

func markReachable[II InputIndicator[II]](builder *Builder[II], root uint, reachable []bool) {
	if reachable[root] {
		return
	}
	//
	reachable[root] = true
	//
	if n := builder.node(root); !n.Op.IsLeaf() {
		markReachable(builder, n.Left, reachable)
		markReachable(builder, n.Right, reachable)
	}
}

// redirect replaces every reference to node old with a reference to node
// replacement, except within the node identified by skip (the substitution
// constraint's defining occurrence).
func (b *Builder[II]) redirect(old, replacement, skip uint) {
	for id := range b.nodes {
		n := &b.nodes[id]
		//
		if n.Op.IsLeaf() || uint(id) == skip {
			continue
		}
		//
		if n.Left == old {
			n.Left = replacement
		}
		//
		if n.Right == old {
			n.Right = replacement
		}
	}
}

// auxValued reports whether the subexpression rooted at the given node takes
// values in the extension field: it does as soon as its cone contains a
// challenge, an extension field constant, or an aux column reference.
func (b *Builder[II]) auxValued(id uint) bool {
	n := b.node(id)
	//
	switch n.Op {
	case OpInput:
		return n.Input.IsAuxColumn()
	case OpChallenge, OpXConstant:
		return true
	case OpBConstant:
		return false
	default:
		return b.auxValued(n.Left) || b.auxValued(n.Right)
	}
}
