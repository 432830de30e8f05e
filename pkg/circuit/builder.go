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
	"github.com/consensys/go-starkvm/pkg/field"
)

// Builder owns the arena in which a bucket of constraints is constructed.
// Construction deduplicates structurally: building the same subexpression
// twice yields the same node, shared by reference.  Without this, the common
// subexpressions repeated across dozens of constraints would blow up both
// memory and the degree lowering search space.
//
// A builder is not safe for concurrent use; one construction pass runs to
// completion before its output is consumed.
type Builder[II InputIndicator[II]] struct {
	nodes []Node[II]
	index map[fingerprint[II]]uint
}

// NewBuilder constructs an empty builder.
func NewBuilder[II InputIndicator[II]]() *Builder[II] {
	return &Builder[II]{
		index: make(map[fingerprint[II]]uint),
	}
}

// Len returns the number of nodes in the arena.
func (b *Builder[II]) Len() uint {
	return uint(len(b.nodes))
}

// Input constructs a leaf referencing the given trace cell.
func (b *Builder[II]) Input(indicator II) Monad[II] {
	return b.intern(Node[II]{Op: OpInput, Input: indicator, Degree: 1})
}

// Challenge constructs a leaf referencing the given verifier challenge.
func (b *Builder[II]) Challenge(id uint) Monad[II] {
	return b.intern(Node[II]{Op: OpChallenge, Challenge: id, Degree: 1})
}

// BConstant constructs a base field constant leaf.
func (b *Builder[II]) BConstant(value field.BFieldElement) Monad[II] {
	return b.intern(Node[II]{Op: OpBConstant, BConstant: value})
}

// XConstant constructs an extension field constant leaf.
func (b *Builder[II]) XConstant(value field.XFieldElement) Monad[II] {
	return b.intern(Node[II]{Op: OpXConstant, XConstant: value})
}

// intern returns the id of an existing structurally identical node, or
// appends the given node to the arena.
func (b *Builder[II]) intern(n Node[II]) Monad[II] {
	fp := n.fingerprint()
	//
	if id, ok := b.index[fp]; ok {
		return Monad[II]{builder: b, id: id}
	}
	//
	id := uint(len(b.nodes))
	b.nodes = append(b.nodes, n)
	b.index[fp] = id
	//
	return Monad[II]{builder: b, id: id}
}

// binop constructs (or finds) a binary operation node over two operands.
func (b *Builder[II]) binop(op Operation, left, right uint) Monad[II] {
	var degree int
	//
	ld, rd := b.nodes[left].Degree, b.nodes[right].Degree
	//
	if op == OpMul {
		degree = ld + rd
	} else {
		degree = max(ld, rd)
	}
	//
	return b.intern(Node[II]{Op: op, Left: left, Right: right, Degree: degree})
}

// node returns a pointer to the node with the given id.
func (b *Builder[II]) node(id uint) *Node[II] {
	return &b.nodes[id]
}

// rebuildIndex recomputes the structural dedup index from scratch.  Required
// after degree lowering has redirected child references, which invalidates
// previously computed fingerprints.
func (b *Builder[II]) rebuildIndex() {
	b.index = make(map[fingerprint[II]]uint, len(b.nodes))
	//
	for id := len(b.nodes) - 1; id >= 0; id-- {
		// Prefer the smallest id for any structural duplicate.
		b.index[b.nodes[id].fingerprint()] = uint(id)
	}
}

// recomputeDegrees re-derives every node's memoised degree.  Child ids may
// exceed parent ids once lowering has spliced in fresh leaves, so a plain
// in-order pass is insufficient.
func (b *Builder[II]) recomputeDegrees() {
	state := make([]uint8, len(b.nodes))
	//
	for id := range b.nodes {
		b.degreeOf(uint(id), state)
	}
}

func (b *Builder[II]) degreeOf(id uint, state []uint8) int {
	const done = 1
	//
	n := &b.nodes[id]
	//
	if state[id] == done || n.Op.IsLeaf() {
		state[id] = done
		return n.Degree
	}
	//
	ld := b.degreeOf(n.Left, state)
	rd := b.degreeOf(n.Right, state)
	//
	if n.Op == OpMul {
		n.Degree = ld + rd
	} else {
		n.Degree = max(ld, rd)
	}
	//
	state[id] = done
	//
	return n.Degree
}

// Monad is a handle to a node during the construction and rewriting phase.
// It stays attached to its builder so that arithmetic on handles can intern
// new nodes; consuming a bucket of monads (see Consume) severs that
// attachment irrevocably.
type Monad[II InputIndicator[II]] struct {
	builder *Builder[II]
	id      uint
}

// ID returns the arena id of the referenced node.
func (m Monad[II]) ID() uint {
	return m.id
}

// Degree returns the memoised degree of the referenced node.
func (m Monad[II]) Degree() int {
	return m.builder.nodes[m.id].Degree
}

// Add constructs m + other.
func (m Monad[II]) Add(other Monad[II]) Monad[II] {
	m.sameBuilder(other)
	return m.builder.binop(OpAdd, m.id, other.id)
}

// Sub constructs m - other.
func (m Monad[II]) Sub(other Monad[II]) Monad[II] {
	m.sameBuilder(other)
	return m.builder.binop(OpSub, m.id, other.id)
}

// Mul constructs m * other.
func (m Monad[II]) Mul(other Monad[II]) Monad[II] {
	m.sameBuilder(other)
	return m.builder.binop(OpMul, m.id, other.id)
}

func (m Monad[II]) sameBuilder(other Monad[II]) {
	if m.builder != other.builder {
		panic("cannot combine constraints from distinct builders")
	}
}
