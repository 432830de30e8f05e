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
package table

import (
	"github.com/consensys/go-starkvm/pkg/circuit"
	"github.com/consensys/go-starkvm/pkg/field"
)

// Shorthands for the two circuit flavours.  Initial, consistency and
// terminal constraints see a single row; transition constraints see a pair
// of consecutive rows.
type (
	SingleMonad   = circuit.Monad[circuit.SingleRowIndicator]
	DualMonad     = circuit.Monad[circuit.DualRowIndicator]
	SingleBuilder = circuit.Builder[circuit.SingleRowIndicator]
	DualBuilder   = circuit.Builder[circuit.DualRowIndicator]
)

// Air defines the constraints of one functional table, expressed over master
// table column indices.  All four methods attach their constraint circuits to
// the supplied builder, so that structurally identical subexpressions are
// shared across every table.
type Air interface {
	// InitialConstraints hold on the first row of the trace.
	InitialConstraints(b *SingleBuilder) []SingleMonad
	// ConsistencyConstraints hold on every row of the trace.
	ConsistencyConstraints(b *SingleBuilder) []SingleMonad
	// TransitionConstraints hold on every pair of consecutive rows.
	TransitionConstraints(b *DualBuilder) []DualMonad
	// TerminalConstraints hold on the last row of the trace.
	TerminalConstraints(b *SingleBuilder) []SingleMonad
}

// airs lists every table's constraint definitions in master table order,
// followed by the cross-table argument.
func airs() []Air {
	return []Air{
		ProgramTable{},
		ProcessorTable{},
		OpStackTable{},
		RamTable{},
		JumpStackTable{},
		HashTable{},
		CascadeTable{},
		LookupTable{},
		U32Table{},
		GrandCrossTableArgument{},
	}
}

// singleRow bundles the leaf constructors for single-row constraints over a
// given table, resolving table-local column indices to master table indices.
type singleRow struct {
	b  *SingleBuilder
	id TableID
}

func (s singleRow) main(local uint) SingleMonad {
	return s.b.Input(circuit.Main(MainIndex(s.id, local)))
}

func (s singleRow) aux(local uint) SingleMonad {
	return s.b.Input(circuit.Aux(AuxIndex(s.id, local)))
}

func (s singleRow) challenge(id uint) SingleMonad {
	return s.b.Challenge(id)
}

func (s singleRow) constant(c uint64) SingleMonad {
	return s.b.BConstant(field.NewBFieldElement(c))
}

func (s singleRow) one() SingleMonad {
	return s.constant(1)
}

// dualRow bundles the leaf constructors for transition constraints over a
// given table.
type dualRow struct {
	b  *DualBuilder
	id TableID
}

func (d dualRow) main(local uint) DualMonad {
	return d.b.Input(circuit.CurrentMain(MainIndex(d.id, local)))
}

func (d dualRow) aux(local uint) DualMonad {
	return d.b.Input(circuit.CurrentAux(AuxIndex(d.id, local)))
}

func (d dualRow) nextMain(local uint) DualMonad {
	return d.b.Input(circuit.NextMain(MainIndex(d.id, local)))
}

func (d dualRow) nextAux(local uint) DualMonad {
	return d.b.Input(circuit.NextAux(AuxIndex(d.id, local)))
}

func (d dualRow) challenge(id uint) DualMonad {
	return d.b.Challenge(id)
}

func (d dualRow) constant(c uint64) DualMonad {
	return d.b.BConstant(field.NewBFieldElement(c))
}

func (d dualRow) one() DualMonad {
	return d.constant(1)
}
