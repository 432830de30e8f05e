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
)

// DefaultTargetDegree is the degree every constraint is lowered to before
// code generation.
const DefaultTargetDegree = 4

// DefaultDegreeLoweringInfo configures lowering for the native master
// table: substitution columns are allocated after the native columns.
func DefaultDegreeLoweringInfo() circuit.DegreeLoweringInfo {
	return circuit.DegreeLoweringInfo{
		TargetDegree:   DefaultTargetDegree,
		NumMainColumns: nativeRegistry.NumMainColumns(),
		NumAuxColumns:  nativeRegistry.NumAuxColumns(),
	}
}

// Constraints are all constraints of the master table, bucketed by the rows
// they apply to.  Within each bucket, the constraints appear in master table
// order, the cross-table argument's last; each bucket shares one builder so
// that common subexpressions are built only once.
type Constraints struct {
	Init []SingleMonad
	Cons []SingleMonad
	Tran []DualMonad
	Term []SingleMonad
}

// AllConstraints collects every table's constraints.
func AllConstraints() *Constraints {
	initBuilder := circuit.NewBuilder[circuit.SingleRowIndicator]()
	consBuilder := circuit.NewBuilder[circuit.SingleRowIndicator]()
	tranBuilder := circuit.NewBuilder[circuit.DualRowIndicator]()
	termBuilder := circuit.NewBuilder[circuit.SingleRowIndicator]()
	//
	constraints := &Constraints{}
	//
	for _, air := range airs() {
		constraints.Init = append(constraints.Init, air.InitialConstraints(initBuilder)...)
		constraints.Cons = append(constraints.Cons, air.ConsistencyConstraints(consBuilder)...)
		constraints.Tran = append(constraints.Tran, air.TransitionConstraints(tranBuilder)...)
		constraints.Term = append(constraints.Term, air.TerminalConstraints(termBuilder)...)
	}
	//
	return constraints
}

// Len returns the total number of constraints across all buckets.
func (c *Constraints) Len() uint {
	return uint(len(c.Init) + len(c.Cons) + len(c.Tran) + len(c.Term))
}

// LowerToTargetDegreeThroughSubstitutions lowers every bucket to the target
// degree, mutating the bucketed constraints in place.  Buckets are lowered
// in order init, cons, tran, term, with the column counts threaded forward
// so that no two substitutions claim the same column.
func (c *Constraints) LowerToTargetDegreeThroughSubstitutions(
	info circuit.DegreeLoweringInfo,
) AllSubstitutions {
	initMain, initAux := circuit.LowerToDegree(c.Init, info)
	//
	consInfo := threadColumnCounts(info, len(initMain), len(initAux))
	consMain, consAux := circuit.LowerToDegree(c.Cons, consInfo)
	//
	tranInfo := threadColumnCounts(consInfo, len(consMain), len(consAux))
	tranMain, tranAux := circuit.LowerToDegree(c.Tran, tranInfo)
	//
	termInfo := threadColumnCounts(tranInfo, len(tranMain), len(tranAux))
	termMain, termAux := circuit.LowerToDegree(c.Term, termInfo)
	//
	return AllSubstitutions{
		Main: Substitutions{
			Info: info,
			Init: initMain, Cons: consMain, Tran: tranMain, Term: termMain,
		},
		Aux: Substitutions{
			Info: info,
			Init: initAux, Cons: consAux, Tran: tranAux, Term: termAux,
		},
	}
}

func threadColumnCounts(
	info circuit.DegreeLoweringInfo, numMain, numAux int,
) circuit.DegreeLoweringInfo {
	info.NumMainColumns += uint(numMain)
	info.NumAuxColumns += uint(numAux)
	//
	return info
}

// CombineWithSubstitutionInducedConstraints appends the substitution
// constraints to their buckets: originals first, then the main-induced, then
// the aux-induced constraints.
func (c *Constraints) CombineWithSubstitutionInducedConstraints(subs AllSubstitutions) {
	c.Init = append(c.Init, subs.Main.Init...)
	c.Init = append(c.Init, subs.Aux.Init...)
	c.Cons = append(c.Cons, subs.Main.Cons...)
	c.Cons = append(c.Cons, subs.Aux.Cons...)
	c.Tran = append(c.Tran, subs.Main.Tran...)
	c.Tran = append(c.Tran, subs.Aux.Tran...)
	c.Term = append(c.Term, subs.Main.Term...)
	c.Term = append(c.Term, subs.Aux.Term...)
}

// InitialCircuits consumes the initial constraints into immutable circuits.
func (c *Constraints) InitialCircuits() []circuit.Circuit[circuit.SingleRowIndicator] {
	return circuit.Consume(c.Init)
}

// ConsistencyCircuits consumes the consistency constraints into immutable
// circuits.
func (c *Constraints) ConsistencyCircuits() []circuit.Circuit[circuit.SingleRowIndicator] {
	return circuit.Consume(c.Cons)
}

// TransitionCircuits consumes the transition constraints into immutable
// circuits.
func (c *Constraints) TransitionCircuits() []circuit.Circuit[circuit.DualRowIndicator] {
	return circuit.Consume(c.Tran)
}

// TerminalCircuits consumes the terminal constraints into immutable
// circuits.
func (c *Constraints) TerminalCircuits() []circuit.Circuit[circuit.SingleRowIndicator] {
	return circuit.Consume(c.Term)
}
