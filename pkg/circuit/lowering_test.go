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
	"testing"

	"github.com/consensys/go-starkvm/pkg/field"
)

// buildToyConstraints builds three constraints over columns x0, x1, x2 and
// challenge 1:
//
//	x0 * x1 - x2
//	x0^4 - ch1 - 16
//	x2 * x0^4 - x1^4
func buildToyConstraints(b *Builder[SingleRowIndicator]) []Monad[SingleRowIndicator] {
	x0 := b.Input(Main(0))
	x1 := b.Input(Main(1))
	x2 := b.Input(Main(2))
	ch1 := b.Challenge(1)
	//
	x0p4 := x0.Mul(x0).Mul(x0).Mul(x0)
	x1p4 := x1.Mul(x1).Mul(x1).Mul(x1)
	//
	return []Monad[SingleRowIndicator]{
		x0.Mul(x1).Sub(x2),
		x0p4.Sub(ch1).Sub(b.BConstant(field.NewBFieldElement(16))),
		x2.Mul(x0p4).Sub(x1p4),
	}
}

func Test_Lowering_01_ToyScenario(t *testing.T) {
	b := NewBuilder[SingleRowIndicator]()
	roots := buildToyConstraints(b)
	//
	info := DegreeLoweringInfo{TargetDegree: 4, NumMainColumns: 3, NumAuxColumns: 0}
	mainSubs, auxSubs := LowerToDegree(roots, info)
	//
	// Only the third constraint exceeds the target; extracting x0^4 fixes
	// it.  x0^4 is base field valued, so it claims a main column.
	if len(mainSubs) != 1 || len(auxSubs) != 0 {
		t.Fatalf("expected 1 main and 0 aux substitutions, got %d and %d",
			len(mainSubs), len(auxSubs))
	}
	//
	for i, r := range roots {
		if r.Degree() > info.TargetDegree {
			t.Errorf("root %d has degree %d after lowering", i, r.Degree())
		}
	}
	//
	for i, s := range mainSubs {
		if s.Degree() > info.TargetDegree {
			t.Errorf("substitution %d has degree %d", i, s.Degree())
		}
	}
	// The extraction rewrites every occurrence of x0^4, including the one
	// in the second constraint, which drops to degree 1.
	if roots[1].Degree() != 1 {
		t.Errorf("expected degree 1, got %d", roots[1].Degree())
	}
}

func Test_Lowering_02_Determinism(t *testing.T) {
	run := func() ([]uint, []int) {
		b := NewBuilder[SingleRowIndicator]()
		roots := buildToyConstraints(b)
		//
		info := DegreeLoweringInfo{TargetDegree: 2, NumMainColumns: 3, NumAuxColumns: 0}
		mainSubs, auxSubs := LowerToDegree(roots, info)
		//
		var ids []uint
		var degrees []int
		//
		for _, s := range append(mainSubs, auxSubs...) {
			ids = append(ids, s.ID())
			degrees = append(degrees, s.Degree())
		}
		//
		for _, r := range roots {
			degrees = append(degrees, r.Degree())
		}
		//
		return ids, degrees
	}
	//
	ids1, degrees1 := run()
	ids2, degrees2 := run()
	//
	if len(ids1) != len(ids2) {
		t.Fatalf("runs allocated %d and %d columns", len(ids1), len(ids2))
	}
	//
	for i := range ids1 {
		if ids1[i] != ids2[i] {
			t.Errorf("substitution %d: ids %d and %d", i, ids1[i], ids2[i])
		}
	}
	//
	for i := range degrees1 {
		if degrees1[i] != degrees2[i] {
			t.Errorf("record %d: degrees %d and %d", i, degrees1[i], degrees2[i])
		}
	}
}

func Test_Lowering_03_LeafRootsNeedNoSubstitutions(t *testing.T) {
	b := NewBuilder[SingleRowIndicator]()
	roots := []Monad[SingleRowIndicator]{
		b.Input(Main(0)),
		b.Input(Aux(0)),
	}
	//
	info := DegreeLoweringInfo{TargetDegree: 1, NumMainColumns: 1, NumAuxColumns: 1}
	mainSubs, auxSubs := LowerToDegree(roots, info)
	//
	if len(mainSubs) != 0 || len(auxSubs) != 0 {
		t.Errorf("expected no substitutions, got %d and %d", len(mainSubs), len(auxSubs))
	}
}

func Test_Lowering_04_InfeasibleTargetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on infeasible target")
		}
	}()
	//
	b := NewBuilder[SingleRowIndicator]()
	// A product of two leaves has degree 2; no subexpression with degree
	// in (1, 1] exists, so the target is unreachable.
	roots := []Monad[SingleRowIndicator]{
		b.Input(Main(0)).Mul(b.Input(Main(1))),
	}
	//
	LowerToDegree(roots, DegreeLoweringInfo{TargetDegree: 1, NumMainColumns: 2})
}

func Test_Lowering_05_InvalidTargetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on invalid target")
		}
	}()
	//
	b := NewBuilder[SingleRowIndicator]()
	roots := []Monad[SingleRowIndicator]{b.Input(Main(0))}
	//
	LowerToDegree(roots, DegreeLoweringInfo{TargetDegree: 0})
}

func Test_Lowering_06_AuxValuedSubstitutions(t *testing.T) {
	b := NewBuilder[DualRowIndicator]()
	//
	t1 := b.Input(CurrentMain(0)).Mul(b.Input(NextAux(1)))
	t2 := b.Input(NextMain(0)).Mul(b.Input(CurrentAux(0)))
	roots := []Monad[DualRowIndicator]{t1.Mul(t2)}
	//
	info := DegreeLoweringInfo{TargetDegree: 2, NumMainColumns: 1, NumAuxColumns: 2}
	mainSubs, auxSubs := LowerToDegree(roots, info)
	//
	// Both extracted subexpressions read aux columns, so both claim aux
	// columns.
	if len(mainSubs) != 0 || len(auxSubs) != 2 {
		t.Fatalf("expected 0 main and 2 aux substitutions, got %d and %d",
			len(mainSubs), len(auxSubs))
	}
	//
	if roots[0].Degree() != 2 {
		t.Errorf("expected degree 2, got %d", roots[0].Degree())
	}
}
