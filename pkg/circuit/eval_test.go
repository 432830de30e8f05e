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

// Lowering must preserve semantics: on rows whose substitution columns hold
// the values of the extracted subexpressions, the lowered constraints
// evaluate to what the originals did.
func Test_Lowering_07_PreservesSemantics(t *testing.T) {
	b := NewBuilder[DualRowIndicator]()
	//
	t1 := b.Input(CurrentMain(0)).Mul(b.Input(NextAux(1)))
	t2 := b.Input(NextMain(0)).Mul(b.Input(CurrentAux(0)))
	roots := []Monad[DualRowIndicator]{
		t1.Mul(t2),
		t1.Sub(t2).Mul(t1),
	}
	// Snapshot the originals before lowering rewrites the arena.
	originals := Consume(roots)
	//
	info := DegreeLoweringInfo{TargetDegree: 2, NumMainColumns: 1, NumAuxColumns: 2}
	mainSubs, auxSubs := LowerToDegree(roots, info)
	//
	if len(mainSubs) != 0 || len(auxSubs) != 2 {
		t.Fatalf("expected 0 main and 2 aux substitutions, got %d and %d",
			len(mainSubs), len(auxSubs))
	}
	//
	lowered := Consume(roots)
	substitutions := Consume(auxSubs)
	//
	m0 := field.XOf(3)
	n0 := field.XOf(7)
	a0 := field.XOf(11)
	b1 := field.XOf(13)
	//
	// The extracted subexpressions are m0 * b1 and n0 * a0; their values
	// extend the current row's aux columns at the allocated indices.
	rows := RowPair{
		CurrentMain: []field.XFieldElement{m0},
		NextMain:    []field.XFieldElement{n0},
		CurrentAux:  []field.XFieldElement{a0, field.XOf(17), field.XMul(m0, b1), field.XMul(n0, a0)},
		NextAux:     []field.XFieldElement{field.XOf(19), b1, field.XOf(0), field.XOf(0)},
	}
	//
	for i, s := range substitutions {
		if value := s.EvalAt(rows, nil); !value.IsZero() {
			t.Errorf("substitution %d: expected zero, got %s", i, value.String())
		}
	}
	//
	for i := range originals {
		expected := originals[i].EvalAt(rows, nil)
		actual := lowered[i].EvalAt(rows, nil)
		//
		if !expected.Equal(&actual) {
			t.Errorf("constraint %d: expected %s, got %s", i, expected.String(), actual.String())
		}
	}
}
