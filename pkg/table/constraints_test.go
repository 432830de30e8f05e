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
	"testing"

	"github.com/consensys/go-starkvm/pkg/circuit"
)

func Test_Constraints_01_AllTablesContribute(t *testing.T) {
	constraints := AllConstraints()
	//
	if len(constraints.Init) == 0 || len(constraints.Cons) == 0 ||
		len(constraints.Tran) == 0 || len(constraints.Term) == 0 {
		t.Fatalf("empty bucket: %d/%d/%d/%d", len(constraints.Init),
			len(constraints.Cons), len(constraints.Tran), len(constraints.Term))
	}
	//
	if constraints.Len() == 0 {
		t.Fatalf("no constraints collected")
	}
}

// The hash table deliberately carries constraints above the target degree;
// without them, degree lowering would have nothing to do.
func Test_Constraints_02_LoweringHasWork(t *testing.T) {
	constraints := AllConstraints()
	//
	overTarget := 0
	//
	for _, c := range constraints.Cons {
		if c.Degree() > DefaultTargetDegree {
			overTarget++
		}
	}
	//
	for _, c := range constraints.Tran {
		if c.Degree() > DefaultTargetDegree {
			overTarget++
		}
	}
	//
	if overTarget == 0 {
		t.Errorf("no constraint exceeds the target degree %d", DefaultTargetDegree)
	}
}

func Test_Constraints_03_LoweringMeetsTarget(t *testing.T) {
	constraints := AllConstraints()
	originalLen := constraints.Len()
	//
	substitutions := constraints.LowerToTargetDegreeThroughSubstitutions(DefaultDegreeLoweringInfo())
	//
	if substitutions.Main.Len()+substitutions.Aux.Len() == 0 {
		t.Fatalf("lowering allocated no columns")
	}
	//
	constraints.CombineWithSubstitutionInducedConstraints(substitutions)
	//
	expectedLen := originalLen + substitutions.Main.Len() + substitutions.Aux.Len()
	if constraints.Len() != expectedLen {
		t.Errorf("expected %d constraints after combining, got %d", expectedLen, constraints.Len())
	}
	//
	checkDegrees := func(name string, degrees []int) {
		for i, d := range degrees {
			if d > DefaultTargetDegree {
				t.Errorf("%s constraint %d has degree %d", name, i, d)
			}
		}
	}
	//
	checkDegrees("initial", singleDegrees(constraints.Init))
	checkDegrees("consistency", singleDegrees(constraints.Cons))
	checkDegrees("transition", dualDegrees(constraints.Tran))
	checkDegrees("terminal", singleDegrees(constraints.Term))
}

// Consuming every bucket must succeed: a panic here would indicate node ids
// were corrupted by lowering.
func Test_Constraints_04_ConsumeAfterLowering(t *testing.T) {
	constraints := AllConstraints()
	substitutions := constraints.LowerToTargetDegreeThroughSubstitutions(DefaultDegreeLoweringInfo())
	constraints.CombineWithSubstitutionInducedConstraints(substitutions)
	//
	init := constraints.InitialCircuits()
	cons := constraints.ConsistencyCircuits()
	tran := constraints.TransitionCircuits()
	term := constraints.TerminalCircuits()
	//
	if len(init) != len(constraints.Init) || len(cons) != len(constraints.Cons) ||
		len(tran) != len(constraints.Tran) || len(term) != len(constraints.Term) {
		t.Errorf("consumed circuit counts do not match bucket sizes")
	}
}

func Test_Constraints_05_Determinism(t *testing.T) {
	run := func() (AllSubstitutions, []int) {
		constraints := AllConstraints()
		subs := constraints.LowerToTargetDegreeThroughSubstitutions(DefaultDegreeLoweringInfo())
		constraints.CombineWithSubstitutionInducedConstraints(subs)
		//
		var degrees []int
		degrees = append(degrees, singleDegrees(constraints.Init)...)
		degrees = append(degrees, singleDegrees(constraints.Cons)...)
		degrees = append(degrees, dualDegrees(constraints.Tran)...)
		degrees = append(degrees, singleDegrees(constraints.Term)...)
		//
		return subs, degrees
	}
	//
	subs1, degrees1 := run()
	subs2, degrees2 := run()
	//
	if subs1.Main.Len() != subs2.Main.Len() || subs1.Aux.Len() != subs2.Aux.Len() {
		t.Fatalf("runs allocated different column counts: %d/%d vs %d/%d",
			subs1.Main.Len(), subs1.Aux.Len(), subs2.Main.Len(), subs2.Aux.Len())
	}
	//
	if len(degrees1) != len(degrees2) {
		t.Fatalf("runs produced %d and %d constraints", len(degrees1), len(degrees2))
	}
	//
	for i := range degrees1 {
		if degrees1[i] != degrees2[i] {
			t.Errorf("constraint %d: degrees %d and %d", i, degrees1[i], degrees2[i])
		}
	}
}

func singleDegrees(monads []SingleMonad) []int {
	degrees := make([]int, len(monads))
	//
	for i, m := range monads {
		degrees[i] = m.Degree()
	}
	//
	return degrees
}

func dualDegrees(monads []DualMonad) []int {
	degrees := make([]int, len(monads))
	//
	for i, m := range monads {
		degrees[i] = m.Degree()
	}
	//
	return degrees
}

// The program attestation is closed in two places: the chunk evaluations
// tie the program table to the hash table, and the hash table checks the
// resulting digest against the claim-derived compressed digest.  Both
// digest challenges must therefore be referenced by some constraint.
func Test_Constraints_06_ProgramAttestationChallenges(t *testing.T) {
	constraints := AllConstraints()
	//
	referenced := make(map[uint]bool)
	//
	for _, c := range constraints.TransitionCircuits() {
		collectChallenges(c, c.Root(), referenced)
	}
	//
	for _, id := range []uint{CompressProgramDigestIndeterminate, CompressedProgramDigest} {
		if !referenced[id] {
			t.Errorf("no transition constraint references challenge %q", ChallengeName(id))
		}
	}
}

func collectChallenges(c circuit.Circuit[circuit.DualRowIndicator], id uint, out map[uint]bool) {
	n := c.Node(id)
	//
	switch {
	case n.Op == circuit.OpChallenge:
		out[n.Challenge] = true
	case !n.Op.IsLeaf():
		collectChallenges(c, n.Left, out)
		collectChallenges(c, n.Right, out)
	}
}

// Substitution column names must line up with the registry's generated
// names, since the layout artifact is derived from both.
func Test_Substitutions_01_ColumnNames(t *testing.T) {
	s := Substitutions{
		Info: circuit.DegreeLoweringInfo{TargetDegree: 4},
	}
	//
	if names := s.ColumnNames("Main"); len(names) != 0 {
		t.Errorf("expected no names, got %d", len(names))
	}
}
