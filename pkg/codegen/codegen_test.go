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
	"testing"

	"github.com/consensys/go-starkvm/pkg/table"
)

func buildConstraintSet() (*ConstraintSet, table.AllSubstitutions) {
	constraints := table.AllConstraints()
	substitutions := constraints.LowerToTargetDegreeThroughSubstitutions(table.DefaultDegreeLoweringInfo())
	constraints.CombineWithSubstitutionInducedConstraints(substitutions)
	//
	return NewConstraintSet(constraints), substitutions
}

func Test_GoBackend_01_EmitsAllBuckets(t *testing.T) {
	set, _ := buildConstraintSet()
	source := GoBackend{}.Generate(set)
	//
	for _, fn := range []string{
		"func EvaluateInitialConstraints(",
		"func EvaluateConsistencyConstraints(",
		"func EvaluateTransitionConstraints(",
		"func EvaluateTerminalConstraints(",
	} {
		if !strings.Contains(source, fn) {
			t.Errorf("generated source lacks %q", fn)
		}
	}
	//
	if !strings.Contains(source, "DO NOT EDIT") {
		t.Errorf("generated source lacks the generated marker")
	}
	// One returned value per constraint.
	if n := strings.Count(source, "\t\tn"); n != int(set.Len()) {
		t.Errorf("expected %d returned values, found %d", set.Len(), n)
	}
}

func Test_GoBackend_02_Determinism(t *testing.T) {
	set1, _ := buildConstraintSet()
	set2, _ := buildConstraintSet()
	//
	source1 := GoBackend{}.Generate(set1)
	source2 := GoBackend{}.Generate(set2)
	//
	if source1 != source2 {
		t.Errorf("identical constraint sets generated different source")
	}
}

func Test_VMBackend_01_OneOutputPerConstraint(t *testing.T) {
	set, _ := buildConstraintSet()
	listing := VMBackend{}.Generate(set)
	//
	if n := strings.Count(listing, "output\n"); n != int(set.Len()) {
		t.Errorf("expected %d output instructions, found %d", set.Len(), n)
	}
	//
	for _, section := range []string{".initial", ".consistency", ".transition", ".terminal"} {
		if !strings.Contains(listing, section) {
			t.Errorf("listing lacks section %q", section)
		}
	}
}

func Test_Layout_01_MatchesSubstitutions(t *testing.T) {
	_, substitutions := buildConstraintSet()
	//
	layout := LayoutGenerator{Substitutions: substitutions}
	source := layout.Generate()
	//
	expectedMain := fmt.Sprintf("NumMainColumns = %d", 149+substitutions.Main.Len())
	expectedAux := fmt.Sprintf("NumAuxColumns = %d", 49+substitutions.Aux.Len())
	//
	if !strings.Contains(source, expectedMain) {
		t.Errorf("layout lacks %q", expectedMain)
	}
	//
	if !strings.Contains(source, expectedAux) {
		t.Errorf("layout lacks %q", expectedAux)
	}
	//
	if n := strings.Count(source, "\"DegreeLoweringMainCol"); n != int(substitutions.Main.Len()) {
		t.Errorf("expected %d main column names, found %d", substitutions.Main.Len(), n)
	}
	//
	if n := strings.Count(source, "\"DegreeLoweringAuxCol"); n != int(substitutions.Aux.Len()) {
		t.Errorf("expected %d aux column names, found %d", substitutions.Aux.Len(), n)
	}
	//
	if !strings.Contains(source, "DegreeLoweringTableMainStart = 149") {
		t.Errorf("layout lacks the degree lowering table's main start offset")
	}
}
