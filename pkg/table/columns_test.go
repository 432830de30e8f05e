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

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var expectedMainWidths = map[TableID]uint{
	Program:        7,
	Processor:      39,
	OpStack:        4,
	Ram:            7,
	JumpStack:      5,
	Hash:           67,
	Cascade:        6,
	Lookup:         4,
	U32:            10,
	DegreeLowering: 0,
}

var expectedAuxWidths = map[TableID]uint{
	Program:        3,
	Processor:      11,
	OpStack:        2,
	Ram:            6,
	JumpStack:      2,
	Hash:           20,
	Cascade:        2,
	Lookup:         2,
	U32:            1,
	DegreeLowering: 0,
}

func Test_Registry_01_NativeWidths(t *testing.T) {
	registry := NativeRegistry()
	//
	for id := Program; id <= DegreeLowering; id++ {
		if w := registry.MainWidth(id); w != expectedMainWidths[id] {
			t.Errorf("%s: expected %d main columns, got %d", id, expectedMainWidths[id], w)
		}
		//
		if w := registry.AuxWidth(id); w != expectedAuxWidths[id] {
			t.Errorf("%s: expected %d aux columns, got %d", id, expectedAuxWidths[id], w)
		}
	}
	//
	if total := registry.NumMainColumns(); total != 149 {
		t.Errorf("expected 149 main columns, got %d", total)
	}
	//
	if total := registry.NumAuxColumns(); total != 49 {
		t.Errorf("expected 49 aux columns, got %d", total)
	}
}

// Walking all tables in order must visit every global index exactly once,
// consecutively, in both column spaces.
func Test_Registry_02_Contiguity(t *testing.T) {
	checkContiguity(t, NewRegistry(0, 0))
	checkContiguity(t, NewRegistry(7, 3))
}

func checkContiguity(t *testing.T, registry *Registry) {
	t.Helper()
	//
	nextMain := uint(0)
	nextAux := uint(0)
	//
	for id := Program; id <= DegreeLowering; id++ {
		if start := registry.MainStart(id); start != nextMain {
			t.Errorf("%s: main columns start at %d, expected %d", id, start, nextMain)
		}
		//
		for local := uint(0); local < registry.MainWidth(id); local++ {
			if global := registry.GlobalMainIndex(id, local); global != nextMain {
				t.Errorf("%s main %d: got global %d, expected %d", id, local, global, nextMain)
			}
			//
			nextMain++
		}
		//
		if start := registry.AuxStart(id); start != nextAux {
			t.Errorf("%s: aux columns start at %d, expected %d", id, start, nextAux)
		}
		//
		for local := uint(0); local < registry.AuxWidth(id); local++ {
			if global := registry.GlobalAuxIndex(id, local); global != nextAux {
				t.Errorf("%s aux %d: got global %d, expected %d", id, local, global, nextAux)
			}
			//
			nextAux++
		}
	}
	//
	if nextMain != registry.NumMainColumns() {
		t.Errorf("walked %d main columns, expected %d", nextMain, registry.NumMainColumns())
	}
	//
	if nextAux != registry.NumAuxColumns() {
		t.Errorf("walked %d aux columns, expected %d", nextAux, registry.NumAuxColumns())
	}
}

func Test_Registry_03_DegreeLoweringColumnsSitLast(t *testing.T) {
	registry := NewRegistry(7, 3)
	//
	if start := registry.MainStart(DegreeLowering); start != 149 {
		t.Errorf("expected degree lowering main columns to start at 149, got %d", start)
	}
	//
	if start := registry.AuxStart(DegreeLowering); start != 49 {
		t.Errorf("expected degree lowering aux columns to start at 49, got %d", start)
	}
	//
	if name := registry.MainColumnName(DegreeLowering, 0); name != "DegreeLoweringMainCol0" {
		t.Errorf("unexpected column name %q", name)
	}
	//
	if name := registry.AuxColumnName(DegreeLowering, 2); name != "DegreeLoweringAuxCol2" {
		t.Errorf("unexpected column name %q", name)
	}
}

func Test_Registry_04_IndexInjectivity(t *testing.T) {
	registry := NativeRegistry()
	properties := gopter.NewProperties(nil)
	//
	genColumn := gopter.CombineGens(
		gen.IntRange(int(Program), int(U32)),
		gen.UInt64(),
	).Map(func(values []interface{}) []uint {
		id := TableID(values[0].(int))
		local := uint(values[1].(uint64)) % registry.MainWidth(id)
		//
		return []uint{uint(id), local}
	})
	//
	properties.Property("distinct columns receive distinct global indices", prop.ForAll(
		func(a, b []uint) bool {
			ga := registry.GlobalMainIndex(TableID(a[0]), a[1])
			gb := registry.GlobalMainIndex(TableID(b[0]), b[1])
			//
			if a[0] == b[0] && a[1] == b[1] {
				return ga == gb
			}
			//
			return ga != gb
		}, genColumn, genColumn))
	//
	properties.TestingRun(t)
}

func Test_Challenges_01_Names(t *testing.T) {
	if uint(len(challengeNames)) != NumChallenges {
		t.Fatalf("%d challenge names for %d challenges", len(challengeNames), NumChallenges)
	}
	//
	if name := ChallengeName(CompressProgramDigestIndeterminate); name != "CompressProgramDigestIndeterminate" {
		t.Errorf("unexpected name %q", name)
	}
	//
	if name := ChallengeName(CompressedProgramDigest); name != "CompressedProgramDigest" {
		t.Errorf("unexpected name %q", name)
	}
}
