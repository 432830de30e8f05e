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
	"fmt"
)

// TableID identifies a functional table of the trace.  The declaration order
// below is the fixed master table order: each table's columns occupy a
// contiguous range of the master table, one table after the other, with the
// degree lowering table's columns last in both column spaces.
type TableID int

const (
	// Program attests to the program being executed.
	Program TableID = iota
	// Processor records the register state of every cycle.
	Processor
	// OpStack records accesses to the operational stack's underflow memory.
	OpStack
	// Ram records random access memory operations.
	Ram
	// JumpStack records the call stack for control flow.
	JumpStack
	// Hash records the sponge coprocessor's permutations.
	Hash
	// Cascade splits 16-bit S-box lookups into 8-bit halves.
	Cascade
	// Lookup holds the precomputed 8-bit S-box.
	Lookup
	// U32 records 32-bit integer operations.
	U32
	// DegreeLowering holds the substitution columns introduced by degree
	// lowering.  Its width is only known once lowering has run.
	DegreeLowering
)

// NumTables is the number of functional tables, including the degree
// lowering table.
const NumTables = int(DegreeLowering) + 1

func (id TableID) String() string {
	switch id {
	case Program:
		return "Program"
	case Processor:
		return "Processor"
	case OpStack:
		return "OpStack"
	case Ram:
		return "Ram"
	case JumpStack:
		return "JumpStack"
	case Hash:
		return "Hash"
	case Cascade:
		return "Cascade"
	case Lookup:
		return "Lookup"
	case U32:
		return "U32"
	case DegreeLowering:
		return "DegreeLowering"
	default:
		return "Unknown"
	}
}

// Registry enumerates, per functional table, the named main and aux columns,
// and derives local and global column indices generically by prefix summing
// table widths in master table order.  There is deliberately no hand-written
// offset arithmetic per table.
type Registry struct {
	mainNames [NumTables][]string
	auxNames  [NumTables][]string
	// Prefix sums over widths; entry i is the global index of table i's
	// first column, entry NumTables is the total width.
	mainStarts [NumTables + 1]uint
	auxStarts  [NumTables + 1]uint
}

// NewRegistry constructs the master table registry.  The degree lowering
// table's widths are parameters, sized by however many substitution columns
// degree lowering allocated (zero before lowering has run).
func NewRegistry(numDegreeLoweringMain, numDegreeLoweringAux uint) *Registry {
	r := &Registry{}
	//
	r.mainNames = [NumTables][]string{
		programMainColumnNames,
		processorMainColumnNames,
		opStackMainColumnNames,
		ramMainColumnNames,
		jumpStackMainColumnNames,
		hashMainColumnNames(),
		cascadeMainColumnNames,
		lookupMainColumnNames,
		u32MainColumnNames,
		degreeLoweringColumnNames("Main", numDegreeLoweringMain),
	}
	r.auxNames = [NumTables][]string{
		programAuxColumnNames,
		processorAuxColumnNames,
		opStackAuxColumnNames,
		ramAuxColumnNames,
		jumpStackAuxColumnNames,
		hashAuxColumnNames(),
		cascadeAuxColumnNames,
		lookupAuxColumnNames,
		u32AuxColumnNames,
		degreeLoweringColumnNames("Aux", numDegreeLoweringAux),
	}
	//
	for i := 0; i < NumTables; i++ {
		r.mainStarts[i+1] = r.mainStarts[i] + uint(len(r.mainNames[i]))
		r.auxStarts[i+1] = r.auxStarts[i] + uint(len(r.auxNames[i]))
	}
	//
	return r
}

// MainWidth returns the number of main columns of the given table.
func (r *Registry) MainWidth(id TableID) uint {
	return uint(len(r.mainNames[id]))
}

// AuxWidth returns the number of aux columns of the given table.
func (r *Registry) AuxWidth(id TableID) uint {
	return uint(len(r.auxNames[id]))
}

// NumMainColumns returns the total main width of the master table.
func (r *Registry) NumMainColumns() uint {
	return r.mainStarts[NumTables]
}

// NumAuxColumns returns the total aux width of the master table.
func (r *Registry) NumAuxColumns() uint {
	return r.auxStarts[NumTables]
}

// MainStart returns the global index of the given table's first main column.
func (r *Registry) MainStart(id TableID) uint {
	return r.mainStarts[id]
}

// AuxStart returns the global index of the given table's first aux column.
func (r *Registry) AuxStart(id TableID) uint {
	return r.auxStarts[id]
}

// GlobalMainIndex maps a table-local main column index to its index within
// the master main table.
func (r *Registry) GlobalMainIndex(id TableID, local uint) uint {
	if local >= r.MainWidth(id) {
		panic(fmt.Sprintf("main column %d out of range for table %s", local, id))
	}
	//
	return r.mainStarts[id] + local
}

// GlobalAuxIndex maps a table-local aux column index to its index within the
// master aux table.
func (r *Registry) GlobalAuxIndex(id TableID, local uint) uint {
	if local >= r.AuxWidth(id) {
		panic(fmt.Sprintf("aux column %d out of range for table %s", local, id))
	}
	//
	return r.auxStarts[id] + local
}

// MainColumnName returns the name of a table-local main column.
func (r *Registry) MainColumnName(id TableID, local uint) string {
	return r.mainNames[id][local]
}

// AuxColumnName returns the name of a table-local aux column.
func (r *Registry) AuxColumnName(id TableID, local uint) string {
	return r.auxNames[id][local]
}

// nativeRegistry is the registry before degree lowering, used by the
// constraint definitions to resolve global column indices.
var nativeRegistry = NewRegistry(0, 0)

// NativeRegistry returns the registry of the native tables, i.e. without any
// degree lowering columns.
func NativeRegistry() *Registry {
	return nativeRegistry
}

// MainIndex resolves a table-local main column to its master table index.
func MainIndex(id TableID, local uint) uint {
	return nativeRegistry.GlobalMainIndex(id, local)
}

// AuxIndex resolves a table-local aux column to its master table index.
func AuxIndex(id TableID, local uint) uint {
	return nativeRegistry.GlobalAuxIndex(id, local)
}

func degreeLoweringColumnNames(space string, count uint) []string {
	names := make([]string, count)
	//
	for i := range names {
		names[i] = fmt.Sprintf("DegreeLowering%sCol%d", space, i)
	}
	//
	return names
}

func hashMainColumnNames() []string {
	names := []string{"Mode", "CI", "RoundNumber"}
	//
	limbs := []string{"Highest", "MidHigh", "MidLow", "Lowest"}
	//
	for i := 0; i < 4; i++ {
		for _, limb := range limbs {
			names = append(names, fmt.Sprintf("State%d%sLkIn", i, limb))
		}
	}
	//
	for i := 0; i < 4; i++ {
		for _, limb := range limbs {
			names = append(names, fmt.Sprintf("State%d%sLkOut", i, limb))
		}
	}
	//
	for i := 4; i < 16; i++ {
		names = append(names, fmt.Sprintf("State%d", i))
	}
	//
	for i := 0; i < 4; i++ {
		names = append(names, fmt.Sprintf("State%dInv", i))
	}
	//
	for i := 0; i < 16; i++ {
		names = append(names, fmt.Sprintf("Constant%d", i))
	}
	//
	return names
}

func hashAuxColumnNames() []string {
	names := []string{
		"ReceiveChunkRunningEvaluation",
		"HashInputRunningEvaluation",
		"HashDigestRunningEvaluation",
		"SpongeRunningEvaluation",
	}
	//
	limbs := []string{"Highest", "MidHigh", "MidLow", "Lowest"}
	//
	for i := 0; i < 4; i++ {
		for _, limb := range limbs {
			names = append(names, fmt.Sprintf("CascadeState%d%sClientLogDerivative", i, limb))
		}
	}
	//
	return names
}
