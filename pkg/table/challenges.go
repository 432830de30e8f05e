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

// The verifier-supplied challenges.  Indeterminates parameterise the various
// permutation, evaluation and lookup arguments; weights compress tuples of
// columns into single field elements before feeding them to an argument.
// The three terminal challenges at the end are not sampled but derived from
// the claim; keeping them in the same index space lets every constraint
// reference them uniformly.
const (
	CompressProgramDigestIndeterminate uint = iota
	StandardInputIndeterminate
	StandardOutputIndeterminate
	InstructionLookupIndeterminate
	ProgramAddressWeight
	ProgramInstructionWeight
	ProgramNextInstructionWeight
	OpStackIndeterminate
	OpStackClkWeight
	OpStackIb1Weight
	OpStackPointerWeight
	OpStackFirstUnderflowElementWeight
	RamIndeterminate
	RamClkWeight
	RamPointerWeight
	RamValueWeight
	RamInstructionTypeWeight
	JumpStackIndeterminate
	JumpStackClkWeight
	JumpStackCiWeight
	JumpStackJspWeight
	JumpStackJsoWeight
	JumpStackJsdWeight
	ProgramAttestationPrepareChunkIndeterminate
	ProgramAttestationSendChunkIndeterminate
	HashInputIndeterminate
	HashDigestIndeterminate
	SpongeIndeterminate
	StackWeight0
	StackWeight1
	StackWeight2
	StackWeight3
	StackWeight4
	StackWeight5
	StackWeight6
	StackWeight7
	StackWeight8
	StackWeight9
	StackWeight10
	StackWeight11
	StackWeight12
	StackWeight13
	StackWeight14
	StackWeight15
	CascadeLookupIndeterminate
	HashCascadeLookInWeight
	HashCascadeLookOutWeight
	LookupTableIndeterminate
	LookupTableInputWeight
	LookupTableOutputWeight
	LookupTablePublicIndeterminate
	U32Indeterminate
	U32LhsWeight
	U32RhsWeight
	U32CiWeight
	U32ResultWeight
	ClockJumpDifferenceLookupIndeterminate
	// Derived from the claim rather than sampled.
	StandardInputTerminal
	StandardOutputTerminal
	LookupTablePublicTerminal
	CompressedProgramDigest
	// NumChallenges is the total number of challenges.
	NumChallenges
)

// challengeNames, indexed by challenge id, back the generated artefacts.
var challengeNames = []string{
	"CompressProgramDigestIndeterminate",
	"StandardInputIndeterminate",
	"StandardOutputIndeterminate",
	"InstructionLookupIndeterminate",
	"ProgramAddressWeight",
	"ProgramInstructionWeight",
	"ProgramNextInstructionWeight",
	"OpStackIndeterminate",
	"OpStackClkWeight",
	"OpStackIb1Weight",
	"OpStackPointerWeight",
	"OpStackFirstUnderflowElementWeight",
	"RamIndeterminate",
	"RamClkWeight",
	"RamPointerWeight",
	"RamValueWeight",
	"RamInstructionTypeWeight",
	"JumpStackIndeterminate",
	"JumpStackClkWeight",
	"JumpStackCiWeight",
	"JumpStackJspWeight",
	"JumpStackJsoWeight",
	"JumpStackJsdWeight",
	"ProgramAttestationPrepareChunkIndeterminate",
	"ProgramAttestationSendChunkIndeterminate",
	"HashInputIndeterminate",
	"HashDigestIndeterminate",
	"SpongeIndeterminate",
	"StackWeight0",
	"StackWeight1",
	"StackWeight2",
	"StackWeight3",
	"StackWeight4",
	"StackWeight5",
	"StackWeight6",
	"StackWeight7",
	"StackWeight8",
	"StackWeight9",
	"StackWeight10",
	"StackWeight11",
	"StackWeight12",
	"StackWeight13",
	"StackWeight14",
	"StackWeight15",
	"CascadeLookupIndeterminate",
	"HashCascadeLookInWeight",
	"HashCascadeLookOutWeight",
	"LookupTableIndeterminate",
	"LookupTableInputWeight",
	"LookupTableOutputWeight",
	"LookupTablePublicIndeterminate",
	"U32Indeterminate",
	"U32LhsWeight",
	"U32RhsWeight",
	"U32CiWeight",
	"U32ResultWeight",
	"ClockJumpDifferenceLookupIndeterminate",
	"StandardInputTerminal",
	"StandardOutputTerminal",
	"LookupTablePublicTerminal",
	"CompressedProgramDigest",
}

// ChallengeName returns the name of the given challenge.
func ChallengeName(id uint) string {
	return challengeNames[id]
}
