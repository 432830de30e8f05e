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

// Sponge rate of the hash coprocessor.  The program is absorbed in chunks of
// this many instructions for attestation.
const spongeRate = 10

// Program table main columns.
const (
	ProgramAddress uint = iota
	ProgramInstruction
	ProgramLookupMultiplicity
	ProgramIndexInChunk
	ProgramMaxMinusIndexInChunkInv
	ProgramIsHashInputPadding
	ProgramIsTablePadding
)

// Program table aux columns.
const (
	ProgramInstructionLookupServerLogDerivative uint = iota
	ProgramPrepareChunkRunningEvaluation
	ProgramSendChunkRunningEvaluation
)

var programMainColumnNames = []string{
	"Address",
	"Instruction",
	"LookupMultiplicity",
	"IndexInChunk",
	"MaxMinusIndexInChunkInv",
	"IsHashInputPadding",
	"IsTablePadding",
}

var programAuxColumnNames = []string{
	"InstructionLookupServerLogDerivative",
	"PrepareChunkRunningEvaluation",
	"SendChunkRunningEvaluation",
}

// ProgramTable attests to the program being executed: it serves the
// processor's instruction lookup and feeds the program, chunk by chunk, into
// the hash coprocessor for the program digest.
type ProgramTable struct{}

func (t ProgramTable) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Program}
	//
	address := r.main(ProgramAddress)
	instruction := r.main(ProgramInstruction)
	indexInChunk := r.main(ProgramIndexInChunk)
	isHashInputPadding := r.main(ProgramIsHashInputPadding)
	lookupLogDerivative := r.aux(ProgramInstructionLookupServerLogDerivative)
	prepareChunk := r.aux(ProgramPrepareChunkRunningEvaluation)
	sendChunk := r.aux(ProgramSendChunkRunningEvaluation)
	//
	// The prepare chunk running evaluation has already absorbed the first
	// instruction on the first row.
	prepareChunkAbsorbedFirstInstruction := prepareChunk.
		Sub(r.challenge(ProgramAttestationPrepareChunkIndeterminate)).
		Sub(instruction)
	//
	return []SingleMonad{
		address,
		indexInChunk,
		isHashInputPadding,
		lookupLogDerivative,
		prepareChunkAbsorbedFirstInstruction,
		sendChunk.Sub(r.one()),
	}
}

func (t ProgramTable) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Program}
	//
	indexInChunk := r.main(ProgramIndexInChunk)
	maxMinusIndexInChunkInv := r.main(ProgramMaxMinusIndexInChunkInv)
	isHashInputPadding := r.main(ProgramIsHashInputPadding)
	isTablePadding := r.main(ProgramIsTablePadding)
	//
	// IndexInChunk counts up to the sponge rate; the inverse column
	// witnesses whether the chunk is complete.
	maxMinusIndexInChunk := r.constant(spongeRate - 1).Sub(indexInChunk)
	inverseEstablished := maxMinusIndexInChunk.Mul(maxMinusIndexInChunkInv).Sub(r.one())
	//
	return []SingleMonad{
		isHashInputPadding.Mul(isHashInputPadding.Sub(r.one())),
		isTablePadding.Mul(isTablePadding.Sub(r.one())),
		maxMinusIndexInChunk.Mul(inverseEstablished),
		maxMinusIndexInChunkInv.Mul(inverseEstablished),
	}
}

func (t ProgramTable) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, Program}
	//
	address := r.main(ProgramAddress)
	instruction := r.main(ProgramInstruction)
	lookupMultiplicity := r.main(ProgramLookupMultiplicity)
	indexInChunk := r.main(ProgramIndexInChunk)
	maxMinusIndexInChunkInv := r.main(ProgramMaxMinusIndexInChunkInv)
	isHashInputPadding := r.main(ProgramIsHashInputPadding)
	isTablePadding := r.main(ProgramIsTablePadding)
	nextAddress := r.nextMain(ProgramAddress)
	nextInstruction := r.nextMain(ProgramInstruction)
	nextIndexInChunk := r.nextMain(ProgramIndexInChunk)
	nextIsTablePadding := r.nextMain(ProgramIsTablePadding)
	lookupLogDerivative := r.aux(ProgramInstructionLookupServerLogDerivative)
	nextLookupLogDerivative := r.nextAux(ProgramInstructionLookupServerLogDerivative)
	prepareChunk := r.aux(ProgramPrepareChunkRunningEvaluation)
	nextPrepareChunk := r.nextAux(ProgramPrepareChunkRunningEvaluation)
	sendChunk := r.aux(ProgramSendChunkRunningEvaluation)
	nextSendChunk := r.nextAux(ProgramSendChunkRunningEvaluation)
	//
	// chunkContinues is 1 exactly if the current row does not complete a
	// chunk, by virtue of the inverse-or-zero consistency constraints.
	maxMinusIndexInChunk := r.constant(spongeRate - 1).Sub(indexInChunk)
	chunkContinues := maxMinusIndexInChunk.Mul(maxMinusIndexInChunkInv)
	chunkCompletes := r.one().Sub(chunkContinues)
	//
	// The instruction lookup's server log derivative accumulates the
	// current row's (address, instruction, next instruction) triple with
	// its multiplicity, until the hash input padding starts.
	compressedRow := r.challenge(ProgramAddressWeight).Mul(address).
		Add(r.challenge(ProgramInstructionWeight).Mul(instruction)).
		Add(r.challenge(ProgramNextInstructionWeight).Mul(nextInstruction))
	logDerivativeGains := nextLookupLogDerivative.Sub(lookupLogDerivative).
		Mul(r.challenge(InstructionLookupIndeterminate).Sub(compressedRow)).
		Sub(lookupMultiplicity)
	logDerivativeUpdates := r.one().Sub(isHashInputPadding).Mul(logDerivativeGains).
		Add(isHashInputPadding.Mul(nextLookupLogDerivative.Sub(lookupLogDerivative)))
	//
	// Within a chunk the prepare chunk running evaluation absorbs the
	// next instruction; at a chunk boundary it resets and absorbs it.
	prepareChunkAbsorbs := nextPrepareChunk.
		Sub(r.challenge(ProgramAttestationPrepareChunkIndeterminate).Mul(prepareChunk)).
		Sub(nextInstruction)
	prepareChunkResetsAndAbsorbs := nextPrepareChunk.
		Sub(r.challenge(ProgramAttestationPrepareChunkIndeterminate)).
		Sub(nextInstruction)
	prepareChunkUpdates := chunkContinues.Mul(prepareChunkAbsorbs).
		Add(chunkCompletes.Mul(prepareChunkResetsAndAbsorbs))
	//
	// Completed chunks are sent to the hash coprocessor.
	sendChunkAbsorbs := nextSendChunk.
		Sub(r.challenge(ProgramAttestationSendChunkIndeterminate).Mul(sendChunk)).
		Sub(prepareChunk)
	sendChunkUpdates := chunkCompletes.Mul(sendChunkAbsorbs).
		Add(chunkContinues.Mul(nextSendChunk.Sub(sendChunk)))
	//
	return []DualMonad{
		nextAddress.Sub(address).Sub(r.one()),
		isHashInputPadding.Mul(r.one().Sub(r.nextMain(ProgramIsHashInputPadding))),
		isTablePadding.Mul(r.one().Sub(nextIsTablePadding)),
		chunkContinues.Mul(nextIndexInChunk.Sub(indexInChunk).Sub(r.one())).
			Add(chunkCompletes.Mul(nextIndexInChunk)),
		logDerivativeUpdates,
		prepareChunkUpdates,
		sendChunkUpdates,
	}
}

func (t ProgramTable) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Program}
	//
	// The hash input padding must have started by the last row.
	return []SingleMonad{
		r.main(ProgramIsHashInputPadding).Sub(r.one()),
	}
}
