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

// GrandCrossTableArgument ties the tables together: the terminal values of
// each argument's client and server columns must agree, and the arguments
// touching public data must agree with the claim-derived terminal
// challenges.  It contributes terminal constraints only.
type GrandCrossTableArgument struct{}

func (t GrandCrossTableArgument) InitialConstraints(b *SingleBuilder) []SingleMonad {
	return nil
}

func (t GrandCrossTableArgument) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	return nil
}

func (t GrandCrossTableArgument) TransitionConstraints(b *DualBuilder) []DualMonad {
	return nil
}

func (t GrandCrossTableArgument) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	aux := func(id TableID, col uint) SingleMonad {
		return b.Input(circuit.Aux(AuxIndex(id, col)))
	}
	//
	processorInput := aux(Processor, ProcessorInputTableEvalArg)
	processorOutput := aux(Processor, ProcessorOutputTableEvalArg)
	//
	instructionLookup := aux(Processor, ProcessorInstructionLookupClientLogDerivative).
		Sub(aux(Program, ProgramInstructionLookupServerLogDerivative))
	//
	opStackPermArg := aux(Processor, ProcessorOpStackTablePermArg).
		Sub(aux(OpStack, OpStackRunningProductPermArg))
	ramPermArg := aux(Processor, ProcessorRamTablePermArg).
		Sub(aux(Ram, RamRunningProductPermArg))
	jumpStackPermArg := aux(Processor, ProcessorJumpStackTablePermArg).
		Sub(aux(JumpStack, JumpStackRunningProductPermArg))
	//
	hashInput := aux(Processor, ProcessorHashInputEvalArg).
		Sub(aux(Hash, HashInputRunningEvaluation))
	hashDigest := aux(Processor, ProcessorHashDigestEvalArg).
		Sub(aux(Hash, HashDigestRunningEvaluation))
	sponge := aux(Processor, ProcessorSpongeEvalArg).
		Sub(aux(Hash, HashSpongeRunningEvaluation))
	//
	programAttestation := aux(Program, ProgramSendChunkRunningEvaluation).
		Sub(aux(Hash, HashReceiveChunkRunningEvaluation))
	//
	hashCascadeClients := aux(Cascade, CascadeHashTableServerLogDerivative)
	//
	for i := uint(0); i < 4; i++ {
		for limb := uint(0); limb < 4; limb++ {
			hashCascadeClients = hashCascadeClients.Sub(aux(Hash, HashCascadeClient(i, limb)))
		}
	}
	//
	cascadeLookup := aux(Cascade, CascadeLookupTableClientLogDerivative).
		Sub(aux(Lookup, LookupCascadeTableServerLogDerivative))
	//
	u32Lookup := aux(Processor, ProcessorU32LookupClientLogDerivative).
		Sub(aux(U32, U32LookupServerLogDerivative))
	//
	clockJumpDifferences := aux(Processor, ProcessorClockJumpDifferenceLookupServerLogDerivative).
		Sub(aux(OpStack, OpStackClockJumpDifferenceLookupClientLogDerivative)).
		Sub(aux(Ram, RamClockJumpDifferenceLookupClientLogDerivative)).
		Sub(aux(JumpStack, JumpStackClockJumpDifferenceLookupClientLogDerivative))
	//
	return []SingleMonad{
		processorInput.Sub(b.Challenge(StandardInputTerminal)),
		processorOutput.Sub(b.Challenge(StandardOutputTerminal)),
		instructionLookup,
		opStackPermArg,
		ramPermArg,
		jumpStackPermArg,
		hashInput,
		hashDigest,
		sponge,
		programAttestation,
		hashCascadeClients,
		cascadeLookup,
		u32Lookup,
		clockJumpDifferences,
	}
}
