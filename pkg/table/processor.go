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

// Processor table main columns.
const (
	ProcessorCLK uint = iota
	ProcessorIsPadding
	ProcessorIP
	ProcessorCI
	ProcessorNIA
	ProcessorIB0
	ProcessorIB1
	ProcessorIB2
	ProcessorIB3
	ProcessorIB4
	ProcessorIB5
	ProcessorIB6
	ProcessorJSP
	ProcessorJSO
	ProcessorJSD
	ProcessorST0
	ProcessorST1
	ProcessorST2
	ProcessorST3
	ProcessorST4
	ProcessorST5
	ProcessorST6
	ProcessorST7
	ProcessorST8
	ProcessorST9
	ProcessorST10
	ProcessorST11
	ProcessorST12
	ProcessorST13
	ProcessorST14
	ProcessorST15
	ProcessorOpStackPointer
	ProcessorHV0
	ProcessorHV1
	ProcessorHV2
	ProcessorHV3
	ProcessorHV4
	ProcessorHV5
	ProcessorClockJumpDifferenceLookupMultiplicity
)

// Processor table aux columns.
const (
	ProcessorInputTableEvalArg uint = iota
	ProcessorOutputTableEvalArg
	ProcessorInstructionLookupClientLogDerivative
	ProcessorOpStackTablePermArg
	ProcessorRamTablePermArg
	ProcessorJumpStackTablePermArg
	ProcessorHashInputEvalArg
	ProcessorHashDigestEvalArg
	ProcessorSpongeEvalArg
	ProcessorU32LookupClientLogDerivative
	ProcessorClockJumpDifferenceLookupServerLogDerivative
)

// Number of op stack registers held in the processor directly.
const numStackRegisters = 16

// Initial op stack pointer: the stack starts out holding exactly the 16
// in-processor registers.
const initialOpStackPointer = numStackRegisters

var processorMainColumnNames = []string{
	"CLK", "IsPadding", "IP", "CI", "NIA",
	"IB0", "IB1", "IB2", "IB3", "IB4", "IB5", "IB6",
	"JSP", "JSO", "JSD",
	"ST0", "ST1", "ST2", "ST3", "ST4", "ST5", "ST6", "ST7",
	"ST8", "ST9", "ST10", "ST11", "ST12", "ST13", "ST14", "ST15",
	"OpStackPointer",
	"HV0", "HV1", "HV2", "HV3", "HV4", "HV5",
	"ClockJumpDifferenceLookupMultiplicity",
}

var processorAuxColumnNames = []string{
	"InputTableEvalArg",
	"OutputTableEvalArg",
	"InstructionLookupClientLogDerivative",
	"OpStackTablePermArg",
	"RamTablePermArg",
	"JumpStackTablePermArg",
	"HashInputEvalArg",
	"HashDigestEvalArg",
	"SpongeEvalArg",
	"U32LookupClientLogDerivative",
	"ClockJumpDifferenceLookupServerLogDerivative",
}

// ProcessorTable records the register state of every clock cycle.  It is the
// client of almost every argument: it looks up instructions in the program
// table, delegates memory to the op stack, RAM and jump stack tables, and
// delegates hashing and u32 operations to their coprocessor tables.
type ProcessorTable struct{}

func (t ProcessorTable) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Processor}
	//
	constraints := []SingleMonad{
		r.main(ProcessorCLK),
		r.main(ProcessorIsPadding),
		r.main(ProcessorIP),
		r.main(ProcessorJSP),
		r.main(ProcessorJSO),
		r.main(ProcessorJSD),
		r.main(ProcessorOpStackPointer).Sub(r.constant(initialOpStackPointer)),
	}
	// Permutation and evaluation arguments start at one, log derivatives
	// at zero.
	for _, col := range []uint{
		ProcessorInputTableEvalArg,
		ProcessorOutputTableEvalArg,
		ProcessorOpStackTablePermArg,
		ProcessorRamTablePermArg,
		ProcessorJumpStackTablePermArg,
		ProcessorHashInputEvalArg,
		ProcessorHashDigestEvalArg,
		ProcessorSpongeEvalArg,
	} {
		constraints = append(constraints, r.aux(col).Sub(r.one()))
	}
	//
	for _, col := range []uint{
		ProcessorInstructionLookupClientLogDerivative,
		ProcessorU32LookupClientLogDerivative,
		ProcessorClockJumpDifferenceLookupServerLogDerivative,
	} {
		constraints = append(constraints, r.aux(col))
	}
	//
	return constraints
}

func (t ProcessorTable) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Processor}
	//
	isPadding := r.main(ProcessorIsPadding)
	constraints := []SingleMonad{
		isPadding.Mul(isPadding.Sub(r.one())),
	}
	// The instruction buckets are bits and recombine to the current
	// instruction's opcode.
	recombination := r.main(ProcessorCI)
	//
	for i := uint(0); i < 7; i++ {
		bucket := r.main(ProcessorIB0 + i)
		constraints = append(constraints, bucket.Mul(bucket.Sub(r.one())))
		recombination = recombination.Sub(r.constant(1 << i).Mul(bucket))
	}
	//
	return append(constraints, recombination)
}

func (t ProcessorTable) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, Processor}
	//
	clk := r.main(ProcessorCLK)
	nextClk := r.nextMain(ProcessorCLK)
	isPadding := r.main(ProcessorIsPadding)
	nextIsPadding := r.nextMain(ProcessorIsPadding)
	notPaddingNext := r.one().Sub(nextIsPadding)
	//
	constraints := []DualMonad{
		nextClk.Sub(clk).Sub(r.one()),
		isPadding.Mul(r.one().Sub(nextIsPadding)),
	}
	//
	// Each cycle looks up the instruction at the current instruction
	// pointer in the program table, unless the cycle is padding.
	instructionLookup := r.aux(ProcessorInstructionLookupClientLogDerivative)
	nextInstructionLookup := r.nextAux(ProcessorInstructionLookupClientLogDerivative)
	compressedInstruction := r.challenge(ProgramAddressWeight).Mul(r.nextMain(ProcessorIP)).
		Add(r.challenge(ProgramInstructionWeight).Mul(r.nextMain(ProcessorCI))).
		Add(r.challenge(ProgramNextInstructionWeight).Mul(r.nextMain(ProcessorNIA)))
	instructionLookupGains := nextInstructionLookup.Sub(instructionLookup).
		Mul(r.challenge(InstructionLookupIndeterminate).Sub(compressedInstruction)).
		Sub(r.one())
	constraints = append(constraints,
		notPaddingNext.Mul(instructionLookupGains).
			Add(nextIsPadding.Mul(nextInstructionLookup.Sub(instructionLookup))))
	//
	// Op stack, RAM and jump stack clients: each multiplies the next
	// row's compressed memory access into its running product, unless the
	// next row is padding.
	memoryClients := []struct {
		arg           uint
		indeterminate uint
		compressed    DualMonad
	}{
		{ProcessorOpStackTablePermArg, OpStackIndeterminate,
			r.challenge(OpStackClkWeight).Mul(nextClk).
				Add(r.challenge(OpStackIb1Weight).Mul(r.nextMain(ProcessorIB1))).
				Add(r.challenge(OpStackPointerWeight).Mul(r.nextMain(ProcessorOpStackPointer))).
				Add(r.challenge(OpStackFirstUnderflowElementWeight).Mul(r.nextMain(ProcessorST15)))},
		{ProcessorRamTablePermArg, RamIndeterminate,
			r.challenge(RamClkWeight).Mul(nextClk).
				Add(r.challenge(RamPointerWeight).Mul(r.nextMain(ProcessorST0))).
				Add(r.challenge(RamValueWeight).Mul(r.nextMain(ProcessorST1))).
				Add(r.challenge(RamInstructionTypeWeight).Mul(r.nextMain(ProcessorIB2)))},
		{ProcessorJumpStackTablePermArg, JumpStackIndeterminate,
			r.challenge(JumpStackClkWeight).Mul(nextClk).
				Add(r.challenge(JumpStackCiWeight).Mul(r.nextMain(ProcessorCI))).
				Add(r.challenge(JumpStackJspWeight).Mul(r.nextMain(ProcessorJSP))).
				Add(r.challenge(JumpStackJsoWeight).Mul(r.nextMain(ProcessorJSO))).
				Add(r.challenge(JumpStackJsdWeight).Mul(r.nextMain(ProcessorJSD)))},
	}
	//
	for _, client := range memoryClients {
		arg := r.aux(client.arg)
		nextArg := r.nextAux(client.arg)
		absorbs := nextArg.Sub(arg.Mul(r.challenge(client.indeterminate).Sub(client.compressed)))
		constraints = append(constraints,
			notPaddingNext.Mul(absorbs).Add(nextIsPadding.Mul(nextArg.Sub(arg))))
	}
	//
	// Reading standard input pushes the read element; the input running
	// evaluation absorbs it.  Writing standard output emits the current
	// top of stack.  The instruction buckets gate both.
	readGate := r.main(ProcessorIB0)
	inputArg := r.aux(ProcessorInputTableEvalArg)
	nextInputArg := r.nextAux(ProcessorInputTableEvalArg)
	inputAbsorbs := nextInputArg.
		Sub(r.challenge(StandardInputIndeterminate).Mul(inputArg)).
		Sub(r.nextMain(ProcessorST0))
	constraints = append(constraints,
		readGate.Mul(inputAbsorbs).
			Add(r.one().Sub(readGate).Mul(nextInputArg.Sub(inputArg))))
	//
	writeGate := r.main(ProcessorIB1)
	outputArg := r.aux(ProcessorOutputTableEvalArg)
	nextOutputArg := r.nextAux(ProcessorOutputTableEvalArg)
	outputAbsorbs := nextOutputArg.
		Sub(r.challenge(StandardOutputIndeterminate).Mul(outputArg)).
		Sub(r.main(ProcessorST0))
	constraints = append(constraints,
		writeGate.Mul(outputAbsorbs).
			Add(r.one().Sub(writeGate).Mul(nextOutputArg.Sub(outputArg))))
	//
	// Hashing absorbs the top ten stack registers; the digest lands in
	// the top five registers of the next row.
	hashGate := r.main(ProcessorIB3)
	hashInput := r.aux(ProcessorHashInputEvalArg)
	nextHashInput := r.nextAux(ProcessorHashInputEvalArg)
	hashInputAbsorbs := nextHashInput.Sub(r.challenge(HashInputIndeterminate).Mul(hashInput))
	//
	for i := uint(0); i < spongeRate; i++ {
		hashInputAbsorbs = hashInputAbsorbs.
			Sub(r.challenge(StackWeight0 + i).Mul(r.main(ProcessorST0 + i)))
	}
	//
	constraints = append(constraints,
		hashGate.Mul(hashInputAbsorbs).
			Add(r.one().Sub(hashGate).Mul(nextHashInput.Sub(hashInput))))
	//
	digestGate := r.main(ProcessorIB4)
	hashDigest := r.aux(ProcessorHashDigestEvalArg)
	nextHashDigest := r.nextAux(ProcessorHashDigestEvalArg)
	hashDigestAbsorbs := nextHashDigest.Sub(r.challenge(HashDigestIndeterminate).Mul(hashDigest))
	//
	for i := uint(0); i < 5; i++ {
		hashDigestAbsorbs = hashDigestAbsorbs.
			Sub(r.challenge(StackWeight0 + i).Mul(r.nextMain(ProcessorST0 + i)))
	}
	//
	constraints = append(constraints,
		digestGate.Mul(hashDigestAbsorbs).
			Add(r.one().Sub(digestGate).Mul(nextHashDigest.Sub(hashDigest))))
	//
	spongeGate := r.main(ProcessorIB5)
	sponge := r.aux(ProcessorSpongeEvalArg)
	nextSponge := r.nextAux(ProcessorSpongeEvalArg)
	spongeAbsorbs := nextSponge.Sub(r.challenge(SpongeIndeterminate).Mul(sponge))
	//
	for i := uint(0); i < spongeRate; i++ {
		spongeAbsorbs = spongeAbsorbs.
			Sub(r.challenge(StackWeight0 + i).Mul(r.main(ProcessorST0 + i)))
	}
	//
	constraints = append(constraints,
		spongeGate.Mul(spongeAbsorbs).
			Add(r.one().Sub(spongeGate).Mul(nextSponge.Sub(sponge))))
	//
	// U32 instructions look up their operands and result in the u32
	// coprocessor table.
	u32Gate := r.main(ProcessorIB6)
	u32Lookup := r.aux(ProcessorU32LookupClientLogDerivative)
	nextU32Lookup := r.nextAux(ProcessorU32LookupClientLogDerivative)
	compressedU32 := r.challenge(U32LhsWeight).Mul(r.main(ProcessorST0)).
		Add(r.challenge(U32RhsWeight).Mul(r.main(ProcessorST1))).
		Add(r.challenge(U32CiWeight).Mul(r.main(ProcessorCI))).
		Add(r.challenge(U32ResultWeight).Mul(r.nextMain(ProcessorST0)))
	u32Gains := nextU32Lookup.Sub(u32Lookup).
		Mul(r.challenge(U32Indeterminate).Sub(compressedU32)).
		Sub(r.one())
	constraints = append(constraints,
		u32Gate.Mul(u32Gains).
			Add(r.one().Sub(u32Gate).Mul(nextU32Lookup.Sub(u32Lookup))))
	//
	// The processor serves clock jump difference lookups with its own
	// clock values.
	cjdServer := r.aux(ProcessorClockJumpDifferenceLookupServerLogDerivative)
	nextCjdServer := r.nextAux(ProcessorClockJumpDifferenceLookupServerLogDerivative)
	constraints = append(constraints,
		nextCjdServer.Sub(cjdServer).
			Mul(r.challenge(ClockJumpDifferenceLookupIndeterminate).Sub(nextClk)).
			Sub(r.nextMain(ProcessorClockJumpDifferenceLookupMultiplicity)))
	//
	return constraints
}

func (t ProcessorTable) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Processor}
	//
	// halt's opcode is zero.
	return []SingleMonad{
		r.main(ProcessorCI),
	}
}
