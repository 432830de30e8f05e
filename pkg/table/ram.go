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

// RAM table main columns.
const (
	RamCLK uint = iota
	RamInstructionType
	RamPointer
	RamValue
	RamInverseOfRampDifference
	RamBezoutCoefficientPolynomialCoefficient0
	RamBezoutCoefficientPolynomialCoefficient1
)

// RAM table aux columns.
const (
	RamRunningProductOfRAMP uint = iota
	RamFormalDerivative
	RamBezoutCoefficient0
	RamBezoutCoefficient1
	RamRunningProductPermArg
	RamClockJumpDifferenceLookupClientLogDerivative
)

var ramMainColumnNames = []string{
	"CLK",
	"InstructionType",
	"RamPointer",
	"RamValue",
	"InverseOfRampDifference",
	"BezoutCoefficientPolynomialCoefficient0",
	"BezoutCoefficientPolynomialCoefficient1",
}

var ramAuxColumnNames = []string{
	"RunningProductOfRAMP",
	"FormalDerivative",
	"BezoutCoefficient0",
	"BezoutCoefficient1",
	"RunningProductPermArg",
	"ClockJumpDifferenceLookupClientLogDerivative",
}

// RamTable records random access memory operations, sorted by RAM pointer
// first and clock cycle second.  A Bézout argument establishes that the
// regions of equal pointer are in fact contiguous: the running product of
// all distinct pointers and its formal derivative must be coprime, which the
// Bézout coefficients witness.
type RamTable struct{}

func (t RamTable) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Ram}
	//
	runningProduct := r.aux(RamRunningProductOfRAMP)
	formalDerivative := r.aux(RamFormalDerivative)
	//
	// The running product has absorbed the first pointer already.
	firstFactor := r.challenge(RamIndeterminate).Sub(r.main(RamPointer))
	//
	return []SingleMonad{
		runningProduct.Sub(firstFactor),
		formalDerivative.Sub(r.one()),
		r.aux(RamBezoutCoefficient0).Sub(r.main(RamBezoutCoefficientPolynomialCoefficient0)),
		r.aux(RamBezoutCoefficient1).Sub(r.main(RamBezoutCoefficientPolynomialCoefficient1)),
		r.aux(RamRunningProductPermArg).Sub(r.one()),
		r.aux(RamClockJumpDifferenceLookupClientLogDerivative),
	}
}

func (t RamTable) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Ram}
	//
	instructionType := r.main(RamInstructionType)
	//
	return []SingleMonad{
		instructionType.Mul(instructionType.Sub(r.one())),
	}
}

func (t RamTable) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, Ram}
	//
	clk := r.main(RamCLK)
	nextClk := r.nextMain(RamCLK)
	pointer := r.main(RamPointer)
	nextPointer := r.nextMain(RamPointer)
	value := r.main(RamValue)
	nextValue := r.nextMain(RamValue)
	nextInstructionType := r.nextMain(RamInstructionType)
	inverseOfDifference := r.main(RamInverseOfRampDifference)
	//
	pointerDifference := nextPointer.Sub(pointer)
	inverseEstablished := inverseOfDifference.Mul(pointerDifference).Sub(r.one())
	// pointerChanges is 1 exactly if the next row starts a new pointer
	// region, by virtue of the two inverse-or-zero constraints below.
	pointerChanges := inverseOfDifference.Mul(pointerDifference)
	pointerUnchanged := r.one().Sub(pointerChanges)
	//
	// Each new pointer extends the running product and updates the
	// formal derivative by the product rule.
	runningProduct := r.aux(RamRunningProductOfRAMP)
	nextRunningProduct := r.nextAux(RamRunningProductOfRAMP)
	nextFactor := r.challenge(RamIndeterminate).Sub(nextPointer)
	runningProductExtends := nextRunningProduct.Sub(runningProduct.Mul(nextFactor))
	//
	formalDerivative := r.aux(RamFormalDerivative)
	nextFormalDerivative := r.nextAux(RamFormalDerivative)
	formalDerivativeUpdates := nextFormalDerivative.
		Sub(formalDerivative.Mul(nextFactor)).
		Sub(runningProduct)
	//
	// The Bézout coefficients evaluate their coefficient polynomials by
	// Horner's rule, one step per new pointer region.
	bezout0 := r.aux(RamBezoutCoefficient0)
	nextBezout0 := r.nextAux(RamBezoutCoefficient0)
	bezout0Updates := nextBezout0.
		Sub(r.challenge(RamIndeterminate).Mul(bezout0)).
		Sub(r.nextMain(RamBezoutCoefficientPolynomialCoefficient0))
	//
	bezout1 := r.aux(RamBezoutCoefficient1)
	nextBezout1 := r.nextAux(RamBezoutCoefficient1)
	bezout1Updates := nextBezout1.
		Sub(r.challenge(RamIndeterminate).Mul(bezout1)).
		Sub(r.nextMain(RamBezoutCoefficientPolynomialCoefficient1))
	//
	// Every row is multiplied into the running product of the permutation
	// argument with the processor.
	permArg := r.aux(RamRunningProductPermArg)
	nextPermArg := r.nextAux(RamRunningProductPermArg)
	compressedRow := r.challenge(RamClkWeight).Mul(nextClk).
		Add(r.challenge(RamPointerWeight).Mul(nextPointer)).
		Add(r.challenge(RamValueWeight).Mul(nextValue)).
		Add(r.challenge(RamInstructionTypeWeight).Mul(nextInstructionType))
	//
	// Clock jumps within a pointer region are looked up in the processor.
	cjdLookup := r.aux(RamClockJumpDifferenceLookupClientLogDerivative)
	nextCjdLookup := r.nextAux(RamClockJumpDifferenceLookupClientLogDerivative)
	cjdGains := nextCjdLookup.Sub(cjdLookup).
		Mul(r.challenge(ClockJumpDifferenceLookupIndeterminate).Sub(nextClk).Add(clk)).
		Sub(r.one())
	//
	return []DualMonad{
		inverseOfDifference.Mul(inverseEstablished),
		pointerDifference.Mul(inverseEstablished),
		pointerChanges.Mul(runningProductExtends).
			Add(pointerUnchanged.Mul(nextRunningProduct.Sub(runningProduct))),
		pointerChanges.Mul(formalDerivativeUpdates).
			Add(pointerUnchanged.Mul(nextFormalDerivative.Sub(formalDerivative))),
		pointerChanges.Mul(bezout0Updates).
			Add(pointerUnchanged.Mul(nextBezout0.Sub(bezout0))),
		pointerChanges.Mul(bezout1Updates).
			Add(pointerUnchanged.Mul(nextBezout1.Sub(bezout1))),
		pointerUnchanged.Mul(nextInstructionType).Mul(nextValue.Sub(value)),
		nextPermArg.Sub(permArg.Mul(r.challenge(RamIndeterminate).Sub(compressedRow))),
		pointerUnchanged.Mul(cjdGains).
			Add(pointerChanges.Mul(nextCjdLookup.Sub(cjdLookup))),
	}
}

func (t RamTable) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Ram}
	//
	// The Bézout relation: the running product and its formal derivative
	// are coprime, hence all pointer regions are contiguous.
	bezoutRelation := r.aux(RamBezoutCoefficient0).Mul(r.aux(RamRunningProductOfRAMP)).
		Add(r.aux(RamBezoutCoefficient1).Mul(r.aux(RamFormalDerivative))).
		Sub(r.one())
	//
	return []SingleMonad{bezoutRelation}
}
