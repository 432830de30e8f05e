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

// Op stack table main columns.
const (
	OpStackCLK uint = iota
	OpStackIB1ShrinkStack
	OpStackStackPointer
	OpStackFirstUnderflowElement
)

// Op stack table aux columns.
const (
	OpStackRunningProductPermArg uint = iota
	OpStackClockJumpDifferenceLookupClientLogDerivative
)

var opStackMainColumnNames = []string{
	"CLK",
	"IB1ShrinkStack",
	"StackPointer",
	"FirstUnderflowElement",
}

var opStackAuxColumnNames = []string{
	"RunningProductPermArg",
	"ClockJumpDifferenceLookupClientLogDerivative",
}

// OpStackTable records accesses to the op stack's underflow memory, sorted
// by stack pointer first and clock cycle second.
type OpStackTable struct{}

func (t OpStackTable) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, OpStack}
	//
	return []SingleMonad{
		r.main(OpStackCLK),
		r.main(OpStackStackPointer).Sub(r.constant(initialOpStackPointer)),
		r.aux(OpStackRunningProductPermArg).Sub(r.one()),
		r.aux(OpStackClockJumpDifferenceLookupClientLogDerivative),
	}
}

func (t OpStackTable) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, OpStack}
	//
	shrinkStack := r.main(OpStackIB1ShrinkStack)
	//
	return []SingleMonad{
		shrinkStack.Mul(shrinkStack.Sub(r.one())),
	}
}

func (t OpStackTable) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, OpStack}
	//
	clk := r.main(OpStackCLK)
	nextClk := r.nextMain(OpStackCLK)
	pointer := r.main(OpStackStackPointer)
	nextPointer := r.nextMain(OpStackStackPointer)
	underflow := r.main(OpStackFirstUnderflowElement)
	nextUnderflow := r.nextMain(OpStackFirstUnderflowElement)
	nextShrinkStack := r.nextMain(OpStackIB1ShrinkStack)
	permArg := r.aux(OpStackRunningProductPermArg)
	nextPermArg := r.nextAux(OpStackRunningProductPermArg)
	cjdLookup := r.aux(OpStackClockJumpDifferenceLookupClientLogDerivative)
	nextCjdLookup := r.nextAux(OpStackClockJumpDifferenceLookupClientLogDerivative)
	//
	// pointerGrows is 1 or 0 by the first constraint below.
	pointerGrows := nextPointer.Sub(pointer)
	pointerStays := r.one().Sub(pointerGrows)
	//
	// Within a region of constant stack pointer, the clock jumps between
	// consecutive accesses are looked up in the processor.
	cjdGains := nextCjdLookup.Sub(cjdLookup).
		Mul(r.challenge(ClockJumpDifferenceLookupIndeterminate).Sub(nextClk).Add(clk)).
		Sub(r.one())
	//
	// Every row is multiplied into the running product of the permutation
	// argument with the processor.
	compressedRow := r.challenge(OpStackClkWeight).Mul(nextClk).
		Add(r.challenge(OpStackIb1Weight).Mul(nextShrinkStack)).
		Add(r.challenge(OpStackPointerWeight).Mul(nextPointer)).
		Add(r.challenge(OpStackFirstUnderflowElementWeight).Mul(nextUnderflow))
	//
	return []DualMonad{
		pointerGrows.Mul(pointerGrows.Sub(r.one())),
		pointerStays.Mul(cjdGains).
			Add(pointerGrows.Mul(nextCjdLookup.Sub(cjdLookup))),
		pointerStays.Mul(r.one().Sub(nextShrinkStack)).Mul(nextUnderflow.Sub(underflow)),
		nextPermArg.Sub(permArg.Mul(r.challenge(OpStackIndeterminate).Sub(compressedRow))),
	}
}

func (t OpStackTable) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	return nil
}
