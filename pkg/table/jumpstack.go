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

// Jump stack table main columns.
const (
	JumpStackCLK uint = iota
	JumpStackCI
	JumpStackJSP
	JumpStackJSO
	JumpStackJSD
)

// Jump stack table aux columns.
const (
	JumpStackRunningProductPermArg uint = iota
	JumpStackClockJumpDifferenceLookupClientLogDerivative
)

var jumpStackMainColumnNames = []string{
	"CLK",
	"CI",
	"JSP",
	"JSO",
	"JSD",
}

var jumpStackAuxColumnNames = []string{
	"RunningProductPermArg",
	"ClockJumpDifferenceLookupClientLogDerivative",
}

// JumpStackTable records the call stack, sorted by jump stack pointer first
// and clock cycle second.
type JumpStackTable struct{}

func (t JumpStackTable) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, JumpStack}
	//
	return []SingleMonad{
		r.main(JumpStackCLK),
		r.main(JumpStackJSP),
		r.main(JumpStackJSO),
		r.main(JumpStackJSD),
		r.aux(JumpStackRunningProductPermArg).Sub(r.one()),
		r.aux(JumpStackClockJumpDifferenceLookupClientLogDerivative),
	}
}

func (t JumpStackTable) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	return nil
}

func (t JumpStackTable) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, JumpStack}
	//
	clk := r.main(JumpStackCLK)
	nextClk := r.nextMain(JumpStackCLK)
	pointer := r.main(JumpStackJSP)
	nextPointer := r.nextMain(JumpStackJSP)
	permArg := r.aux(JumpStackRunningProductPermArg)
	nextPermArg := r.nextAux(JumpStackRunningProductPermArg)
	cjdLookup := r.aux(JumpStackClockJumpDifferenceLookupClientLogDerivative)
	nextCjdLookup := r.nextAux(JumpStackClockJumpDifferenceLookupClientLogDerivative)
	//
	// pointerGrows is 1 or 0 by the first constraint below.
	pointerGrows := nextPointer.Sub(pointer)
	pointerStays := r.one().Sub(pointerGrows)
	//
	cjdGains := nextCjdLookup.Sub(cjdLookup).
		Mul(r.challenge(ClockJumpDifferenceLookupIndeterminate).Sub(nextClk).Add(clk)).
		Sub(r.one())
	//
	compressedRow := r.challenge(JumpStackClkWeight).Mul(nextClk).
		Add(r.challenge(JumpStackCiWeight).Mul(r.nextMain(JumpStackCI))).
		Add(r.challenge(JumpStackJspWeight).Mul(nextPointer)).
		Add(r.challenge(JumpStackJsoWeight).Mul(r.nextMain(JumpStackJSO))).
		Add(r.challenge(JumpStackJsdWeight).Mul(r.nextMain(JumpStackJSD)))
	//
	return []DualMonad{
		pointerGrows.Mul(pointerGrows.Sub(r.one())),
		pointerStays.Mul(cjdGains).
			Add(pointerGrows.Mul(nextCjdLookup.Sub(cjdLookup))),
		nextPermArg.Sub(permArg.Mul(r.challenge(JumpStackIndeterminate).Sub(compressedRow))),
	}
}

func (t JumpStackTable) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	return nil
}
