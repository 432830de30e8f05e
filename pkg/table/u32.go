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

// U32 table main columns.
const (
	U32CopyFlag uint = iota
	U32Bits
	U32BitsMinus33Inv
	U32CI
	U32LHS
	U32LhsInv
	U32RHS
	U32RhsInv
	U32Result
	U32LookupMultiplicity
)

// U32 table aux columns.
const (
	U32LookupServerLogDerivative uint = iota
)

var u32MainColumnNames = []string{
	"CopyFlag",
	"Bits",
	"BitsMinus33Inv",
	"CI",
	"LHS",
	"LhsInv",
	"RHS",
	"RhsInv",
	"Result",
	"LookupMultiplicity",
}

var u32AuxColumnNames = []string{
	"LookupServerLogDerivative",
}

// U32Table certifies 32-bit integer operations by binary decomposition: a
// section of rows halves the operands bit by bit, the section's first row
// (copy flag set) holding the operation the processor looked up.
type U32Table struct{}

func (t U32Table) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, U32}
	//
	return []SingleMonad{
		r.main(U32CopyFlag).Sub(r.one()),
		r.aux(U32LookupServerLogDerivative),
	}
}

func (t U32Table) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, U32}
	//
	copyFlag := r.main(U32CopyFlag)
	bits := r.main(U32Bits)
	bitsMinus33Inv := r.main(U32BitsMinus33Inv)
	lhs := r.main(U32LHS)
	lhsInv := r.main(U32LhsInv)
	rhs := r.main(U32RHS)
	rhsInv := r.main(U32RhsInv)
	//
	lhsInverseEstablished := lhs.Mul(lhsInv).Sub(r.one())
	rhsInverseEstablished := rhs.Mul(rhsInv).Sub(r.one())
	//
	return []SingleMonad{
		copyFlag.Mul(copyFlag.Sub(r.one())),
		// Sections never decompose past 32 bits.
		bits.Sub(r.constant(33)).Mul(bitsMinus33Inv).Sub(r.one()),
		copyFlag.Mul(bits),
		lhs.Mul(lhsInverseEstablished),
		lhsInv.Mul(lhsInverseEstablished),
		rhs.Mul(rhsInverseEstablished),
		rhsInv.Mul(rhsInverseEstablished),
	}
}

func (t U32Table) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, U32}
	//
	nextCopyFlag := r.nextMain(U32CopyFlag)
	sectionContinues := r.one().Sub(nextCopyFlag)
	bits := r.main(U32Bits)
	nextBits := r.nextMain(U32Bits)
	//
	// A section decomposes its operands one bit per row; the two
	// difference constraints force each halving step's carried-out bit to
	// be binary.
	lhs := r.main(U32LHS)
	nextLhs := r.nextMain(U32LHS)
	lhsStep := lhs.Sub(r.constant(2).Mul(nextLhs))
	rhs := r.main(U32RHS)
	nextRhs := r.nextMain(U32RHS)
	rhsStep := rhs.Sub(r.constant(2).Mul(nextRhs))
	//
	// Sections share one operation; the processor's lookup is served at
	// the section's first row.
	ci := r.main(U32CI)
	nextCi := r.nextMain(U32CI)
	server := r.aux(U32LookupServerLogDerivative)
	nextServer := r.nextAux(U32LookupServerLogDerivative)
	compressedRow := r.challenge(U32LhsWeight).Mul(nextLhs).
		Add(r.challenge(U32RhsWeight).Mul(nextRhs)).
		Add(r.challenge(U32CiWeight).Mul(nextCi)).
		Add(r.challenge(U32ResultWeight).Mul(r.nextMain(U32Result)))
	serverGains := nextServer.Sub(server).
		Mul(r.challenge(U32Indeterminate).Sub(compressedRow)).
		Sub(r.nextMain(U32LookupMultiplicity))
	//
	return []DualMonad{
		sectionContinues.Mul(nextBits.Sub(bits).Sub(r.one())),
		sectionContinues.Mul(nextCi.Sub(ci)),
		sectionContinues.Mul(lhsStep).Mul(lhsStep.Sub(r.one())),
		sectionContinues.Mul(rhsStep).Mul(rhsStep.Sub(r.one())),
		// A section only ends once both operands are decomposed.
		nextCopyFlag.Mul(lhs),
		nextCopyFlag.Mul(rhs),
		nextCopyFlag.Mul(serverGains).
			Add(sectionContinues.Mul(nextServer.Sub(server))),
	}
}

func (t U32Table) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, U32}
	//
	// The final section must have finished decomposing.
	return []SingleMonad{
		r.main(U32LHS),
		r.main(U32RHS),
	}
}
