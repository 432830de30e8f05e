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

// Lookup table main columns.
const (
	LookupIsPadding uint = iota
	LookupLookIn
	LookupLookOut
	LookupLookupMultiplicity
)

// Lookup table aux columns.
const (
	LookupCascadeTableServerLogDerivative uint = iota
	LookupPublicEvaluationArgument
)

var lookupMainColumnNames = []string{
	"IsPadding",
	"LookIn",
	"LookOut",
	"LookupMultiplicity",
}

var lookupAuxColumnNames = []string{
	"CascadeTableServerLogDerivative",
	"PublicEvaluationArgument",
}

// LookupTable holds the 8-bit S-box, one value per row.  The public
// evaluation argument commits to the whole S-box so that the verifier can
// check it against the publicly known table.
type LookupTable struct{}

func (t LookupTable) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Lookup}
	//
	return []SingleMonad{
		r.main(LookupLookIn),
		r.aux(LookupCascadeTableServerLogDerivative),
		r.aux(LookupPublicEvaluationArgument).Sub(r.one()),
	}
}

func (t LookupTable) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Lookup}
	//
	isPadding := r.main(LookupIsPadding)
	//
	return []SingleMonad{
		isPadding.Mul(isPadding.Sub(r.one())),
	}
}

func (t LookupTable) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, Lookup}
	//
	isPadding := r.main(LookupIsPadding)
	nextIsPadding := r.nextMain(LookupIsPadding)
	notPaddingNext := r.one().Sub(nextIsPadding)
	lookIn := r.main(LookupLookIn)
	nextLookIn := r.nextMain(LookupLookIn)
	nextLookOut := r.nextMain(LookupLookOut)
	//
	cascadeServer := r.aux(LookupCascadeTableServerLogDerivative)
	nextCascadeServer := r.nextAux(LookupCascadeTableServerLogDerivative)
	compressedRow := r.challenge(LookupTableInputWeight).Mul(nextLookIn).
		Add(r.challenge(LookupTableOutputWeight).Mul(nextLookOut))
	cascadeServerGains := nextCascadeServer.Sub(cascadeServer).
		Mul(r.challenge(LookupTableIndeterminate).Sub(compressedRow)).
		Sub(r.nextMain(LookupLookupMultiplicity))
	//
	publicEval := r.aux(LookupPublicEvaluationArgument)
	nextPublicEval := r.nextAux(LookupPublicEvaluationArgument)
	publicEvalAbsorbs := nextPublicEval.
		Sub(r.challenge(LookupTablePublicIndeterminate).Mul(publicEval)).
		Sub(nextLookOut)
	//
	return []DualMonad{
		isPadding.Mul(r.one().Sub(nextIsPadding)),
		notPaddingNext.Mul(nextLookIn.Sub(lookIn).Sub(r.one())),
		notPaddingNext.Mul(cascadeServerGains).
			Add(nextIsPadding.Mul(nextCascadeServer.Sub(cascadeServer))),
		notPaddingNext.Mul(publicEvalAbsorbs).
			Add(nextIsPadding.Mul(nextPublicEval.Sub(publicEval))),
	}
}

func (t LookupTable) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Lookup}
	//
	// The public S-box commitment matches the claimed terminal value.
	return []SingleMonad{
		r.aux(LookupPublicEvaluationArgument).Sub(r.challenge(LookupTablePublicTerminal)),
	}
}
