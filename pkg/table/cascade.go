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

// Cascade table main columns.
const (
	CascadeIsPadding uint = iota
	CascadeLookInHi
	CascadeLookInLo
	CascadeLookOutHi
	CascadeLookOutLo
	CascadeLookupMultiplicity
)

// Cascade table aux columns.
const (
	CascadeHashTableServerLogDerivative uint = iota
	CascadeLookupTableClientLogDerivative
)

var cascadeMainColumnNames = []string{
	"IsPadding",
	"LookInHi",
	"LookInLo",
	"LookOutHi",
	"LookOutLo",
	"LookupMultiplicity",
}

var cascadeAuxColumnNames = []string{
	"HashTableServerLogDerivative",
	"LookupTableClientLogDerivative",
}

// CascadeTable bridges the hash table's 16-bit S-box lookups and the lookup
// table's 8-bit S-box: each row splits one 16-bit lookup into its two 8-bit
// halves.
type CascadeTable struct{}

func (t CascadeTable) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Cascade}
	//
	return []SingleMonad{
		r.aux(CascadeHashTableServerLogDerivative),
		r.aux(CascadeLookupTableClientLogDerivative),
	}
}

func (t CascadeTable) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Cascade}
	//
	isPadding := r.main(CascadeIsPadding)
	//
	return []SingleMonad{
		isPadding.Mul(isPadding.Sub(r.one())),
	}
}

func (t CascadeTable) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, Cascade}
	//
	isPadding := r.main(CascadeIsPadding)
	nextIsPadding := r.nextMain(CascadeIsPadding)
	notPaddingNext := r.one().Sub(nextIsPadding)
	nextLookInHi := r.nextMain(CascadeLookInHi)
	nextLookInLo := r.nextMain(CascadeLookInLo)
	nextLookOutHi := r.nextMain(CascadeLookOutHi)
	nextLookOutLo := r.nextMain(CascadeLookOutLo)
	//
	// The hash table looks up full 16-bit values, recombined from the
	// 8-bit halves.
	hashServer := r.aux(CascadeHashTableServerLogDerivative)
	nextHashServer := r.nextAux(CascadeHashTableServerLogDerivative)
	lookIn := r.constant(1 << 8).Mul(nextLookInHi).Add(nextLookInLo)
	lookOut := r.constant(1 << 8).Mul(nextLookOutHi).Add(nextLookOutLo)
	compressedRow := r.challenge(HashCascadeLookInWeight).Mul(lookIn).
		Add(r.challenge(HashCascadeLookOutWeight).Mul(lookOut))
	hashServerGains := nextHashServer.Sub(hashServer).
		Mul(r.challenge(CascadeLookupIndeterminate).Sub(compressedRow)).
		Sub(r.nextMain(CascadeLookupMultiplicity))
	//
	// Both 8-bit halves are looked up in the lookup table.  Summing the
	// two reciprocals over a common denominator keeps the constraint
	// polynomial.
	lookupClient := r.aux(CascadeLookupTableClientLogDerivative)
	nextLookupClient := r.nextAux(CascadeLookupTableClientLogDerivative)
	hiFactor := r.challenge(LookupTableIndeterminate).
		Sub(r.challenge(LookupTableInputWeight).Mul(nextLookInHi)).
		Sub(r.challenge(LookupTableOutputWeight).Mul(nextLookOutHi))
	loFactor := r.challenge(LookupTableIndeterminate).
		Sub(r.challenge(LookupTableInputWeight).Mul(nextLookInLo)).
		Sub(r.challenge(LookupTableOutputWeight).Mul(nextLookOutLo))
	lookupClientGains := nextLookupClient.Sub(lookupClient).
		Mul(hiFactor).Mul(loFactor).
		Sub(hiFactor).Sub(loFactor)
	//
	return []DualMonad{
		isPadding.Mul(r.one().Sub(nextIsPadding)),
		notPaddingNext.Mul(hashServerGains).
			Add(nextIsPadding.Mul(nextHashServer.Sub(hashServer))),
		notPaddingNext.Mul(lookupClientGains).
			Add(nextIsPadding.Mul(nextLookupClient.Sub(lookupClient))),
	}
}

func (t CascadeTable) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	return nil
}
