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

// Rounds of the hash permutation.  The round number column counts from 0 to
// numHashRounds inclusive, the final value marking a completed permutation.
const numHashRounds = 5

// Hash table main columns.  The first four state elements are stored as four
// 16-bit limbs each, before (LkIn) and after (LkOut) the split-and-lookup
// S-box, so that the cascade table can certify the lookups limb by limb.
const (
	HashMode uint = iota
	HashCI
	HashRoundNumber
	// 16 columns: state i's limb j at hashStateLkInBase + 4*i + j, limbs
	// ordered highest to lowest.
	hashStateLkInBase
	// 16 columns, laid out like the LkIn block.
	hashStateLkOutBase = hashStateLkInBase + 16
	// States 4 through 15 are not split into limbs.
	hashStateFullBase = hashStateLkOutBase + 16
	// 4 columns: inverse helpers for states 0 through 3.
	hashStateInvBase = hashStateFullBase + 12
	// 16 columns: the round constants.
	hashConstantBase = hashStateInvBase + 4
)

// Hash table modes.
const (
	hashModeProgramHashing uint64 = iota + 1
	hashModeSponge
	hashModeHash
)

// Hash table aux columns.
const (
	HashReceiveChunkRunningEvaluation uint = iota
	HashInputRunningEvaluation
	HashDigestRunningEvaluation
	HashSpongeRunningEvaluation
	// 16 columns: state i's limb j client log derivative against the
	// cascade table, at hashCascadeClientBase + 4*i + j.
	hashCascadeClientBase
)

// HashStateLkIn returns the main column of state element i's limb j before
// the S-box lookup.
func HashStateLkIn(state, limb uint) uint {
	return hashStateLkInBase + 4*state + limb
}

// HashStateLkOut returns the main column of state element i's limb j after
// the S-box lookup.
func HashStateLkOut(state, limb uint) uint {
	return hashStateLkOutBase + 4*state + limb
}

// HashStateFull returns the main column of state element i, for i in 4..16.
func HashStateFull(state uint) uint {
	return hashStateFullBase + state - 4
}

// HashCascadeClient returns the aux column of the cascade client log
// derivative for state element i's limb j.
func HashCascadeClient(state, limb uint) uint {
	return hashCascadeClientBase + 4*state + limb
}

// HashTable records the sponge coprocessor's permutations: program
// attestation chunks, explicit hash instructions and sponge instructions all
// funnel through it.  Its round number and chunk absorption constraints are
// the highest-degree constraints of the whole system.
type HashTable struct{}

func (t HashTable) InitialConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Hash}
	//
	return []SingleMonad{
		r.main(HashRoundNumber),
		r.main(HashMode).Sub(r.constant(hashModeProgramHashing)),
		r.aux(HashReceiveChunkRunningEvaluation).Sub(r.one()),
		r.aux(HashInputRunningEvaluation).Sub(r.one()),
		r.aux(HashDigestRunningEvaluation).Sub(r.one()),
		r.aux(HashSpongeRunningEvaluation).Sub(r.one()),
	}
}

func (t HashTable) ConsistencyConstraints(b *SingleBuilder) []SingleMonad {
	r := singleRow{b, Hash}
	//
	// The mode is one of program hashing, sponge or hash, or zero on
	// padding rows.
	mode := r.main(HashMode)
	modeInDomain := mode
	//
	for m := hashModeProgramHashing; m <= hashModeHash; m++ {
		modeInDomain = modeInDomain.Mul(mode.Sub(r.constant(m)))
	}
	//
	// The round number ranges over 0 to numHashRounds inclusive.
	roundNumber := r.main(HashRoundNumber)
	roundNumberInDomain := roundNumber
	//
	for n := uint64(1); n <= numHashRounds; n++ {
		roundNumberInDomain = roundNumberInDomain.Mul(roundNumber.Sub(r.constant(n)))
	}
	//
	return []SingleMonad{modeInDomain, roundNumberInDomain}
}

func (t HashTable) TransitionConstraints(b *DualBuilder) []DualMonad {
	r := dualRow{b, Hash}
	//
	mode := r.main(HashMode)
	nextMode := r.nextMain(HashMode)
	roundNumber := r.main(HashRoundNumber)
	nextRoundNumber := r.nextMain(HashRoundNumber)
	//
	constraints := []DualMonad{
		// The round number increments, or the next row starts a fresh
		// permutation.
		nextRoundNumber.Sub(roundNumber).Sub(r.one()).Mul(nextRoundNumber),
		// The mode only changes at the start of a fresh permutation.
		nextMode.Sub(mode).Mul(nextRoundNumber),
	}
	//
	// nextStartsPermutation is non-zero exactly if the next row's round
	// number is zero.
	nextStartsPermutation := r.one()
	//
	for n := uint64(1); n <= numHashRounds; n++ {
		nextStartsPermutation = nextStartsPermutation.Mul(nextRoundNumber.Sub(r.constant(n)))
	}
	// nextEndsPermutation is non-zero exactly if the next row's round
	// number is numHashRounds.
	nextEndsPermutation := r.one()
	//
	for n := uint64(0); n < numHashRounds; n++ {
		nextEndsPermutation = nextEndsPermutation.Mul(nextRoundNumber.Sub(r.constant(n)))
	}
	//
	// Recombine the limb-decomposed state elements of the next row.
	rate := make([]DualMonad, spongeRate)
	//
	for i := uint(0); i < 4; i++ {
		state := r.nextMain(HashStateLkIn(i, 0))
		//
		for limb := uint(1); limb < 4; limb++ {
			state = state.Mul(r.constant(1 << 16)).Add(r.nextMain(HashStateLkIn(i, limb)))
		}
		//
		rate[i] = state
	}
	//
	for i := uint(4); i < spongeRate; i++ {
		rate[i] = r.nextMain(HashStateFull(i))
	}
	//
	// A fresh permutation in program hashing mode receives a chunk of the
	// program: the receive chunk running evaluation absorbs the rate part
	// of the next row's state.
	receiveChunk := r.aux(HashReceiveChunkRunningEvaluation)
	nextReceiveChunk := r.nextAux(HashReceiveChunkRunningEvaluation)
	receiveChunkAbsorbs := nextReceiveChunk.
		Sub(r.challenge(ProgramAttestationSendChunkIndeterminate).Mul(receiveChunk))
	//
	for i := uint(0); i < spongeRate; i++ {
		receiveChunkAbsorbs = receiveChunkAbsorbs.
			Sub(r.challenge(StackWeight0 + i).Mul(rate[i]))
	}
	//
	programHashingMode := nextMode.Sub(r.constant(hashModeSponge)).
		Mul(nextMode.Sub(r.constant(hashModeHash))).
		Mul(nextMode)
	constraints = append(constraints,
		nextStartsPermutation.Mul(programHashingMode).Mul(receiveChunkAbsorbs))
	//
	// A completed permutation in hash mode emits its digest: the digest
	// running evaluation absorbs the top five state elements.
	digest := r.aux(HashDigestRunningEvaluation)
	nextDigest := r.nextAux(HashDigestRunningEvaluation)
	digestAbsorbs := nextDigest.
		Sub(r.challenge(HashDigestIndeterminate).Mul(digest))
	//
	for i := uint(0); i < 5; i++ {
		digestAbsorbs = digestAbsorbs.Sub(r.challenge(StackWeight0 + i).Mul(rate[i]))
	}
	//
	hashMode := nextMode.Sub(r.constant(hashModeProgramHashing)).
		Mul(nextMode.Sub(r.constant(hashModeSponge))).
		Mul(nextMode)
	constraints = append(constraints,
		nextEndsPermutation.Mul(hashMode).Mul(digestAbsorbs))
	//
	// Once the mode leaves program hashing, the completed permutation's
	// digest, compressed into a single element, must match the digest the
	// claim is about.
	compressedDigest := r.main(HashStateFull(4))
	//
	for i := uint(0); i < 4; i++ {
		state := r.main(HashStateLkIn(3-i, 0))
		//
		for limb := uint(1); limb < 4; limb++ {
			state = state.Mul(r.constant(1 << 16)).Add(r.main(HashStateLkIn(3-i, limb)))
		}
		//
		compressedDigest = compressedDigest.
			Mul(r.challenge(CompressProgramDigestIndeterminate)).Add(state)
	}
	//
	currentProgramHashing := mode.Sub(r.constant(hashModeSponge)).
		Mul(mode.Sub(r.constant(hashModeHash))).
		Mul(mode)
	constraints = append(constraints,
		currentProgramHashing.
			Mul(nextMode.Sub(r.constant(hashModeProgramHashing))).
			Mul(compressedDigest.Sub(r.challenge(CompressedProgramDigest))))
	//
	// Every S-box lookup of the next row is certified by the cascade
	// table, one log derivative per 16-bit limb.
	for i := uint(0); i < 4; i++ {
		for limb := uint(0); limb < 4; limb++ {
			client := r.aux(HashCascadeClient(i, limb))
			nextClient := r.nextAux(HashCascadeClient(i, limb))
			compressed := r.challenge(HashCascadeLookInWeight).Mul(r.nextMain(HashStateLkIn(i, limb))).
				Add(r.challenge(HashCascadeLookOutWeight).Mul(r.nextMain(HashStateLkOut(i, limb))))
			constraints = append(constraints,
				nextClient.Sub(client).
					Mul(r.challenge(CascadeLookupIndeterminate).Sub(compressed)).
					Sub(r.one()))
		}
	}
	//
	return constraints
}

func (t HashTable) TerminalConstraints(b *SingleBuilder) []SingleMonad {
	return nil
}
