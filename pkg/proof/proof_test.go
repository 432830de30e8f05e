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
package proof

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-starkvm/pkg/field"
)

func elements(values ...uint64) []field.BFieldElement {
	out := make([]field.BFieldElement, len(values))
	//
	for i, v := range values {
		out[i] = field.NewBFieldElement(v)
	}
	//
	return out
}

func Test_Proof_01_ItemRoundTrip(t *testing.T) {
	items := []Item{
		{Kind: ItemMerkleRoot, Payload: elements(1, 2, 3, 4, 5)},
		{Kind: ItemLog2PaddedHeight, Payload: elements(8)},
		{Kind: ItemAuthenticationStructure, Payload: elements(42)},
	}
	//
	decoded, err := EncodeItems(items).Items()
	require.NoError(t, err)
	require.Len(t, decoded, len(items))
	//
	for i := range items {
		assert.Equal(t, items[i].Kind, decoded[i].Kind)
		assert.Equal(t, items[i].Payload, decoded[i].Payload)
	}
}

func Test_Proof_02_PaddedHeight(t *testing.T) {
	p := EncodeItems([]Item{
		{Kind: ItemMerkleRoot, Payload: elements(1, 2, 3, 4, 5)},
		{Kind: ItemLog2PaddedHeight, Payload: elements(10)},
	})
	//
	height, err := p.PaddedHeight()
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), height)
}

func Test_Proof_03_MissingPaddedHeight(t *testing.T) {
	p := EncodeItems([]Item{
		{Kind: ItemMerkleRoot, Payload: elements(1, 2, 3, 4, 5)},
	})
	//
	_, err := p.PaddedHeight()
	assert.ErrorIs(t, err, ErrNoLog2PaddedHeight)
}

func Test_Proof_04_DuplicatePaddedHeight(t *testing.T) {
	p := EncodeItems([]Item{
		{Kind: ItemLog2PaddedHeight, Payload: elements(8)},
		{Kind: ItemLog2PaddedHeight, Payload: elements(9)},
	})
	//
	_, err := p.PaddedHeight()
	assert.ErrorIs(t, err, ErrTooManyLog2PaddedHeights)
}

func Test_Proof_05_MalformedItems(t *testing.T) {
	// Length prefix claims more elements than the proof holds.
	truncated := Proof(elements(100, uint64(ItemMerkleRoot), 1, 2))
	_, err := truncated.Items()
	assert.Error(t, err)
	// Length prefix with nothing after it.
	bare := Proof(elements(0))
	_, err = bare.Items()
	assert.Error(t, err)
	// A padded height payload of the wrong width.
	wide := EncodeItems([]Item{
		{Kind: ItemLog2PaddedHeight, Payload: elements(8, 9)},
	})
	_, err = wide.PaddedHeight()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoLog2PaddedHeight)
	// A padded height that would overflow.
	huge := EncodeItems([]Item{
		{Kind: ItemLog2PaddedHeight, Payload: elements(64)},
	})
	_, err = huge.PaddedHeight()
	assert.Error(t, err)
}

func Test_Proof_06_CborRoundTrip(t *testing.T) {
	original := EncodeItems([]Item{
		{Kind: ItemOutOfDomainMainRow, Payload: elements(7, 11, 13)},
		{Kind: ItemLog2PaddedHeight, Payload: elements(4)},
	})
	//
	data, err := cbor.Marshal(original)
	require.NoError(t, err)
	//
	var decoded Proof
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
	//
	height, err := decoded.PaddedHeight()
	require.NoError(t, err)
	assert.Equal(t, uint64(16), height)
}

func Test_Claim_01_Construction(t *testing.T) {
	var digest field.Digest
	//
	for i := range digest {
		digest[i] = field.NewBFieldElement(uint64(i + 1))
	}
	//
	claim := NewClaim(digest).
		WithInput(elements(1, 2)).
		WithOutput(elements(3))
	//
	assert.Equal(t, digest, claim.ProgramDigest)
	assert.Equal(t, CurrentVersion, claim.Version)
	assert.Equal(t, elements(1, 2), claim.Input)
	assert.Equal(t, elements(3), claim.Output)
}

func Test_Claim_02_CborRoundTrip(t *testing.T) {
	var digest field.Digest
	//
	for i := range digest {
		digest[i] = field.NewBFieldElement(uint64(100 + i))
	}
	//
	original := NewClaim(digest).
		WithInput(elements(5, 6, 7)).
		WithOutput(elements(8, 9)).
		AboutVersion(3)
	//
	data, err := cbor.Marshal(original)
	require.NoError(t, err)
	//
	var decoded Claim
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
