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
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/go-starkvm/pkg/field"
)

// Proof is an opaque sequence of field elements.  Internally it frames a
// sequence of items: each item is a length-prefixed, kind-tagged run of
// elements.  Nothing outside this package depends on the framing.
type Proof []field.BFieldElement

// ItemKind tags one item of a proof.
type ItemKind uint64

const (
	// ItemMerkleRoot is a commitment to a codeword.
	ItemMerkleRoot ItemKind = iota
	// ItemLog2PaddedHeight records the padded height of the trace.
	ItemLog2PaddedHeight
	// ItemAuthenticationStructure opens previously committed leaves.
	ItemAuthenticationStructure
	// ItemOutOfDomainMainRow is a main table row out of the trace domain.
	ItemOutOfDomainMainRow
	// ItemOutOfDomainAuxRow is an aux table row out of the trace domain.
	ItemOutOfDomainAuxRow
	// ItemQuotientSegments are the segments of the quotient codeword.
	ItemQuotientSegments
)

// Item is one decoded proof item.
type Item struct {
	Kind    ItemKind
	Payload []field.BFieldElement
}

// Recoverable decoding failures of PaddedHeight.
var (
	ErrNoLog2PaddedHeight       = errors.New("proof contains no padded height item")
	ErrTooManyLog2PaddedHeights = errors.New("proof contains more than one padded height item")
)

// EncodeItems frames the given items into a proof.
func EncodeItems(items []Item) Proof {
	var p Proof
	//
	for _, item := range items {
		p = append(p, field.NewBFieldElement(uint64(len(item.Payload))))
		p = append(p, field.NewBFieldElement(uint64(item.Kind)))
		p = append(p, item.Payload...)
	}
	//
	return p
}

// Items decodes the proof's item framing.  A proof produced by EncodeItems
// always decodes; anything else may fail, recoverably.
func (p Proof) Items() ([]Item, error) {
	var items []Item
	//
	for i := 0; i < len(p); {
		length := p[i].Uint64()
		//
		if i+1 >= len(p) || uint64(len(p)-i-2) < length {
			return nil, fmt.Errorf("truncated proof item at offset %d", i)
		}
		//
		kind := ItemKind(p[i+1].Uint64())
		payload := p[i+2 : i+2+int(length)]
		items = append(items, Item{Kind: kind, Payload: payload})
		//
		i += 2 + int(length)
	}
	//
	return items, nil
}

// PaddedHeight extracts the trace's padded height.  The proof must contain
// exactly one padded height item.
func (p Proof) PaddedHeight() (uint64, error) {
	items, err := p.Items()
	if err != nil {
		return 0, err
	}
	//
	var heights []uint64
	//
	for _, item := range items {
		if item.Kind == ItemLog2PaddedHeight {
			if len(item.Payload) != 1 {
				return 0, fmt.Errorf("malformed padded height item")
			}
			//
			heights = append(heights, item.Payload[0].Uint64())
		}
	}
	//
	switch len(heights) {
	case 0:
		return 0, ErrNoLog2PaddedHeight
	case 1:
		if heights[0] > 63 {
			return 0, fmt.Errorf("malformed padded height item")
		}
		//
		return 1 << heights[0], nil
	default:
		return 0, ErrTooManyLog2PaddedHeights
	}
}

// MarshalCBOR implementation for the cbor.Marshaler interface, encoding the
// elements in canonical (non-Montgomery) form.
func (p Proof) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(elementsToWire(p))
}

// UnmarshalCBOR implementation for the cbor.Unmarshaler interface.
func (p *Proof) UnmarshalCBOR(data []byte) error {
	var wire []uint64
	//
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return err
	}
	//
	*p = elementsFromWire(wire)
	//
	return nil
}

func elementsToWire(elements []field.BFieldElement) []uint64 {
	wire := make([]uint64, len(elements))
	//
	for i := range elements {
		wire[i] = elements[i].Uint64()
	}
	//
	return wire
}

func elementsFromWire(wire []uint64) []field.BFieldElement {
	elements := make([]field.BFieldElement, len(wire))
	//
	for i := range wire {
		elements[i] = field.NewBFieldElement(wire[i])
	}
	//
	return elements
}
