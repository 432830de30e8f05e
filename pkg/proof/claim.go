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
	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/go-starkvm/pkg/field"
)

// CurrentVersion is the proof system version new claims are made about.
const CurrentVersion uint32 = 0

// Claim is the public statement a proof proves: running the program with
// the given digest on the given input produces the given output.
type Claim struct {
	// ProgramDigest identifies the program.
	ProgramDigest field.Digest
	// Version of the proof system the claim is about.
	Version uint32
	// Input is the public (standard) input to the program.
	Input []field.BFieldElement
	// Output is the public (standard) output of the program.
	Output []field.BFieldElement
}

// NewClaim makes a claim about the program with the given digest, with
// empty input and output, about the current version.
func NewClaim(programDigest field.Digest) Claim {
	return Claim{
		ProgramDigest: programDigest,
		Version:       CurrentVersion,
	}
}

// WithInput returns the claim with its public input replaced.
func (c Claim) WithInput(input []field.BFieldElement) Claim {
	c.Input = input
	return c
}

// WithOutput returns the claim with its public output replaced.
func (c Claim) WithOutput(output []field.BFieldElement) Claim {
	c.Output = output
	return c
}

// AboutVersion returns the claim with its version replaced.
func (c Claim) AboutVersion(version uint32) Claim {
	c.Version = version
	return c
}

// claimWire is the CBOR shape of a Claim, all field elements in canonical
// form.
type claimWire struct {
	ProgramDigest [field.DigestLen]uint64 `cbor:"1,keyasint"`
	Version       uint32                  `cbor:"2,keyasint"`
	Input         []uint64                `cbor:"3,keyasint"`
	Output        []uint64                `cbor:"4,keyasint"`
}

// MarshalCBOR implementation for the cbor.Marshaler interface.
func (c Claim) MarshalCBOR() ([]byte, error) {
	wire := claimWire{
		Version: c.Version,
		Input:   elementsToWire(c.Input),
		Output:  elementsToWire(c.Output),
	}
	//
	for i := range c.ProgramDigest {
		wire.ProgramDigest[i] = c.ProgramDigest[i].Uint64()
	}
	//
	return cbor.Marshal(wire)
}

// UnmarshalCBOR implementation for the cbor.Unmarshaler interface.
func (c *Claim) UnmarshalCBOR(data []byte) error {
	var wire claimWire
	//
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return err
	}
	//
	c.Version = wire.Version
	c.Input = elementsFromWire(wire.Input)
	c.Output = elementsFromWire(wire.Output)
	//
	for i := range wire.ProgramDigest {
		c.ProgramDigest[i] = field.NewBFieldElement(wire.ProgramDigest[i])
	}
	//
	return nil
}
