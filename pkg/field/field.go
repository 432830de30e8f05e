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
package field

import (
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// BFieldElement is an element of the base field, the 64-bit Goldilocks prime
// field with modulus 2^64 - 2^32 + 1.  All trace values recorded during
// program execution live in this field.
type BFieldElement = goldilocks.Element

// NewBFieldElement constructs a base field element from the given unsigned
// integer.
func NewBFieldElement(value uint64) BFieldElement {
	return goldilocks.NewElement(value)
}

// BZero returns the additive identity of the base field.
func BZero() BFieldElement {
	var zero BFieldElement
	return zero
}

// BOne returns the multiplicative identity of the base field.
func BOne() BFieldElement {
	return goldilocks.NewElement(1)
}

// DigestLen is the number of base field elements in a Digest.
const DigestLen = 5

// Digest is the output of the sponge-based hash function used for program
// attestation.  The hash function itself is external to this package; the
// digest is carried around as an opaque value.
type Digest [DigestLen]BFieldElement
