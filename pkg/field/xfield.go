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
	"fmt"
)

// XFieldElement is an element of the degree-3 extension of the base field,
// with arithmetic modulo the Shah polynomial x^3 - x + 1.  Verifier-supplied
// challenges and all auxiliary (extension) columns live in this field.
//
// The representation is by coefficients of the residue class polynomial,
// lowest degree first: value = c0 + c1*x + c2*x^2.
type XFieldElement struct {
	Coefficients [3]BFieldElement
}

// XZero returns the additive identity of the extension field.
func XZero() XFieldElement {
	return XFieldElement{}
}

// XOne returns the multiplicative identity of the extension field.
func XOne() XFieldElement {
	var one XFieldElement
	one.Coefficients[0].SetOne()

	return one
}

// NewXFieldElement lifts a base field element into the extension field.
func NewXFieldElement(value BFieldElement) XFieldElement {
	var x XFieldElement
	x.Coefficients[0] = value

	return x
}

// XOf constructs an extension field element from up to three unsigned
// integer coefficients, lowest degree first.
func XOf(coefficients ...uint64) XFieldElement {
	if len(coefficients) > 3 {
		panic(fmt.Sprintf("extension field element has 3 coefficients, got %d", len(coefficients)))
	}
	//
	var x XFieldElement
	//
	for i, c := range coefficients {
		x.Coefficients[i] = NewBFieldElement(c)
	}
	//
	return x
}

// Add sets z = x + y and returns z.
func (z *XFieldElement) Add(x, y *XFieldElement) *XFieldElement {
	for i := range z.Coefficients {
		z.Coefficients[i].Add(&x.Coefficients[i], &y.Coefficients[i])
	}
	//
	return z
}

// Sub sets z = x - y and returns z.
func (z *XFieldElement) Sub(x, y *XFieldElement) *XFieldElement {
	for i := range z.Coefficients {
		z.Coefficients[i].Sub(&x.Coefficients[i], &y.Coefficients[i])
	}
	//
	return z
}

// Neg sets z = -x and returns z.
func (z *XFieldElement) Neg(x *XFieldElement) *XFieldElement {
	for i := range z.Coefficients {
		z.Coefficients[i].Neg(&x.Coefficients[i])
	}
	//
	return z
}

// Mul sets z = x * y and returns z.  The schoolbook product is reduced using
// x^3 = x - 1 (hence x^4 = x^2 - x).
func (z *XFieldElement) Mul(x, y *XFieldElement) *XFieldElement {
	var d0, d1, d2, d3, d4, t BFieldElement
	//
	a := &x.Coefficients
	b := &y.Coefficients
	// Schoolbook multiplication of the coefficient vectors.
	d0.Mul(&a[0], &b[0])
	d1.Mul(&a[0], &b[1])
	d1.Add(&d1, t.Mul(&a[1], &b[0]))
	d2.Mul(&a[0], &b[2])
	d2.Add(&d2, t.Mul(&a[1], &b[1]))
	d2.Add(&d2, t.Mul(&a[2], &b[0]))
	d3.Mul(&a[1], &b[2])
	d3.Add(&d3, t.Mul(&a[2], &b[1]))
	d4.Mul(&a[2], &b[2])
	// Reduce degrees 3 and 4.
	z.Coefficients[0].Sub(&d0, &d3)
	z.Coefficients[1].Add(&d1, &d3)
	z.Coefficients[1].Sub(&z.Coefficients[1], &d4)
	z.Coefficients[2].Add(&d2, &d4)
	//
	return z
}

// MulBase sets z = x * b for a base field element b and returns z.
func (z *XFieldElement) MulBase(x *XFieldElement, b *BFieldElement) *XFieldElement {
	for i := range z.Coefficients {
		z.Coefficients[i].Mul(&x.Coefficients[i], b)
	}
	//
	return z
}

// Inverse sets z = 1/x and returns z.  Following the base field convention,
// the inverse of zero is zero.
//
// Multiplication by a fixed element is a linear map on the coefficient
// vector; the inverse is computed from the adjugate of that 3x3 matrix.
func (z *XFieldElement) Inverse(x *XFieldElement) *XFieldElement {
	if x.IsZero() {
		*z = XZero()
		return z
	}
	//
	var (
		a0, a1, a2   = x.Coefficients[0], x.Coefficients[1], x.Coefficients[2]
		s, u, t, det BFieldElement
		c0, c1, c2   BFieldElement
	)
	// s = a0 + a2, u = a1 - a2
	s.Add(&a0, &a2)
	u.Sub(&a1, &a2)
	// c0 = s^2 - u*a1
	c0.Mul(&s, &s)
	c0.Sub(&c0, t.Mul(&u, &a1))
	// c1 = u*a2 - a1*s
	c1.Mul(&u, &a2)
	c1.Sub(&c1, t.Mul(&a1, &s))
	// c2 = a1^2 - s*a2
	c2.Mul(&a1, &a1)
	c2.Sub(&c2, t.Mul(&s, &a2))
	// det = a0*c0 - a2*c1 - a1*c2
	det.Mul(&a0, &c0)
	det.Sub(&det, t.Mul(&a2, &c1))
	det.Sub(&det, t.Mul(&a1, &c2))
	det.Inverse(&det)
	//
	z.Coefficients[0].Mul(&c0, &det)
	z.Coefficients[1].Mul(&c1, &det)
	z.Coefficients[2].Mul(&c2, &det)
	//
	return z
}

// IsZero reports whether z is the additive identity.
func (z *XFieldElement) IsZero() bool {
	return z.Coefficients[0].IsZero() && z.Coefficients[1].IsZero() && z.Coefficients[2].IsZero()
}

// Equal reports whether z and x represent the same field element.
func (z *XFieldElement) Equal(x *XFieldElement) bool {
	return z.Coefficients[0].Equal(&x.Coefficients[0]) &&
		z.Coefficients[1].Equal(&x.Coefficients[1]) &&
		z.Coefficients[2].Equal(&x.Coefficients[2])
}

func (z XFieldElement) String() string {
	return fmt.Sprintf("(%s + %s*x + %s*x^2)",
		z.Coefficients[0].String(), z.Coefficients[1].String(), z.Coefficients[2].String())
}

// XAdd returns x + y.  The value-style helpers below are what generated
// evaluator code calls into.
func XAdd(x, y XFieldElement) XFieldElement {
	var z XFieldElement
	z.Add(&x, &y)
	//
	return z
}

// XSub returns x - y.
func XSub(x, y XFieldElement) XFieldElement {
	var z XFieldElement
	z.Sub(&x, &y)
	//
	return z
}

// XMul returns x * y.
func XMul(x, y XFieldElement) XFieldElement {
	var z XFieldElement
	z.Mul(&x, &y)
	//
	return z
}
