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
package circuit

import (
	"fmt"

	"github.com/consensys/go-starkvm/pkg/field"
)

// RowPair provides the trace cells a circuit can reference.  Initial,
// consistency and terminal constraints only ever read the current row;
// transition constraints additionally read the next row.  Rows are given over
// the extension field, since that is the domain constraints are evaluated in
// at proof time (base field values are lifted).
type RowPair struct {
	CurrentMain []field.XFieldElement
	CurrentAux  []field.XFieldElement
	NextMain    []field.XFieldElement
	NextAux     []field.XFieldElement
}

// InputIndicator describes which trace cell an input leaf addresses: the
// column space (main or aux), the column index within that space, and -- for
// the dual row family -- whether the current or next row is meant.
//
// The two implementations, SingleRowIndicator and DualRowIndicator,
// correspond to the two constraint families.  Since builders and circuits
// are parameterised by the indicator type, a dual-row circuit can never end
// up in a single-row bucket (and vice versa); the family invariant is
// enforced by the type system rather than checked at runtime.
type InputIndicator[II any] interface {
	comparable
	// IsAuxColumn reports whether the indicator addresses the aux
	// (extension field) column space rather than the main (base field)
	// column space.
	IsAuxColumn() bool
	// Column returns the global column index within the addressed space.
	Column() uint
	// DerivedInput mints an indicator of the same row family addressing a
	// freshly allocated column.  Degree lowering uses this to reference
	// its substitution columns.
	DerivedInput(aux bool, column uint) II
	// Value reads the addressed cell from the given rows.
	Value(rows RowPair) field.XFieldElement
	//
	String() string
}

// SingleRowIndicator addresses a cell of the one row that initial,
// consistency and terminal constraints apply to.
type SingleRowIndicator struct {
	aux    bool
	column uint
}

// Main addresses the given main column.
func Main(column uint) SingleRowIndicator {
	return SingleRowIndicator{aux: false, column: column}
}

// Aux addresses the given aux column.
func Aux(column uint) SingleRowIndicator {
	return SingleRowIndicator{aux: true, column: column}
}

// IsAuxColumn implementation for the InputIndicator interface.
func (ii SingleRowIndicator) IsAuxColumn() bool { return ii.aux }

// Column implementation for the InputIndicator interface.
func (ii SingleRowIndicator) Column() uint { return ii.column }

// DerivedInput implementation for the InputIndicator interface.
func (ii SingleRowIndicator) DerivedInput(aux bool, column uint) SingleRowIndicator {
	return SingleRowIndicator{aux: aux, column: column}
}

// Value implementation for the InputIndicator interface.
func (ii SingleRowIndicator) Value(rows RowPair) field.XFieldElement {
	if ii.aux {
		return rows.CurrentAux[ii.column]
	}
	//
	return rows.CurrentMain[ii.column]
}

func (ii SingleRowIndicator) String() string {
	if ii.aux {
		return fmt.Sprintf("aux[%d]", ii.column)
	}
	//
	return fmt.Sprintf("main[%d]", ii.column)
}

// DualRowIndicator addresses a cell of the row pair that transition
// constraints apply to.
type DualRowIndicator struct {
	aux    bool
	next   bool
	column uint
}

// CurrentMain addresses the given main column in the current row.
func CurrentMain(column uint) DualRowIndicator {
	return DualRowIndicator{aux: false, next: false, column: column}
}

// NextMain addresses the given main column in the next row.
func NextMain(column uint) DualRowIndicator {
	return DualRowIndicator{aux: false, next: true, column: column}
}

// CurrentAux addresses the given aux column in the current row.
func CurrentAux(column uint) DualRowIndicator {
	return DualRowIndicator{aux: true, next: false, column: column}
}

// NextAux addresses the given aux column in the next row.
func NextAux(column uint) DualRowIndicator {
	return DualRowIndicator{aux: true, next: true, column: column}
}

// IsAuxColumn implementation for the InputIndicator interface.
func (ii DualRowIndicator) IsAuxColumn() bool { return ii.aux }

// IsNextRow reports whether the indicator addresses the next rather than the
// current row.
func (ii DualRowIndicator) IsNextRow() bool { return ii.next }

// Column implementation for the InputIndicator interface.
func (ii DualRowIndicator) Column() uint { return ii.column }

// DerivedInput implementation for the InputIndicator interface.  A
// substitution column introduced for the transition bucket is defined on
// every row, hence referencing it through the current row is sufficient.
func (ii DualRowIndicator) DerivedInput(aux bool, column uint) DualRowIndicator {
	return DualRowIndicator{aux: aux, next: false, column: column}
}

// Value implementation for the InputIndicator interface.
func (ii DualRowIndicator) Value(rows RowPair) field.XFieldElement {
	switch {
	case ii.aux && ii.next:
		return rows.NextAux[ii.column]
	case ii.aux:
		return rows.CurrentAux[ii.column]
	case ii.next:
		return rows.NextMain[ii.column]
	default:
		return rows.CurrentMain[ii.column]
	}
}

func (ii DualRowIndicator) String() string {
	row, space := "curr", "main"
	//
	if ii.next {
		row = "next"
	}
	//
	if ii.aux {
		space = "aux"
	}
	//
	return fmt.Sprintf("%s_%s[%d]", row, space, ii.column)
}
