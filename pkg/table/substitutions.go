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

import (
	"github.com/consensys/go-starkvm/pkg/circuit"
)

// Substitutions are the constraints induced by degree lowering within one
// column space, bucket by bucket.  Each substitution constraint equates a
// freshly allocated column of the degree lowering table with the
// subexpression it replaced; the allocation order follows the bucket order
// init, cons, tran, term.
type Substitutions struct {
	Info circuit.DegreeLoweringInfo
	Init []SingleMonad
	Cons []SingleMonad
	Tran []DualMonad
	Term []SingleMonad
}

// Len returns the total number of substitution constraints, which equals
// the number of columns this column space gained.
func (s *Substitutions) Len() uint {
	return uint(len(s.Init) + len(s.Cons) + len(s.Tran) + len(s.Term))
}

// ColumnNames lists the names of the allocated columns, in allocation order.
func (s *Substitutions) ColumnNames(space string) []string {
	return degreeLoweringColumnNames(space, s.Len())
}

// AllSubstitutions are the constraints induced by degree lowering, split by
// column space: substituted subexpressions over the base field claim main
// columns, all others claim aux columns.
type AllSubstitutions struct {
	Main Substitutions
	Aux  Substitutions
}
