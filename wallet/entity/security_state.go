// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package entity

import (
	"encoding/json"
	"fmt"

	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/factor"
	"github.com/optakt/wallet-kit/wallet/failure"
)

// SecurityState describes how an entity of path kind P is controlled. New
// variants can be added in this package only.
type SecurityState[P derivation.EntityPath] interface {
	Discriminator() string
	securityState(P)
}

const DiscriminatorUnsecured = "unsecured"

// Unsecured is the security state of an entity controlled by a single
// transaction signing key.
type Unsecured[P derivation.EntityPath] struct {
	EntityIndex        uint32
	TransactionSigning factor.TransactionSigning[P]
}

func NewUnsecured[P derivation.EntityPath](index uint32, instance factor.TransactionSigning[P]) Unsecured[P] {
	u := Unsecured[P]{
		EntityIndex:        index,
		TransactionSigning: instance,
	}
	return u
}

func (u Unsecured[P]) Discriminator() string {
	return DiscriminatorUnsecured
}

func (u Unsecured[P]) securityState(P) {}

// Compare orders unsecured states by entity index only.
func Compare[P derivation.EntityPath](a, b Unsecured[P]) int {
	switch {
	case a.EntityIndex < b.EntityIndex:
		return -1
	case a.EntityIndex > b.EntityIndex:
		return 1
	default:
		return 0
	}
}

type unsecuredControl[P derivation.EntityPath] struct {
	EntityIndex        uint32                       `json:"entityIndex"`
	TransactionSigning factor.TransactionSigning[P] `json:"transactionSigning"`
}

type securityRecord struct {
	Discriminator string          `json:"discriminator"`
	Unsecured     json.RawMessage `json:"unsecuredEntityControl,omitempty"`
}

func (u Unsecured[P]) MarshalJSON() ([]byte, error) {
	control, err := json.Marshal(unsecuredControl[P](u))
	if err != nil {
		return nil, fmt.Errorf("could not encode unsecured entity control: %w", err)
	}
	record := securityRecord{
		Discriminator: DiscriminatorUnsecured,
		Unsecured:     control,
	}
	return json.Marshal(record)
}

func marshalSecurityState[P derivation.EntityPath](state SecurityState[P]) ([]byte, error) {
	switch s := state.(type) {
	case Unsecured[P]:
		return s.MarshalJSON()
	case nil:
		return nil, fmt.Errorf("missing security state")
	default:
		return nil, failure.UnknownSecurityState{
			Description:   failure.NewDescription("security state can not be encoded"),
			Discriminator: state.Discriminator(),
		}
	}
}

// unmarshalSecurityState decodes a security state record. The discriminator
// selects the variant.
func unmarshalSecurityState[P derivation.EntityPath](data []byte) (SecurityState[P], error) {
	var record securityRecord
	err := json.Unmarshal(data, &record)
	if err != nil {
		return nil, fmt.Errorf("could not decode security state: %w", err)
	}

	switch record.Discriminator {
	case DiscriminatorUnsecured:
		if len(record.Unsecured) == 0 {
			return nil, fmt.Errorf("missing unsecured entity control")
		}
		var control unsecuredControl[P]
		err = json.Unmarshal(record.Unsecured, &control)
		if err != nil {
			return nil, fmt.Errorf("could not decode unsecured entity control: %w", err)
		}
		return Unsecured[P](control), nil
	default:
		return nil, failure.UnknownSecurityState{
			Description:   failure.NewDescription("security state discriminator is not known"),
			Discriminator: record.Discriminator,
		}
	}
}

// controllingInstance returns the transaction signing instance that controls
// an entity in the given state, if the state has a single one.
func controllingInstance[P derivation.EntityPath](state SecurityState[P]) (factor.TransactionSigning[P], bool) {
	switch s := state.(type) {
	case Unsecured[P]:
		return s.TransactionSigning, true
	default:
		return factor.TransactionSigning[P]{}, false
	}
}

// entityIndex returns the index of an entity for ordering purposes. States
// without an index sort last.
func entityIndex[P derivation.EntityPath](state SecurityState[P]) (uint32, bool) {
	switch s := state.(type) {
	case Unsecured[P]:
		return s.EntityIndex, true
	default:
		return 0, false
	}
}

func compareStates[P derivation.EntityPath](a, b SecurityState[P]) int {
	left, okLeft := entityIndex(a)
	right, okRight := entityIndex(b)
	switch {
	case okLeft && okRight:
		return Compare(Unsecured[P]{EntityIndex: left}, Unsecured[P]{EntityIndex: right})
	case okLeft:
		return -1
	case okRight:
		return 1
	default:
		return 0
	}
}
