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

package factor

import (
	"encoding/json"
	"fmt"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/hd"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// TransactionSigning is a factor instance that has been checked to be a
// transaction signing key on a path of entity kind P. It is the only value
// that entities can be created from.
type TransactionSigning[P derivation.EntityPath] struct {
	sourceID  SourceID
	publicKey keys.PublicKey
	path      P
}

// AccountCreation is the instance required to create an account.
type AccountCreation = TransactionSigning[derivation.AccountPath]

// IdentityCreation is the instance required to create a persona.
type IdentityCreation = TransactionSigning[derivation.IdentityPath]

// NewTransactionSigning validates the raw instance. It fails with
// WrongEntityKind if the path is not a path of kind P, and with WrongKeyKind
// if the key is not a transaction signing key.
func NewTransactionSigning[P derivation.EntityPath](instance Instance) (TransactionSigning[P], error) {
	path, ok := derivation.AsEntityPath[P](instance.PublicKey.Path)
	if !ok {
		found := string(instance.PublicKey.Path.Scheme())
		entity, isCAP26 := instance.PublicKey.Path.AsCAP26()
		if isCAP26 {
			found = entity.EntityKind().String()
		}
		return TransactionSigning[P]{}, failure.WrongEntityKind{
			Description: failure.NewDescription("factor instance path is not of the required entity kind", failure.WithString("path", instance.PublicKey.Path.String())),
			Expected:    entityKindOf[P](),
			Found:       found,
		}
	}

	if path.KeyKind() != derivation.KeyKindTransactionSigning {
		return TransactionSigning[P]{}, failure.WrongKeyKind{
			Description: failure.NewDescription("factor instance is not a transaction signing key", failure.WithString("path", path.String())),
			Expected:    derivation.KeyKindTransactionSigning.String(),
			Found:       path.KeyKind().String(),
		}
	}

	t := TransactionSigning[P]{
		sourceID:  instance.SourceID,
		publicKey: instance.PublicKey.Key,
		path:      path,
	}

	return t, nil
}

func entityKindOf[P derivation.EntityPath]() string {
	var zero P
	if any(zero) == nil {
		return string(derivation.SchemeCAP26)
	}
	return zero.EntityKind().String()
}

func NewAccountCreation(instance Instance) (AccountCreation, error) {
	return NewTransactionSigning[derivation.AccountPath](instance)
}

func NewIdentityCreation(instance Instance) (IdentityCreation, error) {
	return NewTransactionSigning[derivation.IdentityPath](instance)
}

func (t TransactionSigning[P]) SourceID() SourceID {
	return t.sourceID
}

func (t TransactionSigning[P]) PublicKey() keys.PublicKey {
	return t.publicKey
}

func (t TransactionSigning[P]) Path() P {
	return t.path
}

func (t TransactionSigning[P]) NetworkID() network.ID {
	return t.path.NetworkID()
}

// Index is the last component of the path, which is the entity index.
func (t TransactionSigning[P]) Index() uint32 {
	return t.path.Index()
}

// Instance returns the raw instance the value was validated from.
func (t TransactionSigning[P]) Instance() Instance {
	return Instance{
		SourceID:  t.sourceID,
		PublicKey: hd.NewPublicKey(t.publicKey, derivation.FromCAP26(t.path)),
	}
}

func (t TransactionSigning[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Instance())
}

// UnmarshalJSON decodes a raw instance and validates it again, so stored
// records can not bypass the checks of NewTransactionSigning.
func (t *TransactionSigning[P]) UnmarshalJSON(data []byte) error {
	var instance Instance
	err := json.Unmarshal(data, &instance)
	if err != nil {
		return fmt.Errorf("could not decode factor instance: %w", err)
	}
	validated, err := NewTransactionSigning[P](instance)
	if err != nil {
		return fmt.Errorf("could not validate factor instance: %w", err)
	}
	*t = validated
	return nil
}
