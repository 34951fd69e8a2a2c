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

package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/address"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/entity"
	"github.com/optakt/wallet-kit/wallet/factor"
)

func sourceKey(id factor.SourceID) []byte {
	return EncodeKey(PrefixSource, string(id.Kind), id.Body)
}

// SaveSource is an operation that writes the given factor source.
func (l *Library) SaveSource(source factor.Source) func(*badger.Txn) error {
	return l.save(sourceKey(source.ID), source)
}

// RetrieveSource is an operation that reads the factor source with the given ID.
func (l *Library) RetrieveSource(id factor.SourceID, source *factor.Source) func(*badger.Txn) error {
	return l.retrieve(sourceKey(id), source)
}

// SaveAccount is an operation that writes the given account, replacing any
// previous version of it.
func (l *Library) SaveAccount(account *entity.Account) func(*badger.Txn) error {
	addr := account.Address()
	key := EncodeKey(PrefixAccount, addr.NetworkID(), addr.NodeID())
	doc, err := newDocument(account)
	if err != nil {
		return fail(err)
	}
	return l.save(key, doc)
}

// RetrieveAccount is an operation that reads the account with the given
// address.
func (l *Library) RetrieveAccount(addr address.AccountAddress, account *entity.Account) func(*badger.Txn) error {
	key := EncodeKey(PrefixAccount, addr.NetworkID(), addr.NodeID())
	return func(tx *badger.Txn) error {
		var doc document
		err := l.retrieve(key, &doc)(tx)
		if err != nil {
			return err
		}
		return doc.decode(account)
	}
}

// RetrieveAccounts is an operation that reads all accounts on the given
// network, in storage order.
func (l *Library) RetrieveAccounts(id network.ID, accounts *[]*entity.Account) func(*badger.Txn) error {
	prefix := EncodeKey(PrefixAccount, id)
	return iterate(prefix, func(_ []byte, val []byte) error {
		var doc document
		err := l.codec.Unmarshal(val, &doc)
		if err != nil {
			return fmt.Errorf("could not decode document: %w", err)
		}
		var account entity.Account
		err = doc.decode(&account)
		if err != nil {
			return err
		}
		*accounts = append(*accounts, &account)
		return nil
	})
}

// SavePersona is an operation that writes the given persona.
func (l *Library) SavePersona(persona *entity.Persona) func(*badger.Txn) error {
	addr := persona.Address()
	key := EncodeKey(PrefixPersona, addr.NetworkID(), addr.NodeID())
	doc, err := newDocument(persona)
	if err != nil {
		return fail(err)
	}
	return l.save(key, doc)
}

// RetrievePersonas is an operation that reads all personas on the given
// network, in storage order.
func (l *Library) RetrievePersonas(id network.ID, personas *[]*entity.Persona) func(*badger.Txn) error {
	prefix := EncodeKey(PrefixPersona, id)
	return iterate(prefix, func(_ []byte, val []byte) error {
		var doc document
		err := l.codec.Unmarshal(val, &doc)
		if err != nil {
			return fmt.Errorf("could not decode document: %w", err)
		}
		var persona entity.Persona
		err = doc.decode(&persona)
		if err != nil {
			return err
		}
		*personas = append(*personas, &persona)
		return nil
	})
}

func entityIndexKey(source factor.SourceID, id network.ID, kind derivation.EntityKind) []byte {
	return EncodeKey(PrefixEntityIndex, string(source.Kind), source.Body, id, kind)
}

// SaveNextEntityIndex is an operation that writes the index the next entity
// of the given kind will be created with.
func (l *Library) SaveNextEntityIndex(source factor.SourceID, id network.ID, kind derivation.EntityKind, index uint32) func(*badger.Txn) error {
	return l.save(entityIndexKey(source, id, kind), index)
}

// RetrieveNextEntityIndex is an operation that reads the index the next
// entity of the given kind will be created with. It is zero if no entity was
// created yet.
func (l *Library) RetrieveNextEntityIndex(source factor.SourceID, id network.ID, kind derivation.EntityKind, index *uint32) func(*badger.Txn) error {
	key := entityIndexKey(source, id, kind)
	return Fallback(
		l.retrieve(key, index),
		missing(key, func() { *index = 0 }),
	)
}

func fail(err error) func(*badger.Txn) error {
	return func(*badger.Txn) error {
		return err
	}
}
