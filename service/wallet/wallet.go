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

package wallet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/service/storage"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/entity"
	"github.com/optakt/wallet-kit/wallet/factor"
)

// Validator validates service requests.
type Validator interface {
	Request(request interface{}) error
}

// Instances derives the factor instances new entities are created from.
type Instances interface {
	AccountCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.AccountCreation, error)
	IdentityCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.IdentityCreation, error)
}

// Wallet creates and stores the entities of the factor sources it knows.
// Entity creation is serialized, so that every entity gets its own index.
type Wallet struct {
	log       zerolog.Logger
	db        *badger.DB
	lib       *storage.Library
	validate  Validator
	instances Instances
	now       func() time.Time

	mu sync.Mutex
}

func New(log zerolog.Logger, db *badger.DB, lib *storage.Library, validate Validator, instances Instances) *Wallet {

	w := Wallet{
		log:       log.With().Str("component", "wallet").Logger(),
		db:        db,
		lib:       lib,
		validate:  validate,
		instances: instances,
		now:       time.Now,
	}

	return &w
}

// AddSource stores the factor source. Adding a source that already exists
// replaces it.
func (w *Wallet) AddSource(source factor.Source) error {
	err := w.db.Update(w.lib.SaveSource(source))
	if err != nil {
		return fmt.Errorf("could not save factor source: %w", err)
	}

	w.log.Info().Str("source", source.ID.String()).Msg("factor source added")

	return nil
}

func (w *Wallet) Source(id factor.SourceID) (factor.Source, error) {
	var source factor.Source
	err := w.db.View(w.lib.RetrieveSource(id, &source))
	if err != nil {
		return factor.Source{}, fmt.Errorf("could not retrieve factor source: %w", err)
	}
	return source, nil
}

// CreateAccount creates the next account of the factor source on the
// requested network and stores it.
func (w *Wallet) CreateAccount(ctx context.Context, req CreateAccountRequest) (*entity.Account, error) {

	err := w.validate.Request(req)
	if err != nil {
		return nil, fmt.Errorf("invalid account request: %w", err)
	}
	net, err := network.LookupByName(req.Network)
	if err != nil {
		return nil, fmt.Errorf("could not resolve network: %w", err)
	}
	name, err := entity.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("invalid display name: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	source, index, err := w.reserve(req.SourceID, net.ID, derivation.EntityKindAccount)
	if err != nil {
		return nil, err
	}

	creation, err := w.instances.AccountCreation(ctx, source, net.ID, index)
	if err != nil {
		return nil, fmt.Errorf("could not derive account instance: %w", err)
	}

	appearance := entity.AppearanceIDForIndex(index)
	if req.AppearanceID != nil {
		appearance, err = entity.NewAppearanceID(*req.AppearanceID)
		if err != nil {
			return nil, fmt.Errorf("invalid appearance: %w", err)
		}
	}

	account, err := entity.NewAccount(creation, index, name, appearance)
	if err != nil {
		return nil, fmt.Errorf("could not create account: %w", err)
	}

	source.LastUsedOn = w.now().UTC()
	err = w.db.Update(storage.Combine(
		w.lib.SaveAccount(account),
		w.lib.SaveNextEntityIndex(source.ID, net.ID, derivation.EntityKindAccount, index+1),
		w.lib.SaveSource(source),
	))
	if err != nil {
		return nil, fmt.Errorf("could not save account: %w", err)
	}

	w.log.Info().
		Str("network", net.LogicalName).
		Uint32("index", index).
		Str("address", account.Address().String()).
		Msg("account created")

	return account, nil
}

// CreatePersona creates the next persona of the factor source on the
// requested network and stores it.
func (w *Wallet) CreatePersona(ctx context.Context, req CreatePersonaRequest) (*entity.Persona, error) {

	err := w.validate.Request(req)
	if err != nil {
		return nil, fmt.Errorf("invalid persona request: %w", err)
	}
	net, err := network.LookupByName(req.Network)
	if err != nil {
		return nil, fmt.Errorf("could not resolve network: %w", err)
	}
	name, err := entity.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("invalid display name: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	source, index, err := w.reserve(req.SourceID, net.ID, derivation.EntityKindIdentity)
	if err != nil {
		return nil, err
	}

	creation, err := w.instances.IdentityCreation(ctx, source, net.ID, index)
	if err != nil {
		return nil, fmt.Errorf("could not derive identity instance: %w", err)
	}

	persona, err := entity.NewPersona(creation, index, name)
	if err != nil {
		return nil, fmt.Errorf("could not create persona: %w", err)
	}

	source.LastUsedOn = w.now().UTC()
	err = w.db.Update(storage.Combine(
		w.lib.SavePersona(persona),
		w.lib.SaveNextEntityIndex(source.ID, net.ID, derivation.EntityKindIdentity, index+1),
		w.lib.SaveSource(source),
	))
	if err != nil {
		return nil, fmt.Errorf("could not save persona: %w", err)
	}

	w.log.Info().
		Str("network", net.LogicalName).
		Uint32("index", index).
		Str("address", persona.Address().String()).
		Msg("persona created")

	return persona, nil
}

// reserve reads the factor source and the index of its next entity of the
// given kind. The caller holds the lock.
func (w *Wallet) reserve(id factor.SourceID, net network.ID, kind derivation.EntityKind) (factor.Source, uint32, error) {
	var source factor.Source
	var index uint32
	err := w.db.View(storage.Combine(
		w.lib.RetrieveSource(id, &source),
		w.lib.RetrieveNextEntityIndex(id, net, kind, &index),
	))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return factor.Source{}, 0, fmt.Errorf("unknown factor source (source: %s): %w", id, err)
	}
	if err != nil {
		return factor.Source{}, 0, fmt.Errorf("could not retrieve entity index: %w", err)
	}
	return source, index, nil
}

// UpdateAccount stores the mutable metadata of an existing account.
func (w *Wallet) UpdateAccount(account *entity.Account) error {
	var existing entity.Account
	err := w.db.Update(storage.Combine(
		w.lib.RetrieveAccount(account.Address(), &existing),
		w.lib.SaveAccount(account),
	))
	if err != nil {
		return fmt.Errorf("could not update account: %w", err)
	}
	return nil
}

// Accounts returns the accounts on the network, ordered by entity index.
func (w *Wallet) Accounts(id network.ID) ([]*entity.Account, error) {
	var accounts []*entity.Account
	err := w.db.View(w.lib.RetrieveAccounts(id, &accounts))
	if err != nil {
		return nil, fmt.Errorf("could not retrieve accounts: %w", err)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Compare(accounts[j]) < 0
	})
	return accounts, nil
}

// Personas returns the personas on the network, ordered by entity index.
func (w *Wallet) Personas(id network.ID) ([]*entity.Persona, error) {
	var personas []*entity.Persona
	err := w.db.View(w.lib.RetrievePersonas(id, &personas))
	if err != nil {
		return nil, fmt.Errorf("could not retrieve personas: %w", err)
	}
	sort.Slice(personas, func(i, j int) bool {
		return personas[i].Compare(personas[j]) < 0
	})
	return personas, nil
}
