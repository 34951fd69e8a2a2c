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

package instances

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/factor"
	"github.com/optakt/wallet-kit/wallet/hd"
)

// SeedProvider gives access to the seed of a factor source. The returned
// slice is owned by the caller, who wipes it after use.
type SeedProvider interface {
	Seed(ctx context.Context, id factor.SourceID) ([]byte, error)
}

// Provider derives factor instances from the seeds of factor sources. Derived
// public keys are cached, so that the seed is only requested once per path.
type Provider struct {
	log   zerolog.Logger
	seeds SeedProvider
	cache Cache
}

// New returns a new instance provider with the given configuration.
func New(log zerolog.Logger, seeds SeedProvider, options ...func(*Config)) (*Provider, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	// Ristretto recommends ten times as many counters as items in the cache
	// when full. A cached key with its path takes about a hundred bytes.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CacheSize) / 100 * 10,
		MaxCost:     int64(cfg.CacheSize),
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize cache: %w", err)
	}

	p := Provider{
		log:   log.With().Str("component", "instance_provider").Logger(),
		seeds: seeds,
		cache: cache,
	}

	return &p, nil
}

// Instance returns the instance of the source at the given path.
func (p *Provider) Instance(ctx context.Context, source factor.Source, path derivation.Path) (factor.Instance, error) {

	if !source.Supports(path) {
		// NewInstance returns the typed failure without touching the seed.
		return factor.NewInstance(source, hd.PublicKey{Path: path})
	}

	key := source.ID.String() + "/" + path.String()
	cached, ok := p.cache.Get(key)
	if ok {
		pub, ok := cached.(hd.PublicKey)
		if ok {
			p.log.Debug().Str("path", path.String()).Msg("public key cache hit")
			return factor.NewInstance(source, pub)
		}
	}

	seed, err := p.seeds.Seed(ctx, source.ID)
	if err != nil {
		return factor.Instance{}, fmt.Errorf("could not get seed: %w", err)
	}
	defer wipe(seed)

	id, err := factor.SourceIDFromSeed(source.ID.Kind, seed)
	if err != nil {
		return factor.Instance{}, fmt.Errorf("could not identify seed: %w", err)
	}
	if id != source.ID {
		return factor.Instance{}, fmt.Errorf("seed does not belong to factor source (source: %s, seed: %s)", source.ID, id)
	}

	pub, err := hd.DerivePublicKey(seed, path)
	if err != nil {
		return factor.Instance{}, fmt.Errorf("could not derive public key: %w", err)
	}

	p.cache.Set(key, pub, int64(len(key)+len(pub.Key.Bytes())))

	p.log.Debug().Str("source", source.ID.String()).Str("path", path.String()).Msg("derived public key")

	return factor.NewInstance(source, pub)
}

// AccountCreation derives the transaction signing instance for the account
// with the given index on the network.
func (p *Provider) AccountCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.AccountCreation, error) {
	path, err := derivation.NewAccountPath(id, derivation.KeyKindTransactionSigning, index)
	if err != nil {
		return factor.AccountCreation{}, fmt.Errorf("could not build account path: %w", err)
	}
	instance, err := p.Instance(ctx, source, derivation.FromCAP26(path))
	if err != nil {
		return factor.AccountCreation{}, fmt.Errorf("could not get account instance: %w", err)
	}
	return factor.NewAccountCreation(instance)
}

// IdentityCreation derives the transaction signing instance for the persona
// with the given index on the network.
func (p *Provider) IdentityCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.IdentityCreation, error) {
	path, err := derivation.NewIdentityPath(id, derivation.KeyKindTransactionSigning, index)
	if err != nil {
		return factor.IdentityCreation{}, fmt.Errorf("could not build identity path: %w", err)
	}
	instance, err := p.Instance(ctx, source, derivation.FromCAP26(path))
	if err != nil {
		return factor.IdentityCreation{}, fmt.Errorf("could not get identity instance: %w", err)
	}
	return factor.NewIdentityCreation(instance)
}

func wipe(seed []byte) {
	for i := range seed {
		seed[i] = 0
	}
}
