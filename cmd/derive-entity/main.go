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

package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/dgraph-io/badger/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/wallet-kit/codec/zbor"
	"github.com/optakt/wallet-kit/service/instances"
	"github.com/optakt/wallet-kit/service/metrics"
	"github.com/optakt/wallet-kit/service/storage"
	"github.com/optakt/wallet-kit/service/validator"
	"github.com/optakt/wallet-kit/service/wallet"
	"github.com/optakt/wallet-kit/wallet/factor"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAppearance int
		flagCache      string
		flagDir        string
		flagKind       string
		flagLevel      string
		flagMetrics    string
		flagName       string
		flagNetwork    string
		flagSeed       string
	)

	pflag.IntVarP(&flagAppearance, "appearance", "a", -1, "appearance of the account (defaults to the one matching its index)")
	pflag.StringVar(&flagCache, "cache-size", "8MB", "maximum size of the public key cache")
	pflag.StringVarP(&flagDir, "dir", "d", "wallet", "path to database directory for the wallet")
	pflag.StringVarP(&flagKind, "kind", "k", "account", "kind of entity to create (account or persona)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to serve metrics until interrupted (disabled if empty)")
	pflag.StringVarP(&flagName, "name", "n", "Unnamed", "display name of the new entity")
	pflag.StringVar(&flagNetwork, "network", "mainnet", "logical name of the network")
	pflag.StringVarP(&flagSeed, "seed", "s", "", "hex-encoded seed of the device factor source")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	var cacheSize datasize.ByteSize
	err = cacheSize.UnmarshalText([]byte(flagCache))
	if err != nil {
		log.Error().Str("cache_size", flagCache).Err(err).Msg("could not parse cache size")
		return failure
	}

	if flagSeed == "" {
		log.Error().Msg("seed is required, please provide it with (-s, --seed)")
		return failure
	}
	seed, err := hex.DecodeString(flagSeed)
	if err != nil {
		log.Error().Err(err).Msg("could not decode seed")
		return failure
	}
	defer wipe(seed)

	appearance, err := appearanceFlag(flagAppearance)
	if err != nil {
		log.Error().Int("appearance", flagAppearance).Err(err).Msg("invalid appearance")
		return failure
	}

	// Open the wallet database.
	db, err := badger.Open(storage.DefaultOptions(flagDir))
	if err != nil {
		log.Error().Str("dir", flagDir).Err(err).Msg("could not open wallet database")
		return failure
	}
	defer func() {
		err := db.Close()
		if err != nil {
			log.Error().Err(err).Msg("could not close wallet database")
		}
	}()

	// The storage library encodes and compresses records transparently, while
	// the metrics codec keeps track of the sizes involved.
	reg := prometheus.NewRegistry()
	codec := metrics.NewCodec(reg, zbor.NewCodec())
	lib := storage.New(codec)
	secure := storage.NewSecureStorage(db, lib)

	source, err := factor.NewDeviceSource(seed, factor.BabylonParameters(), factor.Hint{Name: "cli", Model: "derive-entity"}, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("could not create factor source")
		return failure
	}
	err = secure.Save(seedKey(source.ID), seed)
	if err != nil {
		log.Error().Err(err).Msg("could not store seed")
		return failure
	}

	// The instance provider derives public keys from the stored seed, and the
	// metrics decorator counts every derivation.
	provider, err := instances.New(log, &vault{secure: secure}, instances.WithCacheSize(uint64(cacheSize)))
	if err != nil {
		log.Error().Err(err).Msg("could not initialize instance provider")
		return failure
	}
	derive := metrics.NewInstances(reg, provider)

	w := wallet.New(log, db, lib, validator.New(), derive)

	_, err = w.Source(source.ID)
	if errors.Is(err, badger.ErrKeyNotFound) {
		err = w.AddSource(source)
	}
	if err != nil {
		log.Error().Err(err).Msg("could not register factor source")
		return failure
	}

	ctx := context.Background()
	switch flagKind {

	case "account":
		req := wallet.CreateAccountRequest{
			SourceID:     source.ID,
			Network:      flagNetwork,
			DisplayName:  flagName,
			AppearanceID: appearance,
		}
		account, err := w.CreateAccount(ctx, req)
		if err != nil {
			log.Error().Err(err).Msg("could not create account")
			return failure
		}
		fmt.Println(account.Address().String())

	case "persona":
		req := wallet.CreatePersonaRequest{
			SourceID:    source.ID,
			Network:     flagNetwork,
			DisplayName: flagName,
		}
		persona, err := w.CreatePersona(ctx, req)
		if err != nil {
			log.Error().Err(err).Msg("could not create persona")
			return failure
		}
		fmt.Println(persona.Address().String())

	default:
		log.Error().Str("kind", flagKind).Msg("invalid entity kind, must be account or persona")
		return failure
	}

	if flagMetrics == "" {
		return success
	}

	// Serve the metrics until the user interrupts the process.
	server := metrics.NewServer(log, flagMetrics, reg, reg)
	done := make(chan error, 1)
	go func() {
		done <- server.Start()
	}()

	select {
	case <-sig:
		log.Info().Msg("metrics server stopping")
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Msg("metrics server failed")
			return failure
		}
		return success
	}

	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = server.Stop(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not stop metrics server")
		return failure
	}

	return success
}
