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
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/wallet-kit/wallet/address"
)

const (
	success = 0
	failure = 1
)

type inspection struct {
	Address    string `json:"address"`
	Kind       string `json:"kind"`
	Network    string `json:"network"`
	NetworkID  uint8  `json:"network_id"`
	EntityType string `json:"entity_type"`
	NodeID     string `json:"node_id"`
}

func main() {
	os.Exit(run())
}

func run() int {

	// Command line parameter initialization.
	var (
		flagKind  string
		flagLevel string
	)

	pflag.StringVarP(&flagKind, "kind", "k", "", "expected address kind (account, identity or resource)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")

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

	if pflag.NArg() == 0 {
		log.Error().Msg("no addresses given, please provide them as arguments")
		return failure
	}

	enc := json.NewEncoder(os.Stdout)
	result := success
	for _, arg := range pflag.Args() {

		var addr address.Address
		if flagKind == "" {
			addr, err = address.Decode(arg)
		} else {
			addr, err = address.TryFromBech32(address.Kind(flagKind), arg)
		}
		if err != nil {
			log.Error().Str("address", arg).Err(err).Msg("could not decode address")
			result = failure
			continue
		}

		node := addr.NodeID()
		out := inspection{
			Address:    addr.String(),
			Kind:       addr.Kind().String(),
			Network:    addr.NetworkID().String(),
			NetworkID:  uint8(addr.NetworkID()),
			EntityType: addr.EntityType().String(),
			NodeID:     hex.EncodeToString(node[:]),
		}
		err = enc.Encode(out)
		if err != nil {
			log.Error().Err(err).Msg("could not write output")
			return failure
		}
	}

	return result
}
