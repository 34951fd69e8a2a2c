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

package network

import (
	"fmt"
	"sort"

	"github.com/optakt/wallet-kit/wallet/failure"
)

// ID is the numeric discriminant of a network. It is embedded in derivation
// paths and selects the network part of address prefixes.
type ID uint8

const (
	Mainnet   ID = 0x01
	Stokenet  ID = 0x02
	Adapanet  ID = 0x0a
	Nebunet   ID = 0x0b
	Kisharnet ID = 0x0c
	Ansharnet ID = 0x0d
	Zabanet   ID = 0x0e
	Enkinet   ID = 0x21
	Hammunet  ID = 0x22
	Nergalnet ID = 0x23
	Mardunet  ID = 0x24
	Simulator ID = 0xf2
)

// Network describes a recognized network.
type Network struct {
	ID                 ID
	LogicalName        string
	DisplayDescription string
	HRPSuffix          string
}

var (
	byID     map[ID]Network
	byName   map[string]Network
	bySuffix map[string]Network
)

func init() {

	// The catalog is fixed at build time. Changing an ID or a suffix changes
	// every address derived on that network, so entries are append-only.
	networks := []Network{
		{ID: Mainnet, LogicalName: "mainnet", DisplayDescription: "Mainnet", HRPSuffix: "rdx"},
		{ID: Stokenet, LogicalName: "stokenet", DisplayDescription: "Stokenet", HRPSuffix: "tdx_2_"},
		{ID: Adapanet, LogicalName: "adapanet", DisplayDescription: "Adapanet (Test Network)", HRPSuffix: "tdx_a_"},
		{ID: Nebunet, LogicalName: "nebunet", DisplayDescription: "Betanet", HRPSuffix: "tdx_b_"},
		{ID: Kisharnet, LogicalName: "kisharnet", DisplayDescription: "RCnet (Test Network)", HRPSuffix: "tdx_c_"},
		{ID: Ansharnet, LogicalName: "ansharnet", DisplayDescription: "RCnet-V2 (Test Network)", HRPSuffix: "tdx_d_"},
		{ID: Zabanet, LogicalName: "zabanet", DisplayDescription: "RCnet-V3 (Test Network)", HRPSuffix: "tdx_e_"},
		{ID: Enkinet, LogicalName: "enkinet", DisplayDescription: "Enkinet (Test Network)", HRPSuffix: "tdx_21_"},
		{ID: Hammunet, LogicalName: "hammunet", DisplayDescription: "Hammunet (Test Network)", HRPSuffix: "tdx_22_"},
		{ID: Nergalnet, LogicalName: "nergalnet", DisplayDescription: "Nergalnet (Test Network)", HRPSuffix: "tdx_23_"},
		{ID: Mardunet, LogicalName: "mardunet", DisplayDescription: "Mardunet (Test Network)", HRPSuffix: "tdx_24_"},
		{ID: Simulator, LogicalName: "simulator", DisplayDescription: "Simulator", HRPSuffix: "sim"},
	}

	byID = make(map[ID]Network, len(networks))
	byName = make(map[string]Network, len(networks))
	bySuffix = make(map[string]Network, len(networks))
	for _, network := range networks {
		byID[network.ID] = network
		byName[network.LogicalName] = network
		bySuffix[network.HRPSuffix] = network
	}
}

// LookupByID returns the network with the given discriminant.
func LookupByID(id ID) (Network, error) {
	network, ok := byID[id]
	if !ok {
		return Network{}, failure.UnknownNetwork{
			Description: failure.NewDescription("no network registered for id"),
			ID:          uint8(id),
		}
	}
	return network, nil
}

// LookupByName returns the network with the given logical name.
func LookupByName(name string) (Network, error) {
	network, ok := byName[name]
	if !ok {
		return Network{}, failure.UnknownNetwork{
			Description: failure.NewDescription("no network registered for name"),
			Name:        name,
		}
	}
	return network, nil
}

// LookupByHRPSuffix returns the network whose addresses end their
// human-readable part with the given suffix.
func LookupByHRPSuffix(suffix string) (Network, error) {
	network, ok := bySuffix[suffix]
	if !ok {
		return Network{}, failure.UnknownNetwork{
			Description: failure.NewDescription("no network registered for address suffix", failure.WithString("suffix", suffix)),
			Name:        suffix,
		}
	}
	return network, nil
}

// All returns every registered network, ordered by ID.
func All() []Network {
	networks := make([]Network, 0, len(byID))
	for _, network := range byID {
		networks = append(networks, network)
	}
	sort.Slice(networks, func(i int, j int) bool {
		return networks[i].ID < networks[j].ID
	})
	return networks
}

// Network returns the registry entry for the ID.
func (i ID) Network() (Network, error) {
	return LookupByID(i)
}

func (i ID) String() string {
	network, ok := byID[i]
	if !ok {
		return fmt.Sprintf("unknown(%d)", uint8(i))
	}
	return network.LogicalName
}
