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

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/address"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/factor"
	"github.com/optakt/wallet-kit/wallet/failure"
)

// Persona is an identity entity.
type Persona struct {
	networkID network.ID
	address   address.IdentityAddress
	security  SecurityState[derivation.IdentityPath]
	name      DisplayName
	flags     Flags
}

func NewPersona(instance factor.IdentityCreation, index uint32, name DisplayName) (*Persona, error) {
	addr, err := address.NewIdentityAddress(instance.PublicKey(), instance.NetworkID())
	if err != nil {
		return nil, fmt.Errorf("could not derive identity address: %w", err)
	}

	p := Persona{
		networkID: instance.NetworkID(),
		address:   addr,
		security:  NewUnsecured(index, instance),
		name:      name,
		flags:     Flags{},
	}

	return &p, nil
}

func (p *Persona) NetworkID() network.ID {
	return p.networkID
}

func (p *Persona) Address() address.IdentityAddress {
	return p.address
}

func (p *Persona) SecurityState() SecurityState[derivation.IdentityPath] {
	return p.security
}

func (p *Persona) DisplayName() DisplayName {
	return p.name
}

func (p *Persona) SetDisplayName(name DisplayName) {
	p.name = name
}

func (p *Persona) Flags() Flags {
	return p.flags.clone()
}

func (p *Persona) SetFlags(flags Flags) {
	p.flags = flags.clone()
}

func (p *Persona) Compare(other *Persona) int {
	return compareStates(p.security, other.security)
}

func (p *Persona) String() string {
	return fmt.Sprintf("%s | %s", p.name, p.address)
}

type personaRecord struct {
	NetworkID     network.ID              `json:"networkID"`
	Address       address.IdentityAddress `json:"address"`
	DisplayName   DisplayName             `json:"displayName"`
	SecurityState json.RawMessage         `json:"securityState"`
	Flags         Flags                   `json:"flags"`
}

func (p *Persona) MarshalJSON() ([]byte, error) {
	security, err := marshalSecurityState(p.security)
	if err != nil {
		return nil, err
	}
	record := personaRecord{
		NetworkID:     p.networkID,
		Address:       p.address,
		DisplayName:   p.name,
		SecurityState: security,
		Flags:         p.flags,
	}
	return json.Marshal(record)
}

func (p *Persona) UnmarshalJSON(data []byte) error {
	var record personaRecord
	err := json.Unmarshal(data, &record)
	if err != nil {
		return fmt.Errorf("could not decode persona: %w", err)
	}
	if record.Address.NetworkID() != record.NetworkID {
		return fmt.Errorf("persona address is on another network (address: %s, network: %s)", record.Address, record.NetworkID)
	}
	security, err := unmarshalSecurityState[derivation.IdentityPath](record.SecurityState)
	if err != nil {
		return err
	}
	instance, ok := controllingInstance(security)
	if ok {
		want, err := address.NewIdentityAddress(instance.PublicKey(), instance.NetworkID())
		if err != nil {
			return fmt.Errorf("could not derive persona address: %w", err)
		}
		if want != record.Address {
			return failure.MismatchingAddress{
				Description: failure.NewDescription("persona address does not match its transaction signing key"),
				Expected:    want.String(),
				Found:       record.Address.String(),
			}
		}
	}
	flags := record.Flags
	if flags == nil {
		flags = Flags{}
	}

	*p = Persona{
		networkID: record.NetworkID,
		address:   record.Address,
		security:  security,
		name:      record.DisplayName,
		flags:     flags,
	}

	return nil
}
