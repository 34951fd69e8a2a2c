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
	"github.com/optakt/wallet-kit/wallet/deposit"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/factor"
	"github.com/optakt/wallet-kit/wallet/failure"
)

// Account is an account entity. Its network and address never change after
// creation. The remaining fields have a single writer and getters return
// copies.
type Account struct {
	networkID  network.ID
	address    address.AccountAddress
	security   SecurityState[derivation.AccountPath]
	name       DisplayName
	appearance AppearanceID
	flags      Flags
	deposits   *deposit.ThirdPartyDeposits
}

// NewAccount creates an unsecured account controlled by the instance. The
// address is derived from the public key of the instance on the network of
// its path.
func NewAccount(instance factor.AccountCreation, index uint32, name DisplayName, appearance AppearanceID) (*Account, error) {
	addr, err := address.NewAccountAddress(instance.PublicKey(), instance.NetworkID())
	if err != nil {
		return nil, fmt.Errorf("could not derive account address: %w", err)
	}

	a := Account{
		networkID:  instance.NetworkID(),
		address:    addr,
		security:   NewUnsecured(index, instance),
		name:       name,
		appearance: appearance,
		flags:      Flags{},
		deposits:   deposit.Default(),
	}

	return &a, nil
}

func (a *Account) NetworkID() network.ID {
	return a.networkID
}

func (a *Account) Address() address.AccountAddress {
	return a.address
}

func (a *Account) SecurityState() SecurityState[derivation.AccountPath] {
	return a.security
}

func (a *Account) DisplayName() DisplayName {
	return a.name
}

func (a *Account) SetDisplayName(name DisplayName) {
	a.name = name
}

func (a *Account) AppearanceID() AppearanceID {
	return a.appearance
}

func (a *Account) SetAppearanceID(appearance AppearanceID) {
	a.appearance = appearance
}

func (a *Account) Flags() Flags {
	return a.flags.clone()
}

func (a *Account) SetFlags(flags Flags) {
	a.flags = flags.clone()
}

// ThirdPartyDeposits returns a copy of the deposit policy of the account.
func (a *Account) ThirdPartyDeposits() *deposit.ThirdPartyDeposits {
	return a.deposits.Clone()
}

// SetThirdPartyDeposits replaces the deposit policy with a copy of the given
// one. A nil policy resets it to the default.
func (a *Account) SetThirdPartyDeposits(deposits *deposit.ThirdPartyDeposits) {
	if deposits == nil {
		a.deposits = deposit.Default()
		return
	}
	a.deposits = deposits.Clone()
}

// UpdateThirdPartyDeposits applies the update to a copy of the deposit policy
// and keeps the result only if the update succeeds. The policy passed to the
// update is not retained by the account.
func (a *Account) UpdateThirdPartyDeposits(update func(*deposit.ThirdPartyDeposits) error) error {
	working := a.deposits.Clone()
	err := update(working)
	if err != nil {
		return err
	}
	a.deposits = working.Clone()
	return nil
}

// Compare orders accounts by entity index.
func (a *Account) Compare(other *Account) int {
	return compareStates(a.security, other.security)
}

func (a *Account) String() string {
	return fmt.Sprintf("%s | %s", a.name, a.address)
}

type onLedgerSettings struct {
	ThirdPartyDeposits *deposit.ThirdPartyDeposits `json:"thirdPartyDeposits"`
}

type accountRecord struct {
	NetworkID        network.ID             `json:"networkID"`
	Address          address.AccountAddress `json:"address"`
	DisplayName      DisplayName            `json:"displayName"`
	SecurityState    json.RawMessage        `json:"securityState"`
	AppearanceID     AppearanceID           `json:"appearanceID"`
	Flags            Flags                  `json:"flags"`
	OnLedgerSettings onLedgerSettings       `json:"onLedgerSettings"`
}

func (a *Account) MarshalJSON() ([]byte, error) {
	security, err := marshalSecurityState(a.security)
	if err != nil {
		return nil, err
	}
	record := accountRecord{
		NetworkID:        a.networkID,
		Address:          a.address,
		DisplayName:      a.name,
		SecurityState:    security,
		AppearanceID:     a.appearance,
		Flags:            a.flags,
		OnLedgerSettings: onLedgerSettings{ThirdPartyDeposits: a.deposits},
	}
	return json.Marshal(record)
}

// UnmarshalJSON decodes an account record. The address must belong to the
// record network and be derived from the key controlling the account.
func (a *Account) UnmarshalJSON(data []byte) error {
	var record accountRecord
	err := json.Unmarshal(data, &record)
	if err != nil {
		return fmt.Errorf("could not decode account: %w", err)
	}
	if record.Address.NetworkID() != record.NetworkID {
		return fmt.Errorf("account address is on another network (address: %s, network: %s)", record.Address, record.NetworkID)
	}
	security, err := unmarshalSecurityState[derivation.AccountPath](record.SecurityState)
	if err != nil {
		return err
	}
	instance, ok := controllingInstance(security)
	if ok {
		want, err := address.NewAccountAddress(instance.PublicKey(), instance.NetworkID())
		if err != nil {
			return fmt.Errorf("could not derive account address: %w", err)
		}
		if want != record.Address {
			return failure.MismatchingAddress{
				Description: failure.NewDescription("account address does not match its transaction signing key"),
				Expected:    want.String(),
				Found:       record.Address.String(),
			}
		}
	}
	deposits := record.OnLedgerSettings.ThirdPartyDeposits
	if deposits == nil {
		deposits = deposit.Default()
	}
	flags := record.Flags
	if flags == nil {
		flags = Flags{}
	}

	*a = Account{
		networkID:  record.NetworkID,
		address:    record.Address,
		security:   security,
		name:       record.DisplayName,
		appearance: record.AppearanceID,
		flags:      flags,
		deposits:   deposits,
	}

	return nil
}
