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

package address

import (
	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// AccountAddress is an address that is known to be an account address.
type AccountAddress struct {
	Address
}

func NewAccountAddress(key keys.PublicKey, id network.ID) (AccountAddress, error) {
	a, err := FromPublicKey(derivation.EntityKindAccount, key, id)
	if err != nil {
		return AccountAddress{}, err
	}
	return AccountAddress{Address: a}, nil
}

func ParseAccountAddress(s string) (AccountAddress, error) {
	a, err := TryFromBech32(KindAccount, s)
	if err != nil {
		return AccountAddress{}, err
	}
	return AccountAddress{Address: a}, nil
}

func (a *AccountAddress) UnmarshalText(text []byte) error {
	decoded, err := ParseAccountAddress(string(text))
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

// IdentityAddress is an address that is known to be an identity address.
type IdentityAddress struct {
	Address
}

func NewIdentityAddress(key keys.PublicKey, id network.ID) (IdentityAddress, error) {
	a, err := FromPublicKey(derivation.EntityKindIdentity, key, id)
	if err != nil {
		return IdentityAddress{}, err
	}
	return IdentityAddress{Address: a}, nil
}

func ParseIdentityAddress(s string) (IdentityAddress, error) {
	a, err := TryFromBech32(KindIdentity, s)
	if err != nil {
		return IdentityAddress{}, err
	}
	return IdentityAddress{Address: a}, nil
}

func (i *IdentityAddress) UnmarshalText(text []byte) error {
	decoded, err := ParseIdentityAddress(string(text))
	if err != nil {
		return err
	}
	*i = decoded
	return nil
}

// ResourceAddress is the address of a fungible or non-fungible resource.
type ResourceAddress struct {
	Address
}

func ParseResourceAddress(s string) (ResourceAddress, error) {
	a, err := TryFromBech32(KindResource, s)
	if err != nil {
		return ResourceAddress{}, err
	}
	return ResourceAddress{Address: a}, nil
}

// IsFungible returns whether the resource is fungible.
func (r ResourceAddress) IsFungible() bool {
	return r.EntityType() == GlobalFungibleResource
}

func (r *ResourceAddress) UnmarshalText(text []byte) error {
	decoded, err := ParseResourceAddress(string(text))
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}
