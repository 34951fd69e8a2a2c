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
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// NodeIDLength is the length of the payload of an address: one entity type
// byte followed by the node hash.
const NodeIDLength = 30

// Address is a decoded bech32m address. Addresses are comparable.
type Address struct {
	kind    Kind
	network network.ID
	node    [NodeIDLength]byte
}

// FromPublicKey computes the virtual address of an entity controlled by the
// public key. The entity type byte depends on both the entity kind and the
// curve, so accounts and identities never share an address.
func FromPublicKey(kind derivation.EntityKind, key keys.PublicKey, id network.ID) (Address, error) {
	_, err := network.LookupByID(id)
	if err != nil {
		return Address{}, err
	}

	var typ EntityType
	var addressKind Kind
	switch {
	case kind == derivation.EntityKindAccount && key.Curve() == keys.Curve25519:
		typ, addressKind = GlobalVirtualEd25519Account, KindAccount
	case kind == derivation.EntityKindAccount && key.Curve() == keys.Secp256k1:
		typ, addressKind = GlobalVirtualSecp256k1Account, KindAccount
	case kind == derivation.EntityKindIdentity && key.Curve() == keys.Curve25519:
		typ, addressKind = GlobalVirtualEd25519Identity, KindIdentity
	case kind == derivation.EntityKindIdentity && key.Curve() == keys.Secp256k1:
		typ, addressKind = GlobalVirtualSecp256k1Identity, KindIdentity
	default:
		return Address{}, fmt.Errorf("unsupported entity kind or curve (kind: %s, curve: %s)", kind, key.Curve())
	}

	hash := keys.HashOf(key.Bytes())

	a := Address{
		kind:    addressKind,
		network: id,
	}
	a.node[0] = byte(typ)
	copy(a.node[1:], hash[keys.HashLength-(NodeIDLength-1):])

	return a, nil
}

// Decode decodes an address of any known kind.
func Decode(s string) (Address, error) {
	a, err := decode(s)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

// TryFromBech32 decodes an address that must be of the expected kind.
func TryFromBech32(expected Kind, s string) (Address, error) {
	a, err := decode(s)
	if err != nil {
		return Address{}, err
	}

	if a.kind != expected {
		return Address{}, failure.MismatchingEntityType{
			Description: failure.NewDescription("address is of another entity type", failure.WithString("address", s)),
			Expected:    expected.String(),
			Found:       a.kind.String(),
		}
	}

	// At this point the prefix, the entity type byte and the expected kind
	// agree. A differing prefix means the registries are out of sync.
	want, err := hrp(expected, a.network)
	if err != nil || !strings.HasPrefix(strings.ToLower(s), want+"1") {
		panic(fmt.Sprintf("address prefix does not match entity type (address: %s, kind: %s)", s, expected))
	}

	return a, nil
}

func decode(s string) (Address, error) {
	fail := func(text string, fields ...failure.FieldFunc) error {
		return failure.FailedToDecodeAddressFromBech32{
			Description: failure.NewDescription(text, fields...),
			Address:     s,
		}
	}

	prefix, data, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return Address{}, fail("invalid bech32 encoding", failure.WithErr(err))
	}
	if version != bech32.VersionM {
		return Address{}, fail("address must use bech32m checksum")
	}

	parts := strings.SplitN(prefix, "_", 2)
	if len(parts) != 2 {
		return Address{}, fail("address prefix has no network suffix", failure.WithString("prefix", prefix))
	}
	kind, ok := parseKind(parts[0])
	if !ok {
		return Address{}, fail("unknown address kind", failure.WithString("kind", parts[0]))
	}
	net, err := network.LookupByHRPSuffix(parts[1])
	if err != nil {
		return Address{}, fail("unknown network", failure.WithErr(err))
	}

	node, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fail("invalid payload", failure.WithErr(err))
	}
	if len(node) != NodeIDLength {
		return Address{}, fail("invalid payload length", failure.WithInt("length", len(node)), failure.WithInt("want", NodeIDLength))
	}
	nodeKind, ok := EntityType(node[0]).Kind()
	if !ok || nodeKind != kind {
		return Address{}, fail("entity type does not match address prefix", failure.WithString("entity_type", EntityType(node[0]).String()), failure.WithString("kind", kind.String()))
	}

	a := Address{
		kind:    kind,
		network: net.ID,
	}
	copy(a.node[:], node)

	return a, nil
}

func hrp(kind Kind, id network.ID) (string, error) {
	net, err := network.LookupByID(id)
	if err != nil {
		return "", err
	}
	return kind.String() + "_" + net.HRPSuffix, nil
}

func (a Address) Kind() Kind {
	return a.kind
}

func (a Address) NetworkID() network.ID {
	return a.network
}

func (a Address) EntityType() EntityType {
	return EntityType(a.node[0])
}

func (a Address) NodeID() [NodeIDLength]byte {
	return a.node
}

// IsZero returns whether the address is the zero value.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String returns the bech32m encoding of the address.
func (a Address) String() string {
	prefix, err := hrp(a.kind, a.network)
	if err != nil {
		return ""
	}
	data, err := bech32.ConvertBits(a.node[:], 8, 5, true)
	if err != nil {
		return ""
	}
	s, err := bech32.EncodeM(prefix, data)
	if err != nil {
		return ""
	}
	return s
}

func (a Address) MarshalText() ([]byte, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("can not encode empty address")
	}
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}
