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
)

// Kind is the category of an address. It is the part of the human-readable
// prefix before the network suffix.
type Kind string

const (
	KindAccount  Kind = "account"
	KindIdentity Kind = "identity"
	KindResource Kind = "resource"
)

func (k Kind) String() string {
	return string(k)
}

func parseKind(s string) (Kind, bool) {
	kind := Kind(s)
	switch kind {
	case KindAccount, KindIdentity, KindResource:
		return kind, true
	default:
		return "", false
	}
}

// EntityType is the first byte of a node ID. It encodes the address kind and,
// for virtual entities, the curve of the key the address was derived from.
type EntityType uint8

const (
	GlobalVirtualEd25519Account    EntityType = 0x51
	GlobalVirtualSecp256k1Account  EntityType = 0xd1
	GlobalVirtualEd25519Identity   EntityType = 0x52
	GlobalVirtualSecp256k1Identity EntityType = 0xd2
	GlobalAccount                  EntityType = 0xc1
	GlobalIdentity                 EntityType = 0xc2
	GlobalFungibleResource         EntityType = 0x5d
	GlobalNonFungibleResource      EntityType = 0x9a
)

// Kind returns the address kind of the entity type, or false if the type is
// not one this package handles.
func (e EntityType) Kind() (Kind, bool) {
	switch e {
	case GlobalVirtualEd25519Account, GlobalVirtualSecp256k1Account, GlobalAccount:
		return KindAccount, true
	case GlobalVirtualEd25519Identity, GlobalVirtualSecp256k1Identity, GlobalIdentity:
		return KindIdentity, true
	case GlobalFungibleResource, GlobalNonFungibleResource:
		return KindResource, true
	default:
		return "", false
	}
}

func (e EntityType) String() string {
	return fmt.Sprintf("0x%02x", uint8(e))
}
