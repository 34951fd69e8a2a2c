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

package derivation

import (
	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/failure"
)

// cap26Length is the number of components of a CAP26 path:
// purpose, coin type, network, entity kind, key kind and index.
const cap26Length = 6

// EntityPath is a CAP26 path whose entity kind is fixed by its concrete type.
// AccountPath and IdentityPath are the only implementations.
type EntityPath interface {
	NetworkID() network.ID
	EntityKind() EntityKind
	KeyKind() KeyKind
	Index() uint32
	HDPath() HDPath
	String() string

	entityPath()
}

type cap26 struct {
	network network.ID
	keyKind KeyKind
	index   uint32
}

func (c cap26) NetworkID() network.ID {
	return c.network
}

func (c cap26) KeyKind() KeyKind {
	return c.keyKind
}

func (c cap26) Index() uint32 {
	return c.index
}

func (c cap26) entityPath() {}

func (c cap26) hdPath(kind EntityKind) HDPath {
	return HDPath{
		Hardened(Purpose),
		Hardened(CoinType),
		Hardened(uint32(c.network)),
		Hardened(uint32(kind)),
		Hardened(uint32(c.keyKind)),
		Hardened(c.index),
	}
}

func newCAP26(kind EntityKind, id network.ID, keyKind KeyKind, index uint32) (cap26, error) {
	_, err := network.LookupByID(id)
	if err != nil {
		return cap26{}, err
	}
	_, err = ParseKeyKind(uint32(keyKind))
	if err != nil {
		return cap26{}, err
	}
	err = checkIndex(index)
	if err != nil {
		return cap26{}, failure.InvalidPath{
			Description: failure.NewDescription("invalid entity index", failure.WithErr(err)),
			Path:        cap26{network: id, keyKind: keyKind, index: index}.hdPath(kind).String(),
		}
	}
	return cap26{network: id, keyKind: keyKind, index: index}, nil
}

// AccountPath is a CAP26 path of a key belonging to an account.
type AccountPath struct {
	cap26
}

// NewAccountPath creates the path of an account key on the network.
func NewAccountPath(id network.ID, keyKind KeyKind, index uint32) (AccountPath, error) {
	c, err := newCAP26(EntityKindAccount, id, keyKind, index)
	if err != nil {
		return AccountPath{}, err
	}
	return AccountPath{cap26: c}, nil
}

// ParseAccountPath parses a canonical CAP26 path, which must be an account path.
func ParseAccountPath(s string) (AccountPath, error) {
	kind := EntityKindAccount
	c, _, err := parseCAP26(s, &kind)
	if err != nil {
		return AccountPath{}, err
	}
	return AccountPath{cap26: c}, nil
}

func (a AccountPath) EntityKind() EntityKind {
	return EntityKindAccount
}

func (a AccountPath) HDPath() HDPath {
	return a.hdPath(EntityKindAccount)
}

func (a AccountPath) String() string {
	return a.HDPath().String()
}

// IdentityPath is a CAP26 path of a key belonging to an identity (persona).
type IdentityPath struct {
	cap26
}

func NewIdentityPath(id network.ID, keyKind KeyKind, index uint32) (IdentityPath, error) {
	c, err := newCAP26(EntityKindIdentity, id, keyKind, index)
	if err != nil {
		return IdentityPath{}, err
	}
	return IdentityPath{cap26: c}, nil
}

func ParseIdentityPath(s string) (IdentityPath, error) {
	kind := EntityKindIdentity
	c, _, err := parseCAP26(s, &kind)
	if err != nil {
		return IdentityPath{}, err
	}
	return IdentityPath{cap26: c}, nil
}

func (i IdentityPath) EntityKind() EntityKind {
	return EntityKindIdentity
}

func (i IdentityPath) HDPath() HDPath {
	return i.hdPath(EntityKindIdentity)
}

func (i IdentityPath) String() string {
	return i.HDPath().String()
}

// ParseCAP26 parses a canonical CAP26 path of any entity kind.
func ParseCAP26(s string) (EntityPath, error) {
	c, kind, err := parseCAP26(s, nil)
	if err != nil {
		return nil, err
	}
	if kind == EntityKindIdentity {
		return IdentityPath{cap26: c}, nil
	}
	return AccountPath{cap26: c}, nil
}

// parseCAP26 parses the path and checks the entity kind against the expected
// one, if given.
func parseCAP26(s string, expected *EntityKind) (cap26, EntityKind, error) {
	path, err := ParseHDPath(s)
	if err != nil {
		return cap26{}, 0, err
	}
	if len(path) != cap26Length {
		return cap26{}, 0, failure.InvalidPath{
			Description: failure.NewDescription("wrong number of path components", failure.WithInt("have", len(path)), failure.WithInt("want", cap26Length)),
			Path:        s,
		}
	}
	for i, c := range path {
		if !c.IsHardened() {
			return cap26{}, 0, failure.InvalidPath{
				Description: failure.NewDescription("all path components must be hardened", failure.WithInt("position", i+1)),
				Path:        s,
			}
		}
	}
	if path[0].Index() != Purpose || path[1].Index() != CoinType {
		return cap26{}, 0, failure.InvalidPath{
			Description: failure.NewDescription("invalid purpose or coin type", failure.WithString("purpose", path[0].String()), failure.WithString("coin_type", path[1].String())),
			Path:        s,
		}
	}

	value := path[2].Index()
	if value > 0xff {
		return cap26{}, 0, failure.InvalidPath{
			Description: failure.NewDescription("network component out of range", failure.WithUint64("network", uint64(value))),
			Path:        s,
		}
	}
	id := network.ID(value)
	_, err = network.LookupByID(id)
	if err != nil {
		return cap26{}, 0, err
	}

	kind := EntityKind(path[3].Index())
	switch {
	case expected != nil && kind != *expected:
		return cap26{}, 0, failure.WrongEntityKind{
			Description: failure.NewDescription("path has wrong entity kind", failure.WithString("path", s)),
			Expected:    expected.String(),
			Found:       kind.String(),
		}
	case kind != EntityKindAccount && kind != EntityKindIdentity:
		return cap26{}, 0, failure.WrongEntityKind{
			Description: failure.NewDescription("path has unknown entity kind", failure.WithString("path", s)),
			Expected:    "account or identity",
			Found:       kind.String(),
		}
	}

	keyKind, err := ParseKeyKind(path[4].Index())
	if err != nil {
		return cap26{}, 0, err
	}

	c := cap26{
		network: id,
		keyKind: keyKind,
		index:   path[5].Index(),
	}

	return c, kind, nil
}

// Compare orders entity paths by network, entity kind, key kind and index.
// It returns -1, 0 or 1.
func Compare(a EntityPath, b EntityPath) int {
	switch {
	case a.NetworkID() != b.NetworkID():
		return compareUint(uint32(a.NetworkID()), uint32(b.NetworkID()))
	case a.EntityKind() != b.EntityKind():
		return compareUint(uint32(a.EntityKind()), uint32(b.EntityKind()))
	case a.KeyKind() != b.KeyKind():
		return compareUint(uint32(a.KeyKind()), uint32(b.KeyKind()))
	default:
		return compareUint(a.Index(), b.Index())
	}
}

func compareUint(a uint32, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
