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
	"encoding/json"
	"fmt"

	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// Scheme names the kind of a derivation path. It doubles as the discriminator
// of the serialized form.
type Scheme string

const (
	SchemeCAP26     Scheme = "cap26"
	SchemeBIP44Like Scheme = "bip44Like"
)

// Path is a derivation path: either a CAP26 entity path or a legacy
// BIP44-like path. Paths are comparable with ==.
type Path struct {
	scheme Scheme
	cap26  EntityPath
	bip44  BIP44LikePath
}

// FromCAP26 wraps an entity path. A nil entity path gives the zero Path, which
// has no scheme and cannot be derived or encoded.
func FromCAP26(path EntityPath) Path {
	if path == nil {
		return Path{}
	}
	return Path{scheme: SchemeCAP26, cap26: path}
}

// IsZero reports whether the path has no scheme.
func (p Path) IsZero() bool {
	return p.scheme == ""
}

func FromBIP44Like(path BIP44LikePath) Path {
	return Path{scheme: SchemeBIP44Like, bip44: path}
}

// ParsePath parses the canonical text of a path of either scheme.
func ParsePath(s string) (Path, error) {
	hd, err := ParseHDPath(s)
	if err != nil {
		return Path{}, err
	}
	switch len(hd) {
	case cap26Length:
		p, err := ParseCAP26(s)
		if err != nil {
			return Path{}, err
		}
		return FromCAP26(p), nil
	case bip44LikeLength:
		p, err := ParseBIP44LikePath(s)
		if err != nil {
			return Path{}, err
		}
		return FromBIP44Like(p), nil
	default:
		return Path{}, failure.InvalidPath{
			Description: failure.NewDescription("path matches no known scheme", failure.WithInt("components", len(hd))),
			Path:        s,
		}
	}
}

func (p Path) Scheme() Scheme {
	return p.scheme
}

// AsCAP26 returns the entity path, or false for a BIP44-like path.
func (p Path) AsCAP26() (EntityPath, bool) {
	if p.scheme != SchemeCAP26 {
		return nil, false
	}
	return p.cap26, true
}

func (p Path) AsBIP44Like() (BIP44LikePath, bool) {
	if p.scheme != SchemeBIP44Like {
		return BIP44LikePath{}, false
	}
	return p.bip44, true
}

// AsEntityPath down-casts the path to a specific entity path type. It returns
// false if the path is of another entity kind or not a CAP26 path.
func AsEntityPath[P EntityPath](p Path) (P, bool) {
	var zero P
	entity, ok := p.AsCAP26()
	if !ok {
		return zero, false
	}
	typed, ok := entity.(P)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Curve returns the curve that keys on this path are derived on. It is fixed
// by the scheme.
func (p Path) Curve() keys.Curve {
	if p.scheme == SchemeBIP44Like {
		return keys.Secp256k1
	}
	return keys.Curve25519
}

func (p Path) HDPath() HDPath {
	switch p.scheme {
	case SchemeCAP26:
		return p.cap26.HDPath()
	case SchemeBIP44Like:
		return p.bip44.HDPath()
	default:
		return nil
	}
}

func (p Path) String() string {
	switch p.scheme {
	case SchemeCAP26:
		return p.cap26.String()
	case SchemeBIP44Like:
		return p.bip44.String()
	default:
		return ""
	}
}

func (p Path) Equal(other Path) bool {
	return p == other
}

// Compare orders paths with CAP26 paths first, then by their components.
func (p Path) Compare(other Path) int {
	switch {
	case p.scheme == SchemeCAP26 && other.scheme == SchemeCAP26:
		return Compare(p.cap26, other.cap26)
	case p.scheme == SchemeBIP44Like && other.scheme == SchemeBIP44Like:
		return compareUint(p.bip44.index, other.bip44.index)
	case p.scheme == SchemeCAP26:
		return -1
	default:
		return 1
	}
}

type pathJSON struct {
	Discriminator Scheme `json:"discriminator"`
	Value         string `json:"value"`
}

func (p Path) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return nil, failure.InvalidPath{
			Description: failure.NewDescription("cannot encode path without scheme"),
		}
	}
	return json.Marshal(pathJSON{
		Discriminator: p.scheme,
		Value:         p.String(),
	})
}

func (p *Path) UnmarshalJSON(data []byte) error {
	var raw pathJSON
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("could not decode derivation path: %w", err)
	}

	switch raw.Discriminator {
	case SchemeCAP26:
		entity, err := ParseCAP26(raw.Value)
		if err != nil {
			return fmt.Errorf("could not parse cap26 path: %w", err)
		}
		*p = FromCAP26(entity)
	case SchemeBIP44Like:
		bip44, err := ParseBIP44LikePath(raw.Value)
		if err != nil {
			return fmt.Errorf("could not parse bip44-like path: %w", err)
		}
		*p = FromBIP44Like(bip44)
	default:
		return failure.InvalidPath{
			Description: failure.NewDescription("unknown path discriminator", failure.WithString("discriminator", string(raw.Discriminator))),
			Path:        raw.Value,
		}
	}

	return nil
}
