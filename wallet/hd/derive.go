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

package hd

import (
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// Derive derives the private key at the path from the seed. The curve is
// chosen by the path scheme: CAP26 paths use SLIP-10 on Ed25519 and
// BIP44-like paths use BIP32 on secp256k1. The caller must Zero the returned
// key once done with it.
func Derive(seed []byte, path derivation.Path) (PrivateKey, error) {
	err := checkSeed(seed)
	if err != nil {
		return PrivateKey{}, err
	}

	switch path.Scheme() {
	case derivation.SchemeCAP26:
		key, err := deriveEd25519(seed, path.HDPath())
		if err != nil {
			return PrivateKey{}, err
		}
		return PrivateKey{key: keys.PrivateKeyFromEd25519(key), path: path}, nil

	case derivation.SchemeBIP44Like:
		key, err := deriveSecp256k1(seed, path.HDPath())
		if err != nil {
			return PrivateKey{}, err
		}
		return PrivateKey{key: keys.PrivateKeyFromSecp256k1(key), path: path}, nil

	default:
		return PrivateKey{}, failure.InvalidPath{
			Description: failure.NewDescription("derivation path has no scheme"),
			Path:        path.String(),
		}
	}
}

// DerivePublicKey derives the public key at the path, wiping the private key
// before returning.
func DerivePublicKey(seed []byte, path derivation.Path) (PublicKey, error) {
	priv, err := Derive(seed, path)
	if err != nil {
		return PublicKey{}, err
	}
	defer priv.Zero()

	return priv.PublicKey(), nil
}

// SourceIDBody derives the key at the factor source identification path and
// returns the hash of its public key. The hash identifies the seed without
// revealing any key used by an entity.
func SourceIDBody(seed []byte) (keys.Hash, error) {
	err := checkSeed(seed)
	if err != nil {
		return keys.Hash{}, err
	}

	priv, err := deriveEd25519(seed, derivation.GetIDPath())
	if err != nil {
		return keys.Hash{}, err
	}
	defer priv.Zero()

	pub := priv.PublicKey()
	return keys.HashOf(pub[:]), nil
}
