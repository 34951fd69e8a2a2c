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

package keys

import (
	"encoding/hex"
	"fmt"
)

// PrivateKey is a private key on either supported curve. It is meant to be
// short-lived: obtain it right before signing and call Zero when done.
type PrivateKey struct {
	curve     Curve
	ed25519   Ed25519PrivateKey
	secp256k1 Secp256k1PrivateKey
}

func PrivateKeyFromEd25519(key Ed25519PrivateKey) PrivateKey {
	return PrivateKey{curve: Curve25519, ed25519: key}
}

func PrivateKeyFromSecp256k1(key Secp256k1PrivateKey) PrivateKey {
	return PrivateKey{curve: Secp256k1, secp256k1: key}
}

func (k PrivateKey) Curve() Curve {
	return k.curve
}

func (k PrivateKey) Ed25519() (Ed25519PrivateKey, bool) {
	if k.curve != Curve25519 {
		return Ed25519PrivateKey{}, false
	}
	return k.ed25519, true
}

func (k PrivateKey) Secp256k1() (Secp256k1PrivateKey, bool) {
	if k.curve != Secp256k1 {
		return Secp256k1PrivateKey{}, false
	}
	return k.secp256k1, true
}

func (k PrivateKey) Bytes() []byte {
	switch k.curve {
	case Curve25519:
		return k.ed25519.Bytes()
	case Secp256k1:
		return k.secp256k1.Bytes()
	default:
		return nil
	}
}

func (k PrivateKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

func (k PrivateKey) PublicKey() PublicKey {
	switch k.curve {
	case Curve25519:
		return PublicKeyFromEd25519(k.ed25519.PublicKey())
	case Secp256k1:
		return PublicKeyFromSecp256k1(k.secp256k1.PublicKey())
	default:
		return PublicKey{}
	}
}

// Sign signs the hash with the key's curve.
func (k PrivateKey) Sign(hash Hash) (Signature, error) {
	switch k.curve {
	case Curve25519:
		return SignatureFromEd25519(k.ed25519.Sign(hash)), nil
	case Secp256k1:
		sig, err := k.secp256k1.Sign(hash)
		if err != nil {
			return Signature{}, err
		}
		return SignatureFromSecp256k1(sig), nil
	default:
		return Signature{}, fmt.Errorf("unsupported curve (%s)", k.curve)
	}
}

// Zero overwrites the key material.
func (k PrivateKey) Zero() {
	switch k.curve {
	case Curve25519:
		k.ed25519.Zero()
	case Secp256k1:
		k.secp256k1.Zero()
	}
}

func (k PrivateKey) String() string {
	return fmt.Sprintf("%s private key (redacted)", k.curve)
}
