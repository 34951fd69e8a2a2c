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
	"encoding/json"
	"fmt"

	"github.com/optakt/wallet-kit/wallet/failure"
)

// PublicKey is a public key on either supported curve. The zero value is not
// a valid key. PublicKey is comparable and can be used as a map key.
type PublicKey struct {
	curve     Curve
	ed25519   Ed25519PublicKey
	secp256k1 Secp256k1PublicKey
}

func PublicKeyFromEd25519(key Ed25519PublicKey) PublicKey {
	return PublicKey{curve: Curve25519, ed25519: key}
}

func PublicKeyFromSecp256k1(key Secp256k1PublicKey) PublicKey {
	return PublicKey{curve: Secp256k1, secp256k1: key}
}

// NewPublicKey decodes and validates a public key on the given curve.
func NewPublicKey(curve Curve, data []byte) (PublicKey, error) {
	switch curve {
	case Curve25519:
		key, err := NewEd25519PublicKey(data)
		if err != nil {
			return PublicKey{}, err
		}
		return PublicKeyFromEd25519(key), nil
	case Secp256k1:
		key, err := NewSecp256k1PublicKey(data)
		if err != nil {
			return PublicKey{}, err
		}
		return PublicKeyFromSecp256k1(key), nil
	default:
		return PublicKey{}, failure.InvalidKeyBytes{
			Description: failure.NewDescription("unsupported curve"),
			Curve:       curve.String(),
			Bytes:       data,
		}
	}
}

// PublicKeyFromHex decodes and validates a hex-encoded public key.
func PublicKeyFromHex(curve Curve, s string) (PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, failure.InvalidHex{
			Description: failure.NewDescription("public key is not valid hex", failure.WithErr(err)),
			Input:       s,
		}
	}
	return NewPublicKey(curve, data)
}

func (p PublicKey) Curve() Curve {
	return p.curve
}

// Ed25519 returns the Curve25519 key, or false if the key is on another curve.
func (p PublicKey) Ed25519() (Ed25519PublicKey, bool) {
	if p.curve != Curve25519 {
		return Ed25519PublicKey{}, false
	}
	return p.ed25519, true
}

// Secp256k1 returns the secp256k1 key, or false if the key is on another curve.
func (p PublicKey) Secp256k1() (Secp256k1PublicKey, bool) {
	if p.curve != Secp256k1 {
		return Secp256k1PublicKey{}, false
	}
	return p.secp256k1, true
}

func (p PublicKey) Bytes() []byte {
	switch p.curve {
	case Curve25519:
		return p.ed25519.Bytes()
	case Secp256k1:
		return p.secp256k1.Bytes()
	default:
		return nil
	}
}

func (p PublicKey) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// IsValid verifies a signature over the hash. A signature on a different
// curve than the key is never valid.
func (p PublicKey) IsValid(sig Signature, hash Hash) bool {
	switch p.curve {
	case Curve25519:
		s, ok := sig.Ed25519()
		return ok && p.ed25519.IsValid(s, hash)
	case Secp256k1:
		s, ok := sig.Secp256k1()
		return ok && p.secp256k1.IsValid(s, hash)
	default:
		return false
	}
}

func (p PublicKey) String() string {
	return fmt.Sprintf("%s:%s", p.curve, p.Hex())
}

type publicKeyJSON struct {
	Curve          Curve  `json:"curve"`
	CompressedData string `json:"compressedData"`
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicKeyJSON{
		Curve:          p.curve,
		CompressedData: p.Hex(),
	})
}

func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var raw publicKeyJSON
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("could not decode public key: %w", err)
	}
	key, err := PublicKeyFromHex(raw.Curve, raw.CompressedData)
	if err != nil {
		return fmt.Errorf("could not parse public key: %w", err)
	}
	*p = key
	return nil
}
