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
	"crypto/ed25519"
	"encoding/hex"

	"filippo.io/edwards25519"

	"github.com/optakt/wallet-kit/wallet/failure"
)

const (
	Ed25519PrivateKeyLength = ed25519.SeedSize
	Ed25519PublicKeyLength  = ed25519.PublicKeySize
	Ed25519SignatureLength  = ed25519.SignatureSize
)

// Ed25519PrivateKey is a private key on Curve25519, constructed from its
// 32-byte seed form.
type Ed25519PrivateKey struct {
	key ed25519.PrivateKey
}

// NewEd25519PrivateKey creates a private key from its 32-byte encoding.
func NewEd25519PrivateKey(data []byte) (Ed25519PrivateKey, error) {
	if len(data) != Ed25519PrivateKeyLength {
		return Ed25519PrivateKey{}, failure.InvalidKeyBytes{
			Description: failure.NewDescription("ed25519 private key must be 32 bytes"),
			Curve:       Curve25519.String(),
			Bytes:       data,
		}
	}
	return Ed25519PrivateKey{key: ed25519.NewKeyFromSeed(data)}, nil
}

// Ed25519PrivateKeyFromHex creates a private key from its hex encoding.
func Ed25519PrivateKeyFromHex(s string) (Ed25519PrivateKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Ed25519PrivateKey{}, failure.InvalidHex{
			Description: failure.NewDescription("private key is not valid hex", failure.WithErr(err)),
			Input:       s,
		}
	}
	return NewEd25519PrivateKey(data)
}

// Bytes returns a copy of the 32-byte encoding of the key.
func (k Ed25519PrivateKey) Bytes() []byte {
	data := make([]byte, Ed25519PrivateKeyLength)
	copy(data, k.key.Seed())
	return data
}

func (k Ed25519PrivateKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

func (k Ed25519PrivateKey) PublicKey() Ed25519PublicKey {
	var pub Ed25519PublicKey
	copy(pub[:], k.key.Public().(ed25519.PublicKey))
	return pub
}

// Sign signs the given hash.
func (k Ed25519PrivateKey) Sign(hash Hash) Ed25519Signature {
	var sig Ed25519Signature
	copy(sig[:], ed25519.Sign(k.key, hash[:]))
	return sig
}

// Zero overwrites the key material in place. The key is unusable afterwards.
func (k Ed25519PrivateKey) Zero() {
	for i := range k.key {
		k.key[i] = 0
	}
}

func (k Ed25519PrivateKey) String() string {
	return "ed25519 private key (redacted)"
}

// Ed25519PublicKey is a public key on Curve25519 in its 32-byte compressed
// point encoding.
type Ed25519PublicKey [Ed25519PublicKeyLength]byte

// NewEd25519PublicKey validates that the bytes encode a point on the curve.
func NewEd25519PublicKey(data []byte) (Ed25519PublicKey, error) {
	if len(data) != Ed25519PublicKeyLength {
		return Ed25519PublicKey{}, failure.InvalidKeyBytes{
			Description: failure.NewDescription("ed25519 public key must be 32 bytes"),
			Curve:       Curve25519.String(),
			Bytes:       data,
		}
	}
	_, err := new(edwards25519.Point).SetBytes(data)
	if err != nil {
		return Ed25519PublicKey{}, failure.InvalidCurvePoint{
			Description: failure.NewDescription("bytes are not a valid ed25519 point", failure.WithErr(err)),
			Curve:       Curve25519.String(),
			Bytes:       data,
		}
	}
	var pub Ed25519PublicKey
	copy(pub[:], data)
	return pub, nil
}

// Ed25519PublicKeyFromHex decodes and validates a hex-encoded public key.
func Ed25519PublicKeyFromHex(s string) (Ed25519PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Ed25519PublicKey{}, failure.InvalidHex{
			Description: failure.NewDescription("public key is not valid hex", failure.WithErr(err)),
			Input:       s,
		}
	}
	return NewEd25519PublicKey(data)
}

func (p Ed25519PublicKey) Bytes() []byte {
	data := make([]byte, Ed25519PublicKeyLength)
	copy(data, p[:])
	return data
}

func (p Ed25519PublicKey) Hex() string {
	return hex.EncodeToString(p[:])
}

// IsValid returns whether the signature was produced over the hash by the
// private key matching this public key.
func (p Ed25519PublicKey) IsValid(sig Ed25519Signature, hash Hash) bool {
	return ed25519.Verify(p[:], hash[:], sig[:])
}

type Ed25519Signature [Ed25519SignatureLength]byte

func NewEd25519Signature(data []byte) (Ed25519Signature, error) {
	if len(data) != Ed25519SignatureLength {
		return Ed25519Signature{}, failure.InvalidSignature{
			Description: failure.NewDescription("ed25519 signature must be 64 bytes"),
			Curve:       Curve25519.String(),
			Bytes:       data,
		}
	}
	var sig Ed25519Signature
	copy(sig[:], data)
	return sig, nil
}

func (s Ed25519Signature) Bytes() []byte {
	data := make([]byte, Ed25519SignatureLength)
	copy(data, s[:])
	return data
}

func (s Ed25519Signature) Hex() string {
	return hex.EncodeToString(s[:])
}
