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

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/optakt/wallet-kit/wallet/failure"
)

const (
	Secp256k1PrivateKeyLength = btcec.PrivKeyBytesLen
	Secp256k1PublicKeyLength  = btcec.PubKeyBytesLenCompressed
	Secp256k1SignatureLength  = 65
)

// The compact signature format of btcec prefixes the recovery id with this
// offset, plus four for compressed keys.
const compactHeaderOffset = 27 + 4

// Secp256k1PrivateKey is a private scalar on the secp256k1 curve.
type Secp256k1PrivateKey struct {
	key *btcec.PrivateKey
}

// NewSecp256k1PrivateKey creates a private key from its 32-byte big-endian
// scalar. Zero and values at or above the group order are rejected.
func NewSecp256k1PrivateKey(data []byte) (Secp256k1PrivateKey, error) {
	if len(data) != Secp256k1PrivateKeyLength {
		return Secp256k1PrivateKey{}, failure.InvalidKeyBytes{
			Description: failure.NewDescription("secp256k1 private key must be 32 bytes"),
			Curve:       Secp256k1.String(),
			Bytes:       data,
		}
	}
	var scalar btcec.ModNScalar
	overflow := scalar.SetByteSlice(data)
	if overflow || scalar.IsZero() {
		scalar.Zero()
		return Secp256k1PrivateKey{}, failure.InvalidKeyBytes{
			Description: failure.NewDescription("secp256k1 private key is out of range"),
			Curve:       Secp256k1.String(),
			Bytes:       data,
		}
	}
	key := btcec.PrivKeyFromScalar(&scalar)
	scalar.Zero()
	return Secp256k1PrivateKey{key: key}, nil
}

func Secp256k1PrivateKeyFromHex(s string) (Secp256k1PrivateKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Secp256k1PrivateKey{}, failure.InvalidHex{
			Description: failure.NewDescription("private key is not valid hex", failure.WithErr(err)),
			Input:       s,
		}
	}
	return NewSecp256k1PrivateKey(data)
}

func (k Secp256k1PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

func (k Secp256k1PrivateKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

func (k Secp256k1PrivateKey) PublicKey() Secp256k1PublicKey {
	var pub Secp256k1PublicKey
	copy(pub[:], k.key.PubKey().SerializeCompressed())
	return pub
}

// Sign produces a recoverable ECDSA signature over the hash, laid out as the
// recovery id followed by R and S.
func (k Secp256k1PrivateKey) Sign(hash Hash) (Secp256k1Signature, error) {
	compact, err := ecdsa.SignCompact(k.key, hash[:], true)
	if err != nil {
		return Secp256k1Signature{}, fmt.Errorf("could not sign hash: %w", err)
	}
	var sig Secp256k1Signature
	sig[0] = compact[0] - compactHeaderOffset
	copy(sig[1:], compact[1:])
	return sig, nil
}

// Zero overwrites the private scalar in place.
func (k Secp256k1PrivateKey) Zero() {
	if k.key != nil {
		k.key.Zero()
	}
}

func (k Secp256k1PrivateKey) String() string {
	return "secp256k1 private key (redacted)"
}

// Secp256k1PublicKey is a compressed secp256k1 point.
type Secp256k1PublicKey [Secp256k1PublicKeyLength]byte

// NewSecp256k1PublicKey validates that the bytes are a compressed point on
// the curve.
func NewSecp256k1PublicKey(data []byte) (Secp256k1PublicKey, error) {
	if len(data) != Secp256k1PublicKeyLength {
		return Secp256k1PublicKey{}, failure.InvalidKeyBytes{
			Description: failure.NewDescription("secp256k1 public key must be 33 bytes"),
			Curve:       Secp256k1.String(),
			Bytes:       data,
		}
	}
	_, err := btcec.ParsePubKey(data)
	if err != nil {
		return Secp256k1PublicKey{}, failure.InvalidCurvePoint{
			Description: failure.NewDescription("bytes are not a valid secp256k1 point", failure.WithErr(err)),
			Curve:       Secp256k1.String(),
			Bytes:       data,
		}
	}
	var pub Secp256k1PublicKey
	copy(pub[:], data)
	return pub, nil
}

func Secp256k1PublicKeyFromHex(s string) (Secp256k1PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Secp256k1PublicKey{}, failure.InvalidHex{
			Description: failure.NewDescription("public key is not valid hex", failure.WithErr(err)),
			Input:       s,
		}
	}
	return NewSecp256k1PublicKey(data)
}

func (p Secp256k1PublicKey) Bytes() []byte {
	data := make([]byte, Secp256k1PublicKeyLength)
	copy(data, p[:])
	return data
}

func (p Secp256k1PublicKey) Hex() string {
	return hex.EncodeToString(p[:])
}

// IsValid recovers the signer from the signature and compares it with this
// public key.
func (p Secp256k1PublicKey) IsValid(sig Secp256k1Signature, hash Hash) bool {
	if sig[0] > 3 {
		return false
	}
	compact := make([]byte, Secp256k1SignatureLength)
	compact[0] = sig[0] + compactHeaderOffset
	copy(compact[1:], sig[1:])

	recovered, _, err := ecdsa.RecoverCompact(compact, hash[:])
	if err != nil {
		return false
	}
	var got Secp256k1PublicKey
	copy(got[:], recovered.SerializeCompressed())
	return got == p
}

// Secp256k1Signature is a recoverable signature: one byte of recovery id,
// followed by 32 bytes of R and 32 bytes of S.
type Secp256k1Signature [Secp256k1SignatureLength]byte

func NewSecp256k1Signature(data []byte) (Secp256k1Signature, error) {
	if len(data) != Secp256k1SignatureLength {
		return Secp256k1Signature{}, failure.InvalidSignature{
			Description: failure.NewDescription("secp256k1 signature must be 65 bytes"),
			Curve:       Secp256k1.String(),
			Bytes:       data,
		}
	}
	var sig Secp256k1Signature
	copy(sig[:], data)
	return sig, nil
}

func (s Secp256k1Signature) Bytes() []byte {
	data := make([]byte, Secp256k1SignatureLength)
	copy(data, s[:])
	return data
}

func (s Secp256k1Signature) Hex() string {
	return hex.EncodeToString(s[:])
}
