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

	"golang.org/x/crypto/blake2b"

	"github.com/optakt/wallet-kit/wallet/failure"
)

// HashLength is the size in bytes of a blake2b-256 digest.
const HashLength = 32

// Hash is a blake2b-256 digest. Keys always sign hashes, never raw messages.
type Hash [HashLength]byte

// HashOf returns the blake2b-256 digest of the data.
func HashOf(data []byte) Hash {
	return blake2b.Sum256(data)
}

// ParseHash decodes a hex-encoded hash.
func ParseHash(s string) (Hash, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, failure.InvalidHex{
			Description: failure.NewDescription("hash is not valid hex", failure.WithErr(err)),
			Input:       s,
		}
	}
	if len(data) != HashLength {
		return Hash{}, failure.InvalidHex{
			Description: failure.NewDescription("hash has wrong length", failure.WithInt("length", len(data)), failure.WithInt("want", HashLength)),
			Input:       s,
		}
	}
	var hash Hash
	copy(hash[:], data)
	return hash, nil
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}
