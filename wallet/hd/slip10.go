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
	"encoding/binary"

	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/keys"
)

var ed25519Curve = []byte("ed25519 seed")

// deriveEd25519 walks the path with SLIP-10 for Ed25519, which only defines
// hardened children.
func deriveEd25519(seed []byte, path derivation.HDPath) (keys.Ed25519PrivateKey, error) {
	key, chain := hmacSHA512(ed25519Curve, seed)
	defer wipe(key, chain)

	data := make([]byte, 1+32+4)
	defer wipe(data)

	for i, c := range path {
		if !c.IsHardened() {
			return keys.Ed25519PrivateKey{}, failure.InvalidPath{
				Description: failure.NewDescription("ed25519 derivation requires hardened components", failure.WithInt("position", i+1)),
				Path:        path.String(),
			}
		}

		data[0] = 0x00
		copy(data[1:33], key)
		binary.BigEndian.PutUint32(data[33:], uint32(c))

		childKey, childChain := hmacSHA512(chain, data)
		copy(key, childKey)
		copy(chain, childChain)
		wipe(childKey, childChain)
	}

	return keys.NewEd25519PrivateKey(key)
}
