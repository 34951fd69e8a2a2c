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
	"fmt"

	"github.com/tyler-smith/go-bip32"

	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// deriveSecp256k1 walks the path with BIP32 private child derivation.
func deriveSecp256k1(seed []byte, path derivation.HDPath) (keys.Secp256k1PrivateKey, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return keys.Secp256k1PrivateKey{}, fmt.Errorf("could not create master key: %w", err)
	}
	defer wipeKey(key)
	padKey(key)

	for i, c := range path {
		child, err := key.NewChildKey(uint32(c))
		if err != nil {
			return keys.Secp256k1PrivateKey{}, fmt.Errorf("could not derive child key (position: %d): %w", i+1, err)
		}
		wipeKey(key)
		key = child
		padKey(key)
	}

	return keys.NewSecp256k1PrivateKey(key.Key)
}

// padKey restores the leading zeros of a private key that was serialized
// without them, so that hardened steps hash the full 32 bytes.
func padKey(key *bip32.Key) {
	if len(key.Key) >= 32 {
		return
	}
	padded := make([]byte, 32)
	copy(padded[32-len(key.Key):], key.Key)
	wipe(key.Key)
	key.Key = padded
}

func wipeKey(key *bip32.Key) {
	wipe(key.Key, key.ChainCode)
}
