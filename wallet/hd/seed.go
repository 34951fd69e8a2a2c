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
	"crypto/hmac"
	"crypto/sha512"

	"github.com/optakt/wallet-kit/wallet/failure"
)

// Seed length bounds, in bytes, as defined by BIP32.
const (
	MinSeedLength = 16
	MaxSeedLength = 64
)

func checkSeed(seed []byte) error {
	if len(seed) < MinSeedLength || len(seed) > MaxSeedLength {
		return failure.InvalidSeed{
			Description: failure.NewDescription("seed length out of bounds", failure.WithInt("min", MinSeedLength), failure.WithInt("max", MaxSeedLength)),
			Length:      len(seed),
		}
	}
	return nil
}

// hmacSHA512 returns the left and right halves of HMAC-SHA512(key, data).
// Callers own both halves and must wipe them.
func hmacSHA512(key []byte, data []byte) ([]byte, []byte) {
	mac := hmac.New(sha512.New, key)
	_, _ = mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

func wipe(buffers ...[]byte) {
	for _, buf := range buffers {
		for i := range buf {
			buf[i] = 0
		}
	}
}
