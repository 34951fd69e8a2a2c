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

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/OneOfOne/xxhash"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/address"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// EncodeKey builds a key from the prefix and the segments. Integers are
// encoded big-endian so that keys sort in numerical order. Strings are
// replaced by their xxhash checksum, while byte slices are appended as is.
func EncodeKey(prefix uint8, segments ...interface{}) []byte {
	key := []byte{prefix}
	var val []byte
	for _, segment := range segments {
		switch s := segment.(type) {
		case uint64:
			val = make([]byte, 8)
			binary.BigEndian.PutUint64(val, s)
		case uint32:
			val = make([]byte, 4)
			binary.BigEndian.PutUint32(val, s)
		case uint8:
			val = []byte{s}
		case network.ID:
			val = []byte{uint8(s)}
		case derivation.EntityKind:
			val = make([]byte, 4)
			binary.BigEndian.PutUint32(val, uint32(s))
		case keys.Hash:
			val = make([]byte, keys.HashLength)
			copy(val, s[:])
		case [address.NodeIDLength]byte:
			val = make([]byte, address.NodeIDLength)
			copy(val, s[:])
		case string:
			val = make([]byte, 8)
			binary.BigEndian.PutUint64(val, xxhash.ChecksumString64(s))
		case []byte:
			val = make([]byte, len(s))
			copy(val, s)
		default:
			panic(fmt.Sprintf("unknown type (%T)", segment))
		}
		key = append(key, val...)
	}

	return key
}
