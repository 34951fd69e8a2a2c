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

package storage_test

import (
	"testing"

	"github.com/OneOfOne/xxhash"
	"github.com/stretchr/testify/assert"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/service/storage"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/keys"
)

func TestEncodeKey(t *testing.T) {
	var hash keys.Hash
	hash[0], hash[31] = 0xaa, 0xbb

	checksum := xxhash.ChecksumString64("device")

	tests := []struct {
		name string

		segments []interface{}

		wantKey   []byte
		wantPanic bool
	}{
		{
			name: "integers are big-endian",

			segments: []interface{}{uint64(42), uint32(7), uint8(3)},

			wantKey: []byte{
				0x1,
				0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x2a,
				0x0, 0x0, 0x0, 0x7,
				0x3,
			},
		},
		{
			name: "domain types",

			segments: []interface{}{network.Stokenet, derivation.EntityKindAccount},

			wantKey: []byte{0x1, 0x2, 0x0, 0x0, 0x2, 0x0d},
		},
		{
			name: "hash is copied",

			segments: []interface{}{hash},

			wantKey: append([]byte{0x1}, hash[:]...),
		},
		{
			name: "strings are hashed",

			segments: []interface{}{"device"},

			wantKey: []byte{
				0x1,
				byte(checksum >> 56), byte(checksum >> 48), byte(checksum >> 40), byte(checksum >> 32),
				byte(checksum >> 24), byte(checksum >> 16), byte(checksum >> 8), byte(checksum),
			},
		},
		{
			name: "bytes are appended",

			segments: []interface{}{[]byte("mnemonic")},

			wantKey: append([]byte{0x1}, []byte("mnemonic")...),
		},
		{
			name: "empty segments",

			wantKey: []byte{0x1},
		},
		{
			name: "unsupported types panic",

			segments: []interface{}{struct{}{}},

			wantPanic: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if test.wantPanic {
				assert.Panics(t, func() {
					storage.EncodeKey(1, test.segments...)
				})
				return
			}

			var got []byte
			assert.NotPanics(t, func() {
				got = storage.EncodeKey(1, test.segments...)
			})

			assert.Equal(t, test.wantKey, got)
		})
	}
}
