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

package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/wallet-kit/wallet/failure"
)

func TestDescription(t *testing.T) {
	descBody := "test"
	genericErr := errors.New("dummy error")
	index := 84
	network := "mainnet"
	kinds := []string{"transactionSigning", "authenticationSigning"}

	t.Run("full description with fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithErr(genericErr),
			failure.WithUint64("index", 42),
			failure.WithInt("segment", index),
			failure.WithString("network", network),
			failure.WithStrings("kinds", kinds...),
			failure.WithHex("bytes", []byte{0xca, 0xfe}),
		)

		assert.Equal(t, desc.Text, descBody)
		assert.NotEqual(t, desc.String(), descBody)
		assert.Contains(t, desc.Fields.String(), genericErr.Error())
		assert.Contains(t, desc.Fields.String(), "index: 42")
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("segment: %v", index))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("network: %v", network))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("kinds: %v", kinds))
		assert.Contains(t, desc.Fields.String(), "bytes: cafe")
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody)

		assert.Equal(t, desc.Text, descBody)
		assert.Equal(t, desc.String(), descBody)
	})

	t.Run("iterate fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody, failure.WithString("a", "1"), failure.WithString("b", "2"))

		var keys []string
		desc.Fields.Iterate(func(key string, _ interface{}) {
			keys = append(keys, key)
		})

		assert.Equal(t, []string{"a", "b"}, keys)
	})
}

func TestErrors(t *testing.T) {
	desc := failure.NewDescription("test")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unknown network by id",
			err:  failure.UnknownNetwork{Description: desc, ID: 3},
			want: "unknown network (id: 3): test",
		},
		{
			name: "unknown network by name",
			err:  failure.UnknownNetwork{Description: desc, Name: "moonnet"},
			want: "unknown network (name: moonnet): test",
		},
		{
			name: "invalid key bytes",
			err:  failure.InvalidKeyBytes{Description: desc, Curve: "curve25519", Bytes: []byte{1, 2, 3}},
			want: "invalid key bytes (curve: curve25519, length: 3): test",
		},
		{
			name: "invalid curve point",
			err:  failure.InvalidCurvePoint{Description: desc, Curve: "secp256k1", Bytes: []byte{0xff}},
			want: "invalid curve point (curve: secp256k1, bytes: ff): test",
		},
		{
			name: "wrong entity kind",
			err:  failure.WrongEntityKind{Description: desc, Expected: "account", Found: "identity"},
			want: "wrong entity kind (expected: account, found: identity): test",
		},
		{
			name: "mismatching address",
			err:  failure.MismatchingAddress{Description: desc, Expected: "account_a", Found: "account_b"},
			want: "mismatching entity address (expected: account_a, found: account_b): test",
		},
		{
			name: "unknown key kind",
			err:  failure.UnknownKeyKind{Description: desc, Value: 1},
			want: "unknown key kind (value: 1): test",
		},
		{
			name: "invalid request",
			err:  failure.InvalidRequest{Description: desc, Field: "display_name"},
			want: "invalid request (field: display_name): test",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.err.Error())
		})
	}
}
