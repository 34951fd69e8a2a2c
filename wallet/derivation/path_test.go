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

package derivation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/keys"
)

func TestBIP44LikePath(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		for _, index := range []uint32{0, 1, 1000, derivation.HardenedOffset - 1} {
			path, err := derivation.NewBIP44LikePath(index)
			require.NoError(t, err)

			parsed, err := derivation.ParseBIP44LikePath(path.String())
			require.NoError(t, err)
			assert.Equal(t, path, parsed)
		}
	})

	t.Run("canonical text", func(t *testing.T) {
		t.Parallel()

		path, err := derivation.NewBIP44LikePath(2)

		require.NoError(t, err)
		assert.Equal(t, "m/44H/1022H/0H/0/2H", path.String())
	})

	t.Run("handles malformed paths", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"m/44H/1022H/0H/0H/2H",
			"m/44H/1022H/0H/0/2",
			"m/44H/1022H/1H/0/2H",
			"m/44H/1022H/0H/1/2H",
			"m/44H/1022H/0H/0",
			"m/44H/1022H/0H/0/abc",
		}
		for _, input := range inputs {
			_, err := derivation.ParseBIP44LikePath(input)
			assert.ErrorAs(t, err, &failure.InvalidBIP44LikePath{}, input)
		}
	})
}

func TestPath(t *testing.T) {
	account, err := derivation.NewAccountPath(network.Mainnet, derivation.KeyKindTransactionSigning, 0)
	require.NoError(t, err)
	identity, err := derivation.NewIdentityPath(network.Mainnet, derivation.KeyKindTransactionSigning, 0)
	require.NoError(t, err)
	legacy, err := derivation.NewBIP44LikePath(0)
	require.NoError(t, err)

	t.Run("curve follows scheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, keys.Curve25519, derivation.FromCAP26(account).Curve())
		assert.Equal(t, keys.Secp256k1, derivation.FromBIP44Like(legacy).Curve())
	})

	t.Run("down casts", func(t *testing.T) {
		t.Parallel()

		path := derivation.FromCAP26(account)

		got, ok := derivation.AsEntityPath[derivation.AccountPath](path)
		assert.True(t, ok)
		assert.Equal(t, account, got)

		_, ok = derivation.AsEntityPath[derivation.IdentityPath](path)
		assert.False(t, ok)

		_, ok = derivation.AsEntityPath[derivation.AccountPath](derivation.FromBIP44Like(legacy))
		assert.False(t, ok)

		_, ok = path.AsBIP44Like()
		assert.False(t, ok)
	})

	t.Run("equality and ordering", func(t *testing.T) {
		t.Parallel()

		again, err := derivation.ParseAccountPath(account.String())
		require.NoError(t, err)

		assert.True(t, derivation.FromCAP26(account).Equal(derivation.FromCAP26(again)))
		assert.False(t, derivation.FromCAP26(account).Equal(derivation.FromCAP26(identity)))
		assert.Equal(t, -1, derivation.FromCAP26(account).Compare(derivation.FromBIP44Like(legacy)))
		assert.Equal(t, 1, derivation.FromBIP44Like(legacy).Compare(derivation.FromCAP26(identity)))
		assert.Equal(t, 0, derivation.FromBIP44Like(legacy).Compare(derivation.FromBIP44Like(legacy)))
	})

	t.Run("parse dispatches on scheme", func(t *testing.T) {
		t.Parallel()

		path, err := derivation.ParsePath("m/44H/1022H/0H/0/5H")
		require.NoError(t, err)
		assert.Equal(t, derivation.SchemeBIP44Like, path.Scheme())

		path, err = derivation.ParsePath("m/44H/1022H/1H/618H/1460H/0H")
		require.NoError(t, err)
		assert.Equal(t, derivation.SchemeCAP26, path.Scheme())

		_, err = derivation.ParsePath("m/44H/1022H")
		assert.ErrorAs(t, err, &failure.InvalidPath{})
	})

	t.Run("json shape", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(derivation.FromCAP26(account))
		require.NoError(t, err)
		assert.JSONEq(t, `{"discriminator":"cap26","value":"m/44H/1022H/1H/525H/1460H/0H"}`, string(data))

		data, err = json.Marshal(derivation.FromBIP44Like(legacy))
		require.NoError(t, err)
		assert.JSONEq(t, `{"discriminator":"bip44Like","value":"m/44H/1022H/0H/0/0H"}`, string(data))
	})

	t.Run("json round trip", func(t *testing.T) {
		t.Parallel()

		for _, path := range []derivation.Path{
			derivation.FromCAP26(account),
			derivation.FromCAP26(identity),
			derivation.FromBIP44Like(legacy),
		} {
			data, err := json.Marshal(path)
			require.NoError(t, err)

			var decoded derivation.Path
			err = json.Unmarshal(data, &decoded)
			require.NoError(t, err)
			assert.Equal(t, path, decoded)
		}
	})

	t.Run("nil entity path gives zero path", func(t *testing.T) {
		t.Parallel()

		path := derivation.FromCAP26(nil)

		assert.True(t, path.IsZero())
		assert.Equal(t, derivation.Scheme(""), path.Scheme())
		assert.Equal(t, "", path.String())
		assert.Nil(t, path.HDPath())
		_, ok := path.AsCAP26()
		assert.False(t, ok)

		_, err := json.Marshal(path)
		assert.ErrorAs(t, err, &failure.InvalidPath{})
	})

	t.Run("json rejects unknown discriminator", func(t *testing.T) {
		t.Parallel()

		var decoded derivation.Path
		err := json.Unmarshal([]byte(`{"discriminator":"slip44","value":"m/44H"}`), &decoded)

		assert.ErrorAs(t, err, &failure.InvalidPath{})
	})
}
