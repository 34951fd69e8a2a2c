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

package address_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/address"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/keys"
)

const (
	ed25519OnePub   = "4cb5abf6ad79fbf5abbccafcc269d85cd2651ed4b885b5869f241aedf0a5ba29"
	secp256k1OnePub = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	ed25519OneNode  = "51a0c2219f58abcbc2ebd2da349acb10773ffbc37b6af91fa8df2486c9ea"

	mainnetAccount  = "account_rdx12xsvygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj022sudkk"
	mainnetIdentity = "identity_rdx122svygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj02qcdznz"
	xrdResource     = "resource_rdx1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxradxrd"
)

func TestFromPublicKey(t *testing.T) {
	ed, err := keys.PublicKeyFromHex(keys.Curve25519, ed25519OnePub)
	require.NoError(t, err)
	secp, err := keys.PublicKeyFromHex(keys.Secp256k1, secp256k1OnePub)
	require.NoError(t, err)

	tests := []struct {
		name    string
		kind    derivation.EntityKind
		key     keys.PublicKey
		network network.ID
		want    string
		typ     address.EntityType
	}{
		{
			name:    "ed25519 mainnet account",
			kind:    derivation.EntityKindAccount,
			key:     ed,
			network: network.Mainnet,
			want:    mainnetAccount,
			typ:     address.GlobalVirtualEd25519Account,
		},
		{
			name:    "ed25519 mainnet identity",
			kind:    derivation.EntityKindIdentity,
			key:     ed,
			network: network.Mainnet,
			want:    mainnetIdentity,
			typ:     address.GlobalVirtualEd25519Identity,
		},
		{
			name:    "ed25519 stokenet account",
			kind:    derivation.EntityKindAccount,
			key:     ed,
			network: network.Stokenet,
			want:    "account_tdx_2_12xsvygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj02el3l9v",
			typ:     address.GlobalVirtualEd25519Account,
		},
		{
			name:    "ed25519 simulator account",
			kind:    derivation.EntityKindAccount,
			key:     ed,
			network: network.Simulator,
			want:    "account_sim12xsvygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj025mrvx2",
			typ:     address.GlobalVirtualEd25519Account,
		},
		{
			name:    "secp256k1 mainnet account",
			kind:    derivation.EntityKindAccount,
			key:     secp,
			network: network.Mainnet,
			want:    "account_rdx168fghy4kapzfnwpmq7t7753425lwklk65r82ys7pz2xzleehk2ap0k",
			typ:     address.GlobalVirtualSecp256k1Account,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := address.FromPublicKey(test.kind, test.key, test.network)
			require.NoError(t, err)

			assert.Equal(t, test.want, got.String())
			assert.Equal(t, test.typ, got.EntityType())
			assert.Equal(t, test.network, got.NetworkID())
		})
	}

	t.Run("node id is derived from key hash", func(t *testing.T) {
		t.Parallel()

		got, err := address.FromPublicKey(derivation.EntityKindAccount, ed, network.Mainnet)
		require.NoError(t, err)

		node := got.NodeID()
		assert.Equal(t, ed25519OneNode, hex.EncodeToString(node[:]))
	})

	t.Run("handles unknown network", func(t *testing.T) {
		t.Parallel()

		_, err := address.FromPublicKey(derivation.EntityKindAccount, ed, network.ID(0x99))
		assert.ErrorAs(t, err, &failure.UnknownNetwork{})
	})
}

func TestDecode(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tests := map[string]string{
			"account_rdx16xlfcpp0vf7e3gqnswv8j9k58n6rjccu58vvspmdva22kf3aplease": "d1be9c042f627d98a01383987916d43cf439631ca1d8c8076d6754ab263d",
			xrdResource: "5da66318c6318c61f5a61b4c6318c6318cf794aa8d295f14e6318c6318c6",
			"resource_rdx1tkk83magp3gjyxrpskfsqwkg4g949rmcjee4tu2xmw93ltw2cz94sq": "5dac78efa80c512218618593003ac8aa0b528f78967355f146db8b1fadca",
			mainnetAccount: ed25519OneNode,
		}
		for encoded, node := range tests {
			got, err := address.Decode(encoded)
			require.NoError(t, err)

			id := got.NodeID()
			assert.Equal(t, node, hex.EncodeToString(id[:]))
			assert.Equal(t, network.Mainnet, got.NetworkID())
			assert.Equal(t, encoded, got.String())
		}
	})

	t.Run("handles invalid addresses", func(t *testing.T) {
		t.Parallel()

		tests := map[string]string{
			"bech32 checksum":         "account_rdx12xsvygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj02lvvpn5",
			"unknown prefix":          "package_rdx12xsvygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj026wllqm",
			"mismatching entity byte": "identity_rdx12xsvygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj02lphz6z",
			"unknown network":         "account_tdx_99_12xsvygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj02xktflf",
			"short payload":           "account_rdx12xsvygvltz4uhsht6tdrfxktzpmnl77ryg6g0p",
			"corrupted checksum":      "account_rdx12xsvygvltz4uhsht6tdrfxktzpmnl77r0d40j8agmujgdj022sudkq",
			"not bech32":              "hello world",
			"empty":                   "",
		}
		for name, encoded := range tests {
			_, err := address.Decode(encoded)

			var decodeErr failure.FailedToDecodeAddressFromBech32
			require.ErrorAs(t, err, &decodeErr, name)
			assert.Equal(t, encoded, decodeErr.Address, name)
		}
	})
}

func TestTryFromBech32(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := address.TryFromBech32(address.KindIdentity, mainnetIdentity)
		require.NoError(t, err)
		assert.Equal(t, address.KindIdentity, got.Kind())
	})

	t.Run("handles mismatching entity type", func(t *testing.T) {
		t.Parallel()

		_, err := address.TryFromBech32(address.KindIdentity, mainnetAccount)

		var mismatch failure.MismatchingEntityType
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "identity", mismatch.Expected)
		assert.Equal(t, "account", mismatch.Found)
	})
}

func TestTypedAddresses(t *testing.T) {
	t.Run("account", func(t *testing.T) {
		t.Parallel()

		got, err := address.ParseAccountAddress(mainnetAccount)
		require.NoError(t, err)
		assert.Equal(t, mainnetAccount, got.String())

		_, err = address.ParseAccountAddress(mainnetIdentity)
		assert.ErrorAs(t, err, &failure.MismatchingEntityType{})
	})

	t.Run("identity", func(t *testing.T) {
		t.Parallel()

		key, err := keys.PublicKeyFromHex(keys.Curve25519, ed25519OnePub)
		require.NoError(t, err)

		got, err := address.NewIdentityAddress(key, network.Mainnet)
		require.NoError(t, err)
		assert.Equal(t, mainnetIdentity, got.String())
	})

	t.Run("resource", func(t *testing.T) {
		t.Parallel()

		got, err := address.ParseResourceAddress(xrdResource)
		require.NoError(t, err)
		assert.True(t, got.IsFungible())

		_, err = address.ParseResourceAddress(mainnetAccount)
		assert.ErrorAs(t, err, &failure.MismatchingEntityType{})
	})

	t.Run("json round trip through text marshaling", func(t *testing.T) {
		t.Parallel()

		type record struct {
			Account address.AccountAddress `json:"address"`
		}

		var decoded record
		err := json.Unmarshal([]byte(`{"address":"`+mainnetAccount+`"}`), &decoded)
		require.NoError(t, err)
		assert.Equal(t, mainnetAccount, decoded.Account.String())

		data, err := json.Marshal(decoded)
		require.NoError(t, err)
		assert.JSONEq(t, `{"address":"`+mainnetAccount+`"}`, string(data))

		err = json.Unmarshal([]byte(`{"address":"`+mainnetIdentity+`"}`), &decoded)
		assert.Error(t, err)
	})

	t.Run("empty address does not marshal", func(t *testing.T) {
		t.Parallel()

		_, err := address.Address{}.MarshalText()
		assert.Error(t, err)
	})
}
