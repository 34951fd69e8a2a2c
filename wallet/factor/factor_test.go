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

package factor_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/factor"
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/hd"
	"github.com/optakt/wallet-kit/wallet/keys"
)

const sourceBody = "77007cf2c8fca82506331cb0afac3264bb6dfe449cb6bd57fb3f4a28ff28a5af"

func testSeed() []byte {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func testSource(t *testing.T, params factor.Parameters) factor.Source {
	t.Helper()

	source, err := factor.NewDeviceSource(testSeed(), params, factor.Hint{Name: "test", Model: "unit", MnemonicWordCount: 24}, time.Unix(0, 0))
	require.NoError(t, err)

	return source
}

func testInstance(t *testing.T, source factor.Source, path derivation.Path) factor.Instance {
	t.Helper()

	pub, err := hd.DerivePublicKey(testSeed(), path)
	require.NoError(t, err)

	instance, err := factor.NewInstance(source, pub)
	require.NoError(t, err)

	return instance
}

func cap26Path(t *testing.T, kind derivation.EntityKind, keyKind derivation.KeyKind, index uint32) derivation.Path {
	t.Helper()

	if kind == derivation.EntityKindIdentity {
		path, err := derivation.NewIdentityPath(network.Mainnet, keyKind, index)
		require.NoError(t, err)
		return derivation.FromCAP26(path)
	}

	path, err := derivation.NewAccountPath(network.Mainnet, keyKind, index)
	require.NoError(t, err)
	return derivation.FromCAP26(path)
}

func TestSourceID(t *testing.T) {
	t.Run("derived from seed", func(t *testing.T) {
		t.Parallel()

		id, err := factor.SourceIDFromSeed(factor.SourceKindDevice, testSeed())

		require.NoError(t, err)
		assert.Equal(t, factor.SourceKindDevice, id.Kind)
		assert.Equal(t, sourceBody, id.Body.Hex())
		assert.Equal(t, "device:"+sourceBody, id.String())
	})

	t.Run("parse round trip", func(t *testing.T) {
		t.Parallel()

		id, err := factor.ParseSourceID("ledgerHQHardwareWallet:" + sourceBody)
		require.NoError(t, err)
		assert.Equal(t, factor.SourceKindLedgerHQHardwareWallet, id.Kind)

		again, err := factor.ParseSourceID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, again)
	})

	t.Run("handles invalid text", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			sourceBody,
			"unknown:" + sourceBody,
			"device:abcd",
			"device:zz",
		}
		for _, input := range inputs {
			_, err := factor.ParseSourceID(input)
			assert.Error(t, err, input)
		}
	})

	t.Run("json shape", func(t *testing.T) {
		t.Parallel()

		id, err := factor.ParseSourceID("device:" + sourceBody)
		require.NoError(t, err)

		data, err := json.Marshal(id)
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"device","body":"`+sourceBody+`"}`, string(data))

		var decoded factor.SourceID
		err = json.Unmarshal(data, &decoded)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	})
}

func TestSource_Supports(t *testing.T) {
	legacy, err := derivation.NewBIP44LikePath(0)
	require.NoError(t, err)
	account := cap26Path(t, derivation.EntityKindAccount, derivation.KeyKindTransactionSigning, 0)

	babylon := testSource(t, factor.BabylonParameters())
	assert.True(t, babylon.Supports(account))
	assert.False(t, babylon.Supports(derivation.FromBIP44Like(legacy)))

	olympia := testSource(t, factor.OlympiaParameters())
	assert.True(t, olympia.Supports(account))
	assert.True(t, olympia.Supports(derivation.FromBIP44Like(legacy)))
}

func TestNewInstance(t *testing.T) {
	legacyPath, err := derivation.NewBIP44LikePath(0)
	require.NoError(t, err)
	legacy := derivation.FromBIP44Like(legacyPath)

	t.Run("handles unsupported scheme", func(t *testing.T) {
		t.Parallel()

		pub, err := hd.DerivePublicKey(testSeed(), legacy)
		require.NoError(t, err)

		_, err = factor.NewInstance(testSource(t, factor.BabylonParameters()), pub)

		assert.ErrorAs(t, err, &failure.UnsupportedDerivation{})
	})

	t.Run("handles key on wrong curve", func(t *testing.T) {
		t.Parallel()

		pub, err := hd.DerivePublicKey(testSeed(), legacy)
		require.NoError(t, err)
		mixed := hd.NewPublicKey(pub.Key, cap26Path(t, derivation.EntityKindAccount, derivation.KeyKindTransactionSigning, 0))

		_, err = factor.NewInstance(testSource(t, factor.OlympiaParameters()), mixed)

		assert.ErrorAs(t, err, &failure.WrongCurve{})
	})
}

func TestNewTransactionSigning(t *testing.T) {
	source := testSource(t, factor.OlympiaParameters())

	t.Run("account creation", func(t *testing.T) {
		t.Parallel()

		path := cap26Path(t, derivation.EntityKindAccount, derivation.KeyKindTransactionSigning, 4)
		instance := testInstance(t, source, path)

		creation, err := factor.NewAccountCreation(instance)

		require.NoError(t, err)
		assert.Equal(t, source.ID, creation.SourceID())
		assert.Equal(t, instance.PublicKey.Key, creation.PublicKey())
		assert.Equal(t, uint32(4), creation.Index())
		assert.Equal(t, network.Mainnet, creation.NetworkID())
		assert.Equal(t, path.String(), creation.Path().String())
		assert.Equal(t, instance, creation.Instance())
	})

	t.Run("identity creation", func(t *testing.T) {
		t.Parallel()

		instance := testInstance(t, source, cap26Path(t, derivation.EntityKindIdentity, derivation.KeyKindTransactionSigning, 0))

		creation, err := factor.NewIdentityCreation(instance)

		require.NoError(t, err)
		assert.Equal(t, derivation.EntityKindIdentity, creation.Path().EntityKind())
	})

	t.Run("handles identity path for account", func(t *testing.T) {
		t.Parallel()

		instance := testInstance(t, source, cap26Path(t, derivation.EntityKindIdentity, derivation.KeyKindTransactionSigning, 0))

		_, err := factor.NewAccountCreation(instance)

		var wrong failure.WrongEntityKind
		require.ErrorAs(t, err, &wrong)
		assert.Equal(t, "account", wrong.Expected)
		assert.Equal(t, "identity", wrong.Found)
	})

	t.Run("handles account path for identity", func(t *testing.T) {
		t.Parallel()

		instance := testInstance(t, source, cap26Path(t, derivation.EntityKindAccount, derivation.KeyKindTransactionSigning, 0))

		_, err := factor.NewIdentityCreation(instance)

		assert.ErrorAs(t, err, &failure.WrongEntityKind{})
	})

	t.Run("handles bip44-like path", func(t *testing.T) {
		t.Parallel()

		legacy, err := derivation.NewBIP44LikePath(0)
		require.NoError(t, err)
		instance := testInstance(t, source, derivation.FromBIP44Like(legacy))

		_, err = factor.NewAccountCreation(instance)

		var wrong failure.WrongEntityKind
		require.ErrorAs(t, err, &wrong)
		assert.Equal(t, "bip44Like", wrong.Found)
	})

	t.Run("handles authentication signing key", func(t *testing.T) {
		t.Parallel()

		instance := testInstance(t, source, cap26Path(t, derivation.EntityKindAccount, derivation.KeyKindAuthenticationSigning, 0))

		_, err := factor.NewAccountCreation(instance)

		var wrong failure.WrongKeyKind
		require.ErrorAs(t, err, &wrong)
		assert.Equal(t, "transactionSigning", wrong.Expected)
		assert.Equal(t, "authenticationSigning", wrong.Found)
	})

	t.Run("json round trip validates again", func(t *testing.T) {
		t.Parallel()

		instance := testInstance(t, source, cap26Path(t, derivation.EntityKindAccount, derivation.KeyKindTransactionSigning, 0))
		creation, err := factor.NewAccountCreation(instance)
		require.NoError(t, err)

		data, err := json.Marshal(creation)
		require.NoError(t, err)

		var decoded factor.AccountCreation
		err = json.Unmarshal(data, &decoded)
		require.NoError(t, err)
		assert.Equal(t, creation, decoded)

		var identity factor.IdentityCreation
		err = json.Unmarshal(data, &identity)
		assert.ErrorAs(t, err, &failure.WrongEntityKind{})
	})

	t.Run("public key matches derivation", func(t *testing.T) {
		t.Parallel()

		instance := testInstance(t, source, cap26Path(t, derivation.EntityKindAccount, derivation.KeyKindTransactionSigning, 0))
		creation, err := factor.NewAccountCreation(instance)
		require.NoError(t, err)

		ed, ok := creation.PublicKey().Ed25519()
		assert.True(t, ok)
		assert.Equal(t, "5addc95594dc00a49d0ddb6d1e82f583d7a5489ccaf828f59c1c7288be13f22c", ed.Hex())
		assert.Equal(t, keys.Curve25519, creation.PublicKey().Curve())
	})
}
