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

package keys_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/keys"
)

const (
	ed25519One    = "0000000000000000000000000000000000000000000000000000000000000001"
	ed25519OnePub = "4cb5abf6ad79fbf5abbccafcc269d85cd2651ed4b885b5869f241aedf0a5ba29"
	secp256k1Pub  = "02517b88916e7f315bb682f9926b14bc67a0e4246f8a419b986269e1a7e61fffa7"
)

func TestHashOf(t *testing.T) {
	hash := keys.HashOf([]byte("abc"))

	assert.Equal(t, "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319", hash.Hex())

	parsed, err := keys.ParseHash(hash.Hex())
	require.NoError(t, err)
	assert.Equal(t, hash, parsed)

	_, err = keys.ParseHash("abcd")
	assert.ErrorAs(t, err, &failure.InvalidHex{})
}

func TestEd25519PrivateKey(t *testing.T) {
	t.Run("public key vectors", func(t *testing.T) {
		t.Parallel()

		vectors := map[string]string{
			"cf52dbc7bb2663223e99fb31799281b813b939440a372d0aa92eb5f5b8516003": "d24cc6af91c3f103d7f46e5691ce2af9fea7d90cfb89a89d5bba4b513b34be3b",
			ed25519One: ed25519OnePub,
		}
		for priv, pub := range vectors {
			key, err := keys.Ed25519PrivateKeyFromHex(priv)
			require.NoError(t, err)

			assert.Equal(t, pub, key.PublicKey().Hex())
			assert.Equal(t, priv, key.Hex())
		}
	})

	t.Run("handles wrong length", func(t *testing.T) {
		t.Parallel()

		data := []byte{1, 2, 3}
		_, err := keys.NewEd25519PrivateKey(data)

		var invalid failure.InvalidKeyBytes
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, data, invalid.Bytes)
	})

	t.Run("handles invalid hex", func(t *testing.T) {
		t.Parallel()

		_, err := keys.Ed25519PrivateKeyFromHex("zz")

		assert.ErrorAs(t, err, &failure.InvalidHex{})
	})

	t.Run("sign and verify", func(t *testing.T) {
		t.Parallel()

		key, err := keys.Ed25519PrivateKeyFromHex(ed25519One)
		require.NoError(t, err)

		hash := keys.HashOf([]byte("message"))
		sig := key.Sign(hash)

		assert.True(t, key.PublicKey().IsValid(sig, hash))
		assert.False(t, key.PublicKey().IsValid(sig, keys.HashOf([]byte("other"))))
	})

	t.Run("zero wipes key material", func(t *testing.T) {
		t.Parallel()

		key, err := keys.Ed25519PrivateKeyFromHex(ed25519One)
		require.NoError(t, err)

		key.Zero()

		assert.Equal(t, make([]byte, keys.Ed25519PrivateKeyLength), key.Bytes())
	})

	t.Run("string does not leak key", func(t *testing.T) {
		t.Parallel()

		key, err := keys.Ed25519PrivateKeyFromHex(ed25519One)
		require.NoError(t, err)

		assert.NotContains(t, key.String(), ed25519One)
		assert.NotContains(t, keys.PrivateKeyFromEd25519(key).String(), ed25519One)
	})
}

func TestEd25519PublicKey(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		key, err := keys.Ed25519PublicKeyFromHex(ed25519OnePub)

		require.NoError(t, err)
		assert.Equal(t, ed25519OnePub, key.Hex())
	})

	t.Run("handles point not on curve", func(t *testing.T) {
		t.Parallel()

		data := make([]byte, 32)
		data[0] = 0x02
		_, err := keys.NewEd25519PublicKey(data)

		var invalid failure.InvalidCurvePoint
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, data, invalid.Bytes)
	})

	t.Run("handles wrong length", func(t *testing.T) {
		t.Parallel()

		_, err := keys.NewEd25519PublicKey(make([]byte, 33))

		assert.ErrorAs(t, err, &failure.InvalidKeyBytes{})
	})
}

func TestSecp256k1PrivateKey(t *testing.T) {
	t.Run("public key of one is the generator", func(t *testing.T) {
		t.Parallel()

		key, err := keys.Secp256k1PrivateKeyFromHex(ed25519One)
		require.NoError(t, err)

		assert.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", key.PublicKey().Hex())
		assert.Equal(t, ed25519One, key.Hex())
	})

	t.Run("handles out of range scalars", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			strings.Repeat("00", 32),
			"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		}
		for _, input := range inputs {
			_, err := keys.Secp256k1PrivateKeyFromHex(input)
			assert.ErrorAs(t, err, &failure.InvalidKeyBytes{})
		}
	})

	t.Run("sign and verify", func(t *testing.T) {
		t.Parallel()

		key, err := keys.Secp256k1PrivateKeyFromHex("336a928a1a090a82699a87684c60692f8241283c2af3c1ba7cee9c80bf1db76d")
		require.NoError(t, err)

		hash := keys.HashOf([]byte("message"))
		sig, err := key.Sign(hash)
		require.NoError(t, err)

		assert.LessOrEqual(t, sig[0], byte(3))
		assert.True(t, key.PublicKey().IsValid(sig, hash))
		assert.False(t, key.PublicKey().IsValid(sig, keys.HashOf([]byte("other"))))

		tampered := sig
		tampered[0] = 7
		assert.False(t, key.PublicKey().IsValid(tampered, hash))
	})
}

func TestSecp256k1PublicKey(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		key, err := keys.Secp256k1PublicKeyFromHex(secp256k1Pub)

		require.NoError(t, err)
		assert.Equal(t, secp256k1Pub, key.Hex())
	})

	t.Run("handles point not on curve", func(t *testing.T) {
		t.Parallel()

		data := make([]byte, 33)
		data[0] = 0x02
		data[32] = 0x05
		_, err := keys.NewSecp256k1PublicKey(data)

		var invalid failure.InvalidCurvePoint
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, data, invalid.Bytes)
	})

	t.Run("handles uncompressed length", func(t *testing.T) {
		t.Parallel()

		_, err := keys.NewSecp256k1PublicKey(make([]byte, 65))

		assert.ErrorAs(t, err, &failure.InvalidKeyBytes{})
	})
}

func TestPublicKey(t *testing.T) {
	edKey, err := keys.Ed25519PublicKeyFromHex(ed25519OnePub)
	require.NoError(t, err)
	secpKey, err := keys.Secp256k1PublicKeyFromHex(secp256k1Pub)
	require.NoError(t, err)

	t.Run("down cast accessors", func(t *testing.T) {
		t.Parallel()

		ed := keys.PublicKeyFromEd25519(edKey)
		got, ok := ed.Ed25519()
		assert.True(t, ok)
		assert.Equal(t, edKey, got)
		_, ok = ed.Secp256k1()
		assert.False(t, ok)

		secp := keys.PublicKeyFromSecp256k1(secpKey)
		_, ok = secp.Ed25519()
		assert.False(t, ok)
		assert.Equal(t, keys.Secp256k1, secp.Curve())
	})

	t.Run("constructs from curve and bytes", func(t *testing.T) {
		t.Parallel()

		data, _ := hex.DecodeString(secp256k1Pub)
		key, err := keys.NewPublicKey(keys.Secp256k1, data)

		require.NoError(t, err)
		assert.Equal(t, keys.PublicKeyFromSecp256k1(secpKey), key)

		_, err = keys.NewPublicKey(keys.Curve25519, data)
		assert.ErrorAs(t, err, &failure.InvalidKeyBytes{})
	})

	t.Run("json round trip", func(t *testing.T) {
		t.Parallel()

		key := keys.PublicKeyFromEd25519(edKey)
		data, err := json.Marshal(key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"curve":"curve25519","compressedData":"`+ed25519OnePub+`"}`, string(data))

		var decoded keys.PublicKey
		err = json.Unmarshal(data, &decoded)
		require.NoError(t, err)
		assert.Equal(t, key, decoded)
	})

	t.Run("json rejects invalid point", func(t *testing.T) {
		t.Parallel()

		var decoded keys.PublicKey
		err := json.Unmarshal([]byte(`{"curve":"secp256k1","compressedData":"020000000000000000000000000000000000000000000000000000000000000005"}`), &decoded)

		assert.ErrorAs(t, err, &failure.InvalidCurvePoint{})
	})
}

func TestPrivateKey(t *testing.T) {
	hash := keys.HashOf([]byte("curve agnostic"))

	edKey, err := keys.Ed25519PrivateKeyFromHex(ed25519One)
	require.NoError(t, err)
	secpKey, err := keys.Secp256k1PrivateKeyFromHex(ed25519One)
	require.NoError(t, err)

	tests := []struct {
		name  string
		key   keys.PrivateKey
		curve keys.Curve
	}{
		{name: "ed25519", key: keys.PrivateKeyFromEd25519(edKey), curve: keys.Curve25519},
		{name: "secp256k1", key: keys.PrivateKeyFromSecp256k1(secpKey), curve: keys.Secp256k1},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			sig, err := test.key.Sign(hash)
			require.NoError(t, err)

			assert.Equal(t, test.curve, test.key.Curve())
			assert.Equal(t, test.curve, sig.Curve())
			assert.Equal(t, test.curve, test.key.PublicKey().Curve())
			assert.True(t, test.key.PublicKey().IsValid(sig, hash))
		})
	}

	t.Run("signature from other curve is never valid", func(t *testing.T) {
		t.Parallel()

		sig, err := keys.PrivateKeyFromSecp256k1(secpKey).Sign(hash)
		require.NoError(t, err)

		assert.False(t, keys.PrivateKeyFromEd25519(edKey).PublicKey().IsValid(sig, hash))
	})
}
