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

package mocks

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/entity"
	"github.com/optakt/wallet-kit/wallet/factor"
	"github.com/optakt/wallet-kit/wallet/hd"
)

// Global variables that can be used for testing. They are non-nil valid
// values for the types commonly needed by wallet components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericBytes = []byte(`test`)

	GenericTime = time.Date(2023, 9, 1, 12, 0, 0, 0, time.UTC)

	GenericNetwork = network.Mainnet

	GenericHint = factor.Hint{
		Name:              "test",
		Model:             "unit",
		MnemonicWordCount: 24,
	}
)

// GenericSeed returns a new copy of the test seed, which holds the bytes 0x00
// to 0x3f. Callers may wipe it.
func GenericSeed() []byte {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func GenericSource(t *testing.T) factor.Source {
	t.Helper()

	source, err := factor.NewDeviceSource(GenericSeed(), factor.BabylonParameters(), GenericHint, GenericTime)
	require.NoError(t, err)

	return source
}

func GenericAccountPath(t *testing.T, index uint32) derivation.AccountPath {
	t.Helper()

	path, err := derivation.NewAccountPath(GenericNetwork, derivation.KeyKindTransactionSigning, index)
	require.NoError(t, err)

	return path
}

func GenericIdentityPath(t *testing.T, index uint32) derivation.IdentityPath {
	t.Helper()

	path, err := derivation.NewIdentityPath(GenericNetwork, derivation.KeyKindTransactionSigning, index)
	require.NoError(t, err)

	return path
}

func GenericInstance(t *testing.T, path derivation.Path) factor.Instance {
	t.Helper()

	pub, err := hd.DerivePublicKey(GenericSeed(), path)
	require.NoError(t, err)

	instance, err := factor.NewInstance(GenericSource(t), pub)
	require.NoError(t, err)

	return instance
}

func GenericAccountCreation(t *testing.T, index uint32) factor.AccountCreation {
	t.Helper()

	path := derivation.FromCAP26(GenericAccountPath(t, index))
	creation, err := factor.NewAccountCreation(GenericInstance(t, path))
	require.NoError(t, err)

	return creation
}

func GenericIdentityCreation(t *testing.T, index uint32) factor.IdentityCreation {
	t.Helper()

	path := derivation.FromCAP26(GenericIdentityPath(t, index))
	creation, err := factor.NewIdentityCreation(GenericInstance(t, path))
	require.NoError(t, err)

	return creation
}

func GenericDisplayName(t *testing.T) entity.DisplayName {
	t.Helper()

	name, err := entity.NewDisplayName("Main")
	require.NoError(t, err)

	return name
}

func GenericAccount(t *testing.T, index uint32) *entity.Account {
	t.Helper()

	account, err := entity.NewAccount(GenericAccountCreation(t, index), index, GenericDisplayName(t), entity.AppearanceIDForIndex(index))
	require.NoError(t, err)

	return account
}

func GenericPersona(t *testing.T, index uint32) *entity.Persona {
	t.Helper()

	persona, err := entity.NewPersona(GenericIdentityCreation(t, index), index, GenericDisplayName(t))
	require.NoError(t, err)

	return persona
}
