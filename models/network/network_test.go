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

package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/failure"
)

func TestLookupByID(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := network.LookupByID(1)

		require.NoError(t, err)
		assert.Equal(t, network.Mainnet, got.ID)
		assert.Equal(t, "mainnet", got.LogicalName)
		assert.Equal(t, "Mainnet", got.DisplayDescription)
		assert.Equal(t, "rdx", got.HRPSuffix)
	})

	t.Run("handles unregistered id", func(t *testing.T) {
		t.Parallel()

		for _, id := range []network.ID{0, 3, 0xff} {
			_, err := network.LookupByID(id)

			var unknown failure.UnknownNetwork
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, uint8(id), unknown.ID)
		}
	})
}

func TestLookupByName(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := network.LookupByName("stokenet")

		require.NoError(t, err)
		assert.Equal(t, network.Stokenet, got.ID)
		assert.Equal(t, "tdx_2_", got.HRPSuffix)
	})

	t.Run("handles unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := network.LookupByName("moonnet")

		var unknown failure.UnknownNetwork
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "moonnet", unknown.Name)
	})
}

func TestLookupByHRPSuffix(t *testing.T) {
	got, err := network.LookupByHRPSuffix("tdx_21_")
	require.NoError(t, err)
	assert.Equal(t, network.Enkinet, got.ID)

	_, err = network.LookupByHRPSuffix("tdx_99_")
	assert.ErrorAs(t, err, &failure.UnknownNetwork{})
}

func TestAll(t *testing.T) {
	all := network.All()

	require.Len(t, all, 12)
	assert.Equal(t, network.Mainnet, all[0].ID)
	assert.Equal(t, network.Simulator, all[len(all)-1].ID)

	// Every entry is reachable through each index.
	for _, n := range all {
		byName, err := network.LookupByName(n.LogicalName)
		require.NoError(t, err)
		assert.Equal(t, n, byName)

		bySuffix, err := network.LookupByHRPSuffix(n.HRPSuffix)
		require.NoError(t, err)
		assert.Equal(t, n, bySuffix)
	}
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "mainnet", network.Mainnet.String())
	assert.Equal(t, "unknown(3)", network.ID(3).String())
}
