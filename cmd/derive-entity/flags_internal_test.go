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


package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppearanceFlag(t *testing.T) {
	t.Run("unset when negative", func(t *testing.T) {
		t.Parallel()

		appearance, err := appearanceFlag(-1)

		require.NoError(t, err)
		assert.Nil(t, appearance)
	})

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		appearance, err := appearanceFlag(11)

		require.NoError(t, err)
		require.NotNil(t, appearance)
		assert.Equal(t, uint8(11), *appearance)
	})

	t.Run("handles values out of range", func(t *testing.T) {
		t.Parallel()

		for _, value := range []int{12, 255, 256, 268} {
			_, err := appearanceFlag(value)
			assert.Error(t, err, value)
		}
	})
}

func TestWipe(t *testing.T) {
	seed := []byte{1, 2, 3, 4}

	wipe(seed)

	assert.Equal(t, []byte{0, 0, 0, 0}, seed)
}
