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
	"fmt"

	"github.com/optakt/wallet-kit/wallet/entity"
)

// appearanceFlag converts the appearance flag value. Negative values leave the
// appearance unset so that it follows the account index.
func appearanceFlag(value int) (*uint8, error) {
	if value < 0 {
		return nil, nil
	}
	if value > entity.MaxAppearanceID {
		return nil, fmt.Errorf("appearance out of range (value: %d, max: %d)", value, entity.MaxAppearanceID)
	}
	appearance := uint8(value)
	return &appearance, nil
}

func wipe(seed []byte) {
	for i := range seed {
		seed[i] = 0
	}
}
