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
	"context"
	"fmt"

	"github.com/optakt/wallet-kit/service/storage"
	"github.com/optakt/wallet-kit/wallet/factor"
)

// vault reads the seeds of device factor sources from the secure storage.
type vault struct {
	secure *storage.SecureStorage
}

func seedKey(id factor.SourceID) string {
	return "seed/" + id.String()
}

func (v *vault) Seed(_ context.Context, id factor.SourceID) ([]byte, error) {
	seed, err := v.secure.Load(seedKey(id))
	if err != nil {
		return nil, fmt.Errorf("could not load seed: %w", err)
	}
	if seed == nil {
		return nil, fmt.Errorf("no seed stored for factor source (source: %s)", id)
	}
	return seed, nil
}
