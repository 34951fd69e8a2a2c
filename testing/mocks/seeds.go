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
	"context"
	"testing"

	"github.com/optakt/wallet-kit/wallet/factor"
)

type SeedProvider struct {
	SeedFunc func(ctx context.Context, id factor.SourceID) ([]byte, error)
}

func BaselineSeedProvider(t *testing.T) *SeedProvider {
	t.Helper()

	s := SeedProvider{
		SeedFunc: func(context.Context, factor.SourceID) ([]byte, error) {
			return GenericSeed(), nil
		},
	}

	return &s
}

func (s *SeedProvider) Seed(ctx context.Context, id factor.SourceID) ([]byte, error) {
	return s.SeedFunc(ctx, id)
}
