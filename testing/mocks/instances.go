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

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/factor"
)

type Instances struct {
	AccountCreationFunc  func(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.AccountCreation, error)
	IdentityCreationFunc func(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.IdentityCreation, error)
}

func BaselineInstances(t *testing.T) *Instances {
	t.Helper()

	i := Instances{
		AccountCreationFunc: func(_ context.Context, _ factor.Source, _ network.ID, index uint32) (factor.AccountCreation, error) {
			return GenericAccountCreation(t, index), nil
		},
		IdentityCreationFunc: func(_ context.Context, _ factor.Source, _ network.ID, index uint32) (factor.IdentityCreation, error) {
			return GenericIdentityCreation(t, index), nil
		},
	}

	return &i
}

func (i *Instances) AccountCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.AccountCreation, error) {
	return i.AccountCreationFunc(ctx, source, id, index)
}

func (i *Instances) IdentityCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.IdentityCreation, error) {
	return i.IdentityCreationFunc(ctx, source, id, index)
}
