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

package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/wallet-kit/models/network"
	"github.com/optakt/wallet-kit/wallet/factor"
)

// InstanceProvider derives the factor instances of new entities.
type InstanceProvider interface {
	AccountCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.AccountCreation, error)
	IdentityCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.IdentityCreation, error)
}

// Instances wraps an instance provider and counts the instances it derives.
type Instances struct {
	provider InstanceProvider
	derived  *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

// NewInstances creates a decorator that exposes the number of derived and
// failed instances per entity kind as prometheus counters.
func NewInstances(reg prometheus.Registerer, provider InstanceProvider) *Instances {
	factory := promauto.With(reg)

	derivedOpts := prometheus.CounterOpts{
		Name:      "derived_instances",
		Namespace: namespaceWallet,
		Help:      "number of derived factor instances",
	}
	failedOpts := prometheus.CounterOpts{
		Name:      "failed_derivations",
		Namespace: namespaceWallet,
		Help:      "number of failed factor instance derivations",
	}

	i := Instances{
		provider: provider,
		derived:  factory.NewCounterVec(derivedOpts, []string{"kind", "network"}),
		failed:   factory.NewCounterVec(failedOpts, []string{"kind", "network"}),
	}

	return &i
}

func (i *Instances) AccountCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.AccountCreation, error) {
	creation, err := i.provider.AccountCreation(ctx, source, id, index)
	i.count("account", id, err)
	return creation, err
}

func (i *Instances) IdentityCreation(ctx context.Context, source factor.Source, id network.ID, index uint32) (factor.IdentityCreation, error) {
	creation, err := i.provider.IdentityCreation(ctx, source, id, index)
	i.count("identity", id, err)
	return creation, err
}

func (i *Instances) count(kind string, id network.ID, err error) {
	if err != nil {
		i.failed.WithLabelValues(kind, id.String()).Inc()
		return
	}
	i.derived.WithLabelValues(kind, id.String()).Inc()
}
