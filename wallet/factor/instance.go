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

package factor

import (
	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/hd"
)

// Instance is a public key derived from a factor source, without any
// guarantee about what it may be used for.
type Instance struct {
	SourceID  SourceID     `json:"factorSourceID"`
	PublicKey hd.PublicKey `json:"hierarchicalDeterministicPublicKey"`
}

// NewInstance binds a derived public key to the source it came from.
func NewInstance(source Source, key hd.PublicKey) (Instance, error) {
	if !source.Supports(key.Path) {
		return Instance{}, failure.UnsupportedDerivation{
			Description: failure.NewDescription("factor source can not derive keys at path",
				failure.WithString("curve", key.Path.Curve().String()),
				failure.WithString("scheme", string(key.Path.Scheme())),
			),
			Source: source.ID.String(),
			Path:   key.Path.String(),
		}
	}
	if key.Key.Curve() != key.Path.Curve() {
		return Instance{}, failure.WrongCurve{
			Description: failure.NewDescription("public key curve does not match derivation path", failure.WithString("path", key.Path.String())),
			Expected:    key.Path.Curve().String(),
			Found:       key.Key.Curve().String(),
		}
	}

	i := Instance{
		SourceID:  source.ID,
		PublicKey: key,
	}

	return i, nil
}
