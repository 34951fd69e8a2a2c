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
	"fmt"
	"time"

	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// Parameters lists the curves and derivation schemes a source can produce
// keys for.
type Parameters struct {
	Curves  []keys.Curve        `json:"supportedCurves"`
	Schemes []derivation.Scheme `json:"supportedDerivationPathSchemes"`
}

// BabylonParameters are the parameters of sources created by this wallet.
func BabylonParameters() Parameters {
	return Parameters{
		Curves:  []keys.Curve{keys.Curve25519},
		Schemes: []derivation.Scheme{derivation.SchemeCAP26},
	}
}

// OlympiaParameters are the parameters of sources imported from the legacy
// wallet. They can derive both kinds of keys.
func OlympiaParameters() Parameters {
	return Parameters{
		Curves:  []keys.Curve{keys.Secp256k1, keys.Curve25519},
		Schemes: []derivation.Scheme{derivation.SchemeBIP44Like, derivation.SchemeCAP26},
	}
}

// Hint describes the physical origin of a source for display purposes.
type Hint struct {
	Name              string `json:"name"`
	Model             string `json:"model"`
	MnemonicWordCount int    `json:"mnemonicWordCount"`
}

// Source is an origin of key material, such as the mnemonic stored on this
// device.
type Source struct {
	ID         SourceID   `json:"id"`
	AddedOn    time.Time  `json:"addedOn"`
	LastUsedOn time.Time  `json:"lastUsedOn"`
	Parameters Parameters `json:"cryptoParameters"`
	Hint       Hint       `json:"hint"`
}

// NewDeviceSource creates the device source holding the seed.
func NewDeviceSource(seed []byte, params Parameters, hint Hint, now time.Time) (Source, error) {
	id, err := SourceIDFromSeed(SourceKindDevice, seed)
	if err != nil {
		return Source{}, fmt.Errorf("could not compute source id: %w", err)
	}

	s := Source{
		ID:         id,
		AddedOn:    now.UTC(),
		LastUsedOn: now.UTC(),
		Parameters: params,
		Hint:       hint,
	}

	return s, nil
}

// Supports returns whether the source can derive keys at the path.
func (s Source) Supports(path derivation.Path) bool {
	curve := false
	for _, c := range s.Parameters.Curves {
		if c == path.Curve() {
			curve = true
			break
		}
	}
	scheme := false
	for _, sc := range s.Parameters.Schemes {
		if sc == path.Scheme() {
			scheme = true
			break
		}
	}
	return curve && scheme
}
