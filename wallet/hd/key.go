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

package hd

import (
	"github.com/optakt/wallet-kit/wallet/derivation"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// PrivateKey is a derived private key together with the path it was derived
// at. It is never persisted.
type PrivateKey struct {
	key  keys.PrivateKey
	path derivation.Path
}

func (p PrivateKey) Key() keys.PrivateKey {
	return p.key
}

func (p PrivateKey) Path() derivation.Path {
	return p.path
}

func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey{
		Key:  p.key.PublicKey(),
		Path: p.path,
	}
}

func (p PrivateKey) Sign(hash keys.Hash) (keys.Signature, error) {
	return p.key.Sign(hash)
}

// Zero wipes the key material.
func (p PrivateKey) Zero() {
	p.key.Zero()
}

func (p PrivateKey) String() string {
	return p.key.String() + " at " + p.path.String()
}

// PublicKey is a derived public key together with the path it was derived at.
type PublicKey struct {
	Key  keys.PublicKey  `json:"publicKey"`
	Path derivation.Path `json:"derivationPath"`
}

// NewPublicKey pairs a public key with its derivation path.
func NewPublicKey(key keys.PublicKey, path derivation.Path) PublicKey {
	return PublicKey{Key: key, Path: path}
}
