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

package keys

import (
	"encoding/hex"
	"fmt"
)

// Signature is a signature produced by a key on either supported curve.
type Signature struct {
	curve     Curve
	ed25519   Ed25519Signature
	secp256k1 Secp256k1Signature
}

func SignatureFromEd25519(sig Ed25519Signature) Signature {
	return Signature{curve: Curve25519, ed25519: sig}
}

func SignatureFromSecp256k1(sig Secp256k1Signature) Signature {
	return Signature{curve: Secp256k1, secp256k1: sig}
}

func (s Signature) Curve() Curve {
	return s.curve
}

func (s Signature) Ed25519() (Ed25519Signature, bool) {
	if s.curve != Curve25519 {
		return Ed25519Signature{}, false
	}
	return s.ed25519, true
}

func (s Signature) Secp256k1() (Secp256k1Signature, bool) {
	if s.curve != Secp256k1 {
		return Secp256k1Signature{}, false
	}
	return s.secp256k1, true
}

func (s Signature) Bytes() []byte {
	switch s.curve {
	case Curve25519:
		return s.ed25519.Bytes()
	case Secp256k1:
		return s.secp256k1.Bytes()
	default:
		return nil
	}
}

func (s Signature) Hex() string {
	return hex.EncodeToString(s.Bytes())
}

func (s Signature) String() string {
	return fmt.Sprintf("%s:%s", s.curve, s.Hex())
}
