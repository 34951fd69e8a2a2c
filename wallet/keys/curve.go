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

// Curve identifies the elliptic curve a key or signature belongs to.
type Curve string

const (
	Curve25519 Curve = "curve25519"
	Secp256k1  Curve = "secp256k1"
)

func (c Curve) String() string {
	return string(c)
}

// Valid returns whether the curve is one of the supported curves.
func (c Curve) Valid() bool {
	return c == Curve25519 || c == Secp256k1
}
