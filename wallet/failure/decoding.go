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

package failure

import (
	"fmt"
)

// InvalidHex is returned when a hex string can not be decoded.
type InvalidHex struct {
	Description Description
	Input       string
}

func (i InvalidHex) Error() string {
	return fmt.Sprintf("invalid hex string (input: %s): %s", i.Input, i.Description)
}

// InvalidKeyBytes is returned when key material has the wrong length for its
// curve. It carries the rejected bytes.
type InvalidKeyBytes struct {
	Description Description
	Curve       string
	Bytes       []byte
}

func (i InvalidKeyBytes) Error() string {
	return fmt.Sprintf("invalid key bytes (curve: %s, length: %d): %s", i.Curve, len(i.Bytes), i.Description)
}

// InvalidCurvePoint is returned when public key bytes do not encode a point
// on the expected curve.
type InvalidCurvePoint struct {
	Description Description
	Curve       string
	Bytes       []byte
}

func (i InvalidCurvePoint) Error() string {
	return fmt.Sprintf("invalid curve point (curve: %s, bytes: %x): %s", i.Curve, i.Bytes, i.Description)
}

type InvalidSignature struct {
	Description Description
	Curve       string
	Bytes       []byte
}

func (i InvalidSignature) Error() string {
	return fmt.Sprintf("invalid signature (curve: %s, length: %d): %s", i.Curve, len(i.Bytes), i.Description)
}

// InvalidPath is returned when a string is not a well-formed CAP26 path.
type InvalidPath struct {
	Description Description
	Path        string
}

func (i InvalidPath) Error() string {
	return fmt.Sprintf("invalid derivation path (path: %s): %s", i.Path, i.Description)
}

// InvalidBIP44LikePath is returned when a string is not a well-formed
// BIP44-like path.
type InvalidBIP44LikePath struct {
	Description Description
	Path        string
}

func (i InvalidBIP44LikePath) Error() string {
	return fmt.Sprintf("invalid bip44-like path (path: %s): %s", i.Path, i.Description)
}

type InvalidSeed struct {
	Description Description
	Length      int
}

func (i InvalidSeed) Error() string {
	return fmt.Sprintf("invalid seed (length: %d): %s", i.Length, i.Description)
}

// FailedToDecodeAddressFromBech32 is returned for any malformed address
// string, including unknown prefixes and networks.
type FailedToDecodeAddressFromBech32 struct {
	Description Description
	Address     string
}

func (f FailedToDecodeAddressFromBech32) Error() string {
	return fmt.Sprintf("failed to decode address from bech32 (address: %s): %s", f.Address, f.Description)
}
