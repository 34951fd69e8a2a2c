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

// WrongEntityKind is returned when a path belongs to a different entity kind
// than the one required, or is not an entity path at all.
type WrongEntityKind struct {
	Description Description
	Expected    string
	Found       string
}

func (w WrongEntityKind) Error() string {
	return fmt.Sprintf("wrong entity kind (expected: %s, found: %s): %s", w.Expected, w.Found, w.Description)
}

type UnknownKeyKind struct {
	Description Description
	Value       uint32
}

func (u UnknownKeyKind) Error() string {
	return fmt.Sprintf("unknown key kind (value: %d): %s", u.Value, u.Description)
}

// WrongKeyKind is returned when a factor instance carries a key kind that is
// not valid for the requested role.
type WrongKeyKind struct {
	Description Description
	Expected    string
	Found       string
}

func (w WrongKeyKind) Error() string {
	return fmt.Sprintf("wrong key kind (expected: %s, found: %s): %s", w.Expected, w.Found, w.Description)
}

type WrongCurve struct {
	Description Description
	Expected    string
	Found       string
}

func (w WrongCurve) Error() string {
	return fmt.Sprintf("wrong curve (expected: %s, found: %s): %s", w.Expected, w.Found, w.Description)
}

// MismatchingEntityType is returned when a decoded address is of a different
// entity type than the expected one.
type MismatchingEntityType struct {
	Description Description
	Expected    string
	Found       string
}

func (m MismatchingEntityType) Error() string {
	return fmt.Sprintf("mismatching entity type while decoding address (expected: %s, found: %s): %s", m.Expected, m.Found, m.Description)
}

// UnsupportedDerivation is returned when a factor source can not produce keys
// for the curve or derivation scheme of a path.
type UnsupportedDerivation struct {
	Description Description
	Source      string
	Path        string
}

func (u UnsupportedDerivation) Error() string {
	return fmt.Sprintf("unsupported derivation (source: %s, path: %s): %s", u.Source, u.Path, u.Description)
}

// MismatchingAddress is returned when an entity record carries an address
// that was not derived from the key controlling the entity.
type MismatchingAddress struct {
	Description Description
	Expected    string
	Found       string
}

func (m MismatchingAddress) Error() string {
	return fmt.Sprintf("mismatching entity address (expected: %s, found: %s): %s", m.Expected, m.Found, m.Description)
}
