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

package entity

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	MaxDisplayNameLength = 30
	MaxAppearanceID      = 11
)

// DisplayName is the user-chosen name of an entity. It is trimmed and holds
// between 1 and 30 characters.
type DisplayName string

func NewDisplayName(s string) (DisplayName, error) {
	trimmed := strings.TrimSpace(s)
	length := utf8.RuneCountInString(trimmed)
	if length == 0 {
		return "", fmt.Errorf("display name is empty")
	}
	if length > MaxDisplayNameLength {
		return "", fmt.Errorf("display name too long (length: %d, max: %d)", length, MaxDisplayNameLength)
	}
	return DisplayName(trimmed), nil
}

func (d DisplayName) String() string {
	return string(d)
}

func (d *DisplayName) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("could not decode display name: %w", err)
	}
	name, err := NewDisplayName(s)
	if err != nil {
		return err
	}
	*d = name
	return nil
}

// AppearanceID selects one of the predefined account gradients.
type AppearanceID uint8

func NewAppearanceID(value uint8) (AppearanceID, error) {
	if value > MaxAppearanceID {
		return 0, fmt.Errorf("appearance id out of range (value: %d, max: %d)", value, MaxAppearanceID)
	}
	return AppearanceID(value), nil
}

// AppearanceIDForIndex cycles through the appearances, so that consecutive
// accounts look different.
func AppearanceIDForIndex(index uint32) AppearanceID {
	return AppearanceID(index % (MaxAppearanceID + 1))
}

func (a *AppearanceID) UnmarshalJSON(data []byte) error {
	var value uint8
	err := json.Unmarshal(data, &value)
	if err != nil {
		return fmt.Errorf("could not decode appearance id: %w", err)
	}
	id, err := NewAppearanceID(value)
	if err != nil {
		return err
	}
	*a = id
	return nil
}

type Flag string

const (
	FlagDeletedByUser Flag = "deletedByUser"
)

// Flags is a set of entity flags.
type Flags map[Flag]struct{}

func (f Flags) Contains(flag Flag) bool {
	_, ok := f[flag]
	return ok
}

func (f Flags) clone() Flags {
	c := make(Flags, len(f))
	for flag := range f {
		c[flag] = struct{}{}
	}
	return c
}

func (f Flags) MarshalJSON() ([]byte, error) {
	flags := make([]string, 0, len(f))
	for flag := range f {
		flags = append(flags, string(flag))
	}
	sort.Strings(flags)
	return json.Marshal(flags)
}

func (f *Flags) UnmarshalJSON(data []byte) error {
	var flags []string
	err := json.Unmarshal(data, &flags)
	if err != nil {
		return fmt.Errorf("could not decode flags: %w", err)
	}
	decoded := make(Flags, len(flags))
	for _, flag := range flags {
		if Flag(flag) != FlagDeletedByUser {
			return fmt.Errorf("unknown entity flag (flag: %s)", flag)
		}
		decoded[Flag(flag)] = struct{}{}
	}
	*f = decoded
	return nil
}
