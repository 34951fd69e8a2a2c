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

package derivation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/optakt/wallet-kit/wallet/failure"
)

// HardenedOffset is added to an index to mark its path component as hardened.
const HardenedOffset uint32 = 1 << 31

// Protocol constants shared by every path this package knows.
const (
	Purpose  uint32 = 44
	CoinType uint32 = 1022

	// GetIDIndex is the third component of the path used to derive the key
	// identifying a factor source.
	GetIDIndex uint32 = 365
)

// Component is one segment of an HD path, with the hardened bit included.
type Component uint32

// Hardened returns the hardened component for the index.
func Hardened(index uint32) Component {
	return Component(index | HardenedOffset)
}

// Normal returns the non-hardened component for the index.
func Normal(index uint32) Component {
	return Component(index &^ HardenedOffset)
}

func (c Component) IsHardened() bool {
	return uint32(c)&HardenedOffset != 0
}

// Index returns the value of the component without the hardened bit.
func (c Component) Index() uint32 {
	return uint32(c) &^ HardenedOffset
}

func (c Component) String() string {
	if c.IsHardened() {
		return strconv.FormatUint(uint64(c.Index()), 10) + "H"
	}
	return strconv.FormatUint(uint64(c.Index()), 10)
}

// HDPath is a raw sequence of path components starting at the master key.
type HDPath []Component

// ParseHDPath parses a path such as "m/44H/1022H/0'". Both "H" and "'"
// are accepted as hardened markers; rendering always uses "H".
func ParseHDPath(s string) (HDPath, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 1 || parts[0] != "m" {
		return nil, failure.InvalidPath{
			Description: failure.NewDescription("path must start with master key marker"),
			Path:        s,
		}
	}

	path := make(HDPath, 0, len(parts)-1)
	for i, part := range parts[1:] {
		hardened := false
		if strings.HasSuffix(part, "H") || strings.HasSuffix(part, "'") {
			hardened = true
			part = part[:len(part)-1]
		}
		if len(part) > 1 && part[0] == '0' {
			return nil, failure.InvalidPath{
				Description: failure.NewDescription("path component has leading zero", failure.WithInt("position", i+1), failure.WithString("component", part)),
				Path:        s,
			}
		}
		value, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, failure.InvalidPath{
				Description: failure.NewDescription("invalid path component", failure.WithInt("position", i+1), failure.WithErr(err)),
				Path:        s,
			}
		}
		if uint32(value) >= HardenedOffset {
			return nil, failure.InvalidPath{
				Description: failure.NewDescription("path component out of range", failure.WithInt("position", i+1), failure.WithUint64("value", value)),
				Path:        s,
			}
		}
		if hardened {
			path = append(path, Hardened(uint32(value)))
			continue
		}
		path = append(path, Normal(uint32(value)))
	}

	return path, nil
}

func (p HDPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, c := range p {
		b.WriteString("/")
		b.WriteString(c.String())
	}
	return b.String()
}

// GetIDPath returns the path of the key whose hash identifies a factor source.
func GetIDPath() HDPath {
	return HDPath{Hardened(Purpose), Hardened(CoinType), Hardened(GetIDIndex)}
}

func checkIndex(index uint32) error {
	if index >= HardenedOffset {
		return fmt.Errorf("index must be below %d (index: %d)", HardenedOffset, index)
	}
	return nil
}
