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
	"github.com/optakt/wallet-kit/wallet/failure"
)

const bip44LikeLength = 5

// BIP44LikePath is the legacy path m/44H/1022H/0H/0/{index}H used by earlier
// wallets. It has no entity or key kind and always derives secp256k1 keys.
type BIP44LikePath struct {
	index uint32
}

// NewBIP44LikePath creates the legacy path for the index.
func NewBIP44LikePath(index uint32) (BIP44LikePath, error) {
	err := checkIndex(index)
	if err != nil {
		return BIP44LikePath{}, failure.InvalidBIP44LikePath{
			Description: failure.NewDescription("invalid index", failure.WithErr(err)),
			Path:        BIP44LikePath{index: index}.String(),
		}
	}
	return BIP44LikePath{index: index}, nil
}

// ParseBIP44LikePath parses the canonical text of a legacy path.
func ParseBIP44LikePath(s string) (BIP44LikePath, error) {
	path, err := ParseHDPath(s)
	if err != nil {
		return BIP44LikePath{}, failure.InvalidBIP44LikePath{
			Description: failure.NewDescription("could not parse path", failure.WithErr(err)),
			Path:        s,
		}
	}
	if len(path) != bip44LikeLength {
		return BIP44LikePath{}, failure.InvalidBIP44LikePath{
			Description: failure.NewDescription("wrong number of path components", failure.WithInt("have", len(path)), failure.WithInt("want", bip44LikeLength)),
			Path:        s,
		}
	}

	want := BIP44LikePath{index: path[4].Index()}.HDPath()
	for i := range want {
		if path[i] != want[i] {
			return BIP44LikePath{}, failure.InvalidBIP44LikePath{
				Description: failure.NewDescription("unexpected path component", failure.WithInt("position", i+1), failure.WithString("have", path[i].String()), failure.WithString("want", want[i].String())),
				Path:        s,
			}
		}
	}

	return BIP44LikePath{index: path[4].Index()}, nil
}

func (b BIP44LikePath) Index() uint32 {
	return b.index
}

func (b BIP44LikePath) HDPath() HDPath {
	return HDPath{
		Hardened(Purpose),
		Hardened(CoinType),
		Hardened(0),
		Normal(0),
		Hardened(b.index),
	}
}

func (b BIP44LikePath) String() string {
	return b.HDPath().String()
}
