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

package instances

import (
	"github.com/c2h5oh/datasize"
)

// DefaultConfig is the default configuration of the instance provider.
var DefaultConfig = Config{
	CacheSize: uint64(8 * datasize.MB),
}

// Config is the configuration of the instance provider.
type Config struct {
	CacheSize uint64
}

// WithCacheSize sets the maximum size of the public key cache, in bytes.
func WithCacheSize(size uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}
