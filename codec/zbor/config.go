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

package zbor

import (
	"github.com/c2h5oh/datasize"
	"github.com/klauspost/compress/zstd"
)

// DefaultConfig is the default configuration for the codec.
var DefaultConfig = Config{
	Level:          zstd.SpeedDefault,
	MaxDecodedSize: 4 * datasize.MB,
}

// Config contains the configuration options for the codec.
type Config struct {
	Level          zstd.EncoderLevel
	MaxDecodedSize datasize.ByteSize
}

// WithLevel sets the zstd compression level used when marshaling.
func WithLevel(level zstd.EncoderLevel) func(*Config) {
	return func(cfg *Config) {
		cfg.Level = level
	}
}

// WithMaxDecodedSize limits the size of a decompressed value. Values that
// would decompress to more are rejected.
func WithMaxDecodedSize(size datasize.ByteSize) func(*Config) {
	return func(cfg *Config) {
		cfg.MaxDecodedSize = size
	}
}
