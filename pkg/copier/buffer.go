// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package copier

import (
	"sync"
)

// DefaultBufferSize is the size of pooled copy buffers.
const DefaultBufferSize = 1 * 1024 * 1024

// 🧺 bufferPool hands out reusable copy buffers so parallel workers do not
// allocate one per file.
type bufferPool struct {
	pool sync.Pool
}

func newBufferPool(size int) *bufferPool {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				b := make([]byte, size)
				return &b
			},
		},
	}
}

func (bp *bufferPool) get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

func (bp *bufferPool) put(b *[]byte) {
	if b != nil {
		bp.pool.Put(b)
	}
}
