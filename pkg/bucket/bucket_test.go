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

package bucket

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{name: "zero_padded", time: time.Date(2024, 3, 7, 12, 0, 0, 0, time.Local), want: filepath.Join("2024", "03-07")},
		{name: "two_digit", time: time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local), want: filepath.Join("2023", "12-25")},
		{name: "last_second_of_year", time: time.Date(1999, 12, 31, 23, 59, 59, 0, time.Local), want: filepath.Join("1999", "12-31")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.time))
		})
	}
}

func TestKeyUsesLocalDate(t *testing.T) {
	instant := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	local := instant.In(time.Local)
	assert.Equal(t, filepath.Join(local.Format("2006"), local.Format("01-02")), Key(instant))
}

func TestResolveIsIdempotent(t *testing.T) {
	root := t.TempDir()
	ts := time.Date(2024, 3, 7, 9, 30, 0, 0, time.Local)

	first, err := Resolve(root, ts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "2024", "03-07"), first)

	second, err := Resolve(root, ts)
	require.NoError(t, err, "second resolve should not fail")
	assert.Equal(t, first, second)

	info, err := os.Stat(first)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveConcurrentSameKey(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not", "yet", "there")
	ts := time.Date(2021, 1, 2, 3, 4, 5, 0, time.Local)

	var wg sync.WaitGroup
	errs := make([]error, 32)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = Resolve(root, ts)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.DirExists(t, filepath.Join(root, "2021", "01-02"))
}

func TestResolveFileInTheWay(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2024"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "2024", "03-07"), []byte("x"), 0o644))

	_, err := Resolve(root, time.Date(2024, 3, 7, 0, 0, 0, 0, time.Local))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
