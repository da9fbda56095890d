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

// Package bucket maps file timestamps to dated destination directories.
package bucket

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gitlab.com/tozd/go/errors"
)

// DirPerm is the permission used for created bucket directories.
const DirPerm = 0o755

// 🗓️ Key returns the YYYY/MM-DD bucket for t in the local time zone.
func Key(t time.Time) string {
	local := t.In(time.Local)
	return filepath.Join(local.Format("2006"), local.Format("01-02"))
}

// 📁 Resolve returns destRoot/YYYY/MM-DD for t, creating it and any missing
// parents. Safe to call concurrently for the same key.
func Resolve(destRoot string, t time.Time) (string, error) {
	dir := filepath.Join(destRoot, Key(t))

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return "", errors.Errorf("bucket %s exists and is not a directory", dir)
		}
		return dir, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", errors.Errorf("checking bucket %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
		return "", errors.Errorf("creating bucket %s: %w", dir, err)
	}

	// a concurrent creator may have won with something other than a directory
	if info, err := os.Stat(dir); err != nil {
		return "", errors.Errorf("checking bucket %s: %w", dir, err)
	} else if !info.IsDir() {
		return "", errors.Errorf("bucket %s exists and is not a directory", dir)
	}

	return dir, nil
}
