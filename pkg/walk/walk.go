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

// Package walk enumerates every regular file below a source directory.
package walk

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNotDirectory is returned when the source root exists but is not a directory.
var ErrNotDirectory = errors.New("source is not a directory")

// 📄 FileEntry is a regular file discovered during traversal
type FileEntry struct {
	Path string // Root-joined path
	Name string // Base name
}

// 📊 Result is the fully materialized output of a walk
type Result struct {
	Files  []FileEntry
	Errors int // Entries that could not be read
}

// 🔍 Enumerate walks root with an explicit stack and collects regular files.
//
// Symlinks to regular files are collected under their own name. Symlinks to
// directories are neither collected nor followed. An unreadable entry is
// logged, counted in Result.Errors and skipped; only an invalid root or a
// cancelled context stop the walk.
func Enumerate(ctx context.Context, root string) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Errorf("source directory %s does not exist: %w", root, err)
		}
		return nil, errors.Errorf("checking source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s", ErrNotDirectory, root)
	}

	res := &Result{}
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return res, errors.Errorf("walking %s: %w", root, err)
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// ReadDir returns what it could read alongside the error
		entries, err := os.ReadDir(dir)
		if err != nil {
			res.Errors++
			logger.Error().Err(err).Str("path", dir).Msg("reading directory")
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			switch mode := entry.Type(); {
			case mode.IsDir():
				stack = append(stack, path)
			case mode.IsRegular():
				res.Files = append(res.Files, FileEntry{Path: path, Name: entry.Name()})
			case mode&fs.ModeSymlink != 0:
				target, err := os.Stat(path)
				if err != nil {
					res.Errors++
					logger.Error().Err(err).Str("path", path).Msg("resolving symlink")
					continue
				}
				if target.Mode().IsRegular() {
					res.Files = append(res.Files, FileEntry{Path: path, Name: entry.Name()})
				} else {
					logger.Debug().Str("path", path).Msg("not following symlink")
				}
			default:
				logger.Debug().Str("path", path).Str("mode", mode.String()).Msg("skipping special file")
			}
		}
	}

	logger.Debug().Int("files", len(res.Files)).Int("errors", res.Errors).Str("root", root).Msg("walk complete")

	return res, nil
}
