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

// Package copier materializes a single source file inside its dated bucket.
//
// A same-volume hard link is tried first. When linking is impossible (another
// device, a filesystem without links, permissions) the file is copied byte for
// byte into a hidden temporary file next to the destination, synced, and then
// published under its final name. A crash never leaves a partial file under
// the final name, and an existing destination is never overwritten. After a
// file is published the bucket directory is synced so the new entry is
// durable too; this is best effort and skipped on Windows.
//
// Copies always go through the pooled buffer, so Options.BufferSize is the
// chunk size of every read and write.
package copier

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/walteh/relo/pkg/bucket"
	"github.com/walteh/relo/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a Copier
type Options struct {
	// DisableLink skips the hard link fast path and always copies bytes
	DisableLink bool
	// BufferSize is the size of each pooled copy buffer, DefaultBufferSize if <= 0
	BufferSize int
}

// 📦 Copier copies files into a bucketed destination tree. It is safe for
// concurrent use.
type Copier struct {
	opts    Options
	buffers *bufferPool

	// swappable in tests
	link    func(oldname, newname string) error
	rename  func(oldpath, newpath string) error
	syncDir func(dir string) error
}

// 🏭 New creates a new Copier
func New(opts Options) *Copier {
	return &Copier{
		opts:    opts,
		buffers: newBufferPool(opts.BufferSize),
		link:    os.Link,
		rename:  os.Rename,
		syncDir: syncDir,
	}
}

// 📄 CopyOne copies source into destRoot/YYYY/MM-DD/<name> using the source's
// modification time. It never returns an error; failures are reported as a
// status.Failed outcome.
func (c *Copier) CopyOne(ctx context.Context, source, destRoot string) status.Outcome {
	out := status.Outcome{Source: source}

	info, err := os.Stat(source)
	if err != nil {
		return failed(out, errors.Errorf("reading metadata of %s: %w", source, err))
	}
	if !info.Mode().IsRegular() {
		return failed(out, errors.Errorf("%s is not a regular file", source))
	}

	dir, err := bucket.Resolve(destRoot, info.ModTime())
	if err != nil {
		return failed(out, errors.Errorf("resolving destination for %s: %w", source, err))
	}
	out.Destination = filepath.Join(dir, info.Name())

	if exists, err := pathExists(out.Destination); err != nil {
		return failed(out, errors.Errorf("checking destination %s: %w", out.Destination, err))
	} else if exists {
		out.Kind = status.SkippedExisting
		return out
	}

	// links to a symlink would reproduce the symlink, not the file
	linkSource, err := resolveSymlink(source)
	if err != nil {
		return failed(out, errors.Errorf("resolving %s: %w", source, err))
	}

	steps := []step{{
		method: status.MethodCopied,
		run:    func() error { return c.copyFile(source, out.Destination, info) },
	}}
	if !c.opts.DisableLink {
		steps = append([]step{{
			method: status.MethodLinked,
			run:    func() error { return c.link(linkSource, out.Destination) },
		}}, steps...)
	}

	method, err := attempt(ctx, steps...)
	switch {
	case errors.Is(err, fs.ErrExist):
		// another worker published the same name first
		out.Kind = status.SkippedExisting
		return out
	case err != nil:
		return failed(out, errors.Errorf("copying %s to %s: %w", source, out.Destination, err))
	}

	if err := c.syncDir(dir); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("dir", dir).Msg("syncing bucket directory")
	}

	out.Kind = status.Copied
	out.Method = method
	return out
}

// 🪜 step is one way of materializing a file
type step struct {
	method status.Method
	run    func() error
}

// attempt runs steps in order until one succeeds and returns the method that
// did. A failure falls through to the next step, except fs.ErrExist, which no
// later step can fix. The last step's error is returned when all fail.
func attempt(ctx context.Context, steps ...step) (status.Method, error) {
	var err error
	for i, s := range steps {
		if err = s.run(); err == nil {
			return s.method, nil
		}
		if errors.Is(err, fs.ErrExist) || i == len(steps)-1 {
			return s.method, err
		}
		zerolog.Ctx(ctx).Debug().
			Err(err).
			Str("method", string(s.method)).
			Str("fallback", string(steps[i+1].method)).
			Msg("fast path unavailable, falling back")
	}
	return "", err
}

// 💾 copyFile copies src into a temporary file next to dst and publishes it
// under dst without ever replacing an existing file.
func (c *Copier) copyFile(src, dst string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".relo-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	buf := c.buffers.get()
	defer c.buffers.put(buf)

	if _, err := copyContent(tmp, in, *buf); err != nil {
		return errors.Errorf("copying content: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return errors.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
		return errors.Errorf("setting modification time: %w", err)
	}

	return c.publish(tmpName, dst)
}

// publish gives tmp the name dst. Linking fails atomically if dst exists;
// filesystems without links fall back to a checked rename.
func (c *Copier) publish(tmp, dst string) error {
	err := c.link(tmp, dst)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return err
	}

	if exists, statErr := pathExists(dst); statErr != nil {
		return errors.Errorf("checking destination: %w", statErr)
	} else if exists {
		return errors.Errorf("publishing: %w", fs.ErrExist)
	}

	if err := c.rename(tmp, dst); err != nil {
		return errors.Errorf("publishing: %w", err)
	}
	return nil
}

// copyContent copies src to dst in chunks of len(buf). The wrappers hide
// io.ReaderFrom and io.WriterTo, which would bypass buf.
func copyContent(dst io.Writer, src io.Reader, buf []byte) (int64, error) {
	return io.CopyBuffer(struct{ io.Writer }{dst}, struct{ io.Reader }{src}, buf)
}

// syncDir flushes a directory's entries to disk
func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func resolveSymlink(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return path, nil
	}
	return filepath.EvalSymlinks(path)
}

func failed(out status.Outcome, err error) status.Outcome {
	out.Kind = status.Failed
	out.Err = err
	return out
}
