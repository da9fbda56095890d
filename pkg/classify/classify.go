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

// Package classify decides which files are worth relocating.
//
// The decision is made from the base name and extension alone. Junk and
// operating system artifacts are rejected by name first, then anything whose
// extension is not a known image, video or audio format.
package classify

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🎯 Decision is the verdict for a single file
type Decision bool

const (
	Reject Decision = false
	Accept Decision = true
)

// String returns a string representation of Decision
func (d Decision) String() string {
	if d == Accept {
		return "accept"
	}
	return "reject"
}

// 🗑️ ignoredNames holds lower-cased glob patterns matched against the base name.
// Plain entries match exactly.
var ignoredNames = []string{
	"thumbs.db",
	"ehthumbs.db",
	"ehthumbs_vista.db",
	"desktop.ini",
	".ds_store",
	".localized",
	"icon\r",
	"._*", // AppleDouble resource forks
	"~$*", // office lock files
}

// 📸 mediaExtensions is the allow list, lower-cased and without the leading dot
var mediaExtensions = map[string]struct{}{
	// images
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "bmp": {}, "webp": {},
	"heic": {}, "heif": {}, "tif": {}, "tiff": {}, "svg": {},
	"raw": {}, "cr2": {}, "cr3": {}, "nef": {}, "arw": {}, "dng": {},
	"orf": {}, "rw2": {}, "raf": {},
	// video
	"mp4": {}, "mkv": {}, "mov": {}, "avi": {}, "wmv": {}, "mpg": {},
	"mpeg": {}, "m4v": {}, "flv": {}, "webm": {}, "3gp": {}, "mts": {},
	"m2ts": {}, "rmvb": {}, "ts": {},
	// audio
	"mp3": {}, "wav": {}, "flac": {}, "aac": {}, "m4a": {}, "ogg": {},
	"opus": {}, "wma": {}, "aiff": {}, "ape": {},
}

// 🔍 Classify decides whether a file is eligible for relocation.
// ext is in filepath.Ext form (".jpg"); an empty ext means the name has none.
func Classify(name, ext string) Decision {
	if IsIgnored(name) {
		return Reject
	}

	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return Reject
	}

	if _, ok := mediaExtensions[strings.ToLower(ext)]; ok {
		return Accept
	}
	return Reject
}

// IsIgnored reports whether name is a known junk or system artifact.
func IsIgnored(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range ignoredNames {
		// patterns are static and valid, so the error is always nil
		if ok, _ := doublestar.Match(pattern, lower); ok {
			return true
		}
	}
	return false
}
