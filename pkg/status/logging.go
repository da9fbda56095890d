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

package status

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	kindWidth   = 20 // Width for outcome kind
	detailWidth = 15 // Width for detail text
)

// 🎯 FormatOutcomeLine formats an outcome as an aligned, colored console line
func FormatOutcomeLine(o Outcome) string {
	var prefix, detail string
	switch o.Kind {
	case Copied:
		prefix = color.GreenString("✓")
		detail = string(o.Method)
	case SkippedExisting:
		prefix = color.HiBlackString("-")
		detail = "exists"
	case SkippedUnsupported:
		prefix = color.HiBlackString("·")
		detail = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.Source)), ".")
	case Failed:
		prefix = color.RedString("✗")
		detail = "error"
	default:
		prefix = color.YellowString("?")
	}

	name := filepath.Base(o.Source)
	if o.Destination != "" {
		name = filepath.Join(filepath.Base(filepath.Dir(filepath.Dir(o.Destination))),
			filepath.Base(filepath.Dir(o.Destination)), filepath.Base(o.Destination))
	}

	line := fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		fmt.Sprintf("%-*s", nameWidth, name),
		fmt.Sprintf("%-*s", kindWidth, o.Kind),
		fmt.Sprintf("%-*s", detailWidth, detail),
	)
	if o.Err != nil {
		line += color.RedString(o.Err.Error())
	}
	return line
}
