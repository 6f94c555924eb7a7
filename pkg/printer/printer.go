/*
Copyright © 2023 - 2025 The pybuild Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package printer emits user facing lines, wrapped to the terminal width
// when one is attached.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// Printer writes lines to Out. With Width > 0 longer lines are word-wrapped,
// with Width 0 they pass through untouched. There is no failure mode, a
// non-terminal stream simply means no wrapping.
type Printer struct {
	Out   io.Writer
	Width uint
}

// New binds a printer to the given stream, detecting the terminal width if
// the stream is an interactive terminal.
func New(out io.Writer) *Printer {
	p := &Printer{Out: out}
	f, ok := out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return p
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		p.Width = uint(w)
	}
	return p
}

// Println prints one line, wrapped when it exceeds the detected width.
func (p Printer) Println(line string) {
	if p.Width > 0 && uint(len(line)) > p.Width {
		line = wordwrap.WrapString(line, p.Width)
	}
	fmt.Fprintln(p.Out, line)
}

// Printf formats and prints through Println.
func (p Printer) Printf(format string, args ...interface{}) {
	p.Println(fmt.Sprintf(format, args...))
}
