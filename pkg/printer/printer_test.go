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

package printer_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pybuild-sh/pybuild/pkg/printer"
)

func TestPrinterSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Printer test suite")
}

var _ = Describe("Printer", Label("printer"), func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = new(bytes.Buffer)
	})

	It("does not wrap when bound to a non-terminal stream", func() {
		p := printer.New(out)
		Expect(p.Width).To(Equal(uint(0)))

		long := strings.Repeat("3.9.0 ", 50)
		p.Println(long)
		Expect(strings.Count(out.String(), "\n")).To(Equal(1))
	})

	It("wraps lines longer than the width", func() {
		p := printer.Printer{Out: out, Width: 20}
		p.Println("3.9.0 3.9.1 3.9.2 3.9.3 3.9.4 3.9.5")
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(len(lines)).To(BeNumerically(">", 1))
		for _, line := range lines {
			Expect(len(line)).To(BeNumerically("<=", 20))
		}
	})

	It("leaves short lines alone regardless of width", func() {
		p := printer.Printer{Out: out, Width: 80}
		p.Println("3.9.0")
		Expect(out.String()).To(Equal("3.9.0\n"))
	})

	It("formats through Printf", func() {
		p := printer.Printer{Out: out}
		p.Printf("%d versions of Python available:", 0)
		Expect(out.String()).To(Equal("0 versions of Python available:\n"))
	})
})
