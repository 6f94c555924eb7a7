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

package cmd

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// None of these paths may touch the network: the catalog is fetched lazily
// and only by --list or version validation.
var _ = Describe("Root", Label("root", "cmd"), func() {
	It("errors out on an unknown flag", Label("flags"), func() {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		_, _, err := executeCommandC(rootCmd, "--bogus")
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("unknown flag: --bogus"))
	})

	It("errors out when no version is given", Label("args"), func() {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		_, _, err := executeCommandC(rootCmd)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("no version specified"))
		Expect(buf.String()).To(ContainSubstring("Usage:"))
	})

	It("errors out on a token that is not version shaped", Label("args"), func() {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		_, _, err := executeCommandC(rootCmd, "3.9")
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("unrecognized argument '3.9'"))
	})

	It("prints usage on --help", func() {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		_, _, err := executeCommandC(rootCmd, "--help")
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		Expect(err).To(BeNil())
		Expect(buf.String()).To(ContainSubstring("Usage:"))
		Expect(buf.String()).To(ContainSubstring("--list"))
		Expect(buf.String()).To(ContainSubstring("--directory"))
	})
})
