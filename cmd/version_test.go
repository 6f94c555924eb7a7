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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Version", Label("version", "cmd"), func() {
	It("reports the tool version", func() {
		_, out, err := executeCommandC(rootCmd, "version")
		Expect(err).To(BeNil())
		Expect(out).To(ContainSubstring("+g"))
	})

	It("reports the long version info", func() {
		_, out, err := executeCommandC(rootCmd, "version", "--long")
		Expect(err).To(BeNil())
		Expect(out).To(ContainSubstring("GitCommit"))
	})
})
