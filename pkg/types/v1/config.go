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

package v1

import (
	"github.com/spf13/afero"
)

// Config holds the collaborators every operation needs plus the settings
// shared by all of them.
type Config struct {
	Fs      afero.Fs
	Logger  Logger
	Runner  Runner
	Syscall SyscallInterface
	Client  HTTPClient
	Mirror  string `yaml:"mirror,omitempty" mapstructure:"mirror"`
}

// RunConfig is the configuration for a single invocation of the tool.
type RunConfig struct {
	// Directory is the parent dir for extracted source trees, used verbatim.
	Directory string `yaml:"directory,omitempty" mapstructure:"directory"`

	Config `yaml:"-" mapstructure:",squash"`
}
