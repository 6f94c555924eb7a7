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

package config_test

import (
	"os"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sanity-io/litter"
	"github.com/spf13/viper"

	"github.com/pybuild-sh/pybuild/cmd/config"
	"github.com/pybuild-sh/pybuild/pkg/constants"
)

func TestReadConfigRunDefaults(t *testing.T) {
	RegisterTestingT(t)
	viper.Reset()
	cfg, err := config.ReadConfigRun("")
	Expect(err).To(BeNil())
	Expect(cfg.Mirror).To(Equal(constants.MirrorURL), litter.Sdump(cfg))
	Expect(cfg.Directory).To(Equal("."), litter.Sdump(cfg))
}

func TestReadConfigRunMirrorFromEnv(t *testing.T) {
	RegisterTestingT(t)
	viper.Reset()
	t.Setenv("PYBUILD_MIRROR", "http://mirror.test/python")
	cfg, err := config.ReadConfigRun("")
	Expect(err).To(BeNil())
	// archive URLs are composed by appending, so the mirror gets a slash
	Expect(cfg.Mirror).To(Equal("http://mirror.test/python/"), litter.Sdump(cfg))
}

func TestReadConfigRunFromConfigDir(t *testing.T) {
	RegisterTestingT(t)
	viper.Reset()
	dir := t.TempDir()
	err := os.WriteFile(dir+"/config.yaml", []byte("mirror: http://cfg.test/python/\ndirectory: /opt/python\n"), 0o644)
	Expect(err).To(BeNil())
	cfg, err := config.ReadConfigRun(dir)
	Expect(err).To(BeNil())
	Expect(cfg.Mirror).To(Equal("http://cfg.test/python/"), litter.Sdump(cfg))
	Expect(cfg.Directory).To(Equal("/opt/python"), litter.Sdump(cfg))
}

func TestReadConfigRunDebug(t *testing.T) {
	RegisterTestingT(t)
	viper.Reset()
	viper.Set("debug", true)
	cfg, err := config.ReadConfigRun("")
	Expect(err).To(BeNil())
	Expect(cfg.Logger.GetLevel().String()).To(Equal("debug"))
}
