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

package config

import (
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pybuild-sh/pybuild/pkg/config"
	v1 "github.com/pybuild-sh/pybuild/pkg/types/v1"
)

// ReadConfigRun assembles the RunConfig for this invocation: defaults, an
// optional config.yaml in configDir, PYBUILD_* env vars and the bound flags,
// in that order of precedence lowest to highest.
func ReadConfigRun(configDir string) (*v1.RunConfig, error) {
	cfg := config.NewRunConfig(
		config.WithLogger(v1.NewLogger()),
	)

	// Set debug level
	if viper.GetBool("debug") {
		cfg.Logger.SetLevel(v1.DebugLevel())
	}

	// Set formatter so both file and stdout format are equal
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableColors:    false,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	// Logfile
	logfile := viper.GetString("logfile")
	if logfile != "" {
		o, err := cfg.Fs.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fs.ModePerm)
		if err != nil {
			cfg.Logger.Errorf("Could not open %s for logging to file: %s", logfile, err.Error())
		} else if viper.GetBool("quiet") { // if quiet is set, only log to the file
			cfg.Logger.SetOutput(o)
		} else { // else log to both stdout and the file
			cfg.Logger.SetOutput(io.MultiWriter(os.Stdout, o))
		}
	} else if viper.GetBool("quiet") { // no logfile and quiet, discard all logging
		cfg.Logger.SetOutput(io.Discard)
	}

	if configDir != "" {
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config.yaml")
		// If a config file is found, read it in.
		_ = viper.MergeInConfig()
	}

	// Set the prefix for vars so we get only the ones starting with PYBUILD
	viper.SetEnvPrefix("PYBUILD")
	viper.AutomaticEnv() // read in environment variables that match

	if mirror := viper.GetString("mirror"); mirror != "" {
		cfg.Mirror = mirror
	}
	// archive URLs are composed by appending to the mirror
	if !strings.HasSuffix(cfg.Mirror, "/") {
		cfg.Mirror += "/"
	}

	if directory := viper.GetString("directory"); directory != "" {
		cfg.Directory = directory
	}

	return cfg, nil
}
