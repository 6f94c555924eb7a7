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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pybuild-sh/pybuild/cmd/config"
	"github.com/pybuild-sh/pybuild/pkg/action"
	"github.com/pybuild-sh/pybuild/pkg/catalog"
	pybError "github.com/pybuild-sh/pybuild/pkg/error"
	"github.com/pybuild-sh/pybuild/pkg/printer"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pybuild VERSION...",
		Short: "Download, build and install Python versions from source",
		Long: "pybuild fetches the given CPython release tarballs, builds them with the\n" +
			"standard configure/make/make install sequence and reports where each\n" +
			"version ended up.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				return pybError.NewFromError(err, pybError.ExitFailure)
			}

			p := printer.New(cmd.OutOrStdout())

			if viper.GetBool("list") {
				cmd.SilenceUsage = true
				return action.List(cfg, p)
			}

			versions := make([]string, 0, len(args))
			for _, arg := range args {
				if !catalog.IsVersion(arg) {
					return fmt.Errorf("unrecognized argument '%s', versions are of the form N.N.N", arg)
				}
				versions = append(versions, arg)
			}
			if len(versions) == 0 {
				return errors.New("no version specified, use --list to see the available versions")
			}

			cmd.SilenceUsage = true
			return action.NewInstallAction(cfg, p, versions).Run()
		},
	}
	cmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	cmd.PersistentFlags().String("config-dir", "", "Set config dir")
	cmd.PersistentFlags().String("logfile", "", "Set logfile")
	cmd.PersistentFlags().Bool("quiet", false, "Do not output to stdout")
	_ = viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("config-dir", cmd.PersistentFlags().Lookup("config-dir"))
	_ = viper.BindPFlag("logfile", cmd.PersistentFlags().Lookup("logfile"))
	_ = viper.BindPFlag("quiet", cmd.PersistentFlags().Lookup("quiet"))

	cmd.Flags().BoolP("list", "l", false, "List the available Python versions and exit")
	cmd.Flags().StringP("directory", "d", ".", "Directory to extract and build the sources in")
	_ = viper.BindPFlag("list", cmd.Flags().Lookup("list"))
	_ = viper.BindPFlag("directory", cmd.Flags().Lookup("directory"))
	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute runs the root command. This is called by main.main(). It only
// needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		switch t := err.(type) {
		case *pybError.PybuildError:
			os.Exit(t.ExitCode())
		default:
			os.Exit(1)
		}
	}
}
