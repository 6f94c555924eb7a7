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

package action

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pybuild-sh/pybuild/pkg/catalog"
	"github.com/pybuild-sh/pybuild/pkg/constants"
	pybError "github.com/pybuild-sh/pybuild/pkg/error"
	"github.com/pybuild-sh/pybuild/pkg/printer"
	v1 "github.com/pybuild-sh/pybuild/pkg/types/v1"
	"github.com/pybuild-sh/pybuild/pkg/utils"
)

// InstallAction downloads, builds and installs the requested versions one
// at a time. The first failing step aborts the whole run, later versions
// are never attempted.
type InstallAction struct {
	cfg      *v1.RunConfig
	printer  *printer.Printer
	versions []string

	// installed holds the prefix dir of every version built so far
	installed []string
}

func NewInstallAction(cfg *v1.RunConfig, p *printer.Printer, versions []string) *InstallAction {
	return &InstallAction{cfg: cfg, printer: p, versions: versions}
}

func (i *InstallAction) Run() error {
	cat, err := catalog.Fetch(i.cfg.Client, i.cfg.Logger, i.cfg.Mirror)
	if err != nil {
		return pybError.NewFromError(err, pybError.ExitFailure)
	}

	// Single validation pass before any download, duplicates collapse
	// keeping the first occurrence's position.
	requested := dedup(i.versions)
	for _, version := range requested {
		if !cat.Contains(version) {
			return pybError.New(
				fmt.Sprintf("invalid version '%s', use --list to see the available versions", version),
				pybError.ExitFailure,
			)
		}
	}

	for _, version := range requested {
		prefix, err := i.installVersion(version)
		if err != nil {
			return err
		}
		i.installed = append(i.installed, prefix)
	}

	i.printer.Printf("%d versions of Python installed:", len(i.installed))
	i.printer.Println(strings.Join(i.installed, " "))
	return nil
}

// Installed returns the prefix directories recorded so far.
func (i *InstallAction) Installed() []string {
	return i.installed
}

// installVersion runs the five step pipeline for a single version:
// download, extract, drop the archive, configure, make && make install.
// The previous working directory is restored on the way out.
func (i *InstallAction) installVersion(version string) (prefix string, err error) {
	cfg := i.cfg
	cleanup := utils.NewCleanStack()
	defer func() { err = cleanup.Cleanup(err) }()

	archive := fmt.Sprintf(constants.ArchiveNameFmt, version)
	url := fmt.Sprintf("%s%s/%s", cfg.Mirror, version, archive)

	if err = cfg.Client.GetURL(cfg.Logger, url, archive); err != nil {
		return "", pybError.New(
			fmt.Sprintf("failed downloading Python %s from '%s': %s", version, url, err.Error()),
			pybError.ExitFailure,
		)
	}

	out, err := cfg.Runner.Run("tar", "-xzf", archive, "-C", cfg.Directory)
	if err != nil {
		cfg.Logger.Errorf("tar output: %s", string(out))
		return "", pybError.New(
			fmt.Sprintf("failed extracting '%s' into '%s': %s", archive, cfg.Directory, err.Error()),
			pybError.ExitFailure,
		)
	}

	// best-effort, a stale tarball is not worth aborting the build
	if rmErr := cfg.Fs.Remove(archive); rmErr != nil {
		cfg.Logger.Warnf("could not remove '%s': %s", archive, rmErr.Error())
	}

	srcDir := filepath.Join(cfg.Directory, fmt.Sprintf(constants.SourceDirFmt, version))
	prefix, err = filepath.Abs(srcDir)
	if err != nil {
		return "", pybError.NewFromError(err, pybError.ExitFailure)
	}

	prevDir, err := cfg.Syscall.Getwd()
	if err != nil {
		return "", pybError.NewFromError(err, pybError.ExitFailure)
	}
	if err = cfg.Syscall.Chdir(prefix); err != nil {
		return "", pybError.NewFromError(err, pybError.ExitFailure)
	}
	cleanup.Push(func() error { return cfg.Syscall.Chdir(prevDir) })

	cfg.Logger.Infof("Configuring Python %s", version)
	out, err = cfg.Runner.Run("./configure", "--enable-optimizations", fmt.Sprintf("--prefix=%s", prefix))
	if err != nil {
		cfg.Logger.Errorf("configure output: %s", string(out))
		return "", pybError.New(
			fmt.Sprintf("failed configuring Python %s: %s", version, err.Error()),
			pybError.ExitFailure,
		)
	}

	cfg.Logger.Infof("Building Python %s", version)
	out, err = cfg.Runner.Run("make", makeArgs()...)
	if err != nil {
		cfg.Logger.Errorf("make output: %s", string(out))
		return "", pybError.New(
			fmt.Sprintf("failed building Python %s: %s", version, err.Error()),
			pybError.ExitFailure,
		)
	}

	cfg.Logger.Infof("Installing Python %s to %s", version, prefix)
	out, err = cfg.Runner.Run("make", "install")
	if err != nil {
		cfg.Logger.Errorf("make install output: %s", string(out))
		return "", pybError.New(
			fmt.Sprintf("failed installing Python %s: %s", version, err.Error()),
			pybError.ExitFailure,
		)
	}

	return prefix, nil
}

// makeArgs picks the compilation parallelism, falling back to a plain
// single-threaded make when no core count is available.
func makeArgs() []string {
	if jobs := runtime.NumCPU(); jobs > 1 {
		return []string{"-j", strconv.Itoa(jobs)}
	}
	return nil
}

func dedup(versions []string) []string {
	seen := map[string]bool{}
	unique := []string{}
	for _, v := range versions {
		if seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}
	return unique
}
