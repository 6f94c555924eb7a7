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
	"strings"

	"github.com/pybuild-sh/pybuild/pkg/catalog"
	pybError "github.com/pybuild-sh/pybuild/pkg/error"
	"github.com/pybuild-sh/pybuild/pkg/printer"
	v1 "github.com/pybuild-sh/pybuild/pkg/types/v1"
)

// List prints the whole version catalog, oldest release first. An empty
// catalog is not an error, it simply lists zero versions.
func List(cfg *v1.RunConfig, p *printer.Printer) error {
	cat, err := catalog.Fetch(cfg.Client, cfg.Logger, cfg.Mirror)
	if err != nil {
		return pybError.NewFromError(err, pybError.ExitFailure)
	}

	p.Printf("%d versions of Python available:", cat.Len())
	if cat.Len() > 0 {
		p.Println(strings.Join(cat.Versions(), " "))
	}
	return nil
}
