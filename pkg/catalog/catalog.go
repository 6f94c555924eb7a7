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

// Package catalog discovers the released Python versions advertised on the
// upstream download index.
package catalog

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"

	"github.com/Masterminds/semver/v3"

	v1 "github.com/pybuild-sh/pybuild/pkg/types/v1"
)

// anchorExp matches version-shaped directory links on the index page,
// e.g. <a href="3.11.4/">3.11.4/</a>
var anchorExp = regexp.MustCompile(`href="(\d+\.\d+\.\d+)/?"`)

var versionExp = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsVersion tells whether a command line token is shaped like a release
// version (three dot-separated numbers).
func IsVersion(token string) bool {
	return versionExp.MatchString(token)
}

// Catalog is the ordered set of installable versions scraped from the index.
// Versions are kept as the exact strings found upstream, sorted ascending in
// numeric per-segment order.
type Catalog struct {
	versions []string
	members  map[string]bool
}

// New builds a catalog from raw version tokens. Tokens that do not parse as
// a strict three-segment version are dropped, duplicates collapse.
func New(versions []string) *Catalog {
	type entry struct {
		raw    string
		parsed *semver.Version
	}

	members := map[string]bool{}
	entries := []entry{}
	for _, raw := range versions {
		if members[raw] {
			continue
		}
		parsed, err := semver.StrictNewVersion(raw)
		if err != nil {
			continue
		}
		members[raw] = true
		entries = append(entries, entry{raw: raw, parsed: parsed})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].parsed.LessThan(entries[j].parsed)
	})

	sorted := make([]string, len(entries))
	for i, e := range entries {
		sorted[i] = e.raw
	}
	return &Catalog{versions: sorted, members: members}
}

// Fetch retrieves the index page and scrapes it into a Catalog. A failed
// retrieval is an error, a page with zero version links is an empty catalog.
func Fetch(client v1.HTTPClient, log v1.Logger, mirror string) (*Catalog, error) {
	log.Debugf("Fetching version index from %s", mirror)
	resp, err := client.Get(mirror)
	if err != nil {
		return nil, fmt.Errorf("retrieving version index from '%s': %w", mirror, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("retrieving version index from '%s': unexpected status %d", mirror, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading version index from '%s': %w", mirror, err)
	}

	return New(scrape(body)), nil
}

func scrape(body []byte) []string {
	matches := anchorExp.FindAllSubmatch(body, -1)
	versions := make([]string, 0, len(matches))
	for _, m := range matches {
		versions = append(versions, string(m[1]))
	}
	return versions
}

// Contains checks exact string membership, "3.9" never matches "3.9.0".
func (c *Catalog) Contains(version string) bool {
	return c.members[version]
}

// Versions returns the ascending ordered version list.
func (c *Catalog) Versions() []string {
	return c.versions
}

func (c *Catalog) Len() int {
	return len(c.versions)
}
