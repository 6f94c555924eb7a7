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

package constants

const (
	// MirrorURL is the default index the version catalog is scraped from
	// and the base URL source tarballs are fetched from.
	MirrorURL = "https://www.python.org/ftp/python/"

	// SourceDirFmt is the directory name a release tarball unpacks to.
	SourceDirFmt = "Python-%s"

	// ArchiveNameFmt is the upstream tarball naming convention.
	ArchiveNameFmt = "Python-%s.tgz"

	// HTTPTimeout is the timeout in seconds for the catalog page request.
	// Tarball downloads deliberately carry no deadline.
	HTTPTimeout = 60
)
