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

package mocks

import (
	"errors"
	"io"
	"net/http"
	"strings"

	v1 "github.com/pybuild-sh/pybuild/pkg/types/v1"
)

// FakeHTTPClient is an implementation of the HTTPClient interface used for
// testing. It stores all calls into ClientCalls for easy checking of what
// was requested.
type FakeHTTPClient struct {
	ClientCalls []string
	// Body is served on Get calls, e.g. a canned index page
	Body string
	// StatusCode defaults to 200 when unset
	StatusCode int
	Error      bool
	// DownloadError makes only GetURL fail, Get keeps working
	DownloadError bool
}

// Get serves the canned Body and stores the url into ClientCalls
func (m *FakeHTTPClient) Get(url string) (*http.Response, error) {
	m.ClientCalls = append(m.ClientCalls, url)
	if m.Error {
		return nil, errors.New("fake http error")
	}
	code := m.StatusCode
	if code == 0 {
		code = http.StatusOK
	}
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(m.Body)),
	}, nil
}

// GetURL stores the url into ClientCalls without downloading anything
func (m *FakeHTTPClient) GetURL(_ v1.Logger, url string, _ string) error {
	m.ClientCalls = append(m.ClientCalls, url)
	if m.Error || m.DownloadError {
		return errors.New("fake http error")
	}
	return nil
}

// WasGetCalledWith is a helper method to confirm that the client was called
// with the given url
func (m *FakeHTTPClient) WasGetCalledWith(url string) bool {
	for _, c := range m.ClientCalls {
		if c == url {
			return true
		}
	}
	return false
}
