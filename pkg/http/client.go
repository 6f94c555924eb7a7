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

package http

import (
	"net/http"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"github.com/docker/go-units"

	"github.com/pybuild-sh/pybuild/pkg/constants"
	v1 "github.com/pybuild-sh/pybuild/pkg/types/v1"
)

type Client struct {
	client *grab.Client
	// pageClient carries a timeout, tarball downloads do not
	pageClient *http.Client
}

func NewClient() *Client {
	return &Client{
		client:     grab.NewClient(),
		pageClient: &http.Client{Timeout: time.Second * constants.HTTPTimeout},
	}
}

// Get retrieves the given URL, used for the version index page
func (c Client) Get(url string) (*http.Response, error) {
	return c.pageClient.Get(url)
}

// GetURL attempts to download the contents of the given URL to the given destination
func (c Client) GetURL(log v1.Logger, url string, destination string) error { // nolint:revive
	req, err := grab.NewRequest(destination, url)
	if err != nil {
		log.Errorf("Failed creating a request to '%s'", url)
		return err
	}

	// start download
	log.Infof("Downloading %v...", req.URL())
	resp := c.client.Do(req)

	t := time.NewTicker(500 * time.Millisecond)
	defer t.Stop()

Loop:
	for {
		select {
		case <-t.C:
			log.Debugf("  transferred %v / %v bytes (%.2f%%)",
				resp.BytesComplete(),
				resp.Size(),
				100*resp.Progress())

		case <-resp.Done:
			// download is complete
			break Loop
		}
	}

	if err := resp.Err(); err != nil {
		log.Errorf("Download failed: %v", err)
		return err
	}

	log.Infof("Downloaded %s to %v", units.BytesSize(float64(resp.BytesComplete())), resp.Filename)
	return nil
}
