package v1

import "net/http"

// HTTPClient covers the two network needs of the tool: fetching the remote
// version index for scraping and downloading source tarballs to disk.
type HTTPClient interface {
	Get(url string) (*http.Response, error)
	GetURL(log Logger, url string, destination string) error
}
