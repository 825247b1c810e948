package cmc

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface. It checks for a
// cached response on disk first. If a fresh cached response is not found, it
// proceeds with the actual HTTP request and caches the new response if it's
// successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the key includes the day, so entries in the local tmp expire daily
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// newDailyCachingClient returns an http.Client that uses a disk cache where
// entries expire daily. Listing and global statistics move slowly enough
// that a day-old answer is fine; per-asset quotes never go through it.
func newDailyCachingClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport}
	return client
}

// statusError reports a non-200 response, keeping the code so callers can
// map specific statuses to domain errors.
type statusError struct {
	code   int
	status string
	url    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("cannot http GET %s: %s", e.url, e.status)
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure. It uses the provided
// http.Client for the request.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		resp.Body.Close()
		return &statusError{code: resp.StatusCode, status: resp.Status, url: addr}
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
