// Package http provides an HTTP client configured for letras.com requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Treating any status other than 200 OK as an error
//   - Counting received bytes for progress display
//
// # Basic Usage
//
//	client := http.NewClient("", 0)
//
//	// Fetch HTML page
//	page, err := client.Get(ctx, "https://www.letras.com/tom-jobim/49/")
//
// Failed requests are not retried.
package http
