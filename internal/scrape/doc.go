// Package scrape provides the orchestration logic for exporting an
// artist's songs from letras.com.
//
// # Manager
//
// The Manager coordinates the whole export:
//
//  1. Fetch the artist's most accessed page and list its song URLs
//  2. Fetch and parse every song page, sequentially or concurrently
//  3. Write the songs to <outputName>.json
//
// # Basic Usage
//
//	manager := scrape.NewManager(settings, func(event scrape.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	count, err := manager.Export(ctx, "https://www.letras.com/tom-jobim/", "tom-jobim", model.ModeConcurrent)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// ModeConcurrent runs at most settings.Workers() fetches at once. Songs are
// always returned in catalog order, whatever order the fetches finish in.
//
// # Failures
//
// There are no retries. A single failing song aborts the export and no
// file is written.
package scrape
