// Package postapi is the client for the community post listing API, a
// cursor-paginated read of published posts.
//
// Pages are fetched by referencing the last seen post ID instead of an
// offset: the server returns the next Size posts strictly after the cursor
// in its own (reverse-chronological) ordering. A nil NextPostID with
// HasNext=false marks the end of the stream. Reads are idempotent: the same
// cursor and filters yield the same page while nothing is written.
//
// Two backends implement the Client interface: HTTPClient for the real
// deployment and Simulator over a fixed in-memory dataset for UI work and
// tests.
//
// # Usage
//
//	client := postapi.NewSimulator()
//	page, err := client.GetPosts(ctx, postapi.Params{Size: 10})
//	for page.HasNext {
//	    page, err = client.GetPosts(ctx, postapi.Params{Size: 10, LastPostID: *page.NextPostID})
//	    // ...
//	}
package postapi
