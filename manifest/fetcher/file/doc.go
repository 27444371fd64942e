// Package file reads manifest documents from disk for the manifest package.
//
// A Fetcher reads its file once, at construction, and rejects anything that is
// not a regular file of at most MaxSize bytes:
//
//	fetcher, err := file.NewFetcher("/home/example/package.json")()
//	if err != nil {
//	    // not found, directory, not a regular file, too large, ...
//	}
//	data, err := fetcher.Fetch()
//	root := fetcher.Dir() // "/home/example"
package file
