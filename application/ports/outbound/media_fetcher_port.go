package outbound

import "context"

// MediaFetcherPort reads the bytes behind a remote video URL so that URL
// inputs can feed the isolation call without a local upload.
type MediaFetcherPort interface {
	FetchMedia(ctx context.Context, url string) ([]byte, error)
}
