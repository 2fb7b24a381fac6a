package imagehost

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/m3rciful/skishopbot/core/logger"
	"log/slog"
)

// maxConcurrentUploads caps the fan-out for one commit. Matches the album
// size limit so one batch never exceeds a single preview group.
const maxConcurrentUploads = 10

// UploadFunc resolves one staged reference to a durable URL. Implementations
// typically chain a transport download-location lookup with Client.Upload.
type UploadFunc func(ctx context.Context, ref string) (string, error)

// UploadAll uploads every staged reference concurrently and returns the
// durable URLs of the successful ones in the original order. Per-item
// failures are logged and dropped; siblings are never cancelled. The caller
// compares len(result) with len(refs) for partial-failure messaging.
func UploadAll(ctx context.Context, refs []string, upload UploadFunc) []string {
	if len(refs) == 0 {
		return nil
	}

	results := make([]string, len(refs))
	sem := semaphore.NewWeighted(maxConcurrentUploads)
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				logger.SVCMedia.Warn("upload skipped",
					slog.Int("index", i),
					slog.String("err", err.Error()),
				)
				return
			}
			defer sem.Release(1)

			url, err := upload(ctx, ref)
			if err != nil {
				logger.SVCMedia.Warn("upload failed",
					slog.Int("index", i),
					slog.String("ref", logger.SanitizeLimit(ref, 64)),
					slog.String("err", err.Error()),
				)
				return
			}
			results[i] = url
		}(i, ref)
	}
	wg.Wait()

	// Re-zip by input index so output order never depends on completion order.
	urls := make([]string, 0, len(refs))
	for _, url := range results {
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}
