package cli

import (
	"context"
	"os"

	"github.com/phrazzld/examzen/internal/domain"
	"golang.org/x/sync/errgroup"
)

// pageReadConcurrency bounds the page files open at once.
const pageReadConcurrency = 4

// ReadPages loads the page image files at paths concurrently. The result is
// in argument order, which is the reading order of the chapter.
func ReadPages(ctx context.Context, paths []string, maxBytes int64) ([]domain.Image, error) {
	pages := make([]domain.Image, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(pageReadConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := readPage(path, maxBytes)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

func readPage(path string, maxBytes int64) (domain.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Image{}, newLocalError(err, "cannot read page %s", path)
	}
	if info.IsDir() {
		return domain.Image{}, newLocalError(nil, "page %s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return domain.Image{}, domain.NewValidationError("page "+path, "is too large", domain.ErrImageTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Image{}, newLocalError(err, "cannot read page %s", path)
	}
	return domain.NewImage(path, data, maxBytes)
}
