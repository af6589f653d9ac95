package slugify

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrNotEnoughConcurrency is returned when a batch operation is requested
// with less than one worker.
var ErrNotEnoughConcurrency = fmt.Errorf("concurrency must be greater than zero")

// SlugifyAll converts texts concurrently using up to concurrency workers and
// returns the slugs in input order. The engine is stateless, so workers need
// no coordination beyond distributing the indices.
func (s *Slugifier) SlugifyAll(ctx context.Context, texts []string, concurrency int) ([]string, error) {
	if concurrency < 1 {
		return nil, ErrNotEnoughConcurrency
	}

	slugs := make([]string, len(texts))
	indexCh := make(chan int, concurrency)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(indexCh)
		for i := range texts {
			select {
			case indexCh <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})
	for i := 0; i < concurrency; i++ {
		eg.Go(func() error {
			for idx := range indexCh {
				slugs[idx] = s.Slugify(texts[idx])
			}

			return ctx.Err()
		})
	}

	err := eg.Wait()
	if err != nil {
		return nil, err
	}

	return slugs, nil
}
