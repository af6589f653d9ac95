// Package golden stores and checks slug fixtures, used to verify parity
// between independent slugifier implementations.
//
// A golden file is a JSON object mapping a case identifier to its input
// text, options and expected slug. Option fields absent from a case keep
// their documented defaults.
package golden

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/klingtnet/slugify"
)

// Case is a single golden comparison entry.
type Case struct {
	Input    string          `json:"input"`
	Options  slugify.Options `json:"options"`
	Expected string          `json:"expected"`
}

// File maps case identifiers to their golden cases.
type File map[string]Case

// Mismatch reports a case whose computed slug differs from the stored one.
type Mismatch struct {
	ID   string
	Got  string
	Want string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %q, want %q", m.ID, m.Got, m.Want)
}

// Read decodes a golden file. Unset option fields fall back to
// slugify.DefaultOptions, so stored cases only need to spell out what they
// change.
func Read(r io.Reader) (File, error) {
	var raw map[string]json.RawMessage
	err := json.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding golden file: %w", err)
	}

	f := make(File, len(raw))
	for id, message := range raw {
		c := Case{Options: slugify.DefaultOptions()}
		err = json.Unmarshal(message, &c)
		if err != nil {
			return nil, fmt.Errorf("decoding case %q: %w", id, err)
		}
		f[id] = c
	}

	return f, nil
}

// Load reads a golden file from disk.
func Load(path string) (File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

// Write encodes the file as indented JSON with sorted case identifiers.
func (f File) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	return encoder.Encode(f)
}

// Save writes the golden file to disk.
func (f File) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = f.Write(file)
	if err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// ids returns the case identifiers in stable order.
func (f File) ids() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// run slugifies every case concurrently and hands each result to collect,
// indexed by the case's position in id order.
func (f File) run(ctx context.Context, concurrency int, collect func(idx int, id string, got string)) error {
	if concurrency < 1 {
		return slugify.ErrNotEnoughConcurrency
	}

	ids := f.ids()
	indexCh := make(chan int, concurrency)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(indexCh)
		for i := range ids {
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
				id := ids[idx]
				c := f[id]
				got, err := slugify.Slugify(c.Input, c.Options)
				if err != nil {
					return fmt.Errorf("case %q: %w", id, err)
				}
				collect(idx, id, got)
			}

			return ctx.Err()
		})
	}

	return eg.Wait()
}

// Verify recomputes every case's slug with up to concurrency workers and
// returns the mismatches in case-identifier order. An empty result means
// the implementation matches the golden file.
func (f File) Verify(ctx context.Context, concurrency int) ([]Mismatch, error) {
	results := make([]*Mismatch, len(f))
	err := f.run(ctx, concurrency, func(idx int, id, got string) {
		c := f[id]
		if got != c.Expected {
			results[idx] = &Mismatch{ID: id, Got: got, Want: c.Expected}
		}
	})
	if err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for _, result := range results {
		if result != nil {
			mismatches = append(mismatches, *result)
		}
	}

	return mismatches, nil
}

// Update recomputes every case and stores the result as the new expected
// slug.
func (f File) Update(ctx context.Context, concurrency int) error {
	results := make([]string, len(f))
	err := f.run(ctx, concurrency, func(idx int, id, got string) {
		results[idx] = got
	})
	if err != nil {
		return err
	}

	for idx, id := range f.ids() {
		c := f[id]
		c.Expected = results[idx]
		f[id] = c
	}

	return nil
}
