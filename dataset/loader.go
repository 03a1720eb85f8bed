package dataset

import (
	"math/rand"
	"sync"
)

// LoaderParams defines the configuration parameters for batched loading
type LoaderParams struct {
	// BatchSize is the number of items per batch
	BatchSize int
	// Workers is the number of goroutines loading samples concurrently
	Workers int
	// Shuffle randomizes the sample order each epoch
	Shuffle bool
	// Seed is the random seed used for shuffling
	Seed int64
}

// DefaultLoaderParams returns an instance of LoaderParams configured with
// default values featuring:
// - Batch Size: 128
// - Workers: 4
// - Shuffle: true
func DefaultLoaderParams() LoaderParams {
	return LoaderParams{
		BatchSize: 128,
		Workers:   4,
		Shuffle:   true,
		Seed:      1,
	}
}

// Loader streams batches of training items from a dataset using a pool of
// worker goroutines.  Samples that fail to load or generate are skipped,
// matching the propagation policy that a failed instance produces no
// tensor, the first error and the skip count are available after the batch
// channel is drained
type Loader struct {
	ds     *Dataset
	params LoaderParams

	mu       sync.Mutex
	firstErr error
	skipped  int
}

// NewLoader returns a Loader over the given dataset
func NewLoader(ds *Dataset, p LoaderParams) *Loader {
	return &Loader{
		ds:     ds,
		params: p,
	}
}

// Batches runs one epoch over the dataset and returns a channel of filled
// batches.  The final batch may hold fewer than BatchSize items.  The
// channel is closed once all samples have been processed
func (l *Loader) Batches() <-chan *Batch {

	l.mu.Lock()
	l.firstErr = nil
	l.skipped = 0
	l.mu.Unlock()

	workers := l.params.Workers

	if workers < 1 {
		workers = 1
	}

	batchSize := l.params.BatchSize

	if batchSize < 1 {
		batchSize = 1
	}

	indices := make([]int, l.ds.Len())

	for i := range indices {
		indices[i] = i
	}

	if l.params.Shuffle {
		rng := rand.New(rand.NewSource(l.params.Seed))
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	indexCh := make(chan int)
	itemCh := make(chan *Item)
	out := make(chan *Batch)

	// feed sample indices to the workers
	go func() {
		for _, idx := range indices {
			indexCh <- idx
		}
		close(indexCh)
	}()

	// worker pool loading samples
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			for idx := range indexCh {
				item, err := l.ds.Get(idx)

				if err != nil {
					l.recordSkip(err)
					continue
				}

				itemCh <- item
			}
		}()
	}

	go func() {
		wg.Wait()
		close(itemCh)
	}()

	// collate items into batches in arrival order
	go func() {
		defer close(out)

		var batch *Batch

		for item := range itemCh {
			if batch == nil {
				batch = NewBatch(batchSize, len(item.Input),
					len(item.GroundTruth.Data))
			}

			if err := batch.Add(item); err != nil {
				// item shape differs from the batch, skip it
				l.recordSkip(err)
				continue
			}

			if batch.Full() {
				out <- batch
				batch = nil
			}
		}

		if batch != nil && batch.Len() > 0 {
			out <- batch
		}
	}()

	return out
}

// Err returns the first error encountered while loading samples in the
// last epoch, or nil if all samples loaded
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.firstErr
}

// Skipped returns the number of samples skipped in the last epoch
func (l *Loader) Skipped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.skipped
}

// recordSkip notes a failed sample
func (l *Loader) recordSkip(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.firstErr == nil {
		l.firstErr = err
	}

	l.skipped++
}
