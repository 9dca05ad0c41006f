package ingester

import (
	"context"
	"fmt"
)

// windowHeightFetcher returns the next heights after the highest persisted block, bounded by the
// node's tip and the window size.
type windowHeightFetcher struct {
	source      BlockSource
	repository  Repository
	startHeight uint64
	window      uint64
}

func (f *windowHeightFetcher) Fetch(ctx context.Context) ([]uint64, error) {
	latest, err := f.source.LatestHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest height: %w", err)
	}

	persisted, ok, err := f.repository.MaxBlockHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("max persisted height: %w", err)
	}

	next := f.startHeight
	if ok && persisted+1 > next {
		next = persisted + 1
	}
	if next > latest {
		return nil, nil
	}

	last := latest
	if f.window > 0 && next+f.window-1 < latest {
		last = next + f.window - 1
	}

	heights := make([]uint64, 0, last-next+1)
	for h := next; h <= last; h++ {
		heights = append(heights, h)
	}
	return heights, nil
}
