package baseline

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/cocosip/go-jfif-codec/jpeg/common"
)

// scanParallel transforms MCU rows on a worker pool and drains them in row
// order through the single entropy coder. At most 2*workers rows are in
// flight, so memory stays bounded for tall images.
func (enc *Encoder) scanParallel(state *EncoderState, img *Image) error {
	blocksWide := common.DivCeil(img.Width, 8)
	blocksHigh := common.DivCeil(img.Height, 8)

	// One buffered slot per row; each is written exactly once
	results := make([]chan []mcuBlocks, blocksHigh)
	for i := range results {
		results[i] = make(chan []mcuBlocks, 1)
	}

	jobs := make(chan int)
	slots := make(chan struct{}, 2*enc.workers)
	done := make(chan struct{})

	var wg sync.WaitGroup
	for w := 0; w < enc.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for by := range jobs {
				row := make([]mcuBlocks, blocksWide)
				for bx := 0; bx < blocksWide; bx++ {
					enc.transformMCU(img, bx, by, &row[bx])
				}
				results[by] <- row
			}
		}()
	}

	// Dispatch rows in order, never more than cap(slots) ahead of the consumer
	go func() {
		defer close(jobs)
		for by := 0; by < blocksHigh; by++ {
			select {
			case slots <- struct{}{}:
			case <-done:
				return
			}
			select {
			case jobs <- by:
			case <-done:
				return
			}
		}
	}()

	var err error
	for by := 0; by < blocksHigh && err == nil; by++ {
		row := <-results[by]
		for bx := range row {
			if err = state.encodeMCU(&row[bx]); err != nil {
				err = errors.Wrapf(err, "MCU (%d,%d)", bx, by)
				break
			}
		}
		<-slots
	}

	close(done)
	wg.Wait()

	return err
}
