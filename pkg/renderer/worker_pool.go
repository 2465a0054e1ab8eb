package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// rowPool distributes image rows across a fixed set of workers. Every row is
// rendered with its own random generator seeded from the base seed and the
// row index, keeping samples uncorrelated between rows and making the render
// deterministic regardless of worker count or scheduling.
type rowPool struct {
	raytracer   *Raytracer
	framebuffer *Framebuffer
	taskQueue   chan int
	resultQueue chan int
	numWorkers  int
	wg          sync.WaitGroup
}

// newRowPool creates a pool sized by the raytracer config
func newRowPool(rt *Raytracer, fb *Framebuffer) *rowPool {
	numWorkers := rt.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &rowPool{
		raytracer:   rt,
		framebuffer: fb,
		taskQueue:   make(chan int, rt.config.Height),
		resultQueue: make(chan int, rt.config.Height),
		numWorkers:  numWorkers,
	}
}

// start begins all workers
func (p *rowPool) start() {
	for w := 0; w < p.numWorkers; w++ {
		p.wg.Add(1)
		go p.run()
	}

	// Close the result queue once every worker has drained the task queue
	go func() {
		p.wg.Wait()
		close(p.resultQueue)
	}()
}

// submit queues an image row for rendering
func (p *rowPool) submit(y int) {
	p.taskQueue <- y
}

// close signals that no more rows will be submitted
func (p *rowPool) close() {
	close(p.taskQueue)
}

// results returns the channel of completed row indices
func (p *rowPool) results() <-chan int {
	return p.resultQueue
}

// run is the main worker loop. Rows have non-overlapping framebuffer slices,
// so workers write without locking.
func (p *rowPool) run() {
	defer p.wg.Done()

	for y := range p.taskQueue {
		random := rand.New(rand.NewSource(p.raytracer.config.Seed + int64(y)))
		p.raytracer.renderRow(p.framebuffer, y, random)
		p.resultQueue <- y
	}
}
