package model

import "sync"

// generation holds next-generation results for one bounding rectangle,
// indexed row-major by offset from the rectangle's minimum corner
type generation struct {
	width  int
	height int
	alive  []bool
}

// Reset resizes the buffer for a width x height rectangle and clears it
func (g *generation) Reset(width, height int) {
	g.width = width
	g.height = height

	size := width * height
	if cap(g.alive) < size {
		g.alive = make([]bool, size)
		return
	}
	g.alive = g.alive[:size]
	clear(g.alive)
}

func (g *generation) set(x, y int, alive bool) {
	g.alive[y*g.width+x] = alive
}

func (g *generation) get(x, y int) bool {
	return g.alive[y*g.width+x]
}

// generationPool recycles tick buffers between generations
type generationPool struct {
	pool sync.Pool
}

func newGenerationPool() *generationPool {
	return &generationPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &generation{}
			},
		},
	}
}

// Get retrieves a buffer from the pool, resetting its dimensions
func (p *generationPool) Get(width, height int) *generation {
	g := p.pool.Get().(*generation)
	g.Reset(width, height)
	return g
}

// Put returns a buffer to the pool
func (p *generationPool) Put(g *generation) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}

var generations = newGenerationPool()
