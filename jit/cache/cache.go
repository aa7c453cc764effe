// Package cache keeps recently translated micro-blocks keyed by their
// entry location, so a dispatcher can re-enter hot code without
// retranslating it.
package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru"

	"github.com/wutdasheep/armjit/jit/ir"
	"github.com/wutdasheep/armjit/jit/memory"
	"github.com/wutdasheep/armjit/jit/translate"
)

// Blocks is an LRU cache of translated blocks. The zero value is not
// usable; create it with New.
type Blocks struct {
	blocks *lru.Cache
}

func New(size int) (*Blocks, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &Blocks{blocks: c}, nil
}

// Get returns the cached block entered at loc.
func (c *Blocks) Get(loc ir.Location) (*ir.Block, bool) {
	b, ok := c.blocks.Get(loc)
	if !ok {
		return nil, false
	}

	return b.(*ir.Block), true
}

// Add stores a translated block under its entry location.
func (c *Blocks) Add(b *ir.Block) {
	c.blocks.Add(b.Location, b)
}

// GetOrTranslate returns the block entered at loc, translating and
// caching it on a miss.
func (c *Blocks) GetOrTranslate(ctx context.Context, loc ir.Location, mem memory.Memory) *ir.Block {
	if b, ok := c.Get(loc); ok {
		return b
	}

	b := translate.Translate(ctx, loc, mem)
	c.Add(b)

	return b
}

// Len is the number of cached blocks.
func (c *Blocks) Len() int { return c.blocks.Len() }
