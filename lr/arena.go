package lr

import "github.com/npillmayer/lrcore/grammar"

// kernelArena stages the kernel items of successor states, one region per
// shift symbol, inside a single flat buffer. Region sizes are computed once
// from the grammar: symbol s gets as many slots as there are items with s
// after the dot, which bounds the number of items shifting over s in any state.
//
// The arena is reset for every state processed and never grows.
type kernelArena struct {
	base  []int // start of region per symbol
	end   []int // write cursor per symbol, -1 if untouched
	items []int
}

func newKernelArena(g *grammar.Grammar) *kernelArena {
	count := make([]int, g.NSyms)
	total := 0
	for _, sym := range g.Ritem {
		if sym >= 0 {
			count[sym]++
			total++
		}
	}
	a := &kernelArena{
		base:  make([]int, g.NSyms),
		end:   make([]int, g.NSyms),
		items: make([]int, total),
	}
	offset := 0
	for sym := 0; sym < g.NSyms; sym++ {
		a.base[sym] = offset
		offset += count[sym]
	}
	a.reset()
	return a
}

// reset marks every region as empty.
func (a *kernelArena) reset() {
	for sym := range a.end {
		a.end[sym] = -1
	}
}

// push appends item to the region of sym. It returns true if this is the
// first item staged for sym since the last reset.
func (a *kernelArena) push(sym int, item int) bool {
	first := false
	ksp := a.end[sym]
	if ksp == -1 {
		first = true
		ksp = a.base[sym]
	}
	a.items[ksp] = item
	a.end[sym] = ksp + 1
	return first
}

// kernel returns the items staged for sym. The slice is only valid until the
// next reset.
func (a *kernelArena) kernel(sym int) []int {
	if a.end[sym] == -1 {
		return nil
	}
	return a.items[a.base[sym]:a.end[sym]]
}
