package container

// FreeList recycles small-integer handle slots for a subsystem-local array.
// Create returns a free index to reuse if one is available, otherwise the
// next dense index; Destroy pushes the freed index back for reuse.
//
// Handle identity is not stable across Destroy-then-Create: a freed index
// may be handed back out by the next Create call. Callers must treat handles
// as opaque and never retain one past its Destroy.
type FreeList struct {
	free  []int
	count int
}

// Create returns the next handle index to use, recycling a freed one if
// available.
func (f *FreeList) Create() int {
	if n := len(f.free); n > 0 {
		idx := f.free[n-1]
		f.free = f.free[:n-1]
		return idx
	}
	idx := f.count
	f.count++
	return idx
}

// Destroy marks index as free for recycling.
func (f *FreeList) Destroy(index int) {
	f.free = append(f.free, index)
}

// Count returns the number of dense slots ever allocated (active + free).
func (f *FreeList) Count() int {
	return f.count
}

// FreeCount returns the number of indices currently recyclable.
func (f *FreeList) FreeCount() int {
	return len(f.free)
}

// Valid reports whether index is within the allocated range. It does not by
// itself know whether index is active or free; callers combine this with
// their own active-flag array, per spec §3's handle-validity rule.
func (f *FreeList) Valid(index int) bool {
	return index >= 0 && index < f.count
}
