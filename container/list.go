package container

// listNode is a single node of List. Only used where pointer stability under
// growth matters more than cache-friendly iteration, per spec §4.1.
type listNode[T any] struct {
	value T
	next  *listNode[T]
}

// List is a singly linked list with node-per-item allocation and recursive
// destroy, mirroring the reference ListLinked contract.
type List[T any] struct {
	head  *listNode[T]
	tail  *listNode[T]
	count int
}

// Append adds value to the end of the list and returns a stable pointer to
// the stored value.
func (l *List[T]) Append(value T) *T {
	node := &listNode[T]{value: value}
	if l.tail == nil {
		l.head = node
		l.tail = node
	} else {
		l.tail.next = node
		l.tail = node
	}
	l.count++
	return &node.value
}

// Count returns the number of nodes in the list.
func (l *List[T]) Count() int {
	return l.count
}

// Each calls fn for every value in insertion order.
func (l *List[T]) Each(fn func(*T)) {
	for n := l.head; n != nil; n = n.next {
		fn(&n.value)
	}
}

// Destroy releases every node. Go's GC reclaims the chain; this resets the
// list to empty, matching the reference's recursive-destroy contract.
func (l *List[T]) Destroy() {
	l.head = nil
	l.tail = nil
	l.count = 0
}
