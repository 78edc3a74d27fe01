// Package list provides the node chains that the exported containers
// are built out of.
package list

// Node is a single forward-linked cell. A node exclusively owns its
// successor.
type Node[T any] struct {
	Val  T
	next *Node[T]
}

// Next returns the node after n, or nil if n is the last node in its
// chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// InsertAfter splices a new node containing v into the chain directly
// after n and returns it.
func (n *Node[T]) InsertAfter(v T) *Node[T] {
	n.next = &Node[T]{Val: v, next: n.next}
	return n.next
}

// RemoveAfter unlinks the node after n and returns it, or returns nil
// if there is no such node. The returned node no longer points back
// into the chain.
func (n *Node[T]) RemoveAfter() *Node[T] {
	r := n.next
	if r == nil {
		return nil
	}

	n.next = r.next
	r.next = nil
	return r
}
