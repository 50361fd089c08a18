// SPDX-License-Identifier: MIT

package core

// Control tells a producer whether to keep pushing links.
type Control uint8

const (
	// Continue asks for more links.
	Continue Control = iota
	// Break asks the producer to stop; it is not an error.
	Break
)

func (c Control) String() string {
	if c == Break {
		return "break"
	}

	return "continue"
}

// Link is an edge to Target, keyed when Key is non-nil.
type Link struct {
	Key    Data
	Target Data
}

// Keyed reports whether l has a key.
func (l Link) Keyed() bool { return l.Key != nil }

// Links is a sink for outgoing links. Each Push appends exactly one link.
// A nil target is rejected with ErrMissingTarget; a nil key means unkeyed.
type Links interface {
	Push(target, key Data) (Control, error)
}

// LinksFunc adapts a function to the Links interface.
type LinksFunc func(target, key Data) (Control, error)

// Push calls f.
func (f LinksFunc) Push(target, key Data) (Control, error) {
	if target == nil {
		return Break, ErrMissingTarget
	}

	return f(target, key)
}

// PushKeyed pushes a link from key to target.
func PushKeyed(l Links, key, target Data) (Control, error) {
	return l.Push(target, key)
}

// PushUnkeyed pushes a link without a key.
func PushUnkeyed(l Links, target Data) (Control, error) {
	return l.Push(target, nil)
}

// PushLink pushes link.
func PushLink(l Links, link Link) (Control, error) {
	return l.Push(link.Target, link.Key)
}

// Extend pushes links in order and stops at the first Break or error.
func Extend(l Links, links []Link) (Control, error) {
	for _, link := range links {
		ctl, err := l.Push(link.Target, link.Key)
		if err != nil || ctl == Break {
			return ctl, err
		}
	}

	return Continue, nil
}
