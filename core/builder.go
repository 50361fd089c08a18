// SPDX-License-Identifier: MIT

package core

import "fmt"

// LinkBuilder is the step-wise producer side of the Link-Graph Protocol:
//
//	SetKey (optional, at most once) → SetTarget (exactly once) → Build
//
// repeated for each link, then End.
type LinkBuilder interface {
	SetKey(key Data) error
	SetTarget(target Data) error
	Build() (Control, error)
	End() error
}

// Builder implements LinkBuilder on top of a Links sink.
type Builder struct {
	sink   Links
	key    Data
	target Data
	ended  bool
}

// NewBuilder returns a Builder pushing finished links into sink.
func NewBuilder(sink Links) *Builder {
	return &Builder{sink: sink}
}

// SetKey sets the key of the link being built. A nil key is a no-op.
func (b *Builder) SetKey(key Data) error {
	if b.ended {
		return ErrAlreadyEnded
	}
	if key == nil {
		return nil
	}
	if b.key != nil {
		return ErrKeyAlreadySet
	}
	b.key = key

	return nil
}

// SetTarget sets the target of the link being built.
func (b *Builder) SetTarget(target Data) error {
	if b.ended {
		return ErrAlreadyEnded
	}
	if target == nil {
		return ErrMissingTarget
	}
	if b.target != nil {
		return ErrTargetAlreadySet
	}
	b.target = target

	return nil
}

// Build finalizes the pending link and pushes it into the sink. The pending
// state is cleared even when the sink fails.
func (b *Builder) Build() (Control, error) {
	if b.ended {
		return Break, ErrAlreadyEnded
	}
	if b.target == nil {
		return Break, ErrMissingTarget
	}
	key, target := b.key, b.target
	b.key, b.target = nil, nil

	return b.sink.Push(target, key)
}

// End finalizes the session. It fails when a key or target is still pending;
// the builder is ended either way.
func (b *Builder) End() error {
	if b.ended {
		return ErrAlreadyEnded
	}
	b.ended = true
	switch {
	case b.target != nil:
		return ErrPendingLink
	case b.key != nil:
		return fmt.Errorf("%w: key without target: %w", ErrPendingLink, ErrMissingTarget)
	}

	return nil
}
