// SPDX-License-Identifier: MIT

package core

// Collector gathers every offered scalar of the declared Kinds, in offer
// order. Borrowed byte buffers are copied.
type Collector struct {
	Kinds  Set
	Values []Scalar
}

// Accepts returns c.Kinds.
func (c *Collector) Accepts() Set { return c.Kinds }

// Receive appends s.
func (c *Collector) Receive(s Scalar, owned bool) {
	if !owned {
		s = s.Clone()
	}
	c.Values = append(c.Values, s)
}

// ReceiveData collects the scalars of d.
func (c *Collector) ReceiveData(d Data) { d.ProvideValue(NewErasedRequest(c)) }

// Collect returns every scalar of the given kinds that d offers.
func Collect(d Data, kinds Set) []Scalar {
	c := &Collector{Kinds: kinds}
	d.ProvideValue(NewErasedRequest(c))

	return c.Values
}

// firstScalar keeps the first offered scalar accepted by pred.
type firstScalar struct {
	kinds Set
	pred  func(Scalar) bool
	s     Scalar
	found bool
}

func (f *firstScalar) Accepts() Set { return f.kinds }

func (f *firstScalar) Receive(s Scalar, owned bool) {
	if f.found || (f.pred != nil && !f.pred(s)) {
		return
	}
	if !owned {
		s = s.Clone()
	}
	f.s, f.found = s, true
}

func (f *firstScalar) ReceiveData(d Data) {
	if !f.found {
		d.ProvideValue(NewErasedRequest(f))
	}
}

func firstOf(d Data, kinds Set, pred func(Scalar) bool) (Scalar, bool) {
	if d == nil {
		return Scalar{}, false
	}
	f := &firstScalar{kinds: kinds, pred: pred}
	d.ProvideValue(NewErasedRequest(f))

	return f.s, f.found
}

// AsBool returns the first bool d offers.
func AsBool(d Data) (bool, bool) {
	s, ok := firstOf(d, SetOf(KindBool), nil)
	if !ok {
		return false, false
	}

	return s.Bool()
}

// AsText returns the first text d offers; a char counts as one-rune text.
func AsText(d Data) (string, bool) {
	s, ok := firstOf(d, TextKinds, nil)
	if !ok {
		return "", false
	}
	if r, isChar := s.Char(); isChar {
		return string(r), true
	}

	return s.Text()
}

// AsInt64 returns the first integer d offers that fits in an int64.
func AsInt64(d Data) (int64, bool) {
	s, ok := firstOf(d, IntegerKinds, func(s Scalar) bool {
		_, fits := s.Int()
		return fits
	})
	if !ok {
		return 0, false
	}

	return s.Int()
}

// AsUint64 returns the first integer d offers that fits in a uint64.
func AsUint64(d Data) (uint64, bool) {
	s, ok := firstOf(d, IntegerKinds, func(s Scalar) bool {
		_, fits := s.Uint()
		return fits
	})
	if !ok {
		return 0, false
	}

	return s.Uint()
}

// AsFloat64 returns the first float d offers.
func AsFloat64(d Data) (float64, bool) {
	s, ok := firstOf(d, FloatKinds, nil)
	if !ok {
		return 0, false
	}

	return s.Float()
}

// AsBytes returns a copy of the first byte buffer d offers.
func AsBytes(d Data) ([]byte, bool) {
	s, ok := firstOf(d, SetOf(KindBytes), nil)
	if !ok {
		return nil, false
	}

	return s.Bytes()
}

// AllLinks collects every link of d.
func AllLinks(d Data) (Pairs, error) {
	var p Pairs
	if err := d.ProvideLinks(&p); err != nil {
		return p, err
	}

	return p, nil
}

// Get returns the target of the first link of d whose key offers text equal
// to key.
func Get(d Data, key string) (Data, bool, error) {
	var found Data
	err := d.ProvideLinks(LinksFunc(func(target, k Data) (Control, error) {
		if k == nil {
			return Continue, nil
		}
		if text, ok := AsText(k); ok && text == key {
			found = target
			return Break, nil
		}
		return Continue, nil
	}))
	if err != nil {
		return nil, false, err
	}

	return found, found != nil, nil
}
