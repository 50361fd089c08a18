// SPDX-License-Identifier: MIT

package core_test

import (
	"lukechampine.com/uint128"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/id"
)

// everyKind offers one scalar of each primitive kind, in declaration order.
type everyKind struct{}

func (everyKind) ProvideValue(req *core.Request) {
	req.ProvideBool(true)
	req.ProvideU8(8)
	req.ProvideU16(16)
	req.ProvideU32(32)
	req.ProvideU64(64)
	req.ProvideU128(uint128.New(128, 1))
	req.ProvideI8(-8)
	req.ProvideI16(-16)
	req.ProvideI32(-32)
	req.ProvideI64(-64)
	req.ProvideI128(core.Int128From64(-128))
	req.ProvideF32(3.5)
	req.ProvideF64(6.25)
	req.ProvideChar('c')
	req.ProvideString("text")
	req.ProvideBytes([]byte("raw"))
	req.ProvideOther(struct{ N int }{N: 1})
}

func (everyKind) ProvideLinks(core.Links) error { return nil }

// kindRecorder logs the kind of every typed callback it receives.
type kindRecorder struct {
	core.BaseReceiver
	accept core.Set
	seen   []core.Kind
	owned  []bool
}

func (r *kindRecorder) Accepts() core.Set { return r.accept }
func (r *kindRecorder) Bool(bool) { r.seen = append(r.seen, core.KindBool) }
func (r *kindRecorder) U8(uint8) { r.seen = append(r.seen, core.KindU8) }
func (r *kindRecorder) U16(uint16) { r.seen = append(r.seen, core.KindU16) }
func (r *kindRecorder) U32(uint32) { r.seen = append(r.seen, core.KindU32) }
func (r *kindRecorder) U64(uint64) { r.seen = append(r.seen, core.KindU64) }
func (r *kindRecorder) U128(uint128.Uint128) { r.seen = append(r.seen, core.KindU128) }
func (r *kindRecorder) I8(int8) { r.seen = append(r.seen, core.KindI8) }
func (r *kindRecorder) I16(int16) { r.seen = append(r.seen, core.KindI16) }
func (r *kindRecorder) I32(int32) { r.seen = append(r.seen, core.KindI32) }
func (r *kindRecorder) I64(int64) { r.seen = append(r.seen, core.KindI64) }
func (r *kindRecorder) I128(core.Int128) { r.seen = append(r.seen, core.KindI128) }
func (r *kindRecorder) F32(float32) { r.seen = append(r.seen, core.KindF32) }
func (r *kindRecorder) F64(float64) { r.seen = append(r.seen, core.KindF64) }
func (r *kindRecorder) Char(rune) { r.seen = append(r.seen, core.KindChar) }
func (r *kindRecorder) Str(string) { r.seen = append(r.seen, core.KindString) }
func (r *kindRecorder) Bytes(_ []byte, owned bool) {
	r.seen, r.owned = append(r.seen, core.KindBytes), append(r.owned, owned)
}
func (r *kindRecorder) Other(_ core.Other, owned bool) {
	r.seen, r.owned = append(r.seen, core.KindOther), append(r.owned, owned)
}

// node is a minimal identifiable value with scalars and links.
type node struct {
	id     id.ID
	values []core.Scalar
	links  core.Pairs
}

func (n *node) ProvideValue(req *core.Request) {
	for _, v := range n.values {
		req.Provide(v)
	}
}

func (n *node) ProvideLinks(links core.Links) error { return n.links.ProvideLinks(links) }

func (n *node) ID() (id.ID, bool) { return n.id, !n.id.IsZero() }

func mustID(v uint64) id.ID {
	i, err := id.FromUint64(v)
	if err != nil {
		panic(err)
	}

	return i
}
