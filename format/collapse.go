// SPDX-License-Identifier: MIT

package format

import (
	"math/big"

	"github.com/SebastianSpeitel/datalink/core"
)

// collapse renders the scalars of a linkless value inline. Several scalars
// that all carry the same number reduce to that number without a suffix.
func collapse(vals []core.Scalar) string {
	if len(vals) > 1 {
		if n, ok := sharedNumber(vals); ok {
			return "{" + numberText(n) + "}"
		}
	}

	return "{" + joinScalars(vals) + "}"
}

// sharedNumber reports the exact number every scalar in vals equals. Values
// compare mathematically, so -1i8 and 255u8 differ and NaN matches nothing.
func sharedNumber(vals []core.Scalar) (*big.Float, bool) {
	first, ok := vals[0].Number()
	if !ok {
		return nil, false
	}
	for _, v := range vals[1:] {
		n, ok := v.Number()
		if !ok || n.Cmp(first) != 0 {
			return nil, false
		}
	}

	return first, true
}

func numberText(n *big.Float) string {
	if n.IsInt() {
		i, _ := n.Int(nil)
		return i.String()
	}

	return n.Text('g', -1)
}
