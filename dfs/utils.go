// SPDX-License-Identifier: MIT

package dfs

import (
	"strings"

	"github.com/SebastianSpeitel/datalink/id"
)

// IndexOf returns the first index of val in s, or -1.
func IndexOf(s []id.ID, val id.ID) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// JoinSig joins the identities of c with commas.
func JoinSig(c []id.ID) string {
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = x.String()
	}

	return strings.Join(parts, ",")
}

// MinimalRotation returns the rotation of s that is smallest under
// id.ID.Compare, using Booth's algorithm in O(n). s is not modified.
func MinimalRotation(s []id.ID) []id.ID {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]id.ID, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j].Compare(doubled[k+i+1]) < 0 {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j].Compare(doubled[k]) < 0 {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]id.ID(nil), doubled[k:k+n]...)
}
