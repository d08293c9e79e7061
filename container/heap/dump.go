// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump returns a rendering of the implicit tree structure of h, one
// node per element annotated with its position, for debugging. The
// positions are those accepted by Remove and Fix.
func Dump[T any](h []T) string {
	if len(h) == 0 {
		return ""
	}
	tree := treeprint.NewWithRoot(node(h, 0))
	dump(tree, h, 0)
	return tree.String()
}

func node[T any](h []T, pos int) string {
	return fmt.Sprintf("[%v] %v", pos, h[pos])
}

func dump[T any](tree treeprint.Tree, h []T, pos int) {
	for child := 2*pos + 1; child <= 2*pos+2 && child < len(h); child++ {
		dump(tree.AddBranch(node(h, child)), h, child)
	}
}
