// Package heatmap accumulates per-session shot and goal grids into a fixed
// Size x Size grid.
//
// Session grids may have any shape on the wire. Sanitize trims them to the
// fixed bound before storage and Add drops anything outside it.
package heatmap

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Size is the edge length of the aggregate grid.
const Size = 10

// Grid is an aggregate of session grids. The zero value is an all-zero grid.
type Grid [Size][Size]int64

// Add sums cells into g cell-wise, ignoring out-of-bound coordinates.
func (g *Grid) Add(cells [][]int64) {
	for r, row := range cells {
		if r >= Size {
			break
		}
		for c, v := range row {
			if c >= Size {
				break
			}
			g[r][c] += v
		}
	}
}

// Total returns the sum of all cells.
func (g *Grid) Total() int64 {
	var total int64
	for r := range g {
		for c := range g[r] {
			total += g[r][c]
		}
	}
	return total
}

// Aggregate sums all grids. Addition is commutative so order does not matter.
func Aggregate(grids ...[][]int64) Grid {
	var g Grid
	for _, cells := range grids {
		g.Add(cells)
	}
	return g
}

// Sanitize returns a copy of cells trimmed to Size x Size with negative
// counts clamped to zero.
func Sanitize(cells [][]int64) [][]int64 {
	if cells == nil {
		return nil
	}
	if len(cells) > Size {
		cells = cells[:Size]
	}
	out := make([][]int64, len(cells))
	for r, row := range cells {
		if len(row) > Size {
			row = row[:Size]
		}
		out[r] = make([]int64, len(row))
		for c, v := range row {
			if v > 0 {
				out[r][c] = v
			}
		}
	}
	return out
}

// Encode serializes a session grid for storage. A nil grid encodes as [].
func Encode(cells [][]int64) ([]byte, error) {
	if cells == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(cells)
}

// Decode parses a stored session grid. Empty input and JSON null decode to nil.
func Decode(raw []byte) ([][]int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var cells [][]int64
	if err := json.Unmarshal(raw, &cells); err != nil {
		return nil, err
	}
	return cells, nil
}
