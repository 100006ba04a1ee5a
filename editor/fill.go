// SPDX-License-Identifier: MIT

package editor

// ColorRegion repaints the seed cell and every cell 8-connected to it
// (diagonals included) through cells holding the seed's original color.
//
// The seed is validated first (ErrOutOfBounds), then the color
// (ErrInvalidColor). When the seed already holds color the call is a no-op.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for the worklist.
func (e *Editor) ColorRegion(seed Point, color string) error {
	_, err := e.FillCount(seed, color)
	return err
}

// FillCount performs the same fill as ColorRegion and reports how many
// cells were repainted (0 for the no-op case).
func (e *Editor) FillCount(seed Point, color string) (int, error) {
	if err := e.ValidateCoordinate(seed.X, seed.Y); err != nil {
		return 0, err
	}
	r, err := colorRune(color)
	if err != nil {
		return 0, err
	}

	// target must be read before the seed is written.
	target := e.cells[seed.Y][seed.X]
	if target == r {
		return 0, nil
	}

	// FIFO of row-major indices. A cell is painted when enqueued, which
	// removes it from matching target, so it is enqueued at most once.
	e.cells[seed.Y][seed.X] = r
	queue := []int{e.index(seed.X, seed.Y)}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := e.coordinate(queue[qi])
		for _, d := range moore {
			vx, vy := ux+d[0], uy+d[1]
			if !e.IsValidCoordinate(vx, vy) || e.cells[vy][vx] != target {
				continue
			}
			e.cells[vy][vx] = r
			queue = append(queue, e.index(vx, vy))
		}
	}

	return len(queue), nil
}
