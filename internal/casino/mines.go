package casino

import (
	"bx-casino/internal/fair"
)

const (
	minesBoardSize = 25
	minesMin       = 1
	minesMax       = 24
)

type MinesParams struct {
	Mines int `json:"mines"`
}

func (p *MinesParams) validate() error {
	if p == nil {
		return ErrInvalidInput
	}
	if p.Mines < minesMin || p.Mines > minesMax {
		return ErrInvalidInput
	}
	return nil
}

// MinesRound holds the hidden layout and the player's progress. Layout is
// never serialized to the caller until the round is terminal.
type MinesRound struct {
	Mines    int   `json:"mines"`
	Layout   []int `json:"layout"`
	Revealed []int `json:"revealed"`
}

// newMinesRound draws the layout as the first `mines` positions of a
// Fisher-Yates permutation of the 25-cell board.
func newMinesRound(mines int, src fair.Source) *MinesRound {
	perm := fair.Perm(minesBoardSize, src)
	layout := make([]int, mines)
	copy(layout, perm[:mines])
	return &MinesRound{Mines: mines, Layout: layout}
}

func (m *MinesRound) isMine(idx int) bool {
	for _, p := range m.Layout {
		if p == idx {
			return true
		}
	}
	return false
}

func (m *MinesRound) isRevealed(idx int) bool {
	for _, p := range m.Revealed {
		if p == idx {
			return true
		}
	}
	return false
}

// SafeRevealed is the count of safe cells opened so far.
func (m *MinesRound) SafeRevealed() int {
	return len(m.Revealed)
}

// cleared reports whether every safe cell has been opened, which forces a
// cash-out at the maximum multiplier.
func (m *MinesRound) cleared() bool {
	return m.SafeRevealed() == minesBoardSize-m.Mines
}

// reveal opens a cell. hit reports a mine; already reports a no-op re-reveal
// of an open cell.
func (m *MinesRound) reveal(idx int) (hit, already bool, err error) {
	if idx < 0 || idx >= minesBoardSize {
		return false, false, ErrInvalidInput
	}
	if m.isRevealed(idx) {
		return false, true, nil
	}
	if m.isMine(idx) {
		return true, false, nil
	}
	m.Revealed = append(m.Revealed, idx)
	return false, false, nil
}

// minesView hides the layout until the round is terminal.
type minesView struct {
	Mines        int     `json:"mines"`
	Revealed     []int   `json:"revealed"`
	SafeRevealed int     `json:"safe_revealed"`
	Multiplier   float64 `json:"multiplier,omitempty"`
	Layout       []int   `json:"layout,omitempty"`
}

func (m *MinesRound) view(done bool) minesView {
	v := minesView{
		Mines:        m.Mines,
		Revealed:     m.Revealed,
		SafeRevealed: m.SafeRevealed(),
	}
	if done {
		v.Layout = m.Layout
	}
	return v
}

// fairMultiplier is the inverse probability of opening k safe cells on a
// 25-cell board without striking a mine, discounted by the house edge:
// [C(25,k) / C(25-mines,k)] * (1 - edge).
func fairMultiplier(mines, k int, houseEdge float64) float64 {
	if k <= 0 {
		return 0
	}
	return binomial(minesBoardSize, k) / binomial(minesBoardSize-mines, k) * (1 - houseEdge)
}
