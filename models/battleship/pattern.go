package battleship

// PatternSize is the side of the square attack mask. The mask center
// sits at local position (2,2), so offsets span [-2,+2] on both axes.
const PatternSize = 5

const patternCenter = PatternSize / 2

// AttackPattern is an immutable 5x5 mask of affected positions.
type AttackPattern struct {
	name string
	mask [PatternSize][PatternSize]bool
}

func newAttackPattern(name string, affected [][2]int) AttackPattern {
	p := AttackPattern{name: name}
	for _, cell := range affected {
		p.mask[cell[0]][cell[1]] = true
	}
	return p
}

func (p AttackPattern) Name() string {
	return p.name
}

// Affected reports whether the local mask position takes part in the
// attack. Positions outside the 5x5 mask are never affected.
func (p AttackPattern) Affected(i, j int) bool {
	if i < 0 || i >= PatternSize || j < 0 || j >= PatternSize {
		return false
	}
	return p.mask[i][j]
}

func (p AttackPattern) AffectedCount() int {
	count := 0
	for i := 0; i < PatternSize; i++ {
		for j := 0; j < PatternSize; j++ {
			if p.mask[i][j] {
				count++
			}
		}
	}
	return count
}

// Mask copies the raw flags for the pattern display contract.
func (p AttackPattern) Mask() [PatternSize][PatternSize]bool {
	return p.mask
}

// NewConePattern is a 1-3-5 triangle widening downward from the top
// of the mask; the two bottom rows stay untouched.
func NewConePattern() AttackPattern {
	return newAttackPattern("Cone", [][2]int{
		{0, 2},
		{1, 1}, {1, 2}, {1, 3},
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
	})
}

// NewCrossPattern is the full middle row plus the full middle column,
// 9 positions sharing the center.
func NewCrossPattern() AttackPattern {
	var affected [][2]int
	for i := 0; i < PatternSize; i++ {
		affected = append(affected, [2]int{i, patternCenter})
	}
	for j := 0; j < PatternSize; j++ {
		if j != patternCenter {
			affected = append(affected, [2]int{patternCenter, j})
		}
	}
	return newAttackPattern("Cross", affected)
}

// NewOctahedronPattern is the compact 5-cell diamond.
func NewOctahedronPattern() AttackPattern {
	return newAttackPattern("Octahedron", [][2]int{
		{0, 2},
		{1, 1}, {1, 2}, {1, 3},
		{2, 2},
	})
}
