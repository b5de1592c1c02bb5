package battleship

// GameStats aggregates the session counters. All four only ever go
// up; a new session starts from a fresh value.
type GameStats struct {
	totalShots     int
	hits           int
	misses         int
	shipsDestroyed int
}

func NewGameStats() *GameStats {
	return &GameStats{}
}

// RecordAttack folds one attack's tallies into the session totals.
func (st *GameStats) RecordAttack(shots, hits int) {
	st.totalShots += shots
	st.hits += hits
	st.misses += shots - hits
}

func (st *GameStats) TotalShots() int {
	return st.totalShots
}

func (st *GameStats) Hits() int {
	return st.hits
}

func (st *GameStats) Misses() int {
	return st.misses
}

func (st *GameStats) ShipsDestroyed() int {
	return st.shipsDestroyed
}

// HitRate is the percentage of shots that dealt new damage, 0 before
// any shot is fired.
func (st *GameStats) HitRate() float64 {
	if st.totalShots == 0 {
		return 0
	}
	return float64(st.hits) / float64(st.totalShots) * 100
}
