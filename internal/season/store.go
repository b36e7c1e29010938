// Package season holds the in-memory delivery table for one season and the
// filtered views derived from it.
package season

import "github.com/verte-zerg/wicket/internal/model"

// Store is an immutable ordered sequence of deliveries.
type Store struct {
	rows []model.Delivery
}

// NewStore copies rows into a new Store.
func NewStore(rows []model.Delivery) *Store {
	out := make([]model.Delivery, len(rows))
	copy(out, rows)
	return &Store{rows: out}
}

// Len returns the number of deliveries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// At returns a copy of the i-th delivery.
func (s *Store) At(i int) model.Delivery {
	return s.rows[i]
}

// All returns a view over every delivery in store order.
func (s *Store) All() View {
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	return View{store: s, idx: idx}
}

// BattingTeams lists distinct batting teams in first-encounter order.
func (s *Store) BattingTeams() []string {
	return s.distinct(func(d model.Delivery) string { return d.BattingTeam })
}

// BowlingTeams lists distinct bowling teams in first-encounter order.
func (s *Store) BowlingTeams() []string {
	return s.distinct(func(d model.Delivery) string { return d.BowlingTeam })
}

// Innings lists distinct innings numbers in first-encounter order.
func (s *Store) Innings() []int {
	seen := map[int]struct{}{}
	var out []int
	for _, d := range s.rowsOrNil() {
		if _, ok := seen[d.Innings]; ok {
			continue
		}
		seen[d.Innings] = struct{}{}
		out = append(out, d.Innings)
	}
	return out
}

// ExtrasMismatches counts rows whose extras total differs from the sum of
// its categories. Such rows are kept as loaded.
func (s *Store) ExtrasMismatches() int {
	n := 0
	for _, d := range s.rowsOrNil() {
		if d.Extras != d.Wide+d.LegByes+d.Byes+d.NoBalls {
			n++
		}
	}
	return n
}

func (s *Store) distinct(key func(model.Delivery) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, d := range s.rowsOrNil() {
		k := key(d)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func (s *Store) rowsOrNil() []model.Delivery {
	if s == nil {
		return nil
	}
	return s.rows
}

// View is an ordered subsequence of a Store, held as row indices.
type View struct {
	store *Store
	idx   []int
}

// Len returns the number of deliveries in the view.
func (v View) Len() int {
	return len(v.idx)
}

// At returns a copy of the i-th delivery of the view.
func (v View) At(i int) model.Delivery {
	return v.store.rows[v.idx[i]]
}

// Deliveries copies the view's rows out in order.
func (v View) Deliveries() []model.Delivery {
	out := make([]model.Delivery, len(v.idx))
	for i, j := range v.idx {
		out[i] = v.store.rows[j]
	}
	return out
}

// Where narrows the view to rows satisfying keep.
func (v View) Where(keep func(model.Delivery) bool) View {
	idx := make([]int, 0, len(v.idx))
	for _, j := range v.idx {
		if keep(v.store.rows[j]) {
			idx = append(idx, j)
		}
	}
	return View{store: v.store, idx: idx}
}
