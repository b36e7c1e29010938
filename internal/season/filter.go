package season

import "github.com/verte-zerg/wicket/internal/model"

// Apply returns the deliveries matching all three dimensions of spec, in
// store order. An empty set in any dimension yields an empty view.
func Apply(store *Store, spec model.FilterSpec) View {
	return store.All().Where(spec.Matches)
}

// AllOf builds a spec that admits every team and innings present in store.
func AllOf(store *Store) model.FilterSpec {
	return model.NewFilterSpec(store.BattingTeams(), store.BowlingTeams(), store.Innings())
}
