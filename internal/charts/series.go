package charts

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Series is one bar chart: a title and parallel labels and values.
type Series struct {
	Name   string // Base filename, e.g. "hp_stats".
	Title  string
	Labels []string
	Values []int
}

// Chart base filenames.
const (
	NameTypesDistribution = "types_distribution"
	NameTotalStats        = "total_stats"
	NameHPStats           = "hp_stats"
	NameAttackStats       = "attack_stats"
	NameDefenseStats      = "defense_stats"
	NameSpAttackStats     = "sp_attack_stats"
	NameSpDefenseStats    = "sp_defense_stats"
	NameSpeedStats        = "speed_stats"
)

// Names lists the eight chart base names in generation order.
var Names = []string{
	NameTypesDistribution,
	NameTotalStats,
	NameHPStats,
	NameAttackStats,
	NameDefenseStats,
	NameSpAttackStats,
	NameSpDefenseStats,
	NameSpeedStats,
}

// statTitles maps each stat field to its chart title.
var statTitles = map[string]string{
	types.FieldTotal:     "Total",
	types.FieldHP:        "HP",
	types.FieldAttack:    "Attack",
	types.FieldDefense:   "Defense",
	types.FieldSpAttack:  "Sp. Attack",
	types.FieldSpDefense: "Sp. Defense",
	types.FieldSpeed:     "Speed",
}

// CountTypes returns the per-type record counts ordered by type name.
func CountTypes(pokemon []*types.Pokemon) []types.TypeCount {
	counts := make(map[string]int)
	for _, p := range pokemon {
		counts[p.Type]++
	}
	out := make([]types.TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, types.TypeCount{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// TypeDistribution builds the per-type count chart.
func TypeDistribution(pokemon []*types.Pokemon) Series {
	s := Series{Name: NameTypesDistribution, Title: "Pokemon per Type"}
	for _, tc := range CountTypes(pokemon) {
		s.Labels = append(s.Labels, tc.Type)
		s.Values = append(s.Values, tc.Count)
	}
	return s
}

// StatDistribution builds the chart of one stat across records, one bar per
// record in roster order.
func StatDistribution(pokemon []*types.Pokemon, field string) Series {
	s := Series{
		Name:  strings.ToLower(field) + "_stats",
		Title: statTitles[field] + " by Pokemon",
	}
	for _, p := range pokemon {
		v, _ := p.Stat(field)
		s.Labels = append(s.Labels, p.Name)
		s.Values = append(s.Values, v)
	}
	return s
}

// AllSeries returns the eight charts in the order of Names.
func AllSeries(pokemon []*types.Pokemon) []Series {
	out := []Series{TypeDistribution(pokemon)}
	for _, f := range types.StatFields {
		out = append(out, StatDistribution(pokemon, f))
	}
	return out
}
