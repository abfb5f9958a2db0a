package domain

// Locality where a slot takes place
type Locality string

const (
	LocalitySand      Locality = "areia"
	LocalitySea       Locality = "mar"
	LocalityBoardwalk Locality = "calçadão"
)

// MatchesFilter проверяет слот против значения фильтра локации.
// Фильтр "areia" включает и "calçadão"; обратного объединения нет,
// остальные значения сравниваются только на точное равенство.
func (l Locality) MatchesFilter(filter Locality) bool {
	if filter == LocalitySand {
		return l == LocalitySand || l == LocalityBoardwalk
	}
	return l == filter
}
