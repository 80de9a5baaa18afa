package repositories

import "hero-lab/domain"

// DefaultHeroes is the classic starter dataset the simulator boots with.
func DefaultHeroes() []domain.Hero {
	return []domain.Hero{
		{ID: 11, Name: "Mr. Nice"},
		{ID: 12, Name: "Narco"},
		{ID: 13, Name: "Bombasto"},
		{ID: 14, Name: "Celeritas"},
		{ID: 15, Name: "Magneta"},
		{ID: 16, Name: "RubberMan"},
		{ID: 17, Name: "Dynama"},
		{ID: 18, Name: "Dr IQ"},
		{ID: 19, Name: "Magma"},
		{ID: 20, Name: "Tornado"},
	}
}
