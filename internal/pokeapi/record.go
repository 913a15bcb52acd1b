package pokeapi

import "strconv"

// Record is a single Pokémon as returned by the service, reduced to the
// fields the browser displays. Records are treated as immutable once fetched.
type Record struct {
	ID        int
	Name      string
	Height    int // decimetres
	Weight    int // hectograms
	SpriteURL string
	Abilities []string // in service order, duplicates kept
}

// HeightMeters returns the height converted to metres.
func (r Record) HeightMeters() float64 {
	return float64(r.Height) / 10
}

// WeightKilograms returns the weight converted to kilograms.
func (r Record) WeightKilograms() float64 {
	return float64(r.Weight) / 10
}

// FormatTenths renders v/10 with the shortest decimal form (7 -> "0.7", 10 -> "1").
func FormatTenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', -1, 64)
}

// apiPokemon mirrors the subset of the /pokemon/{id-or-name} payload we read.
type apiPokemon struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
}

func (p apiPokemon) record() Record {
	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}
	return Record{
		ID:        p.ID,
		Name:      p.Name,
		Height:    p.Height,
		Weight:    p.Weight,
		SpriteURL: p.Sprites.FrontDefault,
		Abilities: abilities,
	}
}
