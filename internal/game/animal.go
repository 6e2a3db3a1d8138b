package game

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Location string

const (
	LocationPen       Location = "PEN"
	LocationSlaughter Location = "SLAUGHTER"
	LocationHouse     Location = "HOUSE"
	LocationBreeding  Location = "BREEDING"
	LocationWorkshop  Location = "WORKSHOP"
)

var AllLocations = []Location{LocationPen, LocationSlaughter, LocationHouse, LocationBreeding, LocationWorkshop}

func (l Location) Valid() bool {
	for _, loc := range AllLocations {
		if loc == l {
			return true
		}
	}
	return false
}

type Animal struct {
	ID         string   `json:"id"`
	Species    Species  `json:"species"`
	Name       string   `json:"name"`
	AgeDays    int      `json:"age_days"`
	Weight     float64  `json:"weight"`
	Quality    int      `json:"quality"`
	IsPet      bool     `json:"is_pet"`
	AcquiredAt int      `json:"acquired_at"`
	Gender     Gender   `json:"gender"`
	Location   Location `json:"location"`
	Pregnant   bool     `json:"pregnant"`
	// PregnancyDays is only meaningful while Pregnant is set.
	PregnancyDays int `json:"pregnancy_days,omitempty"`
}

func (a Animal) Spec() SpeciesSpec {
	spec, _ := SpeciesByID(a.Species)
	return spec
}

// Price is the market value of the animal given its current weight and quality.
func Price(a Animal) int {
	spec := a.Spec()
	if spec.MaxWeight <= 0 {
		return 0
	}
	return int(math.Floor(float64(spec.BasePrice) * (a.Weight / (spec.MaxWeight * 0.1)) * (float64(a.Quality) / 50)))
}

// Factory creates and ages animals. It is not safe for concurrent use; the
// Store serializes access to it.
type Factory struct {
	rng *rand.Rand
	ids io.Reader
}

func NewFactory(seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{
		rng: seededRNG(seed),
		ids: seededIDSource(seed),
	}
}

func (f *Factory) newID() string {
	id, err := uuid.NewRandomFromReader(f.ids)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewAnimal draws a fresh animal acquired on day. A nil species picks one
// uniformly.
func (f *Factory) NewAnimal(day int, species *Species) Animal {
	kind := AllSpecies[f.rng.IntN(len(AllSpecies))]
	if species != nil {
		kind = *species
	}
	spec, _ := SpeciesByID(kind)

	weight := math.Floor(spec.MaxWeight * 0.1 * uniformRange(f.rng, 0.8, 1.2))
	quality := clamp(spec.BaseQuality+f.rng.IntN(20)-10, 1, 100)
	gender := GenderFemale
	if f.rng.Float64() > 0.5 {
		gender = GenderMale
	}

	return Animal{
		ID:         f.newID(),
		Species:    kind,
		Name:       fmt.Sprintf("%s #%d", spec.Name, f.rng.IntN(1000)),
		AgeDays:    1,
		Weight:     weight,
		Quality:    quality,
		AcquiredAt: day,
		Gender:     gender,
		Location:   LocationPen,
	}
}

// Grow ages the animal by one day. Births are resolved by the caller.
func (f *Factory) Grow(a Animal) Animal {
	spec := a.Spec()

	a.AgeDays++
	if a.Pregnant {
		a.PregnancyDays++
	}

	growthFactor := 1 - (a.Weight / (spec.MaxWeight * 1.2))
	growth := math.Max(0, spec.GrowthRate*growthFactor*(1+f.rng.Float64()*0.5))
	a.Weight = math.Min(spec.WeightCap(), a.Weight+growth)

	if f.rng.Float64() > 0.7 {
		a.Quality++
	}
	a.Quality = clamp(a.Quality, 1, 100)
	return a
}

func (f *Factory) marketBatch(day, n int) []Animal {
	out := make([]Animal, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.NewAnimal(day, nil))
	}
	return out
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}
