package arcade

// hdPriceFactor is the markup applied once to high-definition titles at
// construction time.
const hdPriceFactor = 1.10

// Videogame describes a single game title installable on a machine.
// Videogames are compared by pointer identity: two games with identical
// fields are still distinct catalog entries.
type Videogame struct {
	// Name is the display title of the game.
	Name string
	// StorytellingCreator credits the author of the game's story.
	StorytellingCreator string
	// GraphicsCreator credits the author of the game's visuals.
	GraphicsCreator string
	// Category is the free-form genre label.
	Category string
	// Price is the final game price. For high-definition titles it
	// already includes the markup applied at construction.
	Price float64
	// Year is the release year.
	Year int
	// HighDefinition reports whether the title ships in HD.
	HighDefinition bool
}

// NewVideogame constructs a videogame. When highDefinition is set, the
// given price is raised by 10% exactly once and the adjusted value is
// stored; reading the price later never re-applies the markup.
func NewVideogame(name, storytellingCreator, graphicsCreator, category string, price float64, year int, highDefinition bool) *Videogame {
	if highDefinition {
		price *= hdPriceFactor
	}
	return &Videogame{
		Name:                name,
		StorytellingCreator: storytellingCreator,
		GraphicsCreator:     graphicsCreator,
		Category:            category,
		Price:               price,
		Year:                year,
		HighDefinition:      highDefinition,
	}
}
