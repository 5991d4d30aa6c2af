package repositories

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"itinera/internal/models/db_models"
)

type DestinationRepositoryInterface interface {
	// GetByName never fails: unknown destinations degrade to a synthesized
	// placeholder record. Lookup is case-insensitive on the full name.
	GetByName(name string) db_models.DestinationRecord
	Count() int
}

func NewDestinationRepository() DestinationRepositoryInterface {
	return &DestinationRepository{
		destinations: loadSampleDestinations(),
		titleCaser:   cases.Title(language.English),
	}
}

type DestinationRepository struct {
	destinations map[string]db_models.DestinationRecord
	titleCaser   cases.Caser
}

func (d *DestinationRepository) GetByName(name string) db_models.DestinationRecord {
	if record, ok := d.destinations[strings.ToLower(name)]; ok {
		return record
	}

	return db_models.DestinationRecord{
		Name:              d.titleCaser.String(name),
		Country:           "Unknown",
		Description:       fmt.Sprintf("Information about %s is currently limited.", name),
		PopularActivities: []db_models.PopularActivity{},
	}
}

func (d *DestinationRepository) Count() int {
	return len(d.destinations)
}

// Sample catalog data. A real deployment would load this from a database.
func loadSampleDestinations() map[string]db_models.DestinationRecord {
	return map[string]db_models.DestinationRecord{
		"new york": {
			Name:        "New York City",
			Country:     "United States",
			Description: "The Big Apple, known for its iconic skyline, diverse culture, and vibrant arts scene.",
			PopularActivities: []db_models.PopularActivity{
				{Name: "Visit Times Square", Category: db_models.CategorySightseeing},
				{Name: "Explore Central Park", Category: db_models.CategoryNature},
				{Name: "Visit the Metropolitan Museum of Art", Category: db_models.CategoryCulture},
				{Name: "Walk across Brooklyn Bridge", Category: db_models.CategorySightseeing},
				{Name: "See a Broadway show", Category: db_models.CategoryEntertainment},
			},
		},
		"paris": {
			Name:        "Paris",
			Country:     "France",
			Description: "The City of Light, famous for its art, fashion, gastronomy, and culture.",
			PopularActivities: []db_models.PopularActivity{
				{Name: "Visit the Eiffel Tower", Category: db_models.CategorySightseeing},
				{Name: "Explore the Louvre Museum", Category: db_models.CategoryCulture},
				{Name: "Walk along the Seine River", Category: db_models.CategorySightseeing},
				{Name: "Visit Notre-Dame Cathedral", Category: db_models.CategoryCulture},
				{Name: "Enjoy French cuisine", Category: db_models.CategoryFood},
			},
		},
		"tokyo": {
			Name:        "Tokyo",
			Country:     "Japan",
			Description: "A dynamic blend of traditional culture and cutting-edge technology.",
			PopularActivities: []db_models.PopularActivity{
				{Name: "Visit Senso-ji Temple", Category: db_models.CategoryCulture},
				{Name: "Explore Shibuya Crossing", Category: db_models.CategorySightseeing},
				{Name: "Shop in Ginza", Category: db_models.CategoryShopping},
				{Name: "Visit Tokyo Skytree", Category: db_models.CategorySightseeing},
				{Name: "Try authentic Japanese cuisine", Category: db_models.CategoryFood},
			},
		},
		"rome": {
			Name:        "Rome",
			Country:     "Italy",
			Description: "The Eternal City with thousands of years of history and culture.",
			PopularActivities: []db_models.PopularActivity{
				{Name: "Visit the Colosseum", Category: db_models.CategorySightseeing},
				{Name: "Explore the Vatican Museums", Category: db_models.CategoryCulture},
				{Name: "Throw a coin in the Trevi Fountain", Category: db_models.CategorySightseeing},
				{Name: "Try authentic Italian pizza and pasta", Category: db_models.CategoryFood},
				{Name: "Visit the Roman Forum", Category: db_models.CategoryCulture},
			},
		},
		"london": {
			Name:        "London",
			Country:     "United Kingdom",
			Description: "A diverse and historic city with iconic landmarks and cultural attractions.",
			PopularActivities: []db_models.PopularActivity{
				{Name: "Visit the Tower of London", Category: db_models.CategoryCulture},
				{Name: "Explore the British Museum", Category: db_models.CategoryCulture},
				{Name: "Watch the Changing of the Guard at Buckingham Palace", Category: db_models.CategorySightseeing},
				{Name: "Shop at Camden Market", Category: db_models.CategoryShopping},
				{Name: "Ride the London Eye", Category: db_models.CategorySightseeing},
			},
		},
	}
}
