package db_models

// Activity categories the generator and the activity catalog work with.
const (
	CategorySightseeing   = "sightseeing"
	CategoryFood          = "food"
	CategoryShopping      = "shopping"
	CategoryEntertainment = "entertainment"
	CategoryNature        = "nature"
	CategoryCulture       = "culture"
	CategoryRelaxation    = "relaxation"
	CategoryAdventure     = "adventure"
)

func ActivityCategories() []string {
	return []string{
		CategorySightseeing, CategoryFood, CategoryShopping, CategoryEntertainment,
		CategoryNature, CategoryCulture, CategoryRelaxation, CategoryAdventure,
	}
}

// InterestCategories is the wider tag set the preference embedding is built
// over; it is a superset of the activity categories.
func InterestCategories() []string {
	return []string{
		"sightseeing", "food", "shopping", "entertainment",
		"nature", "culture", "relaxation", "adventure",
		"history", "art", "music", "sports", "nightlife",
		"family", "romantic", "solo", "budget", "luxury",
	}
}

const (
	AccommodationBudget   = "budget"
	AccommodationMidRange = "mid-range"
	AccommodationLuxury   = "luxury"
)

func AccommodationTypes() []string {
	return []string{AccommodationBudget, AccommodationMidRange, AccommodationLuxury}
}

const (
	TransportationPublic  = "public"
	TransportationRental  = "rental"
	TransportationWalking = "walking"
	TransportationTour    = "tour"
)

func TransportationPreferences() []string {
	return []string{TransportationPublic, TransportationRental, TransportationWalking, TransportationTour}
}

const (
	PaceRelaxed  = "relaxed"
	PaceModerate = "moderate"
	PaceIntense  = "intense"
)
