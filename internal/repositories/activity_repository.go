package repositories

import "itinera/internal/models/db_models"

type ActivityRepositoryInterface interface {
	// ActivitiesFor returns the templates for a category, or an empty slice
	// when the category is unknown. The catalog is read-only after startup.
	ActivitiesFor(category string) []db_models.ActivityTemplate
	Categories() []string
	TotalCount() int
}

func NewActivityRepository() ActivityRepositoryInterface {
	return &ActivityRepository{activities: loadSampleActivities()}
}

type ActivityRepository struct {
	activities map[string][]db_models.ActivityTemplate
}

func (a *ActivityRepository) ActivitiesFor(category string) []db_models.ActivityTemplate {
	templates := a.activities[category]
	out := make([]db_models.ActivityTemplate, len(templates))
	copy(out, templates)
	return out
}

func (a *ActivityRepository) Categories() []string {
	categories := make([]string, 0, len(a.activities))
	for _, category := range db_models.ActivityCategories() {
		if _, ok := a.activities[category]; ok {
			categories = append(categories, category)
		}
	}
	return categories
}

func (a *ActivityRepository) TotalCount() int {
	total := 0
	for _, templates := range a.activities {
		total += len(templates)
	}
	return total
}

func loadSampleActivities() map[string][]db_models.ActivityTemplate {
	return map[string][]db_models.ActivityTemplate{
		db_models.CategorySightseeing: {
			{Name: "City Walking Tour", Description: "Guided tour of city highlights", DurationHours: 3, BaseCost: 25},
			{Name: "Double Decker Bus Tour", Description: "Hop-on hop-off bus tour", DurationHours: 2, BaseCost: 35},
			{Name: "Historic District Exploration", Description: "Self-guided tour of historic areas", DurationHours: 4, BaseCost: 0},
		},
		db_models.CategoryFood: {
			{Name: "Food Market Tour", Description: "Tour of local food markets with tastings", DurationHours: 3, BaseCost: 45},
			{Name: "Cooking Class", Description: "Learn to cook local cuisine", DurationHours: 4, BaseCost: 80},
			{Name: "Food Truck Crawl", Description: "Sample various street foods", DurationHours: 2, BaseCost: 30},
		},
		db_models.CategoryShopping: {
			{Name: "Local Crafts Market", Description: "Shopping for handmade items", DurationHours: 2, BaseCost: 0},
			{Name: "Boutique Shopping Tour", Description: "Visit to unique local shops", DurationHours: 3, BaseCost: 0},
			{Name: "Souvenir Hunt", Description: "Finding the perfect mementos", DurationHours: 2, BaseCost: 0},
		},
		db_models.CategoryEntertainment: {
			{Name: "Live Music Show", Description: "Performance by local musicians", DurationHours: 3, BaseCost: 50},
			{Name: "Theater Performance", Description: "Local theater production", DurationHours: 2, BaseCost: 65},
			{Name: "Comedy Club", Description: "Evening of stand-up comedy", DurationHours: 2, BaseCost: 40},
		},
		db_models.CategoryNature: {
			{Name: "Park Picnic", Description: "Relaxing meal outdoors", DurationHours: 2, BaseCost: 15},
			{Name: "Botanical Garden Visit", Description: "Exploring local plant life", DurationHours: 3, BaseCost: 20},
			{Name: "Scenic Hike", Description: "Hiking with beautiful views", DurationHours: 4, BaseCost: 0},
		},
		db_models.CategoryCulture: {
			{Name: "Museum Visit", Description: "Exploring local history and art", DurationHours: 3, BaseCost: 25},
			{Name: "Historical Site Tour", Description: "Guided tour of historic location", DurationHours: 2, BaseCost: 30},
			{Name: "Cultural Workshop", Description: "Learn a traditional craft or art", DurationHours: 4, BaseCost: 45},
		},
		db_models.CategoryRelaxation: {
			{Name: "Spa Day", Description: "Massages and wellness treatments", DurationHours: 4, BaseCost: 120},
			{Name: "Beach Day", Description: "Relaxation by the water", DurationHours: 5, BaseCost: 0},
			{Name: "Meditation Session", Description: "Guided relaxation experience", DurationHours: 1, BaseCost: 25},
		},
		db_models.CategoryAdventure: {
			{Name: "Zip Lining", Description: "Thrilling aerial experience", DurationHours: 3, BaseCost: 85},
			{Name: "Kayaking", Description: "Water adventure on local rivers or lakes", DurationHours: 4, BaseCost: 65},
			{Name: "Rock Climbing", Description: "Guided climbing experience", DurationHours: 4, BaseCost: 75},
		},
	}
}
