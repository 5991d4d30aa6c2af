package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"itinera/internal/models/db_models"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

type daySlot int

const (
	slotMorning daySlot = iota
	slotAfternoon
	slotEvening
)

const eveningActivityChance = 0.5

type ItineraryServiceInterface interface {
	// Generate builds durationDays day entries; durationDays must be >= 1.
	// A nil preference record falls back to the documented defaults.
	Generate(destinationInfo db_models.DestinationRecord, durationDays int, prefs *db_models.PreferenceRecord) ([]response_models.ItineraryDay, error)
	// BuildRecommendation resolves dates, stored preferences and destination
	// metadata for the date-range request shape.
	BuildRecommendation(ctx context.Context, req request_models.RecommendationRequest) (*response_models.RecommendationResponse, error)
	// BuildFromDuration serves the duration-based request shape.
	BuildFromDuration(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.RecommendationResponse, error)
	Status() response_models.ComponentStatus
}

func NewItineraryService(
	destinationRepo repositories.DestinationRepositoryInterface,
	prefRepo repositories.PreferenceRepositoryInterface,
	rng utils.RandSource,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		destinationRepo: destinationRepo,
		prefRepo:        prefRepo,
		rng:             rng,
		logger:          logger,
		started:         time.Now(),
	}
}

type ItineraryService struct {
	destinationRepo repositories.DestinationRepositoryInterface
	prefRepo        repositories.PreferenceRepositoryInterface
	rng             utils.RandSource
	logger          *zap.Logger
	started         time.Time
}

func (s *ItineraryService) BuildRecommendation(ctx context.Context, req request_models.RecommendationRequest) (*response_models.RecommendationResponse, error) {
	start, err := utils.ParseTripDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseTripDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	duration, err := utils.TripDurationDays(start, end)
	if err != nil {
		return nil, err
	}

	prefs := req.Preferences
	if prefs == nil {
		stored, err := s.prefRepo.Get(ctx, req.UserID)
		if err != nil {
			s.logger.Error("stored preference lookup failed",
				zap.String("user_id", req.UserID), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		prefs = stored
	}

	s.logger.Info("generating itinerary",
		zap.String("user_id", req.UserID),
		zap.String("destination", req.Destination),
		zap.Int("duration_days", duration))

	destinationInfo := s.destinationRepo.GetByName(req.Destination)

	itinerary, err := s.Generate(destinationInfo, duration, prefs)
	if err != nil {
		return nil, err
	}

	return &response_models.RecommendationResponse{
		Destination:     req.Destination,
		StartDate:       utils.FormatRFC3339(start),
		EndDate:         utils.FormatRFC3339(end),
		Duration:        duration,
		Itinerary:       itinerary,
		DestinationInfo: destinationInfo,
	}, nil
}

func (s *ItineraryService) BuildFromDuration(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.RecommendationResponse, error) {
	if req.Duration < 1 {
		return nil, utils.ErrInvalidDuration
	}

	prefs := req.Preferences
	if prefs == nil && req.UserID != "" {
		stored, err := s.prefRepo.Get(ctx, req.UserID)
		if err != nil {
			s.logger.Error("stored preference lookup failed",
				zap.String("user_id", req.UserID), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		prefs = stored
	}

	destinationInfo := s.destinationRepo.GetByName(req.Destination)

	itinerary, err := s.Generate(destinationInfo, req.Duration, prefs)
	if err != nil {
		return nil, err
	}

	return &response_models.RecommendationResponse{
		Destination:     req.Destination,
		Duration:        req.Duration,
		Itinerary:       itinerary,
		DestinationInfo: destinationInfo,
	}, nil
}

func (s *ItineraryService) Generate(destinationInfo db_models.DestinationRecord, durationDays int, prefs *db_models.PreferenceRecord) ([]response_models.ItineraryDay, error) {
	if durationDays < 1 {
		return nil, utils.ErrInvalidDuration
	}

	p := prefs.WithDefaults()
	activitiesPerDay := activitiesForPace(p.PacePreference)

	itinerary := make([]response_models.ItineraryDay, 0, durationDays)
	for day := 1; day <= durationDays; day++ {
		activities := []response_models.ActivityInstance{
			s.generateActivity(destinationInfo, slotMorning, p.Interests),
		}

		if p.TransportationPreference != db_models.TransportationWalking {
			activities = append(activities, s.transportationEntry(p.TransportationPreference))
		}

		activities = append(activities, response_models.ActivityInstance{
			Title:       "Lunch",
			Description: fmt.Sprintf("Enjoy local cuisine at a %s restaurant", p.AccommodationType),
			StartTime:   "12:30",
			EndTime:     "14:00",
			Category:    db_models.CategoryFood,
			Cost:        s.tierCost(p.AccommodationType),
		})

		for i := 0; i < activitiesPerDay-2; i++ {
			activities = append(activities, s.generateActivity(destinationInfo, slotAfternoon, p.Interests))
		}

		activities = append(activities, response_models.ActivityInstance{
			Title:       "Dinner",
			Description: fmt.Sprintf("Experience local dining at a %s establishment", p.AccommodationType),
			StartTime:   "19:00",
			EndTime:     "20:30",
			Category:    db_models.CategoryFood,
			Cost:        s.tierCost(p.AccommodationType),
		})

		if s.rng.Float64() < eveningActivityChance {
			evening := db_models.CategoryFood
			if s.rng.Intn(2) == 1 {
				evening = db_models.CategoryEntertainment
			}
			activities = append(activities, s.generateActivity(destinationInfo, slotEvening, []string{evening}))
		}

		itinerary = append(itinerary, response_models.ItineraryDay{
			Day:        day,
			Activities: activities,
		})
	}

	return itinerary, nil
}

func (s *ItineraryService) Status() response_models.ComponentStatus {
	return response_models.ComponentStatus{
		Initialized:   s.started.Format(time.RFC3339),
		UptimeSeconds: utils.UptimeSeconds(s.started),
		Destinations:  s.destinationRepo.Count(),
		Categories:    db_models.ActivityCategories(),
	}
}

func activitiesForPace(pace string) int {
	switch pace {
	case db_models.PaceRelaxed:
		return 2
	case db_models.PaceIntense:
		return 4
	default:
		return 3
	}
}

// generateActivity draws from the destination's curated list when it has
// one, preferring entries matching the caller's interests; otherwise it
// synthesizes a templated activity for one of the interest categories.
func (s *ItineraryService) generateActivity(destinationInfo db_models.DestinationRecord, slot daySlot, interests []string) response_models.ActivityInstance {
	startTime, endTime := s.slotWindow(slot)

	if len(destinationInfo.PopularActivities) > 0 {
		candidates := destinationInfo.PopularActivities
		if len(interests) > 0 {
			interestSet := make(map[string]struct{}, len(interests))
			for _, interest := range interests {
				interestSet[interest] = struct{}{}
			}

			var filtered []db_models.PopularActivity
			for _, activity := range candidates {
				if _, ok := interestSet[activity.Category]; ok {
					filtered = append(filtered, activity)
				}
			}
			if len(filtered) > 0 {
				candidates = filtered
			}
		}

		picked := candidates[s.rng.Intn(len(candidates))]
		return response_models.ActivityInstance{
			Title:       picked.Name,
			Description: fmt.Sprintf("Experience %s in %s", picked.Name, destinationInfo.Name),
			Location:    destinationInfo.Name,
			Category:    picked.Category,
			StartTime:   startTime,
			EndTime:     endTime,
			Cost:        s.tierCost(db_models.AccommodationMidRange),
		}
	}

	categories := db_models.ActivityCategories()
	if len(interests) > 0 {
		known := make(map[string]struct{}, len(categories))
		for _, category := range categories {
			known[category] = struct{}{}
		}

		var matched []string
		for _, interest := range interests {
			if _, ok := known[interest]; ok {
				matched = append(matched, interest)
			}
		}
		if len(matched) > 0 {
			categories = matched
		}
	}

	category := categories[s.rng.Intn(len(categories))]
	title, description := syntheticActivity(category, destinationInfo.Name)

	return response_models.ActivityInstance{
		Title:       title,
		Description: description,
		Location:    destinationInfo.Name,
		Category:    category,
		StartTime:   startTime,
		EndTime:     endTime,
		Cost:        s.tierCost(db_models.AccommodationMidRange),
	}
}

func syntheticActivity(category, destinationName string) (string, string) {
	switch category {
	case db_models.CategorySightseeing:
		return fmt.Sprintf("Explore %s", destinationName),
			fmt.Sprintf("Discover the sights and sounds of %s", destinationName)
	case db_models.CategoryFood:
		return "Local Cuisine Experience",
			fmt.Sprintf("Sample the local flavors of %s", destinationName)
	case db_models.CategoryShopping:
		return "Shopping Experience",
			fmt.Sprintf("Shop for souvenirs and local crafts in %s", destinationName)
	case db_models.CategoryEntertainment:
		return "Entertainment",
			fmt.Sprintf("Enjoy local entertainment options in %s", destinationName)
	case db_models.CategoryNature:
		return "Nature Exploration",
			fmt.Sprintf("Connect with the natural beauty around %s", destinationName)
	case db_models.CategoryCulture:
		return "Cultural Experience",
			fmt.Sprintf("Immerse yourself in the culture of %s", destinationName)
	case db_models.CategoryRelaxation:
		return "Relaxation Time",
			fmt.Sprintf("Unwind and recharge in %s", destinationName)
	default:
		return "Free Time",
			fmt.Sprintf("Spend some time exploring %s at your own pace", destinationName)
	}
}

func (s *ItineraryService) transportationEntry(transportation string) response_models.ActivityInstance {
	return response_models.ActivityInstance{
		Title:       fmt.Sprintf("%s Transportation", capitalize(transportation)),
		Description: fmt.Sprintf("Travel by %s transportation to next activity", transportation),
		StartTime:   "11:30",
		EndTime:     "12:30",
		Category:    "transportation",
		Cost:        s.transportationCost(transportation),
	}
}

func (s *ItineraryService) slotWindow(slot daySlot) (string, string) {
	switch slot {
	case slotMorning:
		return fmt.Sprintf("%02d:00", s.rng.IntBetween(8, 10)),
			fmt.Sprintf("%02d:00", s.rng.IntBetween(11, 12))
	case slotAfternoon:
		return fmt.Sprintf("%02d:00", s.rng.IntBetween(14, 16)),
			fmt.Sprintf("%02d:00", s.rng.IntBetween(17, 18))
	default:
		return fmt.Sprintf("%02d:00", s.rng.IntBetween(20, 21)),
			fmt.Sprintf("%02d:00", s.rng.IntBetween(22, 23))
	}
}

// tierCost estimates a cost for the given budget tier. Callers price
// non-meal activities at mid-range regardless of the trip's tier; only
// meals pass the real tier through.
func (s *ItineraryService) tierCost(tier string) int {
	switch tier {
	case db_models.AccommodationBudget:
		return s.rng.IntBetween(5, 25)
	case db_models.AccommodationLuxury:
		return s.rng.IntBetween(75, 200)
	default:
		return s.rng.IntBetween(25, 75)
	}
}

func (s *ItineraryService) transportationCost(transportation string) int {
	switch transportation {
	case db_models.TransportationPublic:
		return s.rng.IntBetween(2, 10)
	case db_models.TransportationRental:
		return s.rng.IntBetween(20, 50)
	default:
		return s.rng.IntBetween(10, 30)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
