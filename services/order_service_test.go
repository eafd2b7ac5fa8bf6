package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripMate/models"
	"TripMate/services"
)

func newOrderService() *services.OrderService {
	return services.NewOrderService(services.NewMealTimeService())
}

func titles(activities []models.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = a.Title
	}
	return out
}

func TestNormalizeArrivalLeadsDayOne(t *testing.T) {
	svc := newOrderService()

	days := svc.Normalize([]models.Day{{
		Day: 1,
		Activities: []models.Activity{
			{Time: "10:00", Title: "Arrive at Narita Airport", Type: "airport"},
			{Time: "08:00", Title: "City Tour"},
		},
	}})

	require.Len(t, days, 1)
	acts := days[0].Activities
	require.Len(t, acts, 2)
	assert.Equal(t, "Arrive at Narita Airport", acts[0].Title)
	assert.Equal(t, "10:00", acts[0].Time)
	assert.Equal(t, "City Tour", acts[1].Title)
	// Pushed past the arrival by the 90 min default gap.
	assert.Equal(t, "11:30", acts[1].Time)
}

func TestNormalizeArrivalDayCursorUsesTypeGaps(t *testing.T) {
	svc := newOrderService()

	days := svc.Normalize([]models.Day{{
		Day: 1,
		Activities: []models.Activity{
			{Time: "14:00", Title: "Arrive at the airport"},
			{Time: "13:00", Title: "Hotel check-in"},
			{Time: "13:30", Title: "Dinner", Type: "meal", MealType: "dinner"},
		},
	}})

	acts := days[0].Activities
	require.Len(t, acts, 3)
	assert.Equal(t, []string{"Arrive at the airport", "Hotel check-in", "Dinner"}, titles(acts))
	assert.Equal(t, "15:30", acts[1].Time) // 14:00 + 90 (check-in)
	assert.Equal(t, "16:30", acts[2].Time) // 15:30 + 60 (meal)
}

func TestNormalizeDepartureClosesLastDay(t *testing.T) {
	svc := newOrderService()

	days := svc.Normalize([]models.Day{
		{Day: 1, Activities: []models.Activity{{Time: "09:00", Title: "Arrival at airport"}}},
		{Day: 2, Activities: []models.Activity{
			{Time: "09:00", Title: "Breakfast", Type: "meal", MealType: "breakfast"},
			{Time: "20:00", Title: "Depart from Airport", Type: "departure"},
		}},
	})

	require.Len(t, days, 2)
	acts := days[1].Activities
	require.Len(t, acts, 2)
	assert.Equal(t, "Breakfast", acts[0].Title)
	assert.Equal(t, "08:00", acts[0].Time)
	assert.Equal(t, "Depart from Airport", acts[1].Title)
	assert.Equal(t, "18:00", acts[1].Time)
}

func TestNormalizeCheckoutPrecedesDeparture(t *testing.T) {
	svc := newOrderService()

	days := svc.Normalize([]models.Day{
		{Day: 1, Activities: []models.Activity{{Time: "09:00", Title: "Arrive downtown"}}},
		{Day: 2, Activities: []models.Activity{
			{Time: "08:00", Title: "Souvenir shopping"},
			{Time: "12:00", Title: "Check out from hotel"},
			{Time: "10:00", Title: "Depart from airport"},
		}},
	})

	acts := days[1].Activities
	require.Len(t, acts, 3)
	assert.Equal(t, []string{"Souvenir shopping", "Check out from hotel", "Depart from airport"}, titles(acts))
	assert.Equal(t, "09:00", acts[0].Time)
	assert.Equal(t, "15:00", acts[1].Time) // departure - 180 min
	assert.Equal(t, "18:00", acts[2].Time)
}

func TestNormalizeStripsDuplicateAirportActivities(t *testing.T) {
	svc := newOrderService()

	days := svc.Normalize([]models.Day{
		{Day: 1, Activities: []models.Activity{{Time: "09:00", Title: "Arrive in Hanoi"}}},
		{Day: 2, Activities: []models.Activity{
			{Time: "09:00", Title: "Old Quarter walk"},
			{Time: "15:00", Title: "Transfer to airport"},
			{Time: "17:00", Title: "Depart from Hanoi Airport"},
		}},
	})

	acts := days[1].Activities
	require.Len(t, acts, 2)
	assert.Equal(t, "Old Quarter walk", acts[0].Title)
	assert.Equal(t, "Depart from Hanoi Airport", acts[1].Title)
}

func TestNormalizeMiddleDaysAreTimeSorted(t *testing.T) {
	svc := newOrderService()

	days := svc.Normalize([]models.Day{
		{Day: 1, Activities: []models.Activity{{Time: "09:00", Title: "Arrival transfer to hotel"}}},
		{Day: 2, Activities: []models.Activity{
			{Time: "15:00", Title: "Science Museum"},
			{Time: "09:00", Title: "Botanical Garden"},
			{Time: "12:30", Title: "Lunch", Type: "meal", MealType: "lunch"},
		}},
		{Day: 3, Activities: []models.Activity{{Time: "18:00", Title: "Departure"}}},
	})

	assert.Equal(t, []string{"Botanical Garden", "Lunch", "Science Museum"}, titles(days[1].Activities))
}

func TestNormalizeLastDayScheduleAvoidsMealWindows(t *testing.T) {
	svc := newOrderService()

	days := svc.Normalize([]models.Day{
		{Day: 1, Activities: []models.Activity{{Time: "09:00", Title: "Arrive at hotel"}}},
		{Day: 2, Activities: []models.Activity{
			{Time: "10:00", Title: "Castle grounds"},
			{Time: "11:00", Title: "River promenade"},
			{Time: "12:00", Title: "Check out from hotel"},
			{Time: "16:00", Title: "Depart from airport"},
		}},
	})

	acts := days[1].Activities
	require.Len(t, acts, 4)
	assert.Equal(t, "Castle grounds", acts[0].Title)
	assert.Equal(t, "09:00", acts[0].Time)
	assert.Equal(t, "River promenade", acts[1].Title)
	assert.Equal(t, "10:30", acts[1].Time)
	assert.Equal(t, "Check out from hotel", acts[2].Title)
	assert.Equal(t, "15:00", acts[2].Time)
	assert.Equal(t, "Depart from airport", acts[3].Title)
	assert.Equal(t, "18:00", acts[3].Time)
}
