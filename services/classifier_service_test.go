package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"TripMate/models"
	"TripMate/services"
)

func TestClassifyActivity(t *testing.T) {
	tests := []struct {
		title string
		typ   string
		want  services.ActivityRole
	}{
		{"Arrive at Narita Airport", "", services.RoleArrival},
		{"Transfer to hotel", "", services.RoleArrival},
		{"Depart from Heathrow", "", services.RoleDeparture},
		{"Return flight home", "", services.RoleDeparture},
		{"Hotel check-in", "", services.RoleCheckIn},
		{"Check out from hotel", "", services.RoleCheckOut},
		{"Lunch at Tsukiji Market", "", services.RoleMeal},
		{"Visit Blue Mosque", "", services.RoleMosque},
		{"Friday prayer", "", services.RoleMosque},
		{"Shibuya Crossing", "", services.RoleOther},
		{"", "meal", services.RoleMeal},
		{"", "departure", services.RoleDeparture},
	}

	for _, tt := range tests {
		t.Run(tt.title+tt.typ, func(t *testing.T) {
			got := services.ClassifyActivity(models.Activity{Title: tt.title, Type: tt.typ})
			assert.Equal(t, tt.want, got)
		})
	}
}

// "Depart and check out" style titles hit several heuristics; departure must
// win so last-day ordering anchors on it.
func TestClassifyActivityPrecedence(t *testing.T) {
	got := services.ClassifyActivity(models.Activity{Title: "Check out and depart for airport"})
	assert.Equal(t, services.RoleDeparture, got)
}

func TestIsAirportRelated(t *testing.T) {
	assert.True(t, services.IsAirportRelated(models.Activity{Title: "Transfer to airport"}))
	assert.True(t, services.IsAirportRelated(models.Activity{Title: "Travel to Airport for departure"}))
	assert.False(t, services.IsAirportRelated(models.Activity{Title: "Harbor cruise"}))
}
