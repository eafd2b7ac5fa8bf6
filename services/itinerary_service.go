package services

import (
	"TripMate/config/database"
	"TripMate/models"
	"TripMate/utils"
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// ItineraryService persists enriched itineraries per user. It sits downstream
// of the pipeline; the enrichment core never depends on it.
type ItineraryService struct {
	FirestoreClient *firestore.Client
}

func NewItineraryService() *ItineraryService {
	return &ItineraryService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// SaveItinerary stores the itinerary under the user and returns it with the
// generated document ID.
func (s *ItineraryService) SaveItinerary(ctx context.Context, userID string, itinerary *models.Itinerary) (*models.Itinerary, error) {
	docRef := s.FirestoreClient.Collection("users").Doc(userID).Collection("itineraries").NewDoc()

	itinerary.ID = docRef.ID
	itinerary.UserID = userID
	itinerary.CreatedAt = time.Now().Format(time.RFC3339)

	_, err := docRef.Set(ctx, itinerary)
	if err != nil {
		return nil, err
	}
	return itinerary, nil
}

// GetItineraryByID fetches one itinerary owned by the user.
func (s *ItineraryService) GetItineraryByID(ctx context.Context, userID, itineraryID string) (*models.Itinerary, error) {
	doc, err := s.FirestoreClient.Collection("users").Doc(userID).Collection("itineraries").Doc(itineraryID).Get(ctx)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusNotFound, "Itinerary not found")
	}

	var itinerary models.Itinerary
	if err := doc.DataTo(&itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// GetAllItineraries lists the user's itineraries.
func (s *ItineraryService) GetAllItineraries(ctx context.Context, userID string) ([]*models.Itinerary, error) {
	iter := s.FirestoreClient.Collection("users").Doc(userID).Collection("itineraries").Documents(ctx)
	defer iter.Stop()

	var itineraries []*models.Itinerary
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, err
		}

		var itinerary models.Itinerary
		if err := doc.DataTo(&itinerary); err != nil {
			return nil, err
		}
		itineraries = append(itineraries, &itinerary)
	}

	return itineraries, nil
}
