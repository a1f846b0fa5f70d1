package itinerary

import (
	"context"
	"net/http"
	"time"

	"natty/db"
	"natty/models"
	"natty/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/itineraries?trip=tripid&owner=username
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := r.URL.Query()
	filter := bson.M{}
	opts := options.Find()

	// A trip's days come back in day order; an owner's trips grouped
	// by trip then day.
	if trip := query.Get("trip"); trip != "" {
		filter["tripid"] = trip
		opts.SetSort(bson.D{{Key: "day", Value: 1}})
	} else if owner := query.Get("owner"); owner != "" {
		filter["owner"] = owner
		opts.SetSort(bson.D{{Key: "tripid", Value: 1}, {Key: "day", Value: 1}})
	}

	itineraries, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GET /api/itineraries/:itineraryid
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("itineraryid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&it)
	if err != nil {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Itinerary not found", map[string]string{"itineraryid": itineraryID})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}
