package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"natty/db"
	"natty/models"
	"natty/mq"
	"natty/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// validateShape checks the required itinerary-day fields. Returns ""
// when the document is acceptable.
func validateShape(it *models.Itinerary) string {
	switch {
	case it.ItineraryID == "":
		return "itineraryid is required"
	case it.TripID == "":
		return "tripid is required"
	case it.TripName == "":
		return "tripName is required"
	case it.Day < 1:
		return "day must be a positive number"
	case it.Date == "":
		return "date is required"
	case it.Activities == nil:
		return "activities must be an array"
	}
	return ""
}

// POST /api/itineraries
func CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := utils.GetUsernameFromRequest(r)
	if username == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var it models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if msg := validateShape(&it); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	// Owner comes from the token, never from the request body.
	it.Owner = username

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, it); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "Itinerary already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting itinerary")
		return
	}

	mq.Emit(ctx, "itinerary-created", models.Index{EntityType: "itinerary", Method: "POST", EntityId: it.ItineraryID})

	utils.RespondWithJSON(w, http.StatusCreated, it)
}

// PUT /api/itineraries/:itineraryid
func UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	username := utils.GetUsernameFromRequest(r)
	if username == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraryID := ps.ByName("itineraryid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&existing)
	if err != nil {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Itinerary not found", map[string]string{"itineraryid": itineraryID})
		return
	}

	if existing.Owner != username {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var updated models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	updated.ItineraryID = itineraryID
	updated.Owner = existing.Owner
	if msg := validateShape(&updated); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := db.ItineraryCollection.ReplaceOne(ctx, bson.M{"itineraryid": itineraryID}, updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating itinerary")
		return
	}

	mq.Emit(ctx, "itinerary-updated", models.Index{EntityType: "itinerary", Method: "PUT", EntityId: itineraryID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/itineraries/:itineraryid
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	username := utils.GetUsernameFromRequest(r)
	if username == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraryID := ps.ByName("itineraryid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&existing)
	if err != nil {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Itinerary not found", map[string]string{"itineraryid": itineraryID})
		return
	}

	if existing.Owner != username {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if _, err := db.ItineraryCollection.DeleteOne(ctx, bson.M{"itineraryid": itineraryID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}

	mq.Emit(ctx, "itinerary-deleted", models.Index{EntityType: "itinerary", Method: "DELETE", EntityId: itineraryID})

	w.WriteHeader(http.StatusNoContent)
}
