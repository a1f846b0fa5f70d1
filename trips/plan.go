package trips

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
	"go.mongodb.org/mongo-driver/mongo"
)

// POST /api/trips/plan
//
// Accepts a full trip draft and creates one itinerary document per day.
// Days are inserted sequentially with no cross-document transaction; a
// failure partway through reports the days already created.
func PlanTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := utils.GetUsernameFromRequest(r)
	if username == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var draft TripDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Re-derive day numbering and dates server-side so a stale client
	// draft cannot submit inconsistent days.
	if draft.Length < 1 {
		draft.Length = len(draft.Days)
	}
	draft.SetLength(draft.Length)
	draft.SetStartDate(draft.StartDate)

	if err := draft.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	itineraries := draft.Build()
	for i := range itineraries {
		itineraries[i].Owner = username
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created := []models.Itinerary{}
	for _, it := range itineraries {
		if _, err := db.ItineraryCollection.InsertOne(ctx, it); err != nil {
			status := http.StatusInternalServerError
			msg := "Error inserting itinerary"
			if mongo.IsDuplicateKeyError(err) {
				status = http.StatusConflict
				msg = "Itinerary already exists: " + it.ItineraryID
			}
			utils.RespondWithJSON(w, status, utils.M{
				"error":   msg,
				"created": created,
			})
			return
		}
		created = append(created, it)
		mq.Emit(ctx, "itinerary-created", models.Index{EntityType: "itinerary", Method: "POST", EntityId: it.ItineraryID})
	}

	utils.RespondWithJSON(w, http.StatusCreated, created)
}
