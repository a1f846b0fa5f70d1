package parks

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"natty/db"
	"natty/models"
	"natty/mq"
	"natty/rdx"
	"natty/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	listCacheKey = "parks"
	listCacheTTL = 10 * time.Minute
)

// POST /api/parks
func CreatePark(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var park models.Park
	if err := json.NewDecoder(r.Body).Decode(&park); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if park.ParkID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "parkid is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ParksCollection.InsertOne(ctx, park); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "Park already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting park")
		return
	}

	rdx.Invalidate(listCacheKey)
	mq.Emit(ctx, "park-created", models.Index{EntityType: "park", Method: "POST", EntityId: park.ParkID})

	utils.RespondWithJSON(w, http.StatusCreated, park)
}

// PUT /api/parks/:parkid
func EditPark(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	parkID := ps.ByName("parkid")

	var updated models.Park
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	updated.ParkID = parkID

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Full replace, keyed by the natural id
	result, err := db.ParksCollection.ReplaceOne(ctx, bson.M{"parkid": parkID}, updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating park")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Park not found", map[string]string{"parkid": parkID})
		return
	}

	rdx.Invalidate(listCacheKey)
	mq.Emit(ctx, "park-updated", models.Index{EntityType: "park", Method: "PUT", EntityId: parkID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/parks/:parkid
func DeletePark(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	parkID := ps.ByName("parkid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.ParksCollection.DeleteOne(ctx, bson.M{"parkid": parkID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting park")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Park not found", map[string]string{"parkid": parkID})
		return
	}

	rdx.Invalidate(listCacheKey)
	mq.Emit(ctx, "park-deleted", models.Index{EntityType: "park", Method: "DELETE", EntityId: parkID})

	w.WriteHeader(http.StatusNoContent)
}
