package poi

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

// GET /api/poi?park=parkid
func GetPois(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if park := r.URL.Query().Get("park"); park != "" {
		filter["park"] = park
	}

	pois, err := utils.FindAndDecode[models.POI](ctx, db.PoiCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch points of interest")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, pois)
}

// GET /api/poi/:poiid
func GetPoi(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	poiID := ps.ByName("poiid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var p models.POI
	err := db.PoiCollection.FindOne(ctx, bson.M{"poiid": poiID}).Decode(&p)
	if err != nil {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "POI not found", map[string]string{"poiid": poiID})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// POST /api/poi
func CreatePoi(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p models.POI
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if p.PoiID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "poiid is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.PoiCollection.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "POI already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting POI")
		return
	}

	mq.Emit(ctx, "poi-created", models.Index{EntityType: "poi", Method: "POST", EntityId: p.PoiID})

	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// PUT /api/poi/:poiid
func EditPoi(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	poiID := ps.ByName("poiid")

	var updated models.POI
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	updated.PoiID = poiID

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.PoiCollection.ReplaceOne(ctx, bson.M{"poiid": poiID}, updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating POI")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "POI not found", map[string]string{"poiid": poiID})
		return
	}

	mq.Emit(ctx, "poi-updated", models.Index{EntityType: "poi", Method: "PUT", EntityId: poiID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/poi/:poiid
func DeletePoi(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	poiID := ps.ByName("poiid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.PoiCollection.DeleteOne(ctx, bson.M{"poiid": poiID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting POI")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "POI not found", map[string]string{"poiid": poiID})
		return
	}

	mq.Emit(ctx, "poi-deleted", models.Index{EntityType: "poi", Method: "DELETE", EntityId: poiID})

	w.WriteHeader(http.StatusNoContent)
}
