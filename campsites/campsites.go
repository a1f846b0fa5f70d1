package campsites

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

// GET /api/campsites?park=parkid
func GetCampsites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if park := r.URL.Query().Get("park"); park != "" {
		filter["park"] = park
	}

	sites, err := utils.FindAndDecode[models.Campsite](ctx, db.CampsitesCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch campsites")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, sites)
}

// GET /api/campsites/:siteid
func GetCampsite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	siteID := ps.ByName("siteid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var site models.Campsite
	err := db.CampsitesCollection.FindOne(ctx, bson.M{"siteid": siteID}).Decode(&site)
	if err != nil {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Campsite not found", map[string]string{"siteid": siteID})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, site)
}

// POST /api/campsites
func CreateCampsite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var site models.Campsite
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if site.SiteID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "siteid is required")
		return
	}

	// Reference lists render as [] rather than null
	if site.ConnectedPaths == nil {
		site.ConnectedPaths = []models.ConnectedPath{}
	}
	if site.NearbyPoi == nil {
		site.NearbyPoi = []models.NearbyPoi{}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.CampsitesCollection.InsertOne(ctx, site); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "Campsite already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting campsite")
		return
	}

	mq.Emit(ctx, "campsite-created", models.Index{EntityType: "campsite", Method: "POST", EntityId: site.SiteID})

	utils.RespondWithJSON(w, http.StatusCreated, site)
}

// PUT /api/campsites/:siteid
func EditCampsite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	siteID := ps.ByName("siteid")

	var updated models.Campsite
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	updated.SiteID = siteID

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.CampsitesCollection.ReplaceOne(ctx, bson.M{"siteid": siteID}, updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating campsite")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Campsite not found", map[string]string{"siteid": siteID})
		return
	}

	mq.Emit(ctx, "campsite-updated", models.Index{EntityType: "campsite", Method: "PUT", EntityId: siteID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/campsites/:siteid
func DeleteCampsite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	siteID := ps.ByName("siteid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.CampsitesCollection.DeleteOne(ctx, bson.M{"siteid": siteID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting campsite")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Campsite not found", map[string]string{"siteid": siteID})
		return
	}

	mq.Emit(ctx, "campsite-deleted", models.Index{EntityType: "campsite", Method: "DELETE", EntityId: siteID})

	w.WriteHeader(http.StatusNoContent)
}
