package paths

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

// GET /api/paths?park=parkid
func GetPaths(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if park := r.URL.Query().Get("park"); park != "" {
		filter["park"] = park
	}

	paths, err := utils.FindAndDecode[models.Path](ctx, db.PathsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch paths")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, paths)
}

// GET /api/paths/:pathid
func GetPath(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pathID := ps.ByName("pathid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var path models.Path
	err := db.PathsCollection.FindOne(ctx, bson.M{"pathid": pathID}).Decode(&path)
	if err != nil {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Path not found", map[string]string{"pathid": pathID})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, path)
}

// POST /api/paths
func CreatePath(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var path models.Path
	if err := json.NewDecoder(r.Body).Decode(&path); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if path.PathID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "pathid is required")
		return
	}
	if path.Type != models.PathTypeRoad && path.Type != models.PathTypeTrail {
		utils.RespondWithError(w, http.StatusBadRequest, "type must be road or trail")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.PathsCollection.InsertOne(ctx, path); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "Path already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting path")
		return
	}

	mq.Emit(ctx, "path-created", models.Index{EntityType: "path", Method: "POST", EntityId: path.PathID})

	utils.RespondWithJSON(w, http.StatusCreated, path)
}

// PUT /api/paths/:pathid
func EditPath(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pathID := ps.ByName("pathid")

	var updated models.Path
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	updated.PathID = pathID

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.PathsCollection.ReplaceOne(ctx, bson.M{"pathid": pathID}, updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating path")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Path not found", map[string]string{"pathid": pathID})
		return
	}

	mq.Emit(ctx, "path-updated", models.Index{EntityType: "path", Method: "PUT", EntityId: pathID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/paths/:pathid
func DeletePath(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pathID := ps.ByName("pathid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.PathsCollection.DeleteOne(ctx, bson.M{"pathid": pathID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting path")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Path not found", map[string]string{"pathid": pathID})
		return
	}

	mq.Emit(ctx, "path-deleted", models.Index{EntityType: "path", Method: "DELETE", EntityId: pathID})

	w.WriteHeader(http.StatusNoContent)
}
