package parks

import (
	"context"
	"log"
	"net/http"
	"time"

	"natty/db"
	"natty/models"
	"natty/rdx"
	"natty/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/parks?park=parkid
func GetParks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	park := r.URL.Query().Get("park")
	if park != "" {
		filter["parkid"] = park
	}

	// Cache only the unfiltered listing
	if park == "" {
		if cached, _ := rdx.RdxGet(listCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	parks, err := utils.FindAndDecode[models.Park](ctx, db.ParksCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch parks")
		return
	}

	data := utils.ToJSON(parks)
	if park == "" {
		if err := rdx.SetWithExpiry(listCacheKey, string(data), listCacheTTL); err != nil {
			log.Printf("Failed to cache parks listing: %v", err)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GET /api/parks/:parkid
func GetPark(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	parkID := ps.ByName("parkid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var park models.Park
	err := db.ParksCollection.FindOne(ctx, bson.M{"parkid": parkID}).Decode(&park)
	if err != nil {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Park not found", map[string]string{"parkid": parkID})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, park)
}
