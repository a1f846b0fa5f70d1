package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"natty/auth"
	"natty/campsites"
	"natty/itinerary"
	"natty/middleware"
	"natty/parks"
	"natty/paths"
	"natty/poi"
	"natty/ratelim"
	"natty/trips"
	"natty/utils"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
}

func AddParkRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/parks", middleware.Authenticate(parks.GetParks))
	router.GET("/api/parks/:parkid", middleware.Authenticate(parks.GetPark))
	router.POST("/api/parks", rl.Limit(middleware.Authenticate(parks.CreatePark)))
	router.PUT("/api/parks/:parkid", rl.Limit(middleware.Authenticate(parks.EditPark)))
	router.DELETE("/api/parks/:parkid", rl.Limit(middleware.Authenticate(parks.DeletePark)))
}

func AddPathRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/paths", middleware.Authenticate(paths.GetPaths))
	router.GET("/api/paths/:pathid", middleware.Authenticate(paths.GetPath))
	router.POST("/api/paths", rl.Limit(middleware.Authenticate(paths.CreatePath)))
	router.PUT("/api/paths/:pathid", rl.Limit(middleware.Authenticate(paths.EditPath)))
	router.DELETE("/api/paths/:pathid", rl.Limit(middleware.Authenticate(paths.DeletePath)))
}

func AddPoiRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/poi", middleware.Authenticate(poi.GetPois))
	router.GET("/api/poi/:poiid", middleware.Authenticate(poi.GetPoi))
	router.POST("/api/poi", rl.Limit(middleware.Authenticate(poi.CreatePoi)))
	router.PUT("/api/poi/:poiid", rl.Limit(middleware.Authenticate(poi.EditPoi)))
	router.DELETE("/api/poi/:poiid", rl.Limit(middleware.Authenticate(poi.DeletePoi)))
}

func AddCampsiteRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/campsites", middleware.Authenticate(campsites.GetCampsites))
	router.GET("/api/campsites/:siteid", middleware.Authenticate(campsites.GetCampsite))
	router.POST("/api/campsites", rl.Limit(middleware.Authenticate(campsites.CreateCampsite)))
	router.PUT("/api/campsites/:siteid", rl.Limit(middleware.Authenticate(campsites.EditCampsite)))
	router.DELETE("/api/campsites/:siteid", rl.Limit(middleware.Authenticate(campsites.DeleteCampsite)))
}

func AddItineraryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.GET("/api/itineraries/:itineraryid", middleware.Authenticate(itinerary.GetItinerary))
	router.GET("/api/itineraries/:itineraryid/print", middleware.Authenticate(itinerary.PrintItinerary))
	router.POST("/api/itineraries", rl.Limit(middleware.Authenticate(itinerary.CreateItinerary)))
	router.PUT("/api/itineraries/:itineraryid", rl.Limit(middleware.Authenticate(itinerary.UpdateItinerary)))
	router.DELETE("/api/itineraries/:itineraryid", rl.Limit(middleware.Authenticate(itinerary.DeleteItinerary)))
}

func AddTripRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/trips/plan", rl.Limit(middleware.Authenticate(trips.PlanTrip)))
}

// AddStaticRoutes serves the SPA: /app/* always gets index.html, and
// anything unmatched falls through to the static asset dir — except
// /api/*, which gets the structured JSON 404.
func AddStaticRoutes(router *httprouter.Router, staticDir string) {
	indexFile := filepath.Join(staticDir, "index.html")

	router.GET("/app/*filepath", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		http.ServeFile(w, r, indexFile)
	})

	fileServer := http.FileServer(http.Dir(staticDir))
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			utils.RespondWithJSON(w, http.StatusNotFound, utils.M{
				"error":  "Not Found",
				"path":   r.URL.Path,
				"method": r.Method,
			})
			return
		}
		if _, err := os.Stat(filepath.Join(staticDir, filepath.Clean(r.URL.Path))); err != nil {
			// Unknown non-API paths land on the SPA shell
			http.ServeFile(w, r, indexFile)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
