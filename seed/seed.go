package seed

import (
	"context"
	"log"
	"time"

	"natty/db"
	"natty/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Run replaces the reference-data collections with the bundled sample
// parks, paths, POI, and campsites. Users and itineraries are left
// untouched.
func Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := db.ParksCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := db.PathsCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := db.PoiCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := db.CampsitesCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	parks := make([]interface{}, len(sampleParks))
	for i, p := range sampleParks {
		parks[i] = p
	}
	if _, err := db.ParksCollection.InsertMany(ctx, parks); err != nil {
		return err
	}

	paths := make([]interface{}, len(samplePaths))
	for i, p := range samplePaths {
		paths[i] = p
	}
	if _, err := db.PathsCollection.InsertMany(ctx, paths); err != nil {
		return err
	}

	pois := make([]interface{}, len(samplePoi))
	for i, p := range samplePoi {
		pois[i] = p
	}
	if _, err := db.PoiCollection.InsertMany(ctx, pois); err != nil {
		return err
	}

	sites := make([]interface{}, len(sampleCampsites))
	for i, s := range sampleCampsites {
		sites[i] = s
	}
	if _, err := db.CampsitesCollection.InsertMany(ctx, sites); err != nil {
		return err
	}

	log.Printf("Seeded %d parks, %d paths, %d poi, %d campsites",
		len(sampleParks), len(samplePaths), len(samplePoi), len(sampleCampsites))
	return nil
}

var sampleParks = []models.Park{
	{
		ParkID:      "yose",
		Name:        "Yosemite National Park",
		Description: "Granite cliffs, waterfalls, and giant sequoias.",
		Location:    "California",
		Established: "1890",
		Size:        "748,436 acres",
		Card: models.Card{
			Title:       "Yosemite",
			Description: "Explore Yosemite",
			Href:        "/app/parks/yose",
		},
	},
	{
		ParkID:      "yell",
		Name:        "Yellowstone National Park",
		Description: "Geysers, hot springs, and abundant wildlife.",
		Location:    "Wyoming, Montana, Idaho",
		Established: "1872",
		Size:        "2,219,791 acres",
		Card: models.Card{
			Title:       "Yellowstone",
			Description: "Discover Yellowstone",
			Href:        "/app/parks/yell",
		},
	},
}

var samplePaths = []models.Path{
	{
		PathID:      "valley-loop",
		Park:        "yose",
		ParkName:    "Yosemite National Park",
		Name:        "Valley Loop Road",
		Type:        models.PathTypeRoad,
		Description: "Scenic loop around Yosemite Valley.",
		Card: models.Card{
			Title:       "Valley Loop Road",
			Description: "Drive the valley",
			Href:        "/app/paths/valley-loop",
		},
	},
	{
		PathID:      "glacier-point-road",
		Park:        "yose",
		ParkName:    "Yosemite National Park",
		Name:        "Glacier Point Road",
		Type:        models.PathTypeRoad,
		Description: "Scenic mountain road to Glacier Point with stunning valley views.",
		Card: models.Card{
			Title:       "Glacier Point Road",
			Description: "High country views",
			Href:        "/app/paths/glacier-point-road",
		},
	},
	{
		PathID:      "mist-trail",
		Park:        "yose",
		ParkName:    "Yosemite National Park",
		Name:        "Mist Trail",
		Type:        models.PathTypeTrail,
		Description: "Iconic trail to Vernal Fall with stunning waterfalls and granite cliffs.",
		Card: models.Card{
			Title:       "Mist Trail",
			Description: "Waterfall hike",
			Href:        "/app/paths/mist-trail",
		},
	},
	{
		PathID:      "grand-loop",
		Park:        "yell",
		ParkName:    "Yellowstone National Park",
		Name:        "Grand Loop Road",
		Type:        models.PathTypeRoad,
		Description: "Main scenic road through Yellowstone.",
		Card: models.Card{
			Title:       "Grand Loop Road",
			Description: "Tour Yellowstone",
			Href:        "/app/paths/grand-loop",
		},
	},
}

var samplePoi = []models.POI{
	{
		PoiID:       "half-dome-trailhead",
		Park:        "yose",
		ParkName:    "Yosemite National Park",
		Name:        "Half Dome Trailhead",
		Type:        "trailhead",
		Description: "Start of the Half Dome hike.",
		Card: models.Card{
			Title:       "Half Dome TH",
			Description: "Epic hike",
			Href:        "/app/poi/half-dome-trailhead",
		},
	},
	{
		PoiID:       "old-faithful",
		Park:        "yell",
		ParkName:    "Yellowstone National Park",
		Name:        "Old Faithful",
		Type:        "geyser",
		Description: "Iconic geyser known for regular eruptions.",
		Card: models.Card{
			Title:       "Old Faithful",
			Description: "Famous geyser",
			Href:        "/app/poi/old-faithful",
		},
	},
}

var sampleCampsites = []models.Campsite{
	{
		SiteID:      "upper-pines-015",
		Park:        "yose",
		ParkName:    "Yosemite National Park",
		Name:        "Upper Pines Site 015",
		Capacity:    "6",
		Location:    "Yosemite Valley",
		Description: "Shady site near Merced River.",
		ConnectedPaths: []models.ConnectedPath{
			{PathID: "valley-loop", PathName: "Valley Loop Road", PathType: models.PathTypeRoad},
		},
		NearbyPoi: []models.NearbyPoi{
			{PoiID: "half-dome-trailhead", PoiName: "Half Dome TH", PoiType: "trailhead"},
		},
		Card: models.Card{
			Title:       "Upper Pines 015",
			Description: "Reserve now",
			Href:        "/app/campsites/upper-pines-015",
		},
	},
	{
		SiteID:      "lower-pines-001",
		Park:        "yose",
		ParkName:    "Yosemite National Park",
		Name:        "Lower Pines Site 001",
		Capacity:    "6",
		Location:    "Yosemite Valley",
		Description: "Popular valley floor campground with easy access to trails.",
		ConnectedPaths: []models.ConnectedPath{
			{PathID: "valley-loop", PathName: "Valley Loop Road", PathType: models.PathTypeRoad},
		},
		NearbyPoi: []models.NearbyPoi{
			{PoiID: "half-dome-trailhead", PoiName: "Half Dome TH", PoiType: "trailhead"},
		},
		Card: models.Card{
			Title:       "Lower Pines 001",
			Description: "Valley access",
			Href:        "/app/campsites/lower-pines-001",
		},
	},
	{
		SiteID:      "bridge-bay-001",
		Park:        "yell",
		ParkName:    "Yellowstone National Park",
		Name:        "Bridge Bay Site 001",
		Capacity:    "6",
		Location:    "Yellowstone Lake",
		Description: "Close to the marina with lake views.",
		ConnectedPaths: []models.ConnectedPath{
			{PathID: "grand-loop", PathName: "Grand Loop Road", PathType: models.PathTypeRoad},
		},
		NearbyPoi: []models.NearbyPoi{
			{PoiID: "old-faithful", PoiName: "Old Faithful", PoiType: "geyser"},
		},
		Card: models.Card{
			Title:       "Bridge Bay 001",
			Description: "Reserve now",
			Href:        "/app/campsites/bridge-bay-001",
		},
	},
}
