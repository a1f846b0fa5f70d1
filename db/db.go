package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ParksCollection     *mongo.Collection
	PathsCollection     *mongo.Collection
	PoiCollection       *mongo.Collection
	CampsitesCollection *mongo.Collection
	ItineraryCollection *mongo.Collection
	UserCollection      *mongo.Collection
	Client              *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	natty := Client.Database("natty")
	ParksCollection = natty.Collection("parks")
	PathsCollection = natty.Collection("paths")
	PoiCollection = natty.Collection("poi")
	CampsitesCollection = natty.Collection("campsites")
	ItineraryCollection = natty.Collection("itineraries")
	UserCollection = natty.Collection("users")
}

// EnsureIndexes creates the unique natural-key indexes and the
// itinerary query indexes. Called once at server startup.
func EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	for _, ix := range []struct {
		coll *mongo.Collection
		key  string
	}{
		{ParksCollection, "parkid"},
		{PathsCollection, "pathid"},
		{PoiCollection, "poiid"},
		{CampsitesCollection, "siteid"},
		{ItineraryCollection, "itineraryid"},
		{UserCollection, "username"},
	} {
		_, err := ix.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: ix.key, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}

	_, err := ItineraryCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "tripid", Value: 1}, {Key: "day", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	})
	return err
}
