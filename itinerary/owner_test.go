package itinerary

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"natty/db"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func storedItineraryDoc(owner string) bson.D {
	return bson.D{
		{Key: "itineraryid", Value: "yose-fall-day1"},
		{Key: "tripid", Value: "yose-fall"},
		{Key: "tripName", Value: "Yosemite Fall Adventure"},
		{Key: "owner", Value: owner},
		{Key: "day", Value: 1},
		{Key: "date", Value: "2024-07-10"},
		{Key: "activities", Value: bson.A{}},
	}
}

func itineraryParams() httprouter.Params {
	return httprouter.Params{{Key: "itineraryid", Value: "yose-fall-day1"}}
}

func TestUpdateItineraryForbiddenForNonOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("put by non-owner", func(mt *mtest.T) {
		orig := db.ItineraryCollection
		db.ItineraryCollection = mt.Coll
		defer func() { db.ItineraryCollection = orig }()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "natty.itineraries", mtest.FirstBatch, storedItineraryDoc("bob")))

		body := `{"itineraryid":"yose-fall-day1","tripid":"yose-fall","tripName":"Hijacked","day":1,"date":"2024-07-10","activities":[]}`
		req := asUser(httptest.NewRequest(http.MethodPut, "/api/itineraries/yose-fall-day1", strings.NewReader(body)), "alice")
		rec := httptest.NewRecorder()

		UpdateItinerary(rec, req, itineraryParams())

		assert.Equal(mt, http.StatusForbidden, rec.Code)

		var resp map[string]string
		assert.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(mt, "Forbidden", resp["error"])
	})
}

func TestDeleteItineraryForbiddenForNonOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete by non-owner", func(mt *mtest.T) {
		orig := db.ItineraryCollection
		db.ItineraryCollection = mt.Coll
		defer func() { db.ItineraryCollection = orig }()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "natty.itineraries", mtest.FirstBatch, storedItineraryDoc("bob")))

		req := asUser(httptest.NewRequest(http.MethodDelete, "/api/itineraries/yose-fall-day1", nil), "alice")
		rec := httptest.NewRecorder()

		DeleteItinerary(rec, req, itineraryParams())

		assert.Equal(mt, http.StatusForbidden, rec.Code)
	})
}

func TestDeleteItineraryOwnerSucceeds(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete by owner", func(mt *mtest.T) {
		orig := db.ItineraryCollection
		db.ItineraryCollection = mt.Coll
		defer func() { db.ItineraryCollection = orig }()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "natty.itineraries", mtest.FirstBatch, storedItineraryDoc("alice")),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		req := asUser(httptest.NewRequest(http.MethodDelete, "/api/itineraries/yose-fall-day1", nil), "alice")
		rec := httptest.NewRecorder()

		DeleteItinerary(rec, req, itineraryParams())

		assert.Equal(mt, http.StatusNoContent, rec.Code)
	})
}

func TestUpdateItineraryNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("put on absent doc", func(mt *mtest.T) {
		orig := db.ItineraryCollection
		db.ItineraryCollection = mt.Coll
		defer func() { db.ItineraryCollection = orig }()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "natty.itineraries", mtest.FirstBatch))

		req := asUser(httptest.NewRequest(http.MethodPut, "/api/itineraries/yose-fall-day1", strings.NewReader("{}")), "alice")
		rec := httptest.NewRecorder()

		UpdateItinerary(rec, req, itineraryParams())

		assert.Equal(mt, http.StatusNotFound, rec.Code)
	})
}
