package itinerary

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"natty/db"
	"natty/globals"
	"natty/models"
	"natty/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// SignQRPayload returns tripid|itineraryid|timestamp|signature so a
// printed day sheet can be traced back to its document.
func SignQRPayload(tripID, itineraryID string) string {
	data := fmt.Sprintf("%s|%s|%d", tripID, itineraryID, time.Now().Unix())

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// VerifyQRPayload checks the trailing signature of a scanned payload.
func VerifyQRPayload(payload string) bool {
	idx := strings.LastIndexByte(payload, '|')
	if idx < 0 {
		return false
	}
	data, sig := payload[:idx], payload[idx+1:]

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(sig), []byte(expected))
}

// GET /api/itineraries/:itineraryid/print
func PrintItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	username := utils.GetUsernameFromRequest(r)
	if username == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraryID := ps.ByName("itineraryid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&it)
	if err != nil {
		utils.RespondWithErrorExtra(w, http.StatusNotFound, "Itinerary not found", map[string]string{"itineraryid": itineraryID})
		return
	}

	if it.Owner != username {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	qrPNG, err := qrcode.Encode(SignQRPayload(it.TripID, it.ItineraryID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, it.TripName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Day %d - %s", it.Day, it.Date))
	pdf.Ln(8)
	if it.CampsiteName != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Campsite: %s", it.CampsiteName))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	for _, act := range it.Activities {
		pdf.Cell(0, 8, fmt.Sprintf("%s  %s @ %s", act.Time, act.Activity, act.Location))
		pdf.Ln(6)
		if act.Description != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(0, 8, act.Description)
			pdf.SetFont("Arial", "", 12)
			pdf.Ln(6)
		}
	}

	if it.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 8, "Notes: "+it.Notes)
		pdf.SetFont("Arial", "", 12)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+itineraryID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
