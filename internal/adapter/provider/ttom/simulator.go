package ttom

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"marketplace-integrations/internal/adapter/provider"
)

// Simulated LCL tariff: a fixed handling fee plus a per-CBM rate, billed on
// at least one cubic metre.
const (
	simHandlingFee = 9500
	simRatePerCBM  = 4500
)

func (a *Adapter) simulate(req provider.Request) (int, any) {
	switch {
	case req.Method == http.MethodPost && req.Path == "/quotes":
		body, _ := req.Body.(quoteRequest)
		cbm := math.Max(1, math.Ceil(body.Cargo.VolumeCBM))
		return http.StatusOK, quoteResponse{Quotes: []quote{{
			QuoteID:        fmt.Sprintf("SIMQ%d", a.now().Unix()),
			Service:        "LCL Standard",
			Currency:       "EUR",
			Total:          provider.FromMinor(simHandlingFee + simRatePerCBM*int64(cbm)),
			TransitDaysMin: 28,
			TransitDaysMax: 35,
		}}}

	case req.Method == http.MethodPost && (req.Path == pathBookings || req.Path == pathBookingRequests):
		now := a.now().UTC()
		return http.StatusCreated, bookingResponse{
			BookingReference: fmt.Sprintf("SIM-TTOM-%d", now.Unix()),
			Status:           "BOOKED",
			ETD:              now.AddDate(0, 0, 5).Format("2006-01-02"),
			ETA:              now.AddDate(0, 0, 40).Format("2006-01-02"),
		}

	case req.Method == http.MethodGet && strings.HasPrefix(req.Path, "/bookings/") && strings.HasSuffix(req.Path, "/tracking"):
		ref := strings.TrimSuffix(strings.TrimPrefix(req.Path, "/bookings/"), "/tracking")
		now := a.now().UTC()
		return http.StatusOK, trackingResponse{
			BookingReference: ref,
			Status:           "SAILING",
			Milestones: []milestone{
				{Code: "SAILING", Description: "Vessel departed", Location: "Hamburg, DE", Timestamp: now.Add(-24 * time.Hour).Format(time.RFC3339)},
				{Code: "LOADED", Description: "Container loaded on vessel", Location: "Hamburg, DE", Timestamp: now.Add(-48 * time.Hour).Format(time.RFC3339)},
				{Code: "RECEIVED", Description: "Cargo received at CFS", Location: "Hamburg, DE", Timestamp: now.Add(-96 * time.Hour).Format(time.RFC3339)},
			},
		}
	}
	return http.StatusNotFound, map[string]string{"error": "not_found"}
}
