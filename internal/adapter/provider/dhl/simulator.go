package dhl

import (
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"marketplace-integrations/internal/adapter/provider"
)

// Simulated tariff: a flat base plus a per-kilogram charge on the rounded-up
// total weight.
const (
	simBasePrice  = 2500
	simPricePerKg = 850
)

var simLabel = []byte("%PDF-1.4\n% simulated DHL label\n%%EOF\n")

// simulate answers DHL requests with MyDHL-shaped bodies.
func (a *Adapter) simulate(req provider.Request) (int, any) {
	switch {
	case req.Method == http.MethodPost && req.Path == "/rates":
		body, _ := req.Body.(rateRequest)
		return http.StatusOK, rateResponse{Products: []product{simProduct(body.Packages)}}

	case req.Method == http.MethodPost && req.Path == "/shipments":
		body, _ := req.Body.(shipmentRequest)
		return http.StatusCreated, shipmentResponse{
			ShipmentTrackingNumber: fmt.Sprintf("SIM%d", a.now().UnixMilli()),
			Documents: []document{{
				ImageFormat: strings.ToUpper(body.OutputImageProperties.EncodingFormat),
				Content:     base64.StdEncoding.EncodeToString(simLabel),
				TypeCode:    "label",
			}},
			ShipmentCharges: simProduct(body.Content.Packages).TotalPrice,
		}

	case req.Method == http.MethodGet && strings.HasPrefix(req.Path, "/shipments/") && strings.HasSuffix(req.Path, "/tracking"):
		number := strings.TrimSuffix(strings.TrimPrefix(req.Path, "/shipments/"), "/tracking")
		return http.StatusOK, trackingResponse{Shipments: []trackedShipment{a.simTracking(number)}}
	}
	return http.StatusNotFound, map[string]string{"title": "Not Found", "detail": req.Method + " " + req.Path}
}

func simProduct(packages []pkg) product {
	var weight float64
	for _, p := range packages {
		weight += p.Weight
	}
	total := int64(simBasePrice + simPricePerKg*int64(math.Ceil(weight)))
	return product{
		ProductName: "EXPRESS WORLDWIDE",
		ProductCode: "P",
		TotalPrice: []price{{
			CurrencyType:  "BILLC",
			PriceCurrency: "EUR",
			Price:         provider.FromMinor(total),
		}},
		DeliveryCapabilities: deliveryCapabilities{TotalTransitDays: "2"},
	}
}

func (a *Adapter) simTracking(number string) trackedShipment {
	now := a.now().UTC()
	mk := func(ago time.Duration, code, desc, areaCode, area string) event {
		ts := now.Add(-ago)
		return event{
			Date:        ts.Format("2006-01-02"),
			Time:        ts.Format("15:04:05"),
			TypeCode:    code,
			Description: desc,
			ServiceArea: []serviceArea{{Code: areaCode, Description: area}},
		}
	}
	// Newest first, as the live API returns them.
	return trackedShipment{
		ShipmentTrackingNumber: number,
		Status:                 "transit",
		Events: []event{
			mk(2*time.Hour, "AF", "Arrived at DHL Sort Facility", "LEJ", "Leipzig-DE"),
			mk(20*time.Hour, "PL", "Processed at LEIPZIG - GERMANY", "LEJ", "Leipzig-DE"),
			mk(30*time.Hour, "PU", "Shipment picked up", "BON", "Bonn-DE"),
		},
	}
}
