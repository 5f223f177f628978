package ttom

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"marketplace-integrations/internal/adapter/provider"
	"marketplace-integrations/internal/core/domain"
)

var (
	manifestHeader    = []string{"order_reference", "sku", "hs_code", "quantity", "unit_weight_kg", "total_weight_kg", "unit_value", "total_value", "currency"}
	packingListHeader = []string{"line", "order_reference", "sku", "quantity", "total_weight_kg", "shipper", "consignee"}
)

// buildManifest renders the cargo manifest declared to customs.
func buildManifest(req domain.SeaBookingRequest) ([]byte, error) {
	rows := [][]string{manifestHeader}
	for _, o := range req.Orders {
		for _, it := range o.Items {
			rows = append(rows, []string{
				o.Reference,
				it.SKU,
				it.HSCode,
				strconv.Itoa(it.Quantity),
				formatKg(it.Weight),
				formatKg(it.Weight * float64(it.Quantity)),
				provider.FromMinor(it.Value).StringFixed(2),
				provider.FromMinor(it.Value * int64(it.Quantity)).StringFixed(2),
				o.Currency,
			})
		}
	}
	return writeCSV(rows)
}

// buildPackingList renders the per-line packing list that travels with the cargo.
func buildPackingList(req domain.SeaBookingRequest) ([]byte, error) {
	rows := [][]string{packingListHeader}
	line := 0
	for _, o := range req.Orders {
		for _, it := range o.Items {
			line++
			rows = append(rows, []string{
				strconv.Itoa(line),
				o.Reference,
				it.SKU,
				strconv.Itoa(it.Quantity),
				formatKg(it.Weight * float64(it.Quantity)),
				req.Shipper.Name,
				req.Consignee.Name,
			})
		}
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 3, 64)
}
