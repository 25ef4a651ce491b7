package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

type ExportHandler struct {
	Repo ports.ConfigRepository
}

// CSV renders the session's last optimization result as a downloadable CSV
// with summary, per-route, and per-stop sections.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("export csv failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if cfg.Result == nil {
		writeError(w, r, http.StatusNotFound, "no optimization result for this session")
		return
	}

	body, err := renderResultCSV(cfg.Result)
	if err != nil {
		log.Printf("export csv failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="optimization_results.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("export csv write failed: session=%s err=%v", sid, err)
	}
}

func renderResultCSV(res *domain.OptimizationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# SmartRoute Optimization Results\n")
	fmt.Fprintf(&buf, "# Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	cw := csv.NewWriter(&buf)

	buf.WriteString("# SUMMARY\n")
	summary := [][]string{
		{"Metric", "Value"},
		{"Total Distance (km)", formatFloat(res.TotalDistance, 2)},
		{"Total Cost (PKR)", formatFloat(res.TotalCost, 2)},
		{"Vehicles Used", strconv.Itoa(res.VehiclesUsed)},
		{"Unassigned Pickup Spots", strconv.Itoa(len(res.UnassignedSpots))},
	}
	if err := cw.WriteAll(summary); err != nil {
		return nil, fmt.Errorf("render csv summary: %w", err)
	}

	buf.WriteString("\n# ROUTE SUMMARY\n")
	if err := cw.Write([]string{
		"Vehicle_Name", "Vehicle_Type", "Total_Distance_km", "Total_Cost_PKR",
		"Number_of_Stops", "Total_Workers", "Utilization_Percent",
	}); err != nil {
		return nil, fmt.Errorf("render csv routes: %w", err)
	}
	for _, rt := range res.Routes {
		workers := 0
		for _, st := range rt.Stops {
			workers += st.WorkerCount
		}
		if err := cw.Write([]string{
			rt.VehicleName,
			string(rt.VehicleCategory),
			formatFloat(rt.TotalDistanceKm, 2),
			formatFloat(rt.TotalCost, 2),
			strconv.Itoa(len(rt.Stops)),
			strconv.Itoa(workers),
			formatFloat(rt.UtilizationPercent, 1),
		}); err != nil {
			return nil, fmt.Errorf("render csv routes: %w", err)
		}
	}
	cw.Flush()

	buf.WriteString("\n# DETAILED STOPS\n")
	if err := cw.Write([]string{
		"Vehicle_Name", "Stop_Order", "PickupSpot_Name", "PickupSpot_ID",
		"Workers_Count", "Latitude", "Longitude",
	}); err != nil {
		return nil, fmt.Errorf("render csv stops: %w", err)
	}
	for _, rt := range res.Routes {
		for _, st := range rt.Stops {
			if err := cw.Write([]string{
				rt.VehicleName,
				strconv.Itoa(st.ArrivalOrder),
				st.SpotName,
				st.SpotID,
				strconv.Itoa(st.WorkerCount),
				formatFloat(st.Location.Lat, 6),
				formatFloat(st.Location.Lon, 6),
			}); err != nil {
				return nil, fmt.Errorf("render csv stops: %w", err)
			}
		}
	}
	cw.Flush()

	if len(res.UnassignedSpots) > 0 {
		buf.WriteString("\n# UNASSIGNED PICKUP SPOTS\n")
		for _, id := range res.UnassignedSpots {
			if err := cw.Write([]string{id}); err != nil {
				return nil, fmt.Errorf("render csv unassigned: %w", err)
			}
		}
		cw.Flush()
	}

	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
