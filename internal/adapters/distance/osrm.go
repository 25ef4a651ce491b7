package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

const defaultOSRMBaseURL = "https://router.project-osrm.org"

// OSRMProvider implements DistanceProvider and RouteGeometryProvider against
// an OSRM routing server.
//
// It coordinates:
//   - External API calls with retry/backoff
//   - Request pacing (the public demo server is rate limited)
//   - Great-circle fallback when the routing service is unavailable
//
// The provider is safe for concurrent use.
type OSRMProvider struct {
	session *http.Client
	baseURL string
	profile string
	limiter *rate.Limiter
}

func NewOSRMProvider(baseURL string) *OSRMProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOSRMBaseURL
	}

	return &OSRMProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving",
		// One request per second with small bursts keeps the demo server happy.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

type osrmRouteResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Steps []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
				Name     string  `json:"name"`
				Ref      string  `json:"ref"`
				Maneuver struct {
					Instruction string `json:"instruction"`
					Type        string `json:"type"`
					Modifier    string `json:"modifier"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// Distance returns the road distance in kilometers between two points.
// Routing failures are recovered locally with the great-circle distance so
// the optimizer never sees a provider error.
func (o *OSRMProvider) Distance(ctx context.Context, a, b domain.Coordinates) (float64, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=false",
		o.baseURL, o.profile, a.Lon, a.Lat, b.Lon, b.Lat)

	var res osrmRouteResponse
	if err := o.getJSON(ctx, url, &res); err != nil {
		log.Printf("osrm: distance request failed, falling back to great-circle: %v", err)
		return a.DistanceKm(b), nil
	}

	if res.Code != "Ok" || len(res.Routes) == 0 {
		log.Printf("osrm: non-Ok response code=%q, falling back to great-circle", res.Code)
		return a.DistanceKm(b), nil
	}

	return res.Routes[0].Distance / 1000.0, nil
}

// RouteGeometry returns the full drivable path through the ordered points,
// including turn-by-turn steps. Unlike Distance it propagates failure: the
// caller synthesizes straight-line segments itself.
func (o *OSRMProvider) RouteGeometry(ctx context.Context, points []domain.Coordinates) (ports.RouteGeometry, error) {
	if len(points) < 2 {
		return ports.RouteGeometry{}, fmt.Errorf("osrm: need at least 2 points, got %d", len(points))
	}

	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Lon, p.Lat))
	}
	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson&steps=true",
		o.baseURL, o.profile, strings.Join(coords, ";"))

	var res osrmRouteResponse
	if err := o.getJSON(ctx, url, &res); err != nil {
		return ports.RouteGeometry{}, fmt.Errorf("osrm: route geometry: %w", err)
	}

	if res.Code != "Ok" || len(res.Routes) == 0 {
		return ports.RouteGeometry{}, fmt.Errorf("osrm: route geometry: non-Ok response code=%q", res.Code)
	}

	route := res.Routes[0]
	out := ports.RouteGeometry{
		DistanceKm:  route.Distance / 1000.0,
		DurationMin: route.Duration / 60.0,
		Waypoints:   route.Geometry.Coordinates,
	}

	for _, leg := range route.Legs {
		for _, st := range leg.Steps {
			street := st.Name
			if st.Ref != "" {
				street += " " + st.Ref
			}
			instruction := st.Maneuver.Instruction
			if instruction == "" {
				instruction = "Continue"
			}
			out.Steps = append(out.Steps, domain.RouteStep{
				Instruction: instruction,
				DistanceKm:  st.Distance / 1000.0,
				DurationMin: st.Duration / 60.0,
				Type:        st.Maneuver.Type,
				Modifier:    st.Maneuver.Modifier,
				StreetName:  street,
			})
		}
	}

	return out, nil
}

func (o *OSRMProvider) getJSON(ctx context.Context, url string, v any) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, url)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
