package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"go-joblookup/internal/listing"
)

const defaultBaseURL = "https://maps.googleapis.com"

// earth radius in km
const earthRadiusKM = 6371

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder resolves free-text Vietnamese addresses to coordinates through the
// Google Maps geocoding API.
type Geocoder struct {
	apiKey string

	// BaseURL can be overridden in tests
	BaseURL    string
	httpClient *http.Client
}

func NewGeocoder(apiKey string) *Geocoder {
	return &Geocoder{
		apiKey:     apiKey,
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether an API key was configured. Without a key the
// distance search path is simply unavailable, not an error.
func (g *Geocoder) Enabled() bool {
	return g.apiKey != ""
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location Point `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address. A zero result set returns ok=false, not an
// error, mirroring how an unknown address is handled upstream.
func (g *Geocoder) Geocode(ctx context.Context, address string) (Point, bool, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)
	params.Set("language", "vi")
	params.Set("region", "VN")

	req, err := http.NewRequestWithContext(ctx, "GET",
		g.BaseURL+"/maps/api/geocode/json?"+params.Encode(), nil)
	if err != nil {
		return Point{}, false, fmt.Errorf("failed to create geocode request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Point{}, false, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Point{}, false, fmt.Errorf("failed to read geocode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Point{}, false, fmt.Errorf("geocode endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var gr geocodeResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return Point{}, false, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(gr.Results) == 0 {
		return Point{}, false, nil
	}
	return gr.Results[0].Geometry.Location, true, nil
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*math.Pow(math.Sin(dLng/2), 2)

	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// CompanyDistance is one proximity search hit.
type CompanyDistance struct {
	Name string  `json:"name"`
	KM   float64 `json:"km"`
}

// Nearby returns the companies whose listings sit within radiusKM of origin,
// closest first, distances rounded to one decimal. Listings without
// coordinates are skipped.
func Nearby(origin Point, catalog []listing.JobListing, radiusKM float64) []CompanyDistance {
	results := make([]CompanyDistance, 0)
	for _, l := range catalog {
		if l.Company == "" || (l.Lat == 0 && l.Lng == 0) {
			continue
		}
		km := Haversine(origin, Point{Lat: l.Lat, Lng: l.Lng})
		if km <= radiusKM {
			results = append(results, CompanyDistance{
				Name: l.Company,
				KM:   math.Round(km*10) / 10,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].KM < results[j].KM
	})
	return results
}
