package api

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-joblookup/internal/cache"
	"go-joblookup/internal/config"
	"go-joblookup/internal/cv"
	"go-joblookup/internal/geo"
	"go-joblookup/internal/listing"
	"go-joblookup/internal/match"
)

// proximity search radius around the candidate's address
const nearbyRadiusKM = 15

// CatalogSource hands back the full flattened catalog snapshot.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]listing.JobListing, error)
}

// Handler wires the match engine to its collaborators: the listing store, the
// snapshot cache, the geocoder and the CV reader.
type Handler struct {
	cfg      *config.Config
	store    CatalogSource
	snapshot *cache.Snapshot
	geocoder *geo.Geocoder

	cvClient *http.Client
}

func New(cfg *config.Config, store CatalogSource, snapshot *cache.Snapshot, geocoder *geo.Geocoder) *Handler {
	return &Handler{
		cfg:      cfg,
		store:    store,
		snapshot: snapshot,
		geocoder: geocoder,
		cvClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Register mounts all routes on the gin engine.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/companies", h.Companies)
	api.POST("/search-company", h.SearchCompany)
	api.POST("/search-job-by-cv", h.SearchJobByCV)
	api.POST("/parse-cv", h.ParseCV)
	api.POST("/read-cv", h.ReadCV)
}

// catalog returns the cached snapshot when fresh, otherwise refetches from
// the store and refreshes the cache.
func (h *Handler) catalog(ctx context.Context) ([]listing.JobListing, error) {
	if items, ok := h.snapshot.Catalog(h.cfg.CatalogTTL()); ok {
		return items, nil
	}

	items, err := h.store.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	h.snapshot.SetCatalog(items)
	return items, nil
}

type searchCompanyRequest struct {
	Company  string `json:"company"`
	Job      string `json:"job"`
	City     string `json:"city"`
	District string `json:"district"`
	Address  string `json:"address"`
}

// SearchCompany is the form search. With an address it runs the proximity
// path (companies within 15 km, closest first); otherwise the match engine
// decides which listings are relevant.
// POST /api/search-company
func (h *Handler) SearchCompany(c *gin.Context) {
	var req searchCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.catalog(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch catalog: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "cannot load job listings"})
		return
	}

	if req.Address != "" && h.geocoder.Enabled() {
		origin, ok, err := h.geocoder.Geocode(c.Request.Context(), req.Address)
		if err != nil {
			log.Printf("⚠️ Geocoding failed for %q: %v", req.Address, err)
		}
		if err == nil && ok {
			c.JSON(http.StatusOK, gin.H{
				"distance": geo.Nearby(origin, items, nearbyRadiusKM),
			})
			return
		}
		//fall through to the keyword search when the address cannot be resolved
	}

	results := match.Search(match.CandidateQuery{
		CompanyKeyword: req.Company,
		JobKeywordRaw:  req.Job,
		City:           req.City,
		District:       req.District,
	}, items)

	c.JSON(http.StatusOK, gin.H{
		"total":     len(results),
		"companies": listing.ProjectAll(results),
	})
}

type searchByCVRequest struct {
	CVText string `json:"cvText"`
}

// SearchJobByCV extracts a profile from raw CV text and searches with the
// CV keyword path (no taxonomy expansion).
// POST /api/search-job-by-cv
func (h *Handler) SearchJobByCV(c *gin.Context) {
	var req searchByCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.CVText == "" {
		c.JSON(http.StatusOK, gin.H{"total": 0, "companies": []listing.Result{}})
		return
	}

	profile := cv.Extract(req.CVText)
	// the CV path requires recognized role phrases; without them the engine's
	// empty-query pass-through would return the whole catalog
	if len(profile.JobKeywords) == 0 {
		c.JSON(http.StatusOK, gin.H{"total": 0, "companies": []listing.Result{}})
		return
	}

	items, err := h.catalog(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch catalog: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "cannot load job listings"})
		return
	}

	results := match.Search(match.CandidateQuery{
		CVKeywords: profile.JobKeywords,
		City:       profile.City,
		District:   profile.District,
	}, items)

	c.JSON(http.StatusOK, gin.H{
		"total":     len(results),
		"companies": listing.ProjectAll(results),
	})
}

type parseCVRequest struct {
	Text string `json:"text"`
}

// ParseCV exposes CV profile extraction on its own, for clients that want to
// show the detected keywords before searching.
// POST /api/parse-cv
func (h *Handler) ParseCV(c *gin.Context) {
	var req parseCVRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing CV text"})
		return
	}

	c.JSON(http.StatusOK, cv.Extract(req.Text))
}

type readCVRequest struct {
	Link string `json:"link"`
}

// ReadCV turns an uploaded PDF (multipart "file") or a PDF link into plain
// text.
// POST /api/read-cv
func (h *Handler) ReadCV(c *gin.Context) {
	var data []byte

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open uploaded file"})
			return
		}
		defer f.Close()

		data, err = io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
			return
		}
	} else {
		var req readCVRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Link == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no CV file or link provided"})
			return
		}
		body, err := cv.Download(c.Request.Context(), h.cvClient, req.Link)
		if err != nil {
			log.Printf("⚠️ Failed to download CV from %q: %v", req.Link, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "cannot download CV"})
			return
		}
		data = body
	}

	text, err := cv.ExtractText(data)
	if err != nil {
		log.Printf("⚠️ Failed to extract CV text: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read CV PDF"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Companies lists the unique company names in the catalog, sorted with
// Vietnamese collation.
// GET /api/companies
func (h *Handler) Companies(c *gin.Context) {
	items, err := h.catalog(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch catalog: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "cannot load companies"})
		return
	}

	seen := map[string]bool{}
	names := make([]string, 0)
	for _, l := range items {
		if l.Company == "" {
			continue
		}
		key := match.Normalize(l.Company)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, l.Company)
	}

	collate.New(language.Vietnamese).SortStrings(names)

	c.JSON(http.StatusOK, gin.H{
		"total":     len(names),
		"companies": names,
	})
}
