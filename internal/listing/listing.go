package listing

// Source identifies the portal a listing was extracted from.
type Source string

const (
	SourceHemnet Source = "hemnet"
	SourceBooli  Source = "booli"
)

// Confidence is a coarse data-quality signal: how much structured data the
// extraction actually recovered for this record.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Document is a linked attachment on a listing page (floor plan, annual
// report, bylaws, ...).
type Document struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Listing is the unified record both portals normalize into. Every string
// field defaults to "" and every numeric field to 0, so consumers can render
// unconditionally; 0 means "unknown" for amounts, never "free".
type Listing struct {
	Address          string     `json:"address"`
	Area             string     `json:"area"`
	Price            string     `json:"price"`
	PriceRaw         int        `json:"priceRaw"`
	Avgift           string     `json:"avgift"`
	Rooms            string     `json:"rooms"`
	Sqm              string     `json:"sqm"`
	Floor            string     `json:"floor"`
	BrfName          string     `json:"brfName"`
	BrfURL           string     `json:"brfUrl"`
	ConstructionYear string     `json:"constructionYear"`
	EnergyClass      string     `json:"energyClass"`
	ImageURL         string     `json:"imageUrl"`
	SourceURL        string     `json:"sourceUrl"`
	Source           Source     `json:"source"`
	PropertyType     string     `json:"propertyType"`
	ListingID        string     `json:"listingId"`
	Documents        []Document `json:"documents"`
	Confidence       Confidence `json:"confidence"`

	// Booli's own market valuation. All zero/empty when no estimate is
	// available for the listing.
	EstimatePrice       int    `json:"estimatePrice"`
	EstimateLow         int    `json:"estimateLow"`
	EstimateHigh        int    `json:"estimateHigh"`
	EstimatePricePerSqm int    `json:"estimatePricePerSqm"`
	EstimateFormatted   string `json:"estimateFormatted"`
}

// AddDocument appends a document unless one with the same URL is already
// collected. Titles are not compared; the URL is the identity.
func (l *Listing) AddDocument(title, url string) {
	for _, d := range l.Documents {
		if d.URL == url {
			return
		}
	}
	l.Documents = append(l.Documents, Document{Title: title, URL: url})
}
