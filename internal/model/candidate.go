package model

// Industry classifies a business for scoring and recommendation purposes.
type Industry string

const (
	IndustrySalon       Industry = "salon"
	IndustryBarber      Industry = "barber"
	IndustrySpa         Industry = "spa"
	IndustryDentist     Industry = "dentist"
	IndustryDoctor      Industry = "doctor"
	IndustryChiro       Industry = "chiropractor"
	IndustryRestaurant  Industry = "restaurant"
	IndustryCafe        Industry = "cafe"
	IndustryFitness     Industry = "fitness"
	IndustryAutoRepair  Industry = "auto_repair"
	IndustryPlumber     Industry = "plumber"
	IndustryElectrician Industry = "electrician"
	IndustryLandscaping Industry = "landscaping"
	IndustryRetail      Industry = "retail"
	IndustryOther       Industry = "other"
)

// Candidate is a raw business record returned by the discovery provider.
// It lives only for the duration of one search call.
type Candidate struct {
	PlaceID     string   `json:"place_id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	PhotoCount  int      `json:"photo_count"`
	Categories  []string `json:"categories,omitempty"`
}

// HasWebsite reports whether the candidate listed any website at all.
func (c Candidate) HasWebsite() bool {
	return c.Website != ""
}

// HasPhone reports whether the candidate listed a phone number.
func (c Candidate) HasPhone() bool {
	return c.Phone != ""
}
