package places

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// searchResponse models the slice of the directory payload we consume.
type searchResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Results      []place `json:"results"`
}

type place struct {
	PlaceID              string   `json:"place_id"`
	Name                 string   `json:"name"`
	FormattedAddress     string   `json:"formatted_address"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
	Website              string   `json:"website"`
	Rating               float64  `json:"rating"`
	UserRatingsTotal     int      `json:"user_ratings_total"`
	Types                []string `json:"types"`
	Photos               []photo  `json:"photos"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}
