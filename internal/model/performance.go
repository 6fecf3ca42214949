package model

import "time"

// PerformanceSignal is the condensed result of a third-party page
// performance analysis for one URL.
type PerformanceSignal struct {
	URL            string        `json:"url"`
	HTTPS          bool          `json:"https"`
	Score          int           `json:"score"` // 0-100
	MobileFriendly bool          `json:"mobile_friendly"`
	ResponseTime   time.Duration `json:"response_time"`
	Err            bool          `json:"err"`
	ErrorMessage   string        `json:"error_message,omitempty"`
}
