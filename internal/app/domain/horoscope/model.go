package horoscope

import (
	"fmt"
	"strings"
	"time"
)

// MaxSignLength bounds the sign column.
const MaxSignLength = 20

// Signs lists the zodiac signs in seeding order.
var Signs = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Horoscope is the current prediction for one zodiac sign. ID and Date are
// assigned by the store.
type Horoscope struct {
	ID         int64     `json:"id"`
	Sign       string    `json:"sign"`
	Prediction string    `json:"prediction"`
	Date       time.Time `json:"date"`
}

// Insert carries the client-supplied subset of Horoscope fields.
type Insert struct {
	Sign       string `json:"sign"`
	Prediction string `json:"prediction"`
}

// Validate reports the first missing or malformed field, in field order.
func (in Insert) Validate() error {
	if strings.TrimSpace(in.Sign) == "" {
		return fmt.Errorf("sign is required")
	}
	if len(in.Sign) > MaxSignLength {
		return fmt.Errorf("sign must be at most %d characters", MaxSignLength)
	}
	if strings.TrimSpace(in.Prediction) == "" {
		return fmt.Errorf("prediction is required")
	}
	return nil
}
