package units

import (
	"encoding/json"
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// YardsPerMeter is the only constant used for converting between the two units.
const YardsPerMeter = 1.09361

// Yards is a non-negative length stored as an integer number of milli-yards.
//
// The field name differs from Meters so that the two types can not be
// converted into each other by a plain type conversion.
type Yards struct {
	milliYards uint64
}

// Meters is a non-negative length stored as an integer number of milli-meters.
type Meters struct {
	milliMeters uint64
}

// truncMilli truncates a real number of milli-units toward zero.
//
// Negative values and NaN give 0, values larger than MaxUint64 saturate.
func truncMilli(x float64) uint64 {
	if !(x > 0) {
		return 0
	}
	if x >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(x)
}

// scaleMilli returns n*1000, saturating at MaxUint64.
func scaleMilli(n uint64) uint64 {
	if n > math.MaxUint64/1000 {
		return math.MaxUint64
	}
	return n * 1000
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid length")
	}
	return f, nil
}

// New returns n whole yards, saturating like FromFloat.
func New(n uint64) Yards {
	return Yards{scaleMilli(n)}
}

// FromFloat returns x yards, truncated to a whole number of milli-yards.
func FromFloat(x float64) Yards {
	return Yards{truncMilli(x * 1000)}
}

// FromMilli returns milli milli-yards.
func FromMilli(milli uint64) Yards {
	return Yards{milli}
}

// Milli returns the integer number of milli-yards.
func (y Yards) Milli() uint64 {
	return y.milliYards
}

// Float returns the length in yards.
func (y Yards) Float() float64 {
	return float64(y.milliYards) / 1000
}

// Meters converts y to meters, rounding toward zero.
func (y Yards) Meters() Meters {
	return Meters{truncMilli(float64(y.milliYards) / YardsPerMeter)}
}

// AbsDiff returns the absolute difference between y and other.
func (y Yards) AbsDiff(other Yards) Yards {
	if y.milliYards > other.milliYards {
		return Yards{y.milliYards - other.milliYards}
	}
	return Yards{other.milliYards - y.milliYards}
}

// Cmp returns -1, 0 or +1 depending on whether y is shorter than, equal to or longer than other.
func (y Yards) Cmp(other Yards) int {
	switch {
	case y.milliYards < other.milliYards:
		return -1
	case y.milliYards > other.milliYards:
		return 1
	}
	return 0
}

// Less reports whether y is shorter than other.
func (y Yards) Less(other Yards) bool {
	return y.milliYards < other.milliYards
}

func (y Yards) String() string {
	return formatFloat(y.Float()) + " yd"
}

// MarshalText encodes y as its fractional value, e.g. "12.345".
func (y Yards) MarshalText() ([]byte, error) {
	return []byte(formatFloat(y.Float())), nil
}

// UnmarshalText decodes a real number of yards.
func (y *Yards) UnmarshalText(text []byte) error {
	f, err := parseFloat(string(text))
	if err != nil {
		return err
	}
	*y = FromFloat(f)
	return nil
}

// MarshalJSON encodes y as a JSON number.
func (y Yards) MarshalJSON() ([]byte, error) {
	return json.Marshal(y.Float())
}

// UnmarshalJSON decodes a JSON number of yards.
func (y *Yards) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return errors.Wrap(err, "invalid length")
	}
	*y = FromFloat(f)
	return nil
}

// MarshalXML encodes y as the character data of start.
func (y Yards) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(formatFloat(y.Float()), start)
}

// UnmarshalXML decodes the character data of start as yards.
func (y *Yards) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	return y.UnmarshalText([]byte(s))
}

// NewMeters returns n whole meters, saturating like MetersFromFloat.
func NewMeters(n uint64) Meters {
	return Meters{scaleMilli(n)}
}

// MetersFromFloat returns x meters, truncated to a whole number of milli-meters.
func MetersFromFloat(x float64) Meters {
	return Meters{truncMilli(x * 1000)}
}

// Milli returns the integer number of milli-meters.
func (m Meters) Milli() uint64 {
	return m.milliMeters
}

// Float returns the length in meters.
func (m Meters) Float() float64 {
	return float64(m.milliMeters) / 1000
}

// Yards converts m to yards, rounding toward zero.
func (m Meters) Yards() Yards {
	return Yards{truncMilli(float64(m.milliMeters) * YardsPerMeter)}
}

// Cmp returns -1, 0 or +1 depending on whether m is shorter than, equal to or longer than other.
func (m Meters) Cmp(other Meters) int {
	switch {
	case m.milliMeters < other.milliMeters:
		return -1
	case m.milliMeters > other.milliMeters:
		return 1
	}
	return 0
}

// Less reports whether m is shorter than other.
func (m Meters) Less(other Meters) bool {
	return m.milliMeters < other.milliMeters
}

func (m Meters) String() string {
	return formatFloat(m.Float()) + " m"
}

// MarshalText encodes m as its fractional value.
func (m Meters) MarshalText() ([]byte, error) {
	return []byte(formatFloat(m.Float())), nil
}

// UnmarshalText decodes a real number of meters.
func (m *Meters) UnmarshalText(text []byte) error {
	f, err := parseFloat(string(text))
	if err != nil {
		return err
	}
	*m = MetersFromFloat(f)
	return nil
}

// MarshalJSON encodes m as a JSON number.
func (m Meters) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Float())
}

// UnmarshalJSON decodes a JSON number of meters.
func (m *Meters) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return errors.Wrap(err, "invalid length")
	}
	*m = MetersFromFloat(f)
	return nil
}

// MarshalXML encodes m as the character data of start.
func (m Meters) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(formatFloat(m.Float()), start)
}

// UnmarshalXML decodes the character data of start as meters.
func (m *Meters) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}
