package challenge

import (
	"context"
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"math"

	"fsxchallenge/placement"
	"fsxchallenge/units"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// NumStations is the number of stations of every challenge.
const NumStations = 20

// Challenge is a course definition importable by the game.
type Challenge struct {
	XMLName     xml.Name  `xml:"FSXChallenge"`
	Name        string    `xml:"Name"`
	NumStations int       `xml:"NumStations"`
	Stations    []Station `xml:"Station"`

	// yardages are the sampled distances before conversion to meters.
	yardages []units.Yards
	rejected uint64
}

// Station is a single target position.
type Station struct {
	ArrayIndex    int    `xml:"ArrayIndex"`
	StationNum    int    `xml:"StationNum"`
	Desc          string `xml:"Desc"`
	SkillType     int    `xml:"SkillType"`
	NumShotsAm    int    `xml:"NumShotsAm"`
	NumShotsPro   int    `xml:"NumShotsPro"`
	NumShotsToUse int    `xml:"NumShotsToUse"`

	TrgtDistWomen units.Meters `xml:"TrgtDistWomen"`
	TrgtDistAm    units.Meters `xml:"TrgtDistAm"`
	TrgtDistPro   units.Meters `xml:"TrgtDistPro"`

	InnerRingDiamAm  units.Meters `xml:"InnerRingDiamAm"`
	MidRingDiamAm    units.Meters `xml:"MidRingDiamAm"`
	OuterRingDiamAm  units.Meters `xml:"OuterRingDiamAm"`
	InnerRingDiamPro units.Meters `xml:"InnerRingDiamPro"`
	MidRingDiamPro   units.Meters `xml:"MidRingDiamPro"`
	OuterRingDiamPro units.Meters `xml:"OuterRingDiamPro"`

	InnerScore uint `xml:"InnerScore"`
	MidScore   uint `xml:"MidScore"`
	OuterScore uint `xml:"OuterScore"`

	Obstacle     int          `xml:"Obstacle"`
	ObstacleDist units.Meters `xml:"ObstacleDist"`
}

// AbandonedError is returned by Build when placement ends before every station is placed.
type AbandonedError struct {
	// Rejected is the number of draws discarded before giving up.
	Rejected uint64
	Err      error
}

func (e *AbandonedError) Error() string {
	return fmt.Sprintf("placement abandoned after %d rejected draws: %v", e.Rejected, e.Err)
}

func (e *AbandonedError) Unwrap() error {
	return e.Err
}

// Params are the inputs of a challenge.
type Params struct {
	// Dist is the range the stations are placed in.
	Dist units.Range
	// MinGap is the minimum distance between two consecutive stations.
	MinGap units.Yards

	// Ring diameters, used for both the amateur and the pro tier.
	InnerRing units.Yards
	MidRing   units.Yards
	OuterRing units.Yards

	InnerScore uint
	MidScore   uint
	OuterScore uint
}

// Yardages returns the sampled distances of the stations in order.
func (c *Challenge) Yardages() []units.Yards {
	return append([]units.Yards(nil), c.yardages...)
}

// Rejected returns the number of draws discarded while placing the stations.
func (c *Challenge) Rejected() uint64 {
	return c.rejected
}

// Filename returns the name the challenge is offered for download under.
func (c *Challenge) Filename() string {
	return c.Name + ".xml"
}

// Encode encodes the challenge as the XML document imported by the game.
func (c *Challenge) Encode() ([]byte, error) {
	data, err := xml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode challenge")
	}
	return data, nil
}

// newStation builds the station at index i placed at dist.
func newStation(i int, dist units.Yards, p Params) Station {
	target := dist.Meters()
	inner, mid, outer := p.InnerRing.Meters(), p.MidRing.Meters(), p.OuterRing.Meters()
	return Station{
		ArrayIndex:    i,
		StationNum:    i + 1,
		Desc:          "1",
		SkillType:     0,
		NumShotsAm:    1,
		NumShotsPro:   1,
		NumShotsToUse: 1,

		TrgtDistWomen: target,
		TrgtDistAm:    target,
		TrgtDistPro:   target,

		InnerRingDiamAm:  inner,
		MidRingDiamAm:    mid,
		OuterRingDiamAm:  outer,
		InnerRingDiamPro: inner,
		MidRingDiamPro:   mid,
		OuterRingDiamPro: outer,

		InnerScore: p.InnerScore,
		MidScore:   p.MidScore,
		OuterScore: p.OuterScore,

		Obstacle:     0,
		ObstacleDist: units.New(0).Meters(),
	}
}

// UID hashes the milli-yard values of yards, in order, to a short identifier.
func UID(yards []units.Yards) uint32 {
	h := xxhash.New()
	var buf [8]byte
	for _, y := range yards {
		binary.LittleEndian.PutUint64(buf[:], y.Milli())
		// Write on a Digest never fails.
		_, _ = h.Write(buf[:])
	}
	return uint32(h.Sum64())
}

// Name formats the challenge name from its range and uid, e.g. "20 - 40 0badf00d".
func Name(dist units.Range, uid uint32) string {
	return fmt.Sprintf("%.0f - %.0f %08x",
		math.Round(dist.Lo.Float()), math.Round(dist.Hi.Float()), uid)
}

func assemble(yards []units.Yards, rejected uint64, p Params) *Challenge {
	stations := make([]Station, len(yards))
	for i, y := range yards {
		stations[i] = newStation(i, y, p)
	}
	return &Challenge{
		Name:        Name(p.Dist, UID(yards)),
		NumStations: NumStations,
		Stations:    stations,
		yardages:    yards,
		rejected:    rejected,
	}
}

// Build generates a challenge drawing from rng.
//
// Placement keeps drawing until ctx is done, so infeasible parameters
// only return through an *AbandonedError wrapping the context error.
func Build(ctx context.Context, rng units.Rand, p Params) (*Challenge, error) {
	sampler := placement.NewSampler(rng, p.Dist, p.MinGap)
	yards, err := sampler.TakeContext(ctx, NumStations)
	if err != nil {
		log.WithFields(log.Fields{
			"range":    p.Dist,
			"min_gap":  p.MinGap,
			"rejected": sampler.Rejected(),
		}).WithError(err).Warn("Challenge placement abandoned")
		return nil, &AbandonedError{Rejected: sampler.Rejected(), Err: err}
	}
	c := assemble(yards, sampler.Rejected(), p)
	log.WithFields(log.Fields{
		"name":     c.Name,
		"rejected": sampler.Rejected(),
	}).Debug("Challenge generated")
	return c, nil
}

// New generates a challenge with a fresh random source.
//
// It may never return when p.Dist is too narrow for p.MinGap.
func New(p Params) *Challenge {
	sampler := placement.NewSampler(placement.NewRand(), p.Dist, p.MinGap)
	yards := sampler.Take(NumStations)
	return assemble(yards, sampler.Rejected(), p)
}
