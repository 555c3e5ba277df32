package handler

import (
	"context"
	_ "embed"
	"html/template"
	"math"
	"net/http"
	"time"

	"fsxchallenge/challenge"
	"fsxchallenge/middleware"
	"fsxchallenge/placement"
	"fsxchallenge/service/etc"
	"fsxchallenge/service/metrics"
	"fsxchallenge/units"
	"fsxchallenge/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:embed form.html
var formHTML string

var formTemplate = template.Must(template.New("form").Parse(formHTML))

// newRand returns the random source of a single challenge.
var newRand = func() units.Rand {
	return placement.NewRand()
}

type challengeReq struct {
	Min    *float64 `form:"min" binding:"required,gte=0"`
	Max    *float64 `form:"max" binding:"required,gte=0"`
	MinGap *float64 `form:"min_gap" binding:"omitempty,gte=0"`

	InnerRing *float64 `form:"inner_ring" binding:"omitempty,gte=0"`
	MidRing   *float64 `form:"mid_ring" binding:"omitempty,gte=0"`
	OuterRing *float64 `form:"outer_ring" binding:"omitempty,gte=0"`

	InnerScore *uint `form:"inner_score"`
	MidScore   *uint `form:"mid_score"`
	OuterScore *uint `form:"outer_score"`
}

var errInfiniteLength = errors.New("lengths must be finite")

var errEmptyRange = errors.New("max must be greater than min")

var errTooLong = errors.Errorf("lengths must be below %.0f yards", float64(units.MaxSampleMilli)/1000)

func yardsOr(x *float64, def float64) (units.Yards, error) {
	if x == nil {
		return units.FromFloat(def), nil
	}
	if math.IsInf(*x, 0) {
		return units.Yards{}, errInfiniteLength
	}
	y := units.FromFloat(*x)
	if y.Milli() > units.MaxSampleMilli {
		return units.Yards{}, errTooLong
	}
	return y, nil
}

func uintOr(x *uint, def uint) uint {
	if x == nil {
		return def
	}
	return *x
}

// params converts the request to challenge parameters, filling in the configured defaults.
func (r *challengeReq) params(conf *etc.Configuration) (challenge.Params, error) {
	d := conf.Challenge.Defaults
	var p challenge.Params
	lengths := []struct {
		dst *units.Yards
		src *float64
		def float64
	}{
		{&p.Dist.Lo, r.Min, 0},
		{&p.Dist.Hi, r.Max, 0},
		{&p.MinGap, r.MinGap, d.MinGap},
		{&p.InnerRing, r.InnerRing, d.InnerRing},
		{&p.MidRing, r.MidRing, d.MidRing},
		{&p.OuterRing, r.OuterRing, d.OuterRing},
	}
	for _, l := range lengths {
		y, err := yardsOr(l.src, l.def)
		if err != nil {
			return p, err
		}
		*l.dst = y
	}
	if p.Dist.Empty() {
		return p, errEmptyRange
	}
	p.InnerScore = uintOr(r.InnerScore, d.InnerScore)
	p.MidScore = uintOr(r.MidScore, d.MidScore)
	p.OuterScore = uintOr(r.OuterScore, d.OuterScore)
	return p, nil
}

func handleForm(c *gin.Context) {
	d := etc.Config.Challenge.Defaults
	c.Render(http.StatusOK, render.HTML{
		Template: formTemplate,
		Name:     "form",
		Data: gin.H{
			"MinGap":     units.FromFloat(d.MinGap).Float(),
			"InnerRing":  units.FromFloat(d.InnerRing).Float(),
			"MidRing":    units.FromFloat(d.MidRing).Float(),
			"OuterRing":  units.FromFloat(d.OuterRing).Float(),
			"InnerScore": d.InnerScore,
			"MidScore":   d.MidScore,
			"OuterScore": d.OuterScore,
		},
	})
}

// @summary     Challenge
// @description Generate a random challenge. Without a query string it returns the input form.
// @tags        challenge
// @produce     xml,html
// @param       min         query    number  true  "Min yardage"
// @param       max         query    number  true  "Max yardage"
// @param       min_gap     query    number  false "Min yardage between consecutive stations" default(10)
// @param       inner_ring  query    number  false "Inner ring diameter in yards"             default(8)
// @param       mid_ring    query    number  false "Mid ring diameter in yards"               default(16)
// @param       outer_ring  query    number  false "Outer ring diameter in yards"             default(24)
// @param       inner_score query    integer false "Inner ring score"                         default(5)
// @param       mid_score   query    integer false "Mid ring score"                           default(3)
// @param       outer_score query    integer false "Outer ring score"                         default(1)
// @success     200         {object} challenge.Challenge
// @failure     400         {object} any{error=string}
// @failure     500         {string} string
// @failure     503         {object} any{error=string}
// @router      / [get]
func HandleChallenge(c *gin.Context) {
	if c.Request.URL.RawQuery == "" {
		handleForm(c)
		return
	}
	logger := middleware.Logger(c)

	var req challengeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		metrics.Challenges.WithLabelValues(metrics.ResultBadRequest).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params, err := req.params(etc.Config)
	if err != nil {
		metrics.Challenges.WithLabelValues(metrics.ResultBadRequest).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if timeout := etc.Config.Challenge.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	ch, err := challenge.Build(ctx, newRand(), params)
	if err != nil {
		var rejected uint64
		var abandoned *challenge.AbandonedError
		if errors.As(err, &abandoned) {
			rejected = abandoned.Rejected
		}
		logger = logger.WithError(err).WithFields(log.Fields{
			"range":    params.Dist,
			"rejected": rejected,
		})
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.ObserveBuild(start, rejected, metrics.ResultTimeout)
			logger.Warn("Challenge generation timed out")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "challenge generation timed out"})
			return
		}
		// The client is gone, nobody reads the response.
		metrics.ObserveBuild(start, rejected, metrics.ResultCanceled)
		logger.Info("Challenge generation cancelled")
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}

	data, err := ch.Encode()
	if err != nil {
		metrics.ObserveBuild(start, ch.Rejected(), metrics.ResultError)
		logger.WithError(err).Error("failed to encode challenge")
		c.String(http.StatusInternalServerError, "Error: %s", err)
		return
	}
	metrics.ObserveBuild(start, ch.Rejected(), metrics.ResultOK)
	logger.WithField("name", ch.Name).Info("Challenge generated")

	utils.SetHeaderNoCache(c)
	utils.SetHeaderInline(c, ch.Filename())
	c.Data(http.StatusOK, "application/xml", data)
}
