package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/drakonoslav/bulk-coach-sub003/consts"
	"github.com/drakonoslav/bulk-coach-sub003/schema"
	"github.com/drakonoslav/bulk-coach-sub003/score"
)

// dayRows is everything one date's computation reads, fetched up front. The
// fetches are independent reads and run in parallel; the computation itself
// is pure.
type dayRows struct {
	samples          map[string]schema.DailySample
	measuredSessions int

	sleepPlan  *schema.SleepPlan
	plans      map[schema.Domain]*schema.WeeklyPlan
	sleepLog   *schema.SleepLog
	zones      *schema.ZoneMinutes
	repEntries []schema.RepEntry
	baselines  []schema.MovementBaseline
}

func (s *Server) fetchDayRows(account string, date time.Time) (*dayRows, error) {
	dateISO := date.Format("2006-01-02")
	rows := &dayRows{plans: map[schema.Domain]*schema.WeeklyPlan{}}

	var g errgroup.Group

	g.Go(func() error {
		var err error
		rows.samples, err = s.coachStore.GetSampleWindow(account, date, consts.SampleWindowSize)
		return err
	})
	g.Go(func() error {
		var err error
		rows.measuredSessions, err = s.coachStore.CountMeasuredProxySessions(
			account, date, consts.ProxyConfidenceWindowDays)
		return err
	})
	g.Go(func() error {
		var err error
		rows.sleepPlan, err = s.coachStore.GetSleepPlan(account)
		return err
	})
	// the plans map is written from exactly one goroutine; map writes are
	// unsafe to spread across the group even under distinct keys
	g.Go(func() error {
		for _, domain := range []schema.Domain{schema.DomainSleep, schema.DomainCardio, schema.DomainLift} {
			plan, err := s.coachStore.GetWeeklyPlan(account, domain)
			if err != nil {
				return err
			}
			rows.plans[domain] = plan
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rows.sleepLog, err = s.coachStore.GetSleepLog(account, dateISO)
		return err
	})
	g.Go(func() error {
		var err error
		rows.zones, err = s.coachStore.GetZoneMinutes(account, dateISO)
		return err
	})
	g.Go(func() error {
		var err error
		rows.repEntries, err = s.coachStore.GetAllRepEntries(account)
		return err
	})
	g.Go(func() error {
		var err error
		rows.baselines, err = s.coachStore.GetMovementBaselines(account)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// metricColumn lifts one metric out of the per-date sample rows.
func metricColumn(samples map[string]schema.DailySample, pick func(schema.DailySample) *float64) map[string]*float64 {
	column := make(map[string]*float64, len(samples))
	for date, s := range samples {
		column[date] = pick(s)
	}
	return column
}

// measuredProxyDays counts the trailing-window days whose daily sample
// carries a proxy value. Confidence grading reads the sample column, not the
// session records: an imported sample day counts even when its source
// sessions were never synced.
func measuredProxyDays(samples map[string]schema.DailySample, target time.Time) int {
	days := 0
	for i := 0; i < consts.ProxyConfidenceWindowDays; i++ {
		date := target.AddDate(0, 0, -i).Format("2006-01-02")
		if s, ok := samples[date]; ok && s.AndrogenProxy != nil {
			days++
		}
	}
	return days
}

// computeReadiness derives one date's readiness result from fetched rows.
func computeReadiness(rows *dayRows, date time.Time) schema.ReadinessResult {
	hrv := metricColumn(rows.samples, func(s schema.DailySample) *float64 { return s.HRV })
	rhr := metricColumn(rows.samples, func(s schema.DailySample) *float64 { return s.RestingHR })
	sleep := metricColumn(rows.samples, func(s schema.DailySample) *float64 { return s.SleepMinutes })
	proxy := metricColumn(rows.samples, func(s schema.DailySample) *float64 { return s.AndrogenProxy })

	return score.ComputeReadiness(score.ReadinessInput{
		Date:                    date,
		HRV:                     score.RollingBaseline(hrv, date, score.DeltaRatio),
		RestingHR:               score.RollingBaseline(rhr, date, score.DeltaAbsolute),
		SleepMinutes:            score.RollingBaseline(sleep, date, score.DeltaRatio),
		AndrogenProxy:           score.RollingBaseline(proxy, date, score.DeltaRatio),
		MeasuredProxySessions7d: rows.measuredSessions,
		MeasuredProxyDays7d:     measuredProxyDays(rows.samples, date),
	})
}

// readinessForDate computes, persists and returns the full readiness payload
// for one date. Recomputing the same date with unchanged rows stores an
// identical result.
func (s *Server) readinessForDate(c *gin.Context) {
	account := c.GetString("requester")
	dateISO := c.Param("date")

	date, err := schema.ParseDate(dateISO)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDate, err)
		return
	}

	rows, err := s.fetchDayRows(account, date)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	readiness := computeReadiness(rows, date)
	if err := s.coachStore.UpsertReadiness(account, readiness); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, buildReadinessResponse(dateISO, readiness, rows, date))
}

// recomputeReadiness recomputes a trailing range of dates, one independent
// computation per date. A failure partway leaves earlier dates updated;
// every date is self-contained so the partial result is itself valid.
func (s *Server) recomputeReadiness(c *gin.Context) {
	account := c.GetString("requester")

	var params struct {
		Days int `json:"days" binding:"required,min=1,max=90"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	updated := 0
	for i := params.Days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		rows, err := s.fetchDayRows(account, date)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		if err := s.coachStore.UpsertReadiness(account, computeReadiness(rows, date)); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		updated++
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// readinessAverage returns the mean stored composite score over a trailing
// number of days.
func (s *Server) readinessAverage(c *gin.Context) {
	account := c.GetString("requester")

	var params struct {
		Days int `form:"days" binding:"required,min=1,max=365"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -(params.Days - 1))
	avg, err := s.coachStore.GetReadinessAverage(account,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"average": avg, "days": params.Days})
}
