package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
	"github.com/drakonoslav/bulk-coach-sub003/store"
)

// importSnapshot accepts a batch of daily samples and proxy sessions, either
// inlined or pulled from the healthsync service. The whole batch is validated
// before any write: a single bad field list rejects nothing else, but a
// cumulative counter regression rejects the entire batch.
func (s *Server) importSnapshot(c *gin.Context) {
	account := c.GetString("requester")

	var params struct {
		Days          []schema.DailySample  `json:"days"`
		ProxySessions []schema.ProxySession `json:"proxySessions"`
		Cumulative    map[string]float64    `json:"cumulative"`
		PullDays      int                   `json:"pullDays"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.PullDays > 0 {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		snapshot, err := s.healthSync.GetSnapshot(token, params.PullDays)
		if err != nil {
			abortWithEncoding(c, http.StatusBadGateway, errorInternalServer, err)
			return
		}
		params.Days = snapshot.Days
		params.ProxySessions = snapshot.ProxySessions
		params.Cumulative = snapshot.Cumulative
	}

	// every violated field of every sample is reported at once
	violations := map[string][]schema.FieldViolation{}
	for _, sample := range params.Days {
		if result := schema.ValidateDailySample(sample); !result.Valid() {
			violations[sample.Date] = result.Violations
		}
	}
	if len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      errorInvalidSamples,
			"violations": violations,
		})
		return
	}

	if err := s.checkCumulative(account, params.Cumulative); err != nil {
		abortWithEncoding(c, http.StatusConflict, errorImportRejected, err)
		return
	}

	importID := uuid.New().String()
	if err := s.coachStore.UpsertDailySamples(account, params.Days); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if err := s.coachStore.UpsertProxySessions(account, params.ProxySessions); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	log.WithFields(logrus.Fields{
		"prefix":    "api",
		"import_id": importID,
		"days":      len(params.Days),
		"sessions":  len(params.ProxySessions),
	}).Info("snapshot imported")

	c.JSON(http.StatusOK, gin.H{
		"importID": importID,
		"days":     len(params.Days),
		"sessions": len(params.ProxySessions),
	})
}

// checkCumulative rejects a batch whose cumulative counters run backwards
// against the stored high-water marks, then advances the marks.
func (s *Server) checkCumulative(account string, counters map[string]float64) error {
	if len(counters) == 0 {
		return nil
	}

	stored, err := s.coachStore.GetCumulativeCounters(account)
	if err != nil {
		return err
	}
	for name, value := range counters {
		if previous, ok := stored[name]; ok && value < previous {
			return fmt.Errorf("counter %q decreased from %g to %g: %w",
				name, previous, value, store.ErrCounterRegression)
		}
	}
	return s.coachStore.SetCumulativeCounters(account, counters)
}
