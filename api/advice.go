package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
	"github.com/drakonoslav/bulk-coach-sub003/utils"
)

// readinessAdvice returns localized guidance for a stored readiness result.
func (s *Server) readinessAdvice(c *gin.Context) {
	account := c.GetString("requester")
	dateISO := c.Param("date")

	if _, err := schema.ParseDate(dateISO); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDate, err)
		return
	}

	result, err := s.coachStore.GetReadiness(account, dateISO)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errorInvalidParameters})
		return
	}

	lang := c.GetHeader("Accept-Language")
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	localizer := utils.NewLocalizer(lang)

	messageID := "advice." + strings.ToLower(string(result.Tier))
	if result.CortisolFlag {
		messageID = "advice.cortisol"
	}

	advice, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dateISO": dateISO,
		"tier":    result.Tier,
		"advice":  advice,
	})
}
