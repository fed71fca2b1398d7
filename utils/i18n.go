package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

var bundle *i18n.Bundle

// InitI18NBundle loads the message catalogs. The directory defaults to
// ./i18n and can be pointed elsewhere for tests via TEST_I18N_DIR.
func InitI18NBundle() error {
	dir := os.Getenv("TEST_I18N_DIR")
	if dir == "" {
		dir = "i18n"
	}

	bundle = i18n.NewBundle(language.English)

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no message catalogs under %s", dir)
	}

	for _, f := range files {
		if _, err := bundle.LoadMessageFile(f); err != nil {
			log.WithError(err).WithField("file", f).Error("load message catalog")
			return err
		}
	}
	return nil
}

// NewLocalizer returns a localizer for the given language tag, falling back
// to English for anything unrecognized.
func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		bundle = i18n.NewBundle(language.English)
	}
	if lang == "" {
		lang = "en"
	}
	return i18n.NewLocalizer(bundle, lang, "en")
}
