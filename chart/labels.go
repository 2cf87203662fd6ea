package chart

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/covid-charts/utils"
)

// Labels resolves the user visible texts of the charts for one language.
type Labels struct {
	localizer *i18n.Localizer
}

func NewLabels(lang string) Labels {
	return Labels{localizer: utils.NewLocalizer(lang)}
}

func (l Labels) Get(messageID string) string {
	if l.localizer == nil {
		l.localizer = utils.NewLocalizer("en")
	}
	return utils.Translate(l.localizer, messageID)
}
