package utils

import (
	"embed"
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed i18n/*.yaml
var messageFiles embed.FS

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

var messageFileNames = []string{"en.yaml", "zh_tw.yaml"}

// InitI18NBundle loads the embedded message files. When `i18n.dir` is set the
// files found there are loaded on top of them.
func InitI18NBundle() {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

		for _, name := range messageFileNames {
			buf, err := messageFiles.ReadFile(path.Join("i18n", name))
			if err != nil {
				panic(err)
			}
			bundle.MustParseMessageFileBytes(buf, name)
		}

		if dir := viper.GetString("i18n.dir"); dir != "" {
			for _, name := range messageFileNames {
				bundle.MustLoadMessageFile(path.Join(dir, name))
			}
		}
	})
}

func NewLocalizer(lang string) *i18n.Localizer {
	InitI18NBundle()
	return i18n.NewLocalizer(bundle, lang)
}

// DocumentLanguage reduces a language preference, which may be a raw
// Accept-Language header, to the single tag an html lang attribute takes.
func DocumentLanguage(pref string) string {
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return language.English.String()
	}
	return tags[0].String()
}

// Translate resolves a message id, falling back to the id itself.
func Translate(localizer *i18n.Localizer, messageID string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
