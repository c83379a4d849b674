package overlay

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var catalog = map[language.Tag][]*i18n.Message{
	language.English: {
		{ID: "keyboard", Other: "Keyboard"},
		{ID: "save", Other: "Save"},
		{ID: "fullscreen", Other: "Fullscreen"},
		{ID: "options", Other: "Options"},
		{ID: "layer", Other: "Layer: {{.Name}}"},
	},
	language.German: {
		{ID: "keyboard", Other: "Tastatur"},
		{ID: "save", Other: "Speichern"},
		{ID: "fullscreen", Other: "Vollbild"},
		{ID: "options", Other: "Optionen"},
		{ID: "layer", Other: "Ebene: {{.Name}}"},
	},
	language.Russian: {
		{ID: "keyboard", Other: "Клавиатура"},
		{ID: "save", Other: "Сохранить"},
		{ID: "fullscreen", Other: "Полный экран"},
		{ID: "options", Other: "Настройки"},
		{ID: "layer", Other: "Слой: {{.Name}}"},
	},
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	for tag, msgs := range catalog {
		if err := bundle.AddMessages(tag, msgs...); err != nil {
			Logger().Error("load messages", "lang", tag, "err", err)
		}
	}
	return bundle
}

// newLocalizer returns a localizer for the BCP 47 tags in langs, falling
// back to English.
func newLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(newBundle(), langs...)
}

// localize translates id, returning id itself when no message exists.
func localize(l *i18n.Localizer, id string, data map[string]any) string {
	if l == nil {
		return id
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		Logger().Debug("missing translation", "id", id, "err", err)
		return id
	}
	return msg
}
