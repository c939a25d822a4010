package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// Translator resolves message ids for a fixed list of preferred languages.
// Safe for concurrent use.
type Translator struct {
	localizer *goi18n.Localizer
	langs     []string
}

// NewTranslator creates a Translator. langs are tried in order and may be
// BCP 47 tags or Accept-Language values; the bundle default is the last resort.
func NewTranslator(b *Bundle, langs ...string) *Translator {
	if b == nil {
		panic("localization bundle is not provided")
	}
	return &Translator{
		localizer: goi18n.NewLocalizer(b.bundle, langs...),
		langs:     langs,
	}
}

// Default returns an English translator over the built-in messages.
func Default() *Translator {
	return NewTranslator(MustNew(), "en")
}

// T translates key. Placeholders fill {{.Name}} slots in the message.
// Unknown keys are returned unchanged.
func (t *Translator) T(key string, placeholders ...M) string {
	var data map[string]any
	if len(placeholders) > 0 {
		data = make(map[string]any)
		for _, p := range placeholders {
			for k, v := range p {
				data[k] = v
			}
		}
	}

	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return key
	}
	return msg
}

// Language returns the first preferred language, or "" when none was given.
func (t *Translator) Language() string {
	if len(t.langs) == 0 {
		return ""
	}
	return t.langs[0]
}
