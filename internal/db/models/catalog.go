package models

// Text is a slug keyed bilingual string managed from the admin panel.
type Text struct {
	ID       int64  `json:"id" pg:",pk"`
	Slug     string `json:"slug" pg:",notnull,unique"`
	Rus      string `json:"rus"`
	Heb      string `json:"heb"`
	Position int    `json:"position" pg:",use_zero"`
}

type Button struct {
	ID       int64  `json:"id" pg:",pk"`
	Slug     string `json:"slug" pg:",notnull,unique"`
	Rus      string `json:"rus"`
	Heb      string `json:"heb"`
	Position int    `json:"position" pg:",use_zero"`
}

type Occupation struct {
	ID       int64  `json:"id" pg:",pk"`
	Slug     string `json:"slug" pg:",notnull,unique"`
	Rus      string `json:"rus"`
	Heb      string `json:"heb"`
	Position int    `json:"position" pg:",use_zero"`
}

func (t *Text) In(lang Language) string {
	return localized(t.Rus, t.Heb, lang)
}

func (b *Button) In(lang Language) string {
	return localized(b.Rus, b.Heb, lang)
}

func (o *Occupation) In(lang Language) string {
	return localized(o.Rus, o.Heb, lang)
}

func localized(rus, heb string, lang Language) string {
	if lang == LanguageHebrew && heb != "" {
		return heb
	}
	return rus
}
