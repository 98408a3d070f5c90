package domain

import "time"

// Company is a tenant of the platform: one freelancer or band office.
type Company struct {
	ID            string    `firestore:"-"`
	Name          string    `firestore:"name" validate:"required"`
	Country       string    `firestore:"country" validate:"required,iso3166_1_alpha2"`
	BaseCurrency  string    `firestore:"baseCurrency" validate:"required"`
	VatRegistered bool      `firestore:"vatRegistered"`
	VatNumber     string    `firestore:"vatNumber"`
	Tier          string    `firestore:"tier"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
}

// GigType classifies a booking (concert, studio session, lesson, ...) and
// carries the VAT rate applied to fees of that type.
type GigType struct {
	ID string `firestore:"-"`
	// Names maps a locale code ("en", "sv") to the display name shown on
	// invoice lines.
	Names   map[string]string `firestore:"names"`
	VatRate float64           `firestore:"vatRate"`
	Sort    int               `firestore:"sort"`
}

// Name returns the display name for a locale, falling back to English,
// then to any available locale.
func (g *GigType) Name(locale string) string {
	if name, ok := g.Names[locale]; ok {
		return name
	}

	if name, ok := g.Names["en"]; ok {
		return name
	}

	for _, name := range g.Names {
		return name
	}

	return ""
}
