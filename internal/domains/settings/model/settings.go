package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Settings is the singleton site-content record: the About page, the
// value statements, and the contact block.
type Settings struct {
	About   About   `json:"about"`
	Values  []Value `json:"values"`
	Contact Contact `json:"contact"`
}

type About struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mission string `json:"mission"`
}

type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Default returns the settings written on first read when no settings
// file exists yet. The site content is Polish.
func Default() Settings {
	return Settings{
		About: About{
			Title:   "O nas",
			Content: "Safaia Publishing House to wydawnictwo specjalizujące się w pięknych, starannie wyselekcjonowanych publikacjach o sztuce, modzie, fotografii i kulturze ludowej.",
			Mission: "Naszą misją jest odkrywanie i publikowanie klejnotów literatury faktu, które inspirują, edukują i zachwycają.",
		},
		Values: []Value{
			{Title: "Otwartość", Description: "Przyjmujemy różnorodność perspektyw i tematów", Icon: "🌍"},
			{Title: "Wiedza", Description: "Stawiamy na rzetelną, pogłębioną treść", Icon: "📚"},
			{Title: "Ciekawość", Description: "Inspirujemy do odkrywania nowych horyzontów", Icon: "🔍"},
			{Title: "Piękno", Description: "Dbamy o estetykę i jakość wykonania", Icon: "✨"},
		},
		Contact: Contact{
			Email:   "kontakt@safaia.pl",
			Phone:   "+48 123 456 789",
			Address: "ul. Przykładowa 1, 00-001 Warszawa",
		},
	}
}

// Validate checks a settings record before it is saved.
func (s Settings) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.About, validation.By(func(interface{}) error {
			return validation.ValidateStruct(&s.About,
				validation.Field(&s.About.Title, validation.Required.Error("about title is required")),
			)
		})),
		validation.Field(&s.Contact, validation.By(func(interface{}) error {
			return validation.ValidateStruct(&s.Contact,
				validation.Field(&s.Contact.Email, is.Email.Error("invalid contact email")),
			)
		})),
	)
	if err != nil {
		return NewValidationError("settings validation failed", err)
	}
	return nil
}
