package model

import (
	"encoding/json"
	"strings"

	"safaia-backend/internal/shared/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateBook checks the fields required on create. categories is the
// configured catalog taxonomy.
func ValidateBook(b *Book, categories []string) error {
	allowed := make([]interface{}, len(categories))
	for i, c := range categories {
		allowed[i] = c
	}

	err := validation.ValidateStruct(b,
		validation.Field(&b.Title, validation.Required.Error("title is required")),
		validation.Field(&b.Slug,
			validation.Required.Error("slug is required"),
			validation.By(checkSlug),
		),
		validation.Field(&b.Category,
			validation.Required.Error("category is required"),
			validation.In(allowed...).Error("category must be one of: "+strings.Join(categories, ", ")),
		),
		validation.Field(&b.Author, validation.By(checkAuthor)),
		validation.Field(&b.Reviews, validation.By(checkReviews)),
		validation.Field(&b.Binding, validation.By(checkBinding)),
		validation.Field(&b.PublishedDate,
			validation.Date(PublishedDateLayout).Error("publishedDate must be YYYY-MM-DD"),
		),
	)
	if err != nil {
		return NewValidationError("book validation failed", err)
	}
	return nil
}

func checkSlug(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !utils.IsValidSlug(s) {
		return ErrInvalidSlug
	}
	return nil
}

func checkAuthor(value interface{}) error {
	a, _ := value.(Author)
	if strings.TrimSpace(a.Name) == "" {
		return ErrAuthorNameRequired
	}
	return nil
}

func checkReviews(value interface{}) error {
	reviews, _ := value.([]Review)
	for _, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			return ErrInvalidRating
		}
	}
	return nil
}

func checkBinding(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !Binding(s).IsValid() {
		return ErrInvalidBinding
	}
	return nil
}

// Patch is a partial update: only the top-level keys present overwrite
// the stored record, and a nested object under a present key replaces
// the previous object wholesale (shallow merge).
type Patch map[string]json.RawMessage

// Slug returns the new slug carried by the patch, if any.
func (p Patch) Slug() (string, bool) {
	raw, ok := p["slug"]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Sanitize drops keys that must never change after creation.
func (p Patch) Sanitize() {
	delete(p, "id")
}

// Apply overlays the patch onto an existing book and decodes the merged
// document back into a Book. Building the result from the merged JSON
// map, rather than decoding into the existing struct, is what gives
// nested objects full-replace semantics.
func (p Patch) Apply(existing *Book) (*Book, error) {
	base, err := json.Marshal(existing)
	if err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, err
	}

	for key, raw := range p {
		doc[key] = raw
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var updated Book
	if err := json.Unmarshal(merged, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
