package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Binding represents valid book bindings
type Binding string

const (
	BindingHardcover Binding = "Hardcover"
	BindingSoftcover Binding = "Softcover"
)

func (b Binding) IsValid() bool {
	switch b {
	case BindingHardcover, BindingSoftcover:
		return true
	}
	return false
}

func (b Binding) String() string {
	return string(b)
}

// PublishedDateLayout is the on-disk format of Book.PublishedDate.
const PublishedDateLayout = "2006-01-02"

// Author is the book's author record, owned exclusively by the Book.
type Author struct {
	Name  string `json:"name"`
	Bio   string `json:"bio,omitempty"`
	Photo string `json:"photo,omitempty"`
	Email string `json:"email,omitempty"`
}

// Review is a reader review, owned exclusively by the Book.
type Review struct {
	Author string `json:"author"`
	Rating int    `json:"rating"` // 1..5
	Text   string `json:"text"`
}

// Book is the catalog unit. The slug is the external lookup key and is
// unique across the whole collection; the numeric id is assigned once
// at creation and never changes.
type Book struct {
	// Identity
	ID   int    `json:"id"`
	Slug string `json:"slug"`

	// Descriptive
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags,omitempty"`
	Description     string   `json:"description,omitempty"`
	LongDescription string   `json:"longDescription,omitempty"`
	Excerpt         string   `json:"excerpt,omitempty"`
	TableOfContents []string `json:"tableOfContents,omitempty"`

	// Relational
	Author       Author   `json:"author"`
	Reviews      []Review `json:"reviews,omitempty"`
	RelatedBooks []int    `json:"relatedBooks,omitempty"` // weak references, lookup only

	// Commercial & physical
	Price        decimal.Decimal `json:"price"`
	ISBN         string          `json:"isbn,omitempty"`
	Pages        int             `json:"pages,omitempty"`
	Year         int             `json:"year,omitempty"`
	Dimensions   string          `json:"dimensions,omitempty"`
	Binding      string          `json:"binding,omitempty"`
	Weight       string          `json:"weight,omitempty"`
	Language     string          `json:"language,omitempty"`
	CoverImage   string          `json:"coverImage,omitempty"`
	Gallery      []string        `json:"gallery,omitempty"`
	PurchaseLink string          `json:"purchaseLink,omitempty"`

	// Classification flags, independent and not mutually exclusive
	Featured    bool `json:"featured"`
	NewRelease  bool `json:"newRelease"`
	Recommended bool `json:"recommended"`

	// Temporal
	PublishedDate string `json:"publishedDate"`
}

// PublishedAt parses the published date. A malformed or empty date
// yields the zero time, which sorts last under "newest".
func (b *Book) PublishedAt() time.Time {
	t, err := time.Parse(PublishedDateLayout, b.PublishedDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// MatchesQuery reports whether the lower-cased query is a substring of
// the title, the author name, or any tag (all compared lower-cased).
func (b *Book) MatchesQuery(lowerQuery string) bool {
	if containsFold(b.Title, lowerQuery) || containsFold(b.Author.Name, lowerQuery) {
		return true
	}
	for _, tag := range b.Tags {
		if containsFold(tag, lowerQuery) {
			return true
		}
	}
	return false
}

// Featured / NewReleases / Recommended shelves over an already-loaded
// collection.

func FilterFeatured(books []Book) []Book {
	return filterFlag(books, func(b Book) bool { return b.Featured })
}

func FilterNewReleases(books []Book) []Book {
	return filterFlag(books, func(b Book) bool { return b.NewRelease })
}

func FilterRecommended(books []Book) []Book {
	return filterFlag(books, func(b Book) bool { return b.Recommended })
}

func filterFlag(books []Book, keep func(Book) bool) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
