package service

import (
	"context"
	"time"

	"safaia-backend/internal/domains/book/model"
	"safaia-backend/internal/domains/book/query"
	"safaia-backend/internal/domains/book/repository"
	"safaia-backend/pkg/cache"
	"safaia-backend/pkg/logger"
)

const (
	listCacheTTL = 10 * time.Minute

	// relatedLimit caps how many related titles a detail view resolves.
	relatedLimit = 3
)

// BookService implements ServiceInterface on top of the flat-file
// repository and the query engine.
type BookService struct {
	repo       repository.RepositoryInterface
	engine     *query.Engine
	cache      cache.Cache
	categories []string
}

// NewService wires the book service.
func NewService(
	repo repository.RepositoryInterface,
	engine *query.Engine,
	c cache.Cache,
	categories []string,
) ServiceInterface {
	return &BookService{
		repo:       repo,
		engine:     engine,
		cache:      c,
		categories: categories,
	}
}

// ListCatalog runs the filter/sort/paginate pipeline over the full
// collection. Pages are cached per (category, query, sort, page) tuple
// and invalidated on every mutation.
func (s *BookService) ListCatalog(ctx context.Context, params query.Params) (*query.Result, error) {
	cacheKey := model.ListCacheKey(params.Category, params.Query, params.Sort, params.Page)

	var cached query.Result
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("catalog cache get", err)
	}
	if found {
		return &cached, nil
	}

	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := s.engine.Run(books, params)

	if err := s.cache.Set(ctx, cacheKey, result, listCacheTTL); err != nil {
		logger.Warn("catalog cache set", err)
	}

	return &result, nil
}

// GetBySlug returns a single book with up to three related titles
// resolved. Dangling related ids are skipped silently.
func (s *BookService) GetBySlug(ctx context.Context, slug string) (*BookDetail, error) {
	book, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	detail := &BookDetail{Book: *book}
	if len(book.RelatedBooks) == 0 {
		return detail, nil
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		// The main record already loaded; related titles are a
		// display nicety, not part of the read contract.
		logger.Warn("resolve related books", err)
		return detail, nil
	}

	byID := make(map[int]model.Book, len(all))
	for _, b := range all {
		byID[b.ID] = b
	}

	for _, id := range book.RelatedBooks {
		if related, ok := byID[id]; ok {
			detail.Related = append(detail.Related, related)
			if len(detail.Related) == relatedLimit {
				break
			}
		}
	}

	return detail, nil
}

func (s *BookService) Featured(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.FilterFeatured(books), nil
}

func (s *BookService) NewReleases(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.FilterNewReleases(books), nil
}

func (s *BookService) Recommended(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.FilterRecommended(books), nil
}

func (s *BookService) Categories() []string {
	return s.engine.Categories()
}

func (s *BookService) ListAll(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListAll(ctx)
}

// Create validates required fields, then appends the record. The
// caller supplies both id and slug; nothing is generated server-side.
func (s *BookService) Create(ctx context.Context, book model.Book) (*model.Book, error) {
	if err := model.ValidateBook(&book, s.categories); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return created, nil
}

func (s *BookService) Update(ctx context.Context, slug string, patch model.Patch) (*model.Book, error) {
	updated, err := s.repo.Update(ctx, slug, patch)
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, slug string) error {
	if err := s.repo.Delete(ctx, slug); err != nil {
		return err
	}

	s.invalidateCatalog(ctx)
	return nil
}

func (s *BookService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, model.ListCachePattern); err != nil {
		logger.Warn("catalog cache invalidation", err)
	}
}
