package model

import (
	"fmt"
	"strings"
)

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

// ListCacheKey builds the cache key for a catalog page. Every query
// parameter participates so distinct views never collide.
func ListCacheKey(category, query, sort string, page int) string {
	return fmt.Sprintf("books:list:%s:%s:%s:%d", category, strings.ToLower(query), sort, page)
}

// ListCachePattern matches every cached catalog page, for invalidation
// after a mutation.
const ListCachePattern = "books:list:*"
