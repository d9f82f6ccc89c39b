package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tendesign/api/internal/content"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Fetch order: explicit sort hint first, then creation time, then the
// position the document held in the submitted replacement set. Rows
// written by one replace share a creation timestamp, so position is the
// effective tie-break.
const fetchDocsQuery = `
	SELECT doc FROM content_items
	WHERE collection = $1
	ORDER BY sort_order ASC, created_at ASC, position ASC
`

func (s *PostgresStore) ListServiceCategories(ctx context.Context) ([]content.ServiceCategory, error) {
	return listCollection[content.ServiceCategory](ctx, s, content.KindServices)
}

func (s *PostgresStore) ListPortfolioProjects(ctx context.Context) ([]content.PortfolioProject, error) {
	return listCollection[content.PortfolioProject](ctx, s, content.KindPortfolio)
}

func (s *PostgresStore) ListDeveloperProjects(ctx context.Context) ([]content.DeveloperPortfolioProject, error) {
	return listCollection[content.DeveloperPortfolioProject](ctx, s, content.KindDeveloperPortfolio)
}

func (s *PostgresStore) ListSocialLinks(ctx context.Context) ([]content.SocialLink, error) {
	return listCollection[content.SocialLink](ctx, s, content.KindSocialLinks)
}

func (s *PostgresStore) ReplaceServiceCategories(ctx context.Context, items []content.ServiceCategory) ([]content.ServiceCategory, error) {
	return replaceCollection(ctx, s, content.KindServices, items, func(content.ServiceCategory) int { return 0 })
}

func (s *PostgresStore) ReplacePortfolioProjects(ctx context.Context, items []content.PortfolioProject) ([]content.PortfolioProject, error) {
	return replaceCollection(ctx, s, content.KindPortfolio, items, func(p content.PortfolioProject) int { return p.Order })
}

func (s *PostgresStore) ReplaceDeveloperProjects(ctx context.Context, items []content.DeveloperPortfolioProject) ([]content.DeveloperPortfolioProject, error) {
	return replaceCollection(ctx, s, content.KindDeveloperPortfolio, items, func(p content.DeveloperPortfolioProject) int { return p.Order })
}

func (s *PostgresStore) ReplaceSocialLinks(ctx context.Context, items []content.SocialLink) ([]content.SocialLink, error) {
	return replaceCollection(ctx, s, content.KindSocialLinks, items, func(l content.SocialLink) int { return l.Order })
}

// SeedEmptyCollections inserts the bundle's datasets into whichever
// collections currently hold no documents, all within one transaction.
// It returns the kinds that were populated.
func (s *PostgresStore) SeedEmptyCollections(ctx context.Context, bundle content.Bundle) ([]content.Kind, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var seeded []content.Kind
	seedOne := func(kind content.Kind, docs [][]byte, orders []int) error {
		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM content_items WHERE collection=$1`, string(kind),
		).Scan(&count); err != nil {
			return fmt.Errorf("count %s: %w", kind, err)
		}
		if count > 0 {
			return nil
		}
		if err := insertDocs(ctx, tx, kind, docs, orders); err != nil {
			return err
		}
		seeded = append(seeded, kind)
		return nil
	}

	servicesDocs, servicesOrders, err := marshalDocs(bundle.ServiceCategories, func(content.ServiceCategory) int { return 0 })
	if err != nil {
		return nil, err
	}
	portfolioDocs, portfolioOrders, err := marshalDocs(bundle.PortfolioProjects, func(p content.PortfolioProject) int { return p.Order })
	if err != nil {
		return nil, err
	}
	developerDocs, developerOrders, err := marshalDocs(bundle.DeveloperPortfolioProjects, func(p content.DeveloperPortfolioProject) int { return p.Order })
	if err != nil {
		return nil, err
	}
	linkDocs, linkOrders, err := marshalDocs(bundle.SocialLinks, func(l content.SocialLink) int { return l.Order })
	if err != nil {
		return nil, err
	}

	if err := seedOne(content.KindServices, servicesDocs, servicesOrders); err != nil {
		return nil, err
	}
	if err := seedOne(content.KindPortfolio, portfolioDocs, portfolioOrders); err != nil {
		return nil, err
	}
	if err := seedOne(content.KindDeveloperPortfolio, developerDocs, developerOrders); err != nil {
		return nil, err
	}
	if err := seedOne(content.KindSocialLinks, linkDocs, linkOrders); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed tx: %w", err)
	}
	return seeded, nil
}

func listCollection[T any](ctx context.Context, s *PostgresStore, kind content.Kind) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, fetchDocsQuery, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s doc: %w", kind, err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode %s doc: %w", kind, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", kind, err)
	}
	return items, nil
}

// replaceCollection deletes every document of the collection and inserts
// the replacement set in one transaction, so concurrent readers see either
// the old or the new collection, never the empty window in between. The
// returned slice is read back inside the transaction in fetch order.
func replaceCollection[T any](ctx context.Context, s *PostgresStore, kind content.Kind, items []T, orderOf func(T) int) ([]T, error) {
	docs, orders, err := marshalDocs(items, orderOf)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM content_items WHERE collection=$1`, string(kind)); err != nil {
		return nil, fmt.Errorf("clear %s: %w", kind, err)
	}
	if err := insertDocs(ctx, tx, kind, docs, orders); err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, fetchDocsQuery, string(kind))
	if err != nil {
		return nil, fmt.Errorf("read back %s: %w", kind, err)
	}
	persisted := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan %s doc: %w", kind, err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			rows.Close()
			return nil, fmt.Errorf("decode %s doc: %w", kind, err)
		}
		persisted = append(persisted, item)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate %s: %w", kind, err)
	}
	rows.Close()

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace tx: %w", err)
	}
	return persisted, nil
}

func insertDocs(ctx context.Context, tx *sql.Tx, kind content.Kind, docs [][]byte, orders []int) error {
	const insert = `
		INSERT INTO content_items (collection, position, sort_order, doc)
		VALUES ($1, $2, $3, $4)
	`
	for i, doc := range docs {
		if _, err := tx.ExecContext(ctx, insert, string(kind), i, orders[i], doc); err != nil {
			return fmt.Errorf("insert %s doc %d: %w", kind, i, err)
		}
	}
	return nil
}

func marshalDocs[T any](items []T, orderOf func(T) int) ([][]byte, []int, error) {
	docs := make([][]byte, len(items))
	orders := make([]int, len(items))
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, nil, fmt.Errorf("encode doc %d: %w", i, err)
		}
		docs[i] = raw
		orders[i] = orderOf(item)
	}
	return docs, orders, nil
}
