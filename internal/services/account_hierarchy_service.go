package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"

	"github.com/patrickmn/go-cache"
)

const (
	DefaultHierarchyCacheTTL = 30 * time.Second
	HierarchyCacheCleanup    = 5 * time.Minute

	treeCacheKey           = "hierarchy:tree"
	filteredCacheKeyPrefix = "hierarchy:filtered:"
)

var (
	ErrUserAccountNotFound = errors.New("user account not found")
	ErrNoRecordsToImport   = errors.New("no records to import")
	ErrTooManyRecords      = errors.New("too many records in one import")
)

// HierarchyConfig tunes the hierarchy service
type HierarchyConfig struct {
	DefaultPageSize  int
	MaxPageSize      int
	CacheTTL         time.Duration
	MaxImportRecords int
}

// AccountHierarchyService runs the build, filter, count and paginate pipeline over the stored
// flat rows. Built trees and filtered views are memoised in reportCache until the dataset
// changes through this service or the TTL runs out.
type AccountHierarchyService struct {
	repo        repositories.AccountRecordRepositoryInterface
	reportCache *cache.Cache
	metrics     MetricsRecorderInterface
	logger      ActionLoggerInterface
	config      HierarchyConfig
	generation  atomic.Uint64
}

// NewAccountHierarchyService creates a new account hierarchy service
func NewAccountHierarchyService(
	repo repositories.AccountRecordRepositoryInterface,
	reportCache *cache.Cache,
	metrics MetricsRecorderInterface,
	logger ActionLoggerInterface,
	cfg HierarchyConfig,
) AccountHierarchyServiceInterface {
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = DefaultPageSize
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultHierarchyCacheTTL
	}
	if reportCache == nil {
		reportCache = cache.New(cfg.CacheTTL, HierarchyCacheCleanup)
	}

	return &AccountHierarchyService{
		repo:        repo,
		reportCache: reportCache,
		metrics:     metrics,
		logger:      logger,
		config:      cfg,
	}
}

type cachedTree struct {
	generation uint64
	users      []models.UserAccount
}

// tree returns the built hierarchy of the whole dataset
func (s *AccountHierarchyService) tree(ctx context.Context) ([]models.UserAccount, uint64, error) {
	gen := s.generation.Load()

	if cached, found := s.reportCache.Get(treeCacheKey); found {
		if t, ok := cached.(*cachedTree); ok && t.generation == gen {
			s.cacheEvent("tree", "hit")
			return t.users, gen, nil
		}
	}
	s.cacheEvent("tree", "miss")

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, gen, fmt.Errorf("failed to load account records: %w", err)
	}

	users := BuildHierarchy(records)

	// a concurrent invalidation makes this tree stale; serve it but do not memoise it
	if s.generation.Load() == gen {
		s.reportCache.Set(treeCacheKey, &cachedTree{generation: gen, users: users}, s.config.CacheTTL)
	}

	return users, gen, nil
}

// filtered returns the filtered view of tree
func (s *AccountHierarchyService) filtered(tree []models.UserAccount, gen uint64, params models.FilterParams) []models.UserAccount {
	if params.IsDefault() {
		return tree
	}

	key := filteredCacheKeyPrefix + params.Key()
	if cached, found := s.reportCache.Get(key); found {
		if t, ok := cached.(*cachedTree); ok && t.generation == gen {
			s.cacheEvent("filter", "hit")
			return t.users
		}
	}
	s.cacheEvent("filter", "miss")

	users := FilterHierarchy(tree, params)
	if s.generation.Load() == gen {
		s.reportCache.Set(key, &cachedTree{generation: gen, users: users}, s.config.CacheTTL)
	}

	return users
}

func (s *AccountHierarchyService) cacheEvent(stage, result string) {
	s.metrics.IncrementCounter("hierarchy_cache", map[string]string{
		"stage":  stage,
		"result": result,
	})
}

// resolvePageSize applies the default page size and the upper bound
func (s *AccountHierarchyService) resolvePageSize(pageSize int) int {
	if pageSize < 1 {
		return s.config.DefaultPageSize
	}
	if pageSize > s.config.MaxPageSize {
		return s.config.MaxPageSize
	}
	return pageSize
}

// GetHierarchyPage returns one page of the filtered hierarchy
func (s *AccountHierarchyService) GetHierarchyPage(ctx context.Context, query models.AccountHierarchyQuery) (*models.AccountHierarchyPage, error) {
	start := time.Now()
	params := query.Filters.Normalized()
	pageSize := s.resolvePageSize(query.PageSize)

	tree, gen, err := s.tree(ctx)
	if err != nil {
		s.metrics.IncrementCounter("hierarchy_request", map[string]string{"status": "failed"})
		return nil, err
	}

	view := s.filtered(tree, gen, params)

	state := models.ViewState{FilterKey: query.FilterKey, Page: query.Page}
	if state.FilterKey == "" {
		state.FilterKey = params.Key()
	}
	reset := state.ApplyFilters(params)

	totalPages := TotalPages(len(view), pageSize)
	state.SetPage(state.Page, totalPages)

	totals := CountTotals(tree)
	page := &models.AccountHierarchyPage{
		Users:       Paginate(view, state.Page, pageSize),
		Filters:     params,
		FilterKey:   state.FilterKey,
		Page:        state.Page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  len(view),
		PageNumbers: PageNumbers(state.Page, totalPages),
		PageReset:   reset,
		Overview: models.AccountsOverview{
			Total:    totals,
			Filtered: CountTotals(view),
		},
	}

	s.recordSize(totals)
	s.metrics.RecordProcessingTime("hierarchy_pipeline", time.Since(start))
	s.metrics.IncrementCounter("hierarchy_request", map[string]string{"status": "success"})

	return page, nil
}

func (s *AccountHierarchyService) recordSize(totals models.AccountsCount) {
	s.metrics.RecordGauge("hierarchy_size", float64(totals.TotalUsers), map[string]string{"level": "users"})
	s.metrics.RecordGauge("hierarchy_size", float64(totals.TotalCSP), map[string]string{"level": "csp"})
	s.metrics.RecordGauge("hierarchy_size", float64(totals.TotalTrading), map[string]string{"level": "trading"})
}

// GetCounts returns the stats card totals for the whole dataset and for the filtered view
func (s *AccountHierarchyService) GetCounts(ctx context.Context, params models.FilterParams) (*models.AccountsOverview, error) {
	params = params.Normalized()

	tree, gen, err := s.tree(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AccountsOverview{
		Total:    CountTotals(tree),
		Filtered: CountTotals(s.filtered(tree, gen, params)),
	}, nil
}

// GetUser returns the subtree of one user, built from that user's rows only
func (s *AccountHierarchyService) GetUser(ctx context.Context, userID string) (*models.UserAccount, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserAccountNotFound
	}

	records, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	users := BuildHierarchy(records)
	if len(users) == 0 {
		return nil, ErrUserAccountNotFound
	}

	return &users[0], nil
}

// ImportRecords stores flat rows from the account feed. Rows that will not show in the
// hierarchy are stored as well and reported in the result.
func (s *AccountHierarchyService) ImportRecords(ctx context.Context, records []models.FlatAccountRecord) (*models.ImportResult, error) {
	if len(records) == 0 {
		return nil, ErrNoRecordsToImport
	}
	if s.config.MaxImportRecords > 0 && len(records) > s.config.MaxImportRecords {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyRecords, len(records), s.config.MaxImportRecords)
	}

	hidden := 0
	for i := range records {
		records[i].ID = 0
		if !IsHierarchyEligible(&records[i]) {
			hidden++
		}
	}

	if err := s.repo.CreateBatch(ctx, records); err != nil {
		return nil, err
	}

	s.invalidate(ctx, "import")
	s.metrics.RecordGauge("records_imported", float64(len(records)), nil)
	s.logger.LogRecordsImported(ctx, len(records), hidden)

	return &models.ImportResult{
		Received: len(records),
		Stored:   len(records),
		Hidden:   hidden,
	}, nil
}

// Invalidate drops every memoised tree
func (s *AccountHierarchyService) Invalidate() {
	s.invalidate(context.Background(), "external")
}

func (s *AccountHierarchyService) invalidate(ctx context.Context, reason string) {
	s.generation.Add(1)
	s.reportCache.Flush()
	s.logger.LogHierarchyInvalidated(ctx, reason)
}
