package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/example/hostgen/internal/core/catalog"
	"github.com/example/hostgen/internal/core/hostname"
	"github.com/example/hostgen/internal/core/sequence"
	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/ports/primary"
	"github.com/example/hostgen/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
// Every operation loads the whole catalog, works on that copy and, when it
// changed something, saves the whole catalog back.
type CatalogServiceImpl struct {
	store secondary.CatalogStore
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(store secondary.CatalogStore) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		store: store,
	}
}

// CheckStore loads the store and discards the result.
func (s *CatalogServiceImpl) CheckStore(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

// AddCategoryEntry registers name->code in a category.
func (s *CatalogServiceImpl) AddCategoryEntry(ctx context.Context, req primary.AddCategoryEntryRequest) (*primary.CategoryEntry, error) {
	if err := validCategory(req.Category); err != nil {
		return nil, err
	}

	name := catalog.NormalizeName(req.Name)
	code := catalog.NormalizeCode(req.Category, req.Code)

	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	entries := c.Entries(req.Category)

	// Evaluate guard
	result := catalog.CanAddEntry(catalog.AddEntryContext{
		Category: req.Category,
		Name:     name,
		Code:     code,
		Existing: entries,
	})
	if err := result.Error(); err != nil {
		return nil, err
	}

	previous := entries[name]
	entries[name] = code

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save %s %q: %w", req.Category, name, err)
	}

	logging.FromContext(ctx).Debug().
		Str("category", string(req.Category)).
		Str("name", name).
		Str("code", code).
		Str("replaced", previous).
		Msg("Category entry registered")

	return &primary.CategoryEntry{
		Category: req.Category,
		Name:     name,
		Code:     code,
		Replaced: previous,
	}, nil
}

// ResolveCategory looks up a name in a category. An unknown name is reported
// through Resolution.Found, not as an error.
func (s *CatalogServiceImpl) ResolveCategory(ctx context.Context, category models.Category, name string) (*primary.Resolution, error) {
	if err := validCategory(category); err != nil {
		return nil, err
	}

	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	code, found := catalog.Resolve(c.Entries(category), name)
	return &primary.Resolution{
		Category: category,
		Name:     catalog.NormalizeName(name),
		Code:     code,
		Found:    found,
	}, nil
}

// ListCategory lists the entries of a category sorted by name.
func (s *CatalogServiceImpl) ListCategory(ctx context.Context, category models.Category) ([]*primary.CategoryEntry, error) {
	if err := validCategory(category); err != nil {
		return nil, err
	}

	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	entries := c.Entries(category)
	result := make([]*primary.CategoryEntry, 0, len(entries))
	for name, code := range entries {
		result = append(result, &primary.CategoryEntry{Category: category, Name: name, Code: code})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// GenerateHostname resolves the four category names, allocates a sequence
// number in the sector and persists the new hostname. Nothing is saved when
// a name does not resolve or the number is rejected.
func (s *CatalogServiceImpl) GenerateHostname(ctx context.Context, req primary.GenerateHostnameRequest) (*primary.GenerateHostnameResponse, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	codes, missing := catalog.ResolveAll(c, catalog.Names{
		Supplier: req.Supplier,
		Type:     req.Type,
		Sector:   req.Sector,
		Location: req.Location,
	})
	if missing != nil {
		return nil, hosterrors.NewNotFoundError(string(missing.Category), missing.Name)
	}

	sector, bucket, ok := findBucket(c.Machines, req.Sector)
	if !ok {
		sector = catalog.NormalizeName(req.Sector)
		bucket = map[string]string{}
		c.Machines[sector] = bucket
	}

	number, err := sequence.Allocate(sector, bucket, req.Number)
	if err != nil {
		return nil, err
	}

	host := hostname.Format(codes.Prefix(), number)
	bucket[sequence.Key(number)] = host

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save hostname %s: %w", host, err)
	}

	logging.FromContext(ctx).Debug().
		Str("sector", sector).
		Int("number", number).
		Str("hostname", host).
		Msg("Hostname generated")

	return &primary.GenerateHostnameResponse{
		Hostname: host,
		Sector:   sector,
		Number:   number,
	}, nil
}

// DeleteHostname removes the first registry entry whose hostname equals h
// exactly. Sectors and numbers are scanned in sorted order. When nothing
// matches the store is left untouched.
func (s *CatalogServiceImpl) DeleteHostname(ctx context.Context, h string) (*primary.DeleteHostnameResponse, error) {
	if strings.TrimSpace(h) == "" {
		return nil, hosterrors.NewInvalidInputError("hostname", h, "cannot be empty")
	}

	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, sector := range sortedKeys(c.Machines) {
		bucket := c.Machines[sector]
		for _, number := range sortedKeys(bucket) {
			if bucket[number] != h {
				continue
			}

			delete(bucket, number)
			if err := s.store.Save(ctx, c); err != nil {
				return nil, fmt.Errorf("failed to save after deleting %s: %w", h, err)
			}

			logging.FromContext(ctx).Debug().
				Str("sector", sector).
				Str("number", number).
				Str("hostname", h).
				Msg("Hostname deleted")

			return &primary.DeleteHostnameResponse{
				Hostname: h,
				Sector:   sector,
				Number:   number,
			}, nil
		}
	}

	return nil, hosterrors.NewNotFoundError("hostname", h)
}

// ListSectors summarizes every registry bucket, sorted by sector name.
func (s *CatalogServiceImpl) ListSectors(ctx context.Context) ([]*primary.SectorSummary, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*primary.SectorSummary, 0, len(c.Machines))
	for _, sector := range sortedKeys(c.Machines) {
		code, _ := catalog.Resolve(c.Sectors, sector)
		result = append(result, &primary.SectorSummary{
			Sector:   sector,
			Code:     code,
			Machines: len(c.Machines[sector]),
		})
	}
	return result, nil
}

// ListMachines lists the hostnames of a sector grouped by code prefix.
func (s *CatalogServiceImpl) ListMachines(ctx context.Context, sector string) ([]*primary.MachineGroup, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	_, bucket, ok := findBucket(c.Machines, sector)
	if !ok {
		return nil, hosterrors.NewNotFoundError(string(models.CategorySector), catalog.NormalizeName(sector))
	}

	hostnames := make([]string, 0, len(bucket))
	for _, h := range bucket {
		hostnames = append(hostnames, h)
	}

	groups := hostname.GroupByCodes(hostnames)
	result := make([]*primary.MachineGroup, len(groups))
	for i, g := range groups {
		result[i] = &primary.MachineGroup{Prefix: g.Codes, Hostnames: g.Hostnames}
	}
	return result, nil
}

// Snapshot returns the loaded catalog. The caller owns the returned value.
func (s *CatalogServiceImpl) Snapshot(ctx context.Context) (*models.Catalog, error) {
	return s.load(ctx)
}

// Helper methods

func (s *CatalogServiceImpl) load(ctx context.Context) (*models.Catalog, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Str("store", s.store.Location()).
			Msg("Failed to load catalog")
		return nil, err
	}
	c.Normalize()
	return c, nil
}

func validCategory(category models.Category) error {
	for _, c := range models.Categories {
		if c == category {
			return nil
		}
	}
	return hosterrors.NewInvalidInputError("category", string(category), "want supplier, type, sector or location")
}

// findBucket looks a sector bucket up by normalized key first, then
// case-insensitively. It returns the key the bucket is stored under.
func findBucket(machines map[string]map[string]string, sector string) (string, map[string]string, bool) {
	key := catalog.NormalizeName(sector)
	if bucket, ok := machines[key]; ok {
		return key, bucket, true
	}
	for _, k := range sortedKeys(machines) {
		if catalog.NormalizeName(k) == key {
			return k, machines[k], true
		}
	}
	return "", nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Ensure CatalogServiceImpl implements the interface
var _ primary.CatalogService = (*CatalogServiceImpl)(nil)
