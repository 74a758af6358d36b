package catalog

import (
	"context"

	"go.uber.org/zap"

	catalogRepo "caterly/database/repository/catalog"
	"caterly/models"
	"caterly/utils"
)

// PackageMenu is the normalized package view served to the package-detail
// screen: items grouped per category with their pick limits, plus a warning
// when a FIXED_WITH_LIMITS package has no limits configured yet.
type PackageMenu struct {
	Package *models.Package `json:"package"`
	Groups  []CategoryGroup `json:"groups"`
	Warning string          `json:"warning,omitempty"`
}

// CatalogService is the catalog boundary the rest of the engine consumes.
type CatalogService interface {
	GetPackage(ctx context.Context, packageID string) (*models.Package, error)
	GetCatererPackages(ctx context.Context, catererID string) ([]models.Package, error)
	GetPackageMenu(ctx context.Context, packageID string) (*PackageMenu, error)
	IngestPackages(ctx context.Context, payload []byte) ([]models.Package, error)
	DeletePackage(ctx context.Context, packageID string) error
}

// DefaultCatalogService implements CatalogService on the Mongo-backed repo.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) GetPackage(ctx context.Context, packageID string) (*models.Package, error) {
	return s.Repo.GetPackageByID(ctx, packageID)
}

func (s *DefaultCatalogService) GetCatererPackages(ctx context.Context, catererID string) ([]models.Package, error) {
	return s.Repo.GetPackagesByCaterer(ctx, catererID)
}

func (s *DefaultCatalogService) GetPackageMenu(ctx context.Context, packageID string) (*PackageMenu, error) {
	pkg, err := s.Repo.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	menu := &PackageMenu{
		Package: pkg,
		Groups:  GroupItemsByCategory(pkg),
	}
	if LimitsUnconfigured(pkg) {
		// Data-entry gap: the caterer marked the package limited but never
		// configured any limits. Degrade to unrestricted selection.
		utils.GetLogger().Warn("package has FIXED_WITH_LIMITS policy but no category selections",
			zap.String("packageID", pkg.ID))
		menu.Warning = "selection limits are not configured for this package; all selections allowed"
	}
	return menu, nil
}

// IngestPackages normalizes and stores a caterer-tooling payload. This is the
// single point where loose payload shapes and policy spellings are accepted.
func (s *DefaultCatalogService) IngestPackages(ctx context.Context, payload []byte) ([]models.Package, error) {
	pkgs, err := NormalizePackages(payload)
	if err != nil {
		return nil, err
	}

	stored := make([]models.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		saved, err := s.Repo.UpsertPackage(ctx, pkg)
		if err != nil {
			return nil, err
		}
		stored = append(stored, *saved)
	}
	return stored, nil
}

func (s *DefaultCatalogService) DeletePackage(ctx context.Context, packageID string) error {
	return s.Repo.DeletePackage(ctx, packageID)
}
