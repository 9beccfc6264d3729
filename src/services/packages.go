package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"odyssey/src/common"
	"odyssey/src/models"
	"odyssey/src/types"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type PackageService struct {
	packages PackageStore
	users    UserStore
	media    MediaUploader
}

func NewPackageService(packages PackageStore, users UserStore, media MediaUploader) *PackageService {
	return &PackageService{
		packages: packages,
		users:    users,
		media:    media,
	}
}

// Submit uploads the image to the media host, then persists the package
// in PENDING with the returned URL. If persistence fails after the
// upload succeeded the asset stays orphaned on the host.
func (s *PackageService) Submit(ctx context.Context, body types.CreatePackageRequestBody, image io.Reader, contentType string) (*models.TravelPackage, error) {
	agent, err := s.users.FindByID(body.AgentID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("packages/%s-%s", slug.Make(body.Title), uuid.NewString())
	imageURL, err := s.media.Upload(ctx, key, contentType, image)
	if err != nil {
		return nil, err
	}

	pkg := models.TravelPackage{
		Title:        body.Title,
		Description:  body.Description,
		Destination:  body.Destination,
		Price:        body.Price,
		Duration:     body.Duration,
		MaxTravelers: body.MaxTravelers,
		Status:       types.PACKAGE_PENDING,
		ImageURL:     imageURL,
		AgentID:      agent.ID,
	}
	if err := s.packages.Create(&pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// UpdateStatus overwrites the package status with no prior-state
// validation: a REJECTED package can be re-APPROVED.
func (s *PackageService) UpdateStatus(id uint, statusParam string) (types.PackageStatus, error) {
	status, err := types.ParsePackageStatus(statusParam)
	if err != nil {
		return "", common.BadRequestf("%s", err.Error())
	}
	pkg, err := s.packages.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.NotFoundf("Package not found")
		}
		return "", err
	}
	pkg.Status = status
	if err := s.packages.Save(pkg); err != nil {
		return "", err
	}
	return status, nil
}

func (s *PackageService) FindByID(id uint) (*models.TravelPackage, error) {
	pkg, err := s.packages.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("Package not found")
		}
		return nil, err
	}
	return pkg, nil
}

func (s *PackageService) ByAgent(agentID uint) ([]models.TravelPackage, error) {
	return s.packages.FindByAgent(agentID)
}

// ApprovedActive is the public catalog: APPROVED packages whose owning
// agent is active.
func (s *PackageService) ApprovedActive() ([]models.TravelPackage, error) {
	return s.packages.FindApprovedByActiveAgents()
}

// Pending is the admin review queue.
func (s *PackageService) Pending() ([]models.TravelPackage, error) {
	return s.packages.FindByStatus(types.PACKAGE_PENDING)
}
