package property

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/storage"
)

// MaxImageSize is the largest listing photo accepted.
const MaxImageSize = 5 << 20

// Service defines business logic for property listings.
type Service interface {
	List(ctx context.Context, filter Filter) ([]*Property, error)
	GetByID(ctx context.Context, id int64) (*Property, error)
	// Locations lists the distinct locations of bookable properties in id order.
	Locations(ctx context.Context) ([]string, error)
	// SetBulkBookingEnabled toggles bulk booking. A non-empty hostID must own the property.
	SetBulkBookingEnabled(ctx context.Context, id int64, enabled bool, hostID string) (*Property, error)
	UploadImage(ctx context.Context, id int64, hostID, filename string, content io.Reader) (*Property, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	images  *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage, images *storage.ImageProcessor) Service {
	return &service{
		repo:    repo,
		storage: store,
		images:  images,
	}
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Property, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Property, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Locations(ctx context.Context) ([]string, error) {
	props, err := s.repo.List(ctx, Filter{BulkOnly: true})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var locations []string
	for _, p := range props {
		if !seen[p.Location] {
			seen[p.Location] = true
			locations = append(locations, p.Location)
		}
	}
	return locations, nil
}

func (s *service) authorize(ctx context.Context, id int64, hostID string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if hostID != "" && p.HostID != hostID {
		return ErrPermissionDenied
	}
	return nil
}

func (s *service) SetBulkBookingEnabled(ctx context.Context, id int64, enabled bool, hostID string) (*Property, error) {
	if err := s.authorize(ctx, id, hostID); err != nil {
		return nil, err
	}
	return s.repo.UpdateBulkBooking(ctx, id, enabled)
}

func (s *service) UploadImage(ctx context.Context, id int64, hostID, filename string, content io.Reader) (*Property, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return nil, ErrInvalidImage
	}
	if err := s.authorize(ctx, id, hostID); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(content, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	thumb, err := s.images.Thumbnail(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImage
	}

	name := uuid.NewString()
	dir := fmt.Sprintf("properties/%d", id)
	originalPath := path.Join(dir, name+ext)
	thumbPath := path.Join(dir, name+"_thumb.jpg")

	if err := s.storage.Save(ctx, originalPath, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	if err := s.storage.Save(ctx, thumbPath, thumb); err != nil {
		_ = s.storage.Delete(ctx, originalPath)
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}

	return s.repo.UpdateImage(ctx, id, s.storage.URL(originalPath), s.storage.URL(thumbPath))
}
