package property

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/bulkstay-backend/internal/mockstore"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/storage"
)

func newTestService(t *testing.T) (Service, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, "/files")
	require.NoError(t, err)
	repo := NewMemoryRepository(mockstore.None(), Seed())
	return NewService(repo, store, storage.NewImageProcessor(64, 64)), dir
}

func ids(props []*Property) []int64 {
	out := make([]int64, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func TestListFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{"all", Filter{}, []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"by host", Filter{HostID: "3"}, []int64{7, 8}},
		{"bulk only", Filter{BulkOnly: true}, []int64{1, 2, 3, 5, 6, 7, 8}},
		{"location", Filter{Location: "Kochi, Kerala"}, []int64{4}},
		{"luxury bulk", Filter{PriceRange: PriceLuxury, BulkOnly: true}, []int64{1, 2, 3, 5, 6, 7, 8}},
		{"budget", Filter{PriceRange: PriceBudget}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(props))
		})
	}
}

func TestPriceRange(t *testing.T) {
	assert.True(t, PriceBudget.Contains(3000))
	assert.False(t, PriceBudget.Contains(3001))
	assert.True(t, PriceMid.Contains(3001))
	assert.True(t, PriceMid.Contains(6000))
	assert.False(t, PriceMid.Contains(6001))
	assert.True(t, PriceLuxury.Contains(6001))
	assert.True(t, PriceAll.Contains(1))

	r, err := ParsePriceRange("all")
	require.NoError(t, err)
	assert.Equal(t, PriceAll, r)
	_, err = ParsePriceRange("cheap")
	assert.ErrorIs(t, err, ErrInvalidPriceRange)
}

func TestLocationsSkipDisabledListings(t *testing.T) {
	svc, _ := newTestService(t)

	locs, err := svc.Locations(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, locs, "Kochi, Kerala")
	assert.Equal(t, "Goa, India", locs[0])
	assert.Len(t, locs, 7)
}

func TestSetBulkBookingEnabled(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.SetBulkBookingEnabled(ctx, 4, true, "2")
	require.NoError(t, err)
	assert.True(t, p.BulkBookingEnabled)

	got, err := svc.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.True(t, got.BulkBookingEnabled)

	_, err = svc.SetBulkBookingEnabled(ctx, 4, false, "3")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.SetBulkBookingEnabled(ctx, 42, true, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadImage(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	p, err := svc.UploadImage(ctx, 1, "2", "villa.png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.ImageURL, "/files/properties/1/"))
	assert.True(t, strings.HasSuffix(p.ThumbnailURL, "_thumb.jpg"))

	thumb := strings.TrimPrefix(p.ThumbnailURL, "/files/")
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(thumb)))
	assert.NoError(t, err)
}

func TestUploadImageRejects(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, 1, "2", "notes.txt", strings.NewReader("hello"))
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.UploadImage(ctx, 1, "2", "broken.png", strings.NewReader("not a png"))
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.UploadImage(ctx, 1, "3", "villa.png", bytes.NewReader(pngBytes(t)))
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
