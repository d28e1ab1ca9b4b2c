package users

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"janoubco-monitor/internal/models"
)

func testImage(t *testing.T, w, h int) io.Reader {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestUploadAvatar_ResizesToBound(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.AddUser("sara", "Secret123", "سارة", models.RoleViewer, ""))

	require.NoError(t, svc.UploadAvatar("sara", testImage(t, 600, 400)))

	path, ok := svc.AvatarPath("sara")
	require.True(t, ok)
	require.True(t, strings.HasSuffix(path, ".jpg"))

	saved, err := imaging.Open(path)
	require.NoError(t, err)
	bounds := saved.Bounds()
	require.LessOrEqual(t, bounds.Dx(), 300)
	require.LessOrEqual(t, bounds.Dy(), 300)
	// aspect ratio preserved: 600x400 fits as 300x200
	require.Equal(t, 300, bounds.Dx())
	require.Equal(t, 200, bounds.Dy())
}

func TestUploadAvatar_ReplacesPreviousFile(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.AddUser("sara", "Secret123", "سارة", models.RoleViewer, ""))

	require.NoError(t, svc.UploadAvatar("sara", testImage(t, 100, 100)))
	firstPath, ok := svc.AvatarPath("sara")
	require.True(t, ok)

	require.NoError(t, svc.UploadAvatar("sara", testImage(t, 120, 120)))
	secondPath, ok := svc.AvatarPath("sara")
	require.True(t, ok)
	require.NotEqual(t, firstPath, secondPath, "uploads must never collide on filename")

	_, err := os.Stat(firstPath)
	require.ErrorIs(t, err, os.ErrNotExist, "old avatar file removed")
	_, err = os.Stat(secondPath)
	require.NoError(t, err)
}

func TestUploadAvatar_CorruptImage(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.AddUser("sara", "Secret123", "سارة", models.RoleViewer, ""))

	err := svc.UploadAvatar("sara", strings.NewReader("not an image at all"))
	require.ErrorIs(t, err, ErrBadImage)

	_, ok := svc.AvatarPath("sara")
	require.False(t, ok, "record must stay avatar-less after a failed upload")
}

func TestUploadAvatar_UnknownUser(t *testing.T) {
	svc := newTestService(t)
	require.ErrorIs(t, svc.UploadAvatar("ghost", testImage(t, 50, 50)), ErrNotFound)
}

func TestAvatarPath_NoAvatar(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.AddUser("sara", "Secret123", "سارة", models.RoleViewer, ""))

	_, ok := svc.AvatarPath("sara")
	require.False(t, ok)
	_, ok = svc.AvatarPath("ghost")
	require.False(t, ok)
}
