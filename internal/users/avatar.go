package users

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"janoubco-monitor/internal/models"
)

// avatarBound is the bounding box avatars are scaled down into,
// aspect ratio preserved.
const avatarBound = 300

// UploadAvatar decodes the uploaded image, downsizes it to fit 300×300 and
// stores it as a JPEG under a fresh username-scoped filename. The previous
// avatar file, if any, is removed in the same store update so the record and
// the file never disagree.
func (s *Service) UploadAvatar(username string, r io.Reader) error {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadImage, err)
	}
	thumb := imaging.Fit(img, avatarBound, avatarBound, imaging.Lanczos)

	return s.store.Update(func(users map[string]models.UserRecord) error {
		stored, rec, ok := findUser(users, username)
		if !ok {
			return ErrNotFound
		}

		// uuid suffix keeps same-second uploads from colliding
		filename := fmt.Sprintf("%s_%s_%s.jpg",
			strings.ToLower(stored),
			s.now().Format("20060102150405"),
			uuid.NewString()[:8])

		if err := imaging.Save(thumb, filepath.Join(s.avatarsDir, filename), imaging.JPEGQuality(85)); err != nil {
			return fmt.Errorf("%w: %v", ErrBadImage, err)
		}

		if rec.Avatar != "" {
			if err := os.Remove(filepath.Join(s.avatarsDir, rec.Avatar)); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warn().Err(err).Str("username", stored).Msg("failed to remove old avatar")
			}
		}

		rec.Avatar = filename
		users[stored] = rec
		return nil
	})
}
