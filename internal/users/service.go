package users

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"janoubco-monitor/internal/models"
)

var (
	ErrNotFound           = errors.New("المستخدم غير موجود")
	ErrUsernameExists     = errors.New("اسم المستخدم موجود بالفعل")
	ErrForbidden          = errors.New("لا يمكن تعديل صلاحيات مدير أساسي آخر")
	ErrSuperAdminDelete   = errors.New("لا يمكن حذف المدير الأساسي")
	ErrInvalidCredentials = errors.New("اسم المستخدم أو كلمة المرور غير صحيحة")
	ErrWrongPassword      = errors.New("كلمة المرور القديمة غير صحيحة")
	ErrInvalidRole        = errors.New("الدور غير صالح")
	ErrBadImage           = errors.New("خطأ في رفع الصورة")
)

// Service is the access control layer over the credential store: it owns
// authentication, the role rules around user mutation, and the avatar
// image lifecycle.
type Service struct {
	store      *Store
	avatarsDir string
	now        func() time.Time
}

func NewService(store *Store, avatarsDir string) (*Service, error) {
	if err := os.MkdirAll(avatarsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatars dir: %w", err)
	}
	return &Service{store: store, avatarsDir: avatarsDir, now: time.Now}, nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// findUser does a case-insensitive username lookup and returns the stored
// key alongside the record.
func findUser(users map[string]models.UserRecord, username string) (string, models.UserRecord, bool) {
	for stored, rec := range users {
		if strings.EqualFold(stored, username) {
			return stored, rec, true
		}
	}
	return "", models.UserRecord{}, false
}

// EnsureSuperAdmin seeds a super_admin account on first run. It is a no-op
// when any super_admin already exists or when no credentials are configured.
func (s *Service) EnsureSuperAdmin(username, password, name, email string) error {
	if username == "" || password == "" {
		return nil
	}
	return s.store.Update(func(users map[string]models.UserRecord) error {
		for _, rec := range users {
			if rec.Role == models.RoleSuperAdmin {
				return nil
			}
		}
		if name == "" {
			name = username
		}
		users[username] = models.UserRecord{
			Password:  hashPassword(password),
			Name:      name,
			Role:      models.RoleSuperAdmin,
			Email:     email,
			CreatedAt: s.now().Format(time.RFC3339),
		}
		log.Info().Str("username", username).Msg("created default super_admin user")
		return nil
	})
}

// Authenticate matches the username case-insensitively and compares password
// digests. Unknown username and wrong password produce the same error so the
// response does not leak which usernames exist.
func (s *Service) Authenticate(username, password string) (models.Profile, error) {
	users, err := s.store.Load()
	if err != nil {
		return models.Profile{}, err
	}

	digest := hashPassword(password)
	stored, rec, ok := findUser(users, username)
	if !ok {
		// burn the same comparison as the wrong-password path
		subtle.ConstantTimeCompare([]byte(digest), []byte(digest))
		return models.Profile{}, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(rec.Password), []byte(digest)) != 1 {
		return models.Profile{}, ErrInvalidCredentials
	}

	return models.Profile{
		Username: stored,
		Name:     rec.Name,
		Role:     rec.Role,
		Email:    rec.Email,
		Avatar:   rec.Avatar,
	}, nil
}

// AddUser creates an account. Only admin and viewer roles can be minted here;
// the minimum password length is the caller's responsibility.
func (s *Service) AddUser(username, password, name string, role models.Role, email string) error {
	if !role.Assignable() {
		return ErrInvalidRole
	}
	return s.store.Update(func(users map[string]models.UserRecord) error {
		if _, _, ok := findUser(users, username); ok {
			return ErrUsernameExists
		}
		users[username] = models.UserRecord{
			Password:  hashPassword(password),
			Name:      name,
			Role:      role,
			Email:     email,
			CreatedAt: s.now().Format(time.RFC3339),
		}
		return nil
	})
}

// Updates carries the mutable user fields. Nil pointers leave the stored
// value untouched; an empty Password also leaves the hash as is.
type Updates struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.Role
	Avatar   *string
}

// UpdateUser applies updates to the target account. A super_admin target may
// only have name, email, password and avatar changed; touching its role is
// rejected for every actor.
func (s *Service) UpdateUser(username string, actingRole models.Role, upd Updates) error {
	return s.store.Update(func(users map[string]models.UserRecord) error {
		stored, rec, ok := findUser(users, username)
		if !ok {
			return ErrNotFound
		}

		if upd.Role != nil && *upd.Role != rec.Role {
			if !upd.Role.Valid() {
				return ErrInvalidRole
			}
			if !actingRole.CanEditRole(rec.Role) {
				return ErrForbidden
			}
			rec.Role = *upd.Role
		}
		if upd.Name != nil {
			rec.Name = *upd.Name
		}
		if upd.Email != nil {
			rec.Email = *upd.Email
		}
		if upd.Password != nil && *upd.Password != "" {
			rec.Password = hashPassword(*upd.Password)
		}
		if upd.Avatar != nil {
			rec.Avatar = *upd.Avatar
		}

		users[stored] = rec
		return nil
	})
}

// DeleteUser removes an account and its avatar image together. super_admin
// accounts are never deletable through this path.
func (s *Service) DeleteUser(username string) error {
	return s.store.Update(func(users map[string]models.UserRecord) error {
		stored, rec, ok := findUser(users, username)
		if !ok {
			return ErrNotFound
		}
		if rec.Role == models.RoleSuperAdmin {
			return ErrSuperAdminDelete
		}
		if rec.Avatar != "" {
			if err := os.Remove(filepath.Join(s.avatarsDir, rec.Avatar)); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warn().Err(err).Str("username", stored).Msg("failed to remove avatar file")
			}
		}
		delete(users, stored)
		return nil
	})
}

// ChangePassword replaces the stored hash after verifying the old password
// with the same digest comparison authenticate uses.
func (s *Service) ChangePassword(username, oldPassword, newPassword string) error {
	return s.store.Update(func(users map[string]models.UserRecord) error {
		stored, rec, ok := findUser(users, username)
		if !ok {
			return ErrNotFound
		}
		if subtle.ConstantTimeCompare([]byte(rec.Password), []byte(hashPassword(oldPassword))) != 1 {
			return ErrWrongPassword
		}
		rec.Password = hashPassword(newPassword)
		users[stored] = rec
		return nil
	})
}

// ListUsers returns all accounts without their password hashes, ordered by
// username for a stable admin page.
func (s *Service) ListUsers() ([]models.UserSummary, error) {
	users, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	list := make([]models.UserSummary, 0, len(users))
	for username, rec := range users {
		list = append(list, models.UserSummary{
			Username:  username,
			Name:      rec.Name,
			Role:      rec.Role,
			Email:     rec.Email,
			CreatedAt: rec.CreatedAt,
			Avatar:    rec.Avatar,
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return list, nil
}

// GetUser returns the profile of one account.
func (s *Service) GetUser(username string) (models.Profile, error) {
	users, err := s.store.Load()
	if err != nil {
		return models.Profile{}, err
	}
	stored, rec, ok := findUser(users, username)
	if !ok {
		return models.Profile{}, ErrNotFound
	}
	return models.Profile{
		Username: stored,
		Name:     rec.Name,
		Role:     rec.Role,
		Email:    rec.Email,
		Avatar:   rec.Avatar,
	}, nil
}

// AvatarPath returns the on-disk path of the user's avatar, if one is set.
func (s *Service) AvatarPath(username string) (string, bool) {
	users, err := s.store.Load()
	if err != nil {
		return "", false
	}
	_, rec, ok := findUser(users, username)
	if !ok || rec.Avatar == "" {
		return "", false
	}
	return filepath.Join(s.avatarsDir, rec.Avatar), true
}
