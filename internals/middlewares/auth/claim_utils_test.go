// internals/middlewares/auth/claim_utils_test.go
package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE users (
		user_id TEXT PRIMARY KEY,
		user_is_active BOOLEAN NOT NULL DEFAULT 1,
		user_deleted_at DATETIME
	)`).Error)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id uuid.UUID, active bool, deleted bool) {
	t.Helper()
	var deletedAt any
	if deleted {
		deletedAt = time.Now()
	}
	require.NoError(t, db.Exec(
		`INSERT INTO users (user_id, user_is_active, user_deleted_at) VALUES (?, ?, ?)`,
		id.String(), active, deletedAt,
	).Error)
}

func TestEnsureUserActive(t *testing.T) {
	db := openUsersTestDB(t)

	activeID := uuid.New()
	inactiveID := uuid.New()
	deletedID := uuid.New()
	seedUser(t, db, activeID, true, false)
	seedUser(t, db, inactiveID, false, false)
	seedUser(t, db, deletedID, true, true)

	t.Run("user aktif lolos", func(t *testing.T) {
		assert.NoError(t, ensureUserActive(db, activeID))
	})

	t.Run("user nonaktif ditolak tapi bukan not-found", func(t *testing.T) {
		err := ensureUserActive(db, inactiveID)
		require.Error(t, err)
		assert.False(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	// row hilang harus bisa dibedakan dari akun nonaktif: caller di
	// AuthMiddleware memetakan not-found ke 401, nonaktif ke 403
	t.Run("user tidak ada = ErrRecordNotFound", func(t *testing.T) {
		err := ensureUserActive(db, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("user soft-deleted = ErrRecordNotFound", func(t *testing.T) {
		err := ensureUserActive(db, deletedID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestValidateTokenExpiry(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	assert.NoError(t, validateTokenExpiry(jwt.MapClaims{"exp": float64(future)}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": float64(past)}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": "bukan-angka"}, 0))
}
