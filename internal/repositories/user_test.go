package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/skomarov/resume-builder/internal/schema"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	// Ensure twice: the schema setup must be idempotent.
	assert.NoError(t, schema.Ensure(context.Background(), db.DB))
	assert.NoError(t, schema.Ensure(context.Background(), db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	id, err := repo.Save(ctx, "alice", "hash123", "A", "B", "alice@example.com", "555")
	assert.NoError(t, err)
	assert.Greater(t, id, int64(0))

	var user struct {
		Username     string `db:"username"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
		FirstName    string `db:"first_name"`
	}
	err = db.Get(&user, "SELECT username, email, password_hash, first_name FROM users WHERE id=$1", id)
	assert.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.Equal(t, "A", user.FirstName)
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, "alice", "hash", "A", "B", "alice@example.com", "555")
	assert.NoError(t, err)

	// Unique index is the backstop behind the service-level pre-checks.
	_, err = repo.Save(ctx, "alice", "hash", "A", "B", "other@example.com", "555")
	assert.Error(t, err)
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "charlie", "hash1", "C", "D", "charlie@example.com", "555")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "hash2", "D", "E", "dave@example.com", "556")
	assert.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "charlie")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByUsernameNotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "dave@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("ByEmailNotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "none@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ByCredentials", func(t *testing.T) {
		user, err := readRepo.GetByCredentials(ctx, "charlie", "hash1")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByCredentialsWrongHash", func(t *testing.T) {
		user, err := readRepo.GetByCredentials(ctx, "charlie", "wrong")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ByCredentialsUnknownUser", func(t *testing.T) {
		user, err := readRepo.GetByCredentials(ctx, "ghost", "hash1")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
