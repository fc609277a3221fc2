//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"event-customize/cmd/bootstrap"
	"event-customize/internal/domain/user"
	"event-customize/internal/pkg/config"
	"event-customize/internal/pkg/jwt"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const migrationFile = "migrations/20260901000000_initial_schema.sql"

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := postgresTestContainer.Terminate(ctx); err != nil {
				slog.Warn("failed to terminate postgres container", "error", err.Error())
			}
		})
	})
}

func containerHostPort(c testcontainers.Container, port string) (containerInfo, error) {
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return containerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return containerInfo{}, err
	}
	return containerInfo{Host: host, Port: mapped}, nil
}

// prepareDatabase creates a fresh database per suite and applies the schema.
func prepareDatabase(t *testing.T, info containerInfo) config.DBConfig {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err)
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port(), dbName)
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	sql, err := readMigration()
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(sql))
	require.NoError(t, err, "failed to apply schema")

	return config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// readMigration resolves the schema relative to the package directory go test runs in.
func readMigration() ([]byte, error) {
	var lastErr error
	for _, dir := range []string{".", "..", filepath.Join("..", ".."), filepath.Join("..", "..", "..")} {
		b, err := os.ReadFile(filepath.Join(dir, migrationFile))
		if err == nil {
			return b, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func buildApp(t *testing.T, cfg config.Config) *gin.Engine {
	var router *gin.Engine
	app := fx.New(
		bootstrap.NewModule(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router
}

// SharedSuite runs the full HTTP stack against a real PostgreSQL store.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	tokens *jwt.Service
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	t := s.T()

	startPostgreSQLContainerOnce(t)
	info, err := containerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.DB = prepareDatabase(t, info)
	s.Config = cfg

	s.Router = buildApp(t, cfg)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName)
	s.DB, err = pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(s.DB.Close)

	s.tokens = jwt.NewService(cfg.JWT.Secret, cfg.JWT.TokenTTL, cfg.JWT.Issuer)
}

func (s *SharedSuite) SetupSubTest() {
	_, err := s.DB.Exec(context.Background(), `TRUNCATE notification_jobs, idempotency_keys, proposals,
		event_requests, wallet_transactions, wallets, provider_profiles`)
	require.NoError(s.T(), err, "failed to reset database")
}

func (s *SharedSuite) token(id uuid.UUID, role user.Role) string {
	tok, err := s.tokens.GenerateToken(id, role)
	s.Require().NoError(err)
	return tok
}

func (s *SharedSuite) fundWallet(accountID uuid.UUID, balance int64) {
	_, err := s.DB.Exec(context.Background(),
		`INSERT INTO wallets (account_id, balance) VALUES ($1, $2)`, accountID, balance)
	s.Require().NoError(err)
}

func (s *SharedSuite) balance(accountID uuid.UUID) int64 {
	var b int64
	err := s.DB.QueryRow(context.Background(),
		`SELECT balance FROM wallets WHERE account_id = $1`, accountID).Scan(&b)
	s.Require().NoError(err)
	return b
}

func (s *SharedSuite) addPartner(accountID uuid.UUID, name string, until time.Time) {
	_, err := s.DB.Exec(context.Background(),
		`INSERT INTO provider_profiles (account_id, name, email, is_partner, partner_expires_at)
		 VALUES ($1, $2, $3, TRUE, $4)`,
		accountID, name, strings.ToLower(strings.ReplaceAll(name, " ", ""))+"@example.com", until)
	s.Require().NoError(err)
}
