// Command devtool prepares a local PostgreSQL instance: it mints bearer tokens,
// funds wallets and grants provider tiers, the parts owned by external services
// in production.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"event-customize/internal/domain/user"
	"event-customize/internal/infra/db"
	"event-customize/internal/infra/ledger"
	"event-customize/internal/infra/query"
	"event-customize/internal/infra/uow"
	"event-customize/internal/pkg/config"
	"event-customize/internal/pkg/jwt"
	"event-customize/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

const usage = `usage: devtool <command> [flags]

commands:
  token     -account <uuid> -role user|admin
  deposit   -account <uuid> -amount <n>
  provider  -account <uuid> -name <s> -email <s> [-partner-for <dur>] [-member-for <dur>]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "token":
		err = token(os.Args[2:])
	case "deposit":
		err = deposit(os.Args[2:])
	case "provider":
		err = grantProvider(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		slog.Error(os.Args[1]+" failed", "error", err)
		os.Exit(1)
	}
}

func token(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	account := fs.String("account", "", "account id; a new one is generated when empty")
	role := fs.String("role", string(user.RoleUser), "user or admin")
	_ = fs.Parse(args)

	var jwtCfg config.JWTConfig
	if err := envconfig.Process("", &jwtCfg); err != nil {
		return err
	}
	r, err := user.NewRole(*role)
	if err != nil {
		return err
	}
	id := uuid.New()
	if *account != "" {
		if id, err = uuid.Parse(*account); err != nil {
			return err
		}
	}

	signed, err := jwt.NewService(jwtCfg.Secret, jwtCfg.TokenTTL, jwtCfg.Issuer).GenerateToken(id, r)
	if err != nil {
		return err
	}
	fmt.Printf("account: %s\nrole:    %s\ntoken:   %s\n", id, r, signed)
	return nil
}

func deposit(args []string) error {
	fs := flag.NewFlagSet("deposit", flag.ExitOnError)
	account := fs.String("account", "", "account id")
	amount := fs.Int64("amount", 0, "amount to credit")
	_ = fs.Parse(args)

	id, err := uuid.Parse(*account)
	if err != nil {
		return fmt.Errorf("invalid -account: %w", err)
	}

	return withDB(func(ctx context.Context, u *uow.PostgresUoW, q *query.Queries) error {
		l := ledger.NewPostgresLedger(u, q)
		if err := l.Deposit(ctx, id, *amount, uuid.New()); err != nil {
			return err
		}
		balance, err := l.Balance(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("account %s balance %d\n", id, balance)
		return nil
	})
}

func grantProvider(args []string) error {
	fs := flag.NewFlagSet("provider", flag.ExitOnError)
	account := fs.String("account", "", "account id")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "contact email")
	partnerFor := fs.Duration("partner-for", 0, "partner tier validity from now")
	memberFor := fs.Duration("member-for", 0, "member tier validity from now")
	_ = fs.Parse(args)

	id, err := uuid.Parse(*account)
	if err != nil {
		return fmt.Errorf("invalid -account: %w", err)
	}

	now := time.Now().UTC()
	row := query.ProviderProfile{AccountID: id, Name: *name, Email: *email}
	if *partnerFor > 0 {
		row.IsPartner = true
		row.PartnerExpiresAt = pgconv.TimeToPgtype(now.Add(*partnerFor))
	}
	if *memberFor > 0 {
		row.IsMember = true
		row.MemberExpiresAt = pgconv.TimeToPgtype(now.Add(*memberFor))
	}

	return withDB(func(ctx context.Context, u *uow.PostgresUoW, q *query.Queries) error {
		return u.WithinDB(ctx, func(ctx context.Context, tx query.DBTX) error {
			return q.UpsertProviderProfile(ctx, tx, row)
		})
	})
}

func withDB(fn func(ctx context.Context, u *uow.PostgresUoW, q *query.Queries) error) error {
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	q := query.New()
	return fn(ctx, uow.NewPostgresUoW(pool, q), q)
}
