package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"quizapp/internal/adapter/questionfile"
	"quizapp/internal/adapter/store"
	"quizapp/internal/app"
	"quizapp/internal/config"
	"quizapp/internal/lib/slogcustom"
)

const usage = `usage: quiz [flags] <command> [args]

commands:
  init         create the schema
  load FILE    load questions from a JSON or YAML file
  register     register --user with --password and --confirm
  login        check --user and --password
  play         play a quiz (as guest unless --user is given)

flags:
`

func main() {
	if err := run(); err != nil {
		slog.Error("quiz failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet("quiz", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	flags.StringVar(&cfg.DBDriver, "driver", cfg.DBDriver, "store backend: sqlite, postgres or memory")
	flags.StringVar(&cfg.DBDSN, "dsn", cfg.DBDSN, "database file (sqlite) or connection string (postgres)")
	flags.StringVar(&cfg.Hasher, "hasher", cfg.Hasher, "password hasher: sha256 or bcrypt")
	flags.IntVar(&cfg.QuizSize, "size", cfg.QuizSize, "questions per quiz")
	logLevel := flags.String("log-level", cfg.LogLevel.String(), "log level")
	user := flags.StringP("user", "u", "", "username")
	password := flags.StringP("password", "p", "", "password")
	confirm := flags.String("confirm", "", "password again, required by register")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfg.LogLevel, err = config.ParseLevel(*logLevel); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := slog.New(slogcustom.NewCustomHandler(os.Stderr, cfg.LogLevel))
	slog.SetDefault(logger)

	args := flags.Args()
	if len(args) == 0 {
		flags.Usage()
		return errors.New("missing command")
	}

	ctx := context.Background()
	db, err := store.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	hasher, err := app.NewHasher(cfg.Hasher)
	if err != nil {
		return err
	}
	auth := app.NewAuthService(db, hasher, logger)

	switch cmd := args[0]; cmd {
	case "init":
		logger.Info("schema ready", "driver", cfg.DBDriver)
		return nil

	case "load":
		if len(args) != 2 {
			return errors.New("load requires exactly one FILE")
		}
		records, err := questionfile.ReadFile(args[1])
		if err != nil {
			return err
		}
		res, err := db.LoadQuestions(ctx, records)
		for _, skipped := range res.Skipped {
			logger.Warn("question skipped", "record", skipped.Index, "error", skipped.Err)
		}
		logger.Info("questions loaded", "inserted", res.Inserted, "skipped", len(res.Skipped))
		return err

	case "register":
		if err := confirmPassword(*password, *confirm); err != nil {
			return err
		}
		ok, err := auth.Register(ctx, *user, *password)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("username %q is already taken", *user)
		}
		fmt.Println("User registered successfully")
		return nil

	case "login":
		ok, err := auth.Login(ctx, *user, *password)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("invalid username or password")
		}
		fmt.Println("Login successful")
		return nil

	case "play":
		if *user != "" {
			ok, err := auth.Login(ctx, *user, *password)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("invalid username or password")
			}
		}
		session := app.NewSession(db, app.WithSize(cfg.QuizSize), app.WithLogger(logger))
		return play(ctx, os.Stdin, os.Stdout, session)

	default:
		flags.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}
