// Command feedrecapctl drives the FeedRecap account service from a terminal:
// sign in, inspect the feed, and manage digest preferences using the same
// engine the mobile hosts embed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appcore "github.com/feedrecap/appcore"
	"github.com/feedrecap/appcore/session"
)

const defaultBaseURL = "https://api.feedrecap.com"

func main() {
	_ = godotenv.Load()

	var (
		baseURL     = flag.String("base-url", "", "account service base URL; FEEDRECAP_API env or the production default is used if empty")
		sessionPath = flag.String("session", "", "session file path; defaults to ~/.feedrecap/session.json")
		redisAddr   = flag.String("redis-addr", "", "store the session in redis instead of a file; REDIS_ADDR env is used if empty and set")
		timeout     = flag.Duration("timeout", 0, "per-request timeout; 0 uses the engine default")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	engine, cleanup, err := buildEngine(*baseURL, *sessionPath, *redisAddr, *timeout, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, engine, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: feedrecapctl [flags] <command> [args]

commands:
  login <email> <password>      sign in and persist the session
  register <first> <last> <email> <password>
                                begin registration; prompts for the OTP
  logout                        clear the persisted session
  whoami                        print the signed-in email
  feed [category]               print curated posts, optionally filtered
  newsletter                    print the latest newsletter
  dashboard                     print preferences and newsletter totals
  set-categories <a,b,...>      replace subscribed categories
  set-times <a,b,...>           replace delivery times
  set-timezone <tz>             replace the delivery timezone

flags:
`)
	flag.PrintDefaults()
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func buildEngine(baseURL, sessionPath, redisAddr string, timeout time.Duration, logger *zap.Logger) (*appcore.Engine, func(), error) {
	if baseURL == "" {
		baseURL = os.Getenv("FEEDRECAP_API")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if redisAddr == "" {
		redisAddr = os.Getenv("REDIS_ADDR")
	}

	cleanup := func() {}

	var backend session.Backend
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		backend = session.NewRedisBackend(rdb, "feedrecapctl")
		cleanup = func() { _ = rdb.Close() }
	} else {
		if sessionPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve home directory: %w", err)
			}
			sessionPath = filepath.Join(home, ".feedrecap", "session.json")
		}
		fb, err := session.NewFileBackend(sessionPath)
		if err != nil {
			return nil, nil, err
		}
		backend = fb
	}

	builder := appcore.New().
		WithBaseURL(baseURL).
		WithSessionStore(session.NewStore(backend, logger)).
		WithLogger(logger)
	if timeout > 0 {
		builder = builder.WithRequestTimeout(timeout)
	}

	engine, err := builder.Build()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return engine, cleanup, nil
}

func run(ctx context.Context, engine *appcore.Engine, command string, args []string) error {
	engine.Bootstrap(ctx)

	switch command {
	case "login":
		return cmdLogin(ctx, engine, args)
	case "register":
		return cmdRegister(ctx, engine, args)
	case "logout":
		engine.Logout(ctx)
		fmt.Println("signed out")
		return nil
	case "whoami":
		email, ok := engine.CurrentEmail()
		if !ok {
			return fmt.Errorf("not signed in")
		}
		fmt.Println(email)
		return nil
	case "feed":
		return cmdFeed(ctx, engine, args)
	case "newsletter":
		return cmdNewsletter(ctx, engine)
	case "dashboard":
		return cmdDashboard(ctx, engine)
	case "set-categories":
		if len(args) != 1 {
			return fmt.Errorf("usage: set-categories <a,b,...>")
		}
		return engine.UpdateCategories(ctx, strings.Split(args[0], ","))
	case "set-times":
		if len(args) != 1 {
			return fmt.Errorf("usage: set-times <a,b,...>")
		}
		return engine.UpdateDeliveryTimes(ctx, strings.Split(args[0], ","))
	case "set-timezone":
		if len(args) != 1 {
			return fmt.Errorf("usage: set-timezone <tz>")
		}
		return engine.UpdateTimezone(ctx, args[0])
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdLogin(ctx context.Context, engine *appcore.Engine, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}

	result, err := engine.SubmitCredentials(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s (next: %s)\n", result.Email, result.Route)
	return nil
}

func cmdRegister(ctx context.Context, engine *appcore.Engine, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: register <first> <last> <email> <password>")
	}

	if err := engine.BeginRegistration(ctx, args[0], args[1], args[2], args[3]); err != nil {
		return err
	}

	fmt.Print("enter the code sent to your email: ")
	var code string
	if _, err := fmt.Scanln(&code); err != nil {
		return fmt.Errorf("read code: %w", err)
	}

	route, err := engine.VerifyOTP(ctx, strings.Split(strings.TrimSpace(code), ""))
	if err != nil {
		return err
	}
	fmt.Printf("account created (next: %s)\n", route)
	return nil
}

func cmdFeed(ctx context.Context, engine *appcore.Engine, args []string) error {
	feed, err := engine.FeedPosts(ctx)
	if err != nil {
		return err
	}

	posts := feed.Posts
	if len(args) == 1 {
		posts, _ = appcore.FilterPostsByCategory(feed.Posts, "", args[0])
	}

	fmt.Printf("categories: %s\n\n", strings.Join(feed.Categories, ", "))
	for _, p := range posts {
		fmt.Printf("[%s] @%s (%s, %d likes)\n%s\n\n",
			p.Category, p.Username, p.Time.Format(time.RFC822), p.Likes, p.Text)
	}
	return nil
}

func cmdNewsletter(ctx context.Context, engine *appcore.Engine) error {
	html, err := engine.Newsletter(ctx)
	if err != nil {
		return err
	}
	fmt.Println(html)
	return nil
}

func cmdDashboard(ctx context.Context, engine *appcore.Engine) error {
	dash, err := engine.FetchDashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("categories: %s\n", strings.Join(dash.Preferences.Categories, ", "))
	fmt.Printf("times:      %s\n", strings.Join(dash.Preferences.Times, ", "))
	fmt.Printf("timezone:   %s\n", dash.Preferences.Timezone)
	fmt.Printf("delivered:  %d newsletters\n", dash.TotalNewsletters)
	if dash.NewsletterNote != "" {
		fmt.Printf("latest:     %s\n", dash.NewsletterNote)
	}
	return nil
}
