/*
Package main is the entry point for the ukulima command-line client.

It wires the configuration, the credential store, and the HTTP client
together, then dispatches to one subcommand per marketplace area:
authentication, products, orders, and chat. Results print on stdout,
diagnostics on stderr; a failed request reports what went wrong in
plain language and never takes the process down mid-session.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"

	"github.com/mukky254/ukulima-go/internal/api"
	"github.com/mukky254/ukulima-go/internal/app/session"
	"github.com/mukky254/ukulima-go/internal/configs"
	"github.com/mukky254/ukulima-go/internal/pkg/apierr"
	"github.com/mukky254/ukulima-go/internal/pkg/logx"
)

// appEnv bundles what every subcommand needs.
type appEnv struct {
	cfg      *configs.AppConfig
	store    session.Store
	client   *api.Client
	validate *validator.Validate
	out      io.Writer
}

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.Init(cfg.Environment == "development")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	store := session.NewFileStore(cfg.TokenFile)

	app := &appEnv{
		cfg:      cfg,
		store:    store,
		client:   api.NewClient(cfg.APIBaseURL, store),
		validate: validator.New(),
		out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, args := os.Args[1], os.Args[2:]

	var runErr error
	switch command {
	case "login":
		runErr = app.loginCmd(ctx, args)
	case "register":
		runErr = app.registerCmd(ctx, args)
	case "logout":
		runErr = app.logoutCmd()
	case "whoami":
		runErr = app.whoamiCmd(ctx)
	case "health":
		runErr = app.healthCmd(ctx)
	case "products":
		runErr = app.productsCmd(ctx, args)
	case "orders":
		runErr = app.ordersCmd(ctx, args)
	case "chat":
		runErr = app.chatCmd(ctx, args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, humanError(command, runErr))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `ukulima - command-line client for the Ukulima agricultural marketplace

Usage:
  ukulima <command> [flags]

Commands:
  login      sign in with email and password
  register   create a new account
  logout     discard the stored session
  whoami     show the account behind the current session
  health     check connectivity with the API
  products   list, show, create, and update product listings
  orders     place orders and review purchases and sales
  chat       message another marketplace user
  help       show this message

Environment:
  ENVIRONMENT         development (default) or production
  UKULIMA_API_URL     override the API base address
  UKULIMA_TOKEN_FILE  override the session token location
`)
}

// humanError turns a failed façade call into the plain-language line
// shown to the user. The underlying error has already been logged by
// the client layer; this is only presentation.
func humanError(action string, err error) string {
	apiErr, ok := apierr.AsError(err)
	if !ok {
		return fmt.Sprintf("%s failed: %v", action, err)
	}

	switch {
	case apiErr.Kind == apierr.KindTimeout:
		return fmt.Sprintf("%s failed: the server took too long to respond", action)
	case apiErr.Kind == apierr.KindTransport:
		return fmt.Sprintf("%s failed: could not reach the server", action)
	case apiErr.Status == http.StatusUnauthorized:
		return fmt.Sprintf("%s failed: please log in first", action)
	case apiErr.Message != "":
		return fmt.Sprintf("%s failed: %s", action, apiErr.Message)
	default:
		return fmt.Sprintf("%s failed with HTTP %d", action, apiErr.Status)
	}
}

// currentIdentity resolves who the stored token says we are, without a
// network round trip. Commands that need the account's server-side view
// call the auth façade instead.
func (a *appEnv) currentIdentity() (*session.Identity, error) {
	token, err := a.store.Get()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("no session found, run `ukulima login` first")
	}

	identity, err := session.ParseIdentity(token)
	if err != nil {
		return nil, fmt.Errorf("stored session is unusable, run `ukulima login` again: %w", err)
	}
	if identity.Expired() {
		return nil, fmt.Errorf("session expired, run `ukulima login` again")
	}
	return identity, nil
}
