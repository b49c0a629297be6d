package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/mukky254/ukulima-go/internal/api"
)

func (a *appEnv) loginCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := api.LoginInput{Email: *email, Password: *password}
	if err := a.validate.Struct(input); err != nil {
		return fmt.Errorf("both -email and -password are required: %w", err)
	}

	auth, err := api.NewAuthService(a.client).Login(ctx, input)
	if err != nil {
		return err
	}

	if err := a.store.Set(auth.Token); err != nil {
		return fmt.Errorf("signed in but could not persist the session: %w", err)
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", auth.User.DisplayName(), auth.User.Role)
	return nil
}

func (a *appEnv) registerCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (min 6 characters)")
	role := fs.String("role", "", "marketplace role: farmer, wholesaler, or retailer")
	phone := fs.String("phone", "", "phone number (optional)")
	city := fs.String("city", "", "city (optional)")
	country := fs.String("country", "", "country (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := api.RegisterInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     *role,
		Phone:    *phone,
	}
	if *city != "" || *country != "" {
		input.Location = &api.Location{City: *city, Country: *country}
	}

	if err := a.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid registration details: %w", err)
	}

	auth, err := api.NewAuthService(a.client).Register(ctx, input)
	if err != nil {
		return err
	}

	if err := a.store.Set(auth.Token); err != nil {
		return fmt.Errorf("registered but could not persist the session: %w", err)
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are registered as a %s.\n", auth.User.Name, auth.User.Role)
	return nil
}

func (a *appEnv) logoutCmd() error {
	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("could not discard the session: %w", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *appEnv) whoamiCmd(ctx context.Context) error {
	user, err := api.NewAuthService(a.client).Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	if user.Location != nil {
		fmt.Fprintf(a.out, "Location: %s, %s\n", user.Location.City, user.Location.Country)
	}
	return nil
}

func (a *appEnv) healthCmd(ctx context.Context) error {
	if err := a.client.Health(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "API reachable at %s\n", a.client.BaseURL())
	return nil
}
