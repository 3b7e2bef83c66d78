// Package cli implements the interactive shell that drives the catalog:
// a login prompt followed by a command loop over products, user
// administration and resource opening. It owns the session object and is
// the only layer that talks to the terminal.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/triunfo/balanzas/internal/activitylog"
	"github.com/triunfo/balanzas/internal/auth"
	"github.com/triunfo/balanzas/internal/iocli"
	"github.com/triunfo/balanzas/internal/resource"
	"github.com/triunfo/balanzas/internal/session"
	"github.com/triunfo/balanzas/internal/store"
)

type Cli struct {
	io       iocli.IO
	users    store.UserStore
	products store.ProductStore
	auth     *auth.Service
	sess     *session.Session
	activity *activitylog.Logger
	opener   *resource.Opener
}

func New(
	io iocli.IO,
	users store.UserStore,
	products store.ProductStore,
	authSvc *auth.Service,
	sess *session.Session,
	activity *activitylog.Logger,
	opener *resource.Opener,
) *Cli {
	return &Cli{
		io:       io,
		users:    users,
		products: products,
		auth:     authSvc,
		sess:     sess,
		activity: activity,
		opener:   opener,
	}
}

// Run drives the application: login first, then the command loop, until
// the user exits or input ends. The session is always closed (and its
// duration logged) on the way out.
func (c *Cli) Run(ctx context.Context) error {
	for {
		ok, err := c.runLogin(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		again, err := c.commandLoop(ctx)
		if err != nil {
			c.logout()
			return err
		}
		if !again {
			return nil
		}
	}
}

// commandLoop dispatches commands until logout (returns true, back to the
// login prompt) or exit (returns false).
func (c *Cli) commandLoop(ctx context.Context) (loginAgain bool, err error) {
	c.io.Println()
	c.printHelp()

	for {
		cmd, err := c.io.ReadInput("\n> ")
		if err != nil {
			c.logout()
			return false, nil // EOF: leave quietly
		}

		switch cmd {
		case "list products":
			c.runListProducts(ctx)
		case "show product":
			c.runShowProduct(ctx)
		case "add product":
			c.runAddProduct(ctx)
		case "edit product":
			c.runEditProduct(ctx)
		case "delete product":
			c.runDeleteProduct(ctx)
		case "open manual":
			c.runOpenResource(ctx, resourceManual)
		case "open calibration":
			c.runOpenResource(ctx, resourceCalibration)
		case "list users":
			c.runListUsers(ctx)
		case "add user":
			c.runAddUser(ctx)
		case "change password":
			c.runChangePassword(ctx)
		case "change role":
			c.runChangeRole(ctx)
		case "delete user":
			c.runDeleteUser(ctx)
		case "whoami":
			c.runWhoami()
		case "help":
			c.printHelp()
		case "logout":
			c.logout()
			return true, nil
		case "exit", "quit":
			c.logout()
			c.io.Println("Goodbye!")
			return false, nil
		case "":
			// ignore empty lines
		default:
			c.io.Printf("Unknown command %q. Type 'help' for the command list.\n", cmd)
		}
	}
}

func (c *Cli) printHelp() {
	c.io.Println("Available commands:")
	c.io.Println("  Products: list products, show product, add product, edit product, delete product")
	c.io.Println("  Resources: open manual, open calibration")
	if c.sess.IsAdministrator() {
		c.io.Println("  Users (administrator): list users, add user, change password, change role, delete user")
	} else {
		c.io.Println("  Account: change password")
	}
	c.io.Println("  System: whoami, help, logout, exit")
}

func (c *Cli) runWhoami() {
	username, role, ok := c.sess.Identity()
	if !ok {
		c.io.Println("Not logged in.")
		return
	}
	c.io.Printf("Logged in as %s (%s)\n", username, role)
}

// reportStoreError renders the common store failures for the user.
func (c *Cli) reportStoreError(err error, what string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.io.Printf("%s not found.\n", what)
	case errors.Is(err, store.ErrAlreadyExists):
		c.io.Printf("%s already exists.\n", what)
	default:
		c.io.Printf("Error: %v\n", err)
	}
}

// confirm asks a yes/no question; only an explicit "y"/"yes" is a yes.
func (c *Cli) confirm(prompt string) bool {
	answer, err := c.io.ReadInput(fmt.Sprintf("%s [y/N]: ", prompt))
	if err != nil {
		return false
	}
	return answer == "y" || answer == "yes" || answer == "Y"
}
