package cli

import (
	"context"
	"fmt"
)

// runLogin prompts for credentials until a login succeeds or the user
// gives up. Returns false when the user typed "exit" or input ended.
func (c *Cli) runLogin(ctx context.Context) (bool, error) {
	c.io.Println("=== Balanzas Triunfo — Catálogo de Productos ===")
	c.io.Println("Log in to continue (type 'exit' to quit).")

	for {
		username, err := c.io.ReadInput("\nUsername: ")
		if err != nil {
			return false, nil // EOF
		}
		if username == "exit" || username == "quit" {
			return false, nil
		}
		if username == "" {
			continue
		}

		password, err := c.io.ReadPassword("Password: ")
		if err != nil {
			return false, fmt.Errorf("failed to read password: %w", err)
		}

		id := c.auth.Authenticate(ctx, username, password)
		if id == nil {
			c.io.Println("Invalid username or password.")
			c.activity.Record("Login Failed", "user: "+username)
			continue
		}

		c.sess.Start(id.Username, id.Role)
		c.activity.Record("Login", "user: "+id.Username)
		c.io.Printf("\nWelcome, %s (%s).\n", id.Username, id.Role)
		return true, nil
	}
}

// logout ends the active session, recording its duration. Safe to call
// when already logged out.
func (c *Cli) logout() {
	username, _, ok := c.sess.Identity()
	if !ok {
		return
	}
	c.activity.RecordWithDuration("Logout", "user: "+username, c.sess.DurationMinutes())
	c.sess.Clear()
	c.io.Printf("Logged out %s.\n", username)
}
