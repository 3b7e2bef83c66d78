package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/triunfo/balanzas/internal/models"
)

// requireAdministrator gates the user-management commands.
func (c *Cli) requireAdministrator() bool {
	if !c.sess.IsAdministrator() {
		c.io.Println("This command requires the administrator role.")
		return false
	}
	return true
}

func (c *Cli) runListUsers(ctx context.Context) {
	if !c.requireAdministrator() {
		return
	}

	users, err := c.users.GetUsers(ctx)
	if err != nil {
		c.io.Printf("Error: %v\n", err)
		return
	}

	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)

	c.io.Printf("%d user(s):\n", len(names))
	for _, name := range names {
		c.io.Printf("  %-20s %s\n", name, users[name].Role)
	}
}

func (c *Cli) runAddUser(ctx context.Context) {
	if !c.requireAdministrator() {
		return
	}

	username, err := c.io.ReadInput("New username: ")
	if err != nil {
		return
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return
	}
	roleInput, err := c.io.ReadInput(fmt.Sprintf("Role (%s/%s): ", models.RoleUser, models.RoleAdministrator))
	if err != nil {
		return
	}

	if err := c.auth.Register(ctx, username, password, models.Role(roleInput)); err != nil {
		c.reportStoreError(err, "User")
		return
	}

	c.activity.Record("User Registered", "user: "+username)
	c.io.Printf("User %q registered.\n", username)
}

// runChangePassword lets administrators reset any password and regular
// users change their own.
func (c *Cli) runChangePassword(ctx context.Context) {
	self, _, ok := c.sess.Identity()
	if !ok {
		return
	}

	username := self
	if c.sess.IsAdministrator() {
		input, err := c.io.ReadInput(fmt.Sprintf("Username [%s]: ", self))
		if err != nil {
			return
		}
		if input != "" {
			username = input
		}
	}

	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return
	}
	repeat, err := c.io.ReadPassword("Repeat password: ")
	if err != nil {
		return
	}
	if password != repeat {
		c.io.Println("Passwords do not match.")
		return
	}

	if err := c.auth.ChangePassword(ctx, username, password); err != nil {
		c.reportStoreError(err, "User")
		return
	}

	c.activity.Record("Password Changed", "user: "+username)
	c.io.Printf("Password changed for %q.\n", username)
}

func (c *Cli) runChangeRole(ctx context.Context) {
	if !c.requireAdministrator() {
		return
	}

	username, err := c.io.ReadInput("Username: ")
	if err != nil || username == "" {
		return
	}
	roleInput, err := c.io.ReadInput(fmt.Sprintf("New role (%s/%s): ", models.RoleUser, models.RoleAdministrator))
	if err != nil {
		return
	}

	if err := c.auth.ChangeRole(ctx, username, models.Role(roleInput)); err != nil {
		c.reportStoreError(err, "User")
		return
	}

	c.activity.Record("Role Changed", fmt.Sprintf("user: %s, role: %s", username, roleInput))
	c.io.Printf("Role of %q is now %s.\n", username, roleInput)
}

func (c *Cli) runDeleteUser(ctx context.Context) {
	if !c.requireAdministrator() {
		return
	}

	username, err := c.io.ReadInput("Username: ")
	if err != nil || username == "" {
		return
	}

	self, _, _ := c.sess.Identity()
	if username == self {
		c.io.Println("You cannot delete the account you are logged in with.")
		return
	}
	if !c.confirm(fmt.Sprintf("Delete user %q?", username)) {
		return
	}

	if err := c.auth.Unregister(ctx, username); err != nil {
		c.reportStoreError(err, "User")
		return
	}

	c.activity.Record("User Deleted", "user: "+username)
	c.io.Printf("User %q deleted.\n", username)
}
