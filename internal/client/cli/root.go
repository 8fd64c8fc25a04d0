package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) prompt() string {
	if u := a.store.User(); u != nil {
		return fmt.Sprintf("fy (%s)> ", u.Email)
	}
	return "fy> "
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Fy Office console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		a.printNotifications()
		fmt.Fprint(a.out, a.prompt())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.Login(ctx)
		case "logout":
			if a.requireLogin() {
				a.Logout(ctx)
			}
		case "whoami":
			if u := a.store.User(); u != nil {
				fmt.Fprintf(a.out, "%s <%s>\n", u.FullName(), u.Email)
			} else {
				fmt.Fprintln(a.out, "Not logged in.")
			}
		case "computers":
			if a.requireLogin() {
				a.computersView.handle(ctx, a, args)
			}
		case "employees":
			if a.requireLogin() {
				a.employeesView.handle(ctx, a, args)
			}
		case "equipments":
			if a.requireLogin() {
				a.equipmentsView.handle(ctx, a, args)
			}
		case "users":
			if a.requireLogin() {
				a.usersView.handle(ctx, a, args)
			}
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// requireLogin is the route guard: entity views are unreachable without an
// authenticated session.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please login first.")
	return false
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: login, help, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands: computers, employees, equipments, users, whoami, logout, exit")
	fmt.Fprintln(a.out, "Entity subcommands: [none]=show, page <n>, size <n>, sort <column>, search [term], add, edit <id>, info <id>, delete <id>")
}

func (a *App) printNotifications() {
	for _, n := range a.store.DrainNotifications() {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Level, n.Message)
	}
}
