// Command officedesk manages offices and employees in an interactive,
// memory-only session.
package main

import "github.com/mesh-intelligence/officedesk/internal/cli"

func main() {
	cli.Execute()
}
