// Faculty manages a local roster of teachers from the command line.
package main

import "github.com/mesh-intelligence/faculty/internal/cli"

func main() {
	cli.Execute()
}
