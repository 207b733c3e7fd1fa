// Command dotaccess reads and edits YAML, JSON and TOML documents by key path.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), Root())
}
