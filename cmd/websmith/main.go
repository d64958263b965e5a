// Where: cmd/websmith/main.go
// What: CLI entrypoint.
// Why: Execute websmith commands with configured dependencies.
package main

import (
	"os"

	"github.com/websmith/websmith/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
