package main

import (
	"github.com/bornholm/scout/internal/command"
	"github.com/bornholm/scout/internal/command/page"
	"github.com/bornholm/scout/internal/command/query"
	"github.com/bornholm/scout/internal/command/schema"
	"github.com/bornholm/scout/internal/command/serve"
)

var version = "dev"

func main() {
	command.Main(
		"scout",
		version,
		"Find the assessments matching a hiring need",
		query.Query(),
		page.Page(),
		serve.Serve(),
		schema.Schema(),
	)
}
