package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/brkit"
	"github.com/dmitrymomot/brkit/pkg/config"
	"github.com/dmitrymomot/brkit/pkg/logger"
)

type cliConfig struct {
	Env string `env:"BRKIT_ENV" envDefault:"production"`
}

func main() {
	var cfg cliConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "brkit"),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("command", commandKey{}),
		logger.WithContextExtractors(brkit.LogNamespaces),
	)

	opts, err := brkit.LoadOptions()
	if err != nil {
		log.Warn("using default options", logger.Error(err))
	}
	// Every command formats or validates, whatever the template toggles say.
	opts.Formatters = true
	opts.Validators = true

	plugin := brkit.Install(opts, brkit.WithLogger(log))
	ctx := plugin.WithContext(context.Background())

	registry := NewCommandRegistry()
	registerCommands(registry, plugin.Formatter(), log)

	if err := registry.Execute(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
