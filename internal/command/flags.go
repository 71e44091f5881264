// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/cache"
	"github.com/staranto/cachectlgo/internal/config"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// NewRootFlag constructs the --root flag shared by every subcommand.
// Precedence: flag, CACHECTL_DIR env, config "root", conventional default.
func NewRootFlag() *cli.StringFlag {
	def, _ := cache.DefaultRoot()
	return &cli.StringFlag{
		Name:    "root",
		Aliases: []string{"r"},
		Usage:   "base cache directory",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CACHECTL_DIR"),
			yaml.YAML("root", altsrc.StringSourcer(cfg.Source)),
		),
		Value: def,
	}
}

func NewOutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Sources: cli.NewValueSourceChain(
			yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
		),
		Value: "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}

func NewTitlesFlag() *cli.BoolWithInverseFlag {
	return &cli.BoolWithInverseFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show titles with text output",
		Sources: cli.NewValueSourceChain(
			yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
		),
		Value: false,
	}
}

func NewTTLFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "ttl",
		Usage: "seconds until the entry expires; 0 caches forever",
		Value: 0,
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}
}
