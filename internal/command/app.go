// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/config"
	"github.com/staranto/cachectlgo/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	cfg, _ := config.Load()

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "cachectl",
		Usage: "Disk cache control",
		Flags: []cli.Flag{
			NewRootFlag(),
		},
		Commands: []*cli.Command{
			LsCommandBuilder(m),
			GetCommandBuilder(m),
			SetCommandBuilder(m),
			RmCommandBuilder(m),
			PurgeCommandBuilder(m),
			ClearCommandBuilder(m),
		},
	}

	return app, nil
}
