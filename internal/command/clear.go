// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
)

// ClearCommandAction removes an entire cache folder, directory and all.
func ClearCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() != 1 {
		return cli.Exit("usage: cachectl clear <folder>", 2)
	}

	f, err := OpenFolder(cmd, cmd.Args().First())
	if err != nil {
		return err
	}

	return f.Clear()
}

// ClearCommandBuilder constructs the cli.Command for "clear".
func ClearCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "clear",
		Usage:     "remove an entire cache folder",
		UsageText: `cachectl clear <folder>`,
		Metadata: map[string]any{
			"meta": m,
		},
		Action: ClearCommandAction,
	}
}
