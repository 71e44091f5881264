// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
)

// RmCommandAction removes one cached entry. Idempotent: unknown keys and
// folders succeed quietly.
func RmCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() != 2 {
		return cli.Exit("usage: cachectl rm <folder> <key>", 2)
	}

	f, err := OpenFolder(cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	f.Delete(cmd.Args().Get(1))
	return nil
}

// RmCommandBuilder constructs the cli.Command for "rm".
func RmCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "remove one cached entry",
		UsageText: `cachectl rm <folder> <key>`,
		Metadata: map[string]any{
			"meta": m,
		},
		Action: RmCommandAction,
	}
}
