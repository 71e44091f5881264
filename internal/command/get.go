// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
)

// GetCommandAction prints the cached document for a key. A miss — of any
// kind: unknown, expired, corrupt — exits 1, since "miss" and "never
// existed" are indistinguishable by design.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() != 2 {
		return cli.Exit("usage: cachectl get <folder> <key>", 2)
	}

	f, err := OpenFolder(cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	// A sentinel fallback distinguishes a miss from a cached null.
	miss := new(struct{})
	v := f.Get(cmd.Args().Get(1), miss)
	if v == any(miss) {
		return cli.Exit("cache miss", 1)
	}

	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render cached data: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// GetCommandBuilder constructs the cli.Command for "get".
func GetCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print one cached document",
		UsageText: `cachectl get <folder> <key>`,
		Metadata: map[string]any{
			"meta": m,
		},
		Action: GetCommandAction,
	}
}
