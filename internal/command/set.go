// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
)

// SetCommandAction caches a JSON document under a key, replacing any prior
// record whole.
func SetCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() != 3 {
		return cli.Exit("usage: cachectl set <folder> <key> <json> [--ttl seconds]", 2)
	}

	raw := cmd.Args().Get(2)
	if !gjson.Valid(raw) {
		return cli.Exit("data must be a valid JSON document", 2)
	}

	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return fmt.Errorf("failed to parse data: %w", err)
	}

	f, err := OpenFolder(cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	ttl := time.Duration(cmd.Int("ttl")) * time.Second
	return f.Set(cmd.Args().Get(1), data, ttl)
}

// SetCommandBuilder constructs the cli.Command for "set".
func SetCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "cache a JSON document",
		UsageText: `cachectl set <folder> <key> <json> [--ttl seconds]`,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewTTLFlag(),
		},
		Action: SetCommandAction,
	}
}
