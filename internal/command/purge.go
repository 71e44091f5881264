// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
)

// PurgeCommandAction runs one immediate expired-entry sweep over a folder,
// or over every folder under the root when none is named. The CLI starts
// with a cold index, so each record is pulled through the engine's own
// recovery path first: that deletes expired and corrupt files and indexes
// the live ones, and the sweep then catches anything left.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	root := cmd.String("root")

	r, err := NewCacheRegistry(cmd)
	if err != nil {
		return err
	}

	var folders []string
	if cmd.Args().Len() > 0 {
		folders = []string{cmd.Args().First()}
	} else {
		dirs, err := os.ReadDir(root)
		if err != nil {
			// Nothing on disk means nothing to purge.
			log.Debugf("cache root not readable: %v", err)
			return nil
		}
		for _, dir := range dirs {
			if dir.IsDir() {
				folders = append(folders, dir.Name())
			}
		}
	}

	for _, name := range folders {
		f := r.Get(name, FolderOptions(name))

		files, err := os.ReadDir(filepath.Join(root, name))
		if err != nil {
			continue
		}

		keys := RecordKeys(fileNames(files))
		before := len(keys)
		for _, key := range keys {
			f.Get(key, nil)
		}
		f.Purge()

		removed := before - f.Len()
		fmt.Printf("%s: purged %d of %d entries\n", name, removed, before)
	}

	return nil
}

func fileNames(entries []os.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// PurgeCommandBuilder constructs the cli.Command for "purge".
func PurgeCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "purge",
		Usage:     "sweep expired and corrupt entries now",
		UsageText: `cachectl purge [folder]`,
		Metadata: map[string]any{
			"meta": m,
		},
		Action: PurgeCommandAction,
	}
}
