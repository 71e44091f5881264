// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
	"github.com/staranto/cachectlgo/internal/output"
)

// LsCommandAction lists the folders under the cache root, or the record
// files of one folder. It is strictly read-only: expired and corrupt
// records are reported, not removed — that's what purge is for.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	root := cmd.String("root")

	var dataset []map[string]interface{}
	var cols []string

	if cmd.Args().Len() == 0 {
		dataset, cols = lsFolders(root)
	} else {
		dataset, cols = lsEntries(filepath.Join(root, cmd.Args().First()))
	}

	return output.Emit(os.Stdout, dataset, cols, cmd.String("output"), cmd.Bool("titles"))
}

func lsFolders(root string) ([]map[string]interface{}, []string) {
	cols := []string{"folder", "entries", "size"}

	dirs, err := os.ReadDir(root)
	if err != nil {
		log.Debugf("cache root not readable: %v", err)
		return nil, cols
	}

	var dataset []map[string]interface{}
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}

		var count int
		var size int64
		files, _ := os.ReadDir(filepath.Join(root, dir.Name()))
		for _, file := range files {
			if !strings.HasSuffix(file.Name(), ".json") {
				continue
			}
			count++
			if info, err := file.Info(); err == nil {
				size += info.Size()
			}
		}

		dataset = append(dataset, map[string]interface{}{
			"folder":  dir.Name(),
			"entries": count,
			"size":    humanize.Bytes(uint64(size)), //nolint:gosec
		})
	}
	return dataset, cols
}

func lsEntries(dir string) ([]map[string]interface{}, []string) {
	cols := []string{"key", "size", "added", "expires", "state"}

	files, err := os.ReadDir(dir)
	if err != nil {
		log.Debugf("cache folder not readable: %v", err)
		return nil, cols
	}

	now := time.Now()

	var dataset []map[string]interface{}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		row := map[string]interface{}{
			"key":     strings.TrimSuffix(file.Name(), ".json"),
			"added":   "",
			"expires": "never",
			"state":   "corrupt",
		}
		if info, err := file.Info(); err == nil {
			row["size"] = humanize.Bytes(uint64(info.Size())) //nolint:gosec
		}

		// Probe the untrusted record the same way the engine does.
		raw, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err == nil && gjson.ValidBytes(raw) {
			doc := gjson.ParseBytes(raw)
			added := doc.Get("addedAt")
			expires := doc.Get("expiresAt")
			if added.Type == gjson.Number && doc.Get("data").Exists() && expires.Exists() &&
				(expires.Type == gjson.Number || expires.Type == gjson.Null) {
				row["added"] = humanize.Time(time.UnixMilli(added.Int()))
				row["state"] = "live"
				if expires.Type == gjson.Number {
					at := time.UnixMilli(expires.Int())
					row["expires"] = humanize.Time(at)
					if !at.After(now) {
						row["state"] = "expired"
					}
				}
			}
		}

		dataset = append(dataset, row)
	}
	return dataset, cols
}

// LsCommandBuilder constructs the cli.Command for "ls", wiring metadata,
// flags, and the action handler.
func LsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list cache folders or the entries of one folder",
		UsageText: `cachectl ls [folder] [options]`,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewOutputFlag(),
			NewTitlesFlag(),
		},
		Action: LsCommandAction,
	}
}
