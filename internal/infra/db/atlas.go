package db

import (
	"context"
	"fmt"
	"io/fs"

	"resqcart/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// ApplyWithAtlas hands the migration directory to the atlas CLI found at bin.
// atlas keeps its own revision table, so a database should be migrated by one engine only.
func ApplyWithAtlas(ctx context.Context, cfg config.DBConfig, dir fs.FS, bin string) ([]string, error) {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare atlas working dir: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return nil, fmt.Errorf("failed to init atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.BuildDSN(),
	})
	if err != nil {
		return nil, fmt.Errorf("atlas migrate apply: %w", err)
	}

	applied := make([]string, 0, len(res.Applied))
	for _, f := range res.Applied {
		applied = append(applied, f.Name)
	}
	return applied, nil
}
