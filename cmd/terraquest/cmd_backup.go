package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/logger"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/storage"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

var backupDisk string

func init() {
	backupCmd.Flags().StringVar(&backupDisk, "disk", "", `target disk ("local" or "s3"; default STORAGE_DISK)`)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot every collection to the storage disk",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		st, err := store.Connect()
		if err != nil {
			return err
		}
		storage.Connect()

		snapshot := map[string]json.RawMessage{}
		for _, key := range store.Keys() {
			var raw json.RawMessage
			found, err := st.Get(key, &raw)
			if err != nil {
				return fmt.Errorf("backup: read %s: %w", key, err)
			}
			if found {
				snapshot[key] = raw
			}
		}

		payload, err := json.MarshalIndent(map[string]any{
			"taken_at":    time.Now().UTC().Format(time.RFC3339),
			"collections": snapshot,
		}, "", "  ")
		if err != nil {
			return err
		}

		name := fmt.Sprintf("backups/terraquest-%s-%s.json",
			time.Now().UTC().Format("20060102-150405"), uuid.NewString()[:8])

		disk := backupDisk
		if disk == "" {
			disk = config.StorageDefault()
		}
		if err := storage.Use(disk).Put(name, payload); err != nil {
			return err
		}
		logger.Info("backup: snapshot written", "disk", disk, "path", name, "bytes", len(payload))
		return nil
	},
}
