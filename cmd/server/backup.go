package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportFile string
	importFile string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup of all collections to a JSON file",
	Example: `  gardenlog export -f backup.json
  gardenlog export --file garden-2026-08.json`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(); err != nil {
			log.Fatal(err)
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Restore all collections from a backup file",
	Long: `Validate a backup file and replace the plant-type catalogue, the
planting registry, and the harvest ledger with its contents. An invalid
payload is rejected and nothing changes.`,
	Example: `  gardenlog import -f backup.json`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImport(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "destination file (required)")
	exportCmd.MarkFlagRequired("file")

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "backup file to restore (required)")
	importCmd.MarkFlagRequired("file")
}

func runExport() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	backup := a.BackupService.Export()
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}

	if err := os.WriteFile(exportFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	log.Printf("Exported %d plant types, %d plantings, %d harvests to %s",
		len(backup.PlantTypes), len(backup.Plantings), len(backup.Harvests), exportFile)
	return nil
}

func runImport() error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.BackupService.Import(data); err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}
	a.Gateway.Wait()

	log.Printf("Imported backup from %s: %d plant types, %d plantings, %d harvests",
		importFile, a.CatalogueRepo.Count(), a.PlantingRepo.Count(), a.HarvestRepo.Count())
	return nil
}
