package main

import (
	"log"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default plant-type catalogue",
	Long: `Load the default catalogue of common vegetables into an empty
store. A catalogue that already has entries is left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			log.Fatal(err)
		}

		added := a.CatalogueService.SeedDefaults()
		a.Gateway.Wait()
		if added == 0 {
			log.Println("Catalogue is not empty, nothing seeded")
			return
		}
		log.Printf("Seeded %d plant types", added)
	},
}
