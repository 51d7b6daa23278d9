package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var tokenDevice string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a device token for remote API access",
	Example: `  gardenlog token -d phone
  gardenlog token --device kitchen-tablet`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			log.Fatal(err)
		}

		if a.Config.JWT.Secret == "" {
			log.Fatal("JWT_SECRET must be set to mint tokens")
		}

		token, err := a.TokenService.GenerateToken(tokenDevice)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenDevice, "device", "d", "", "device label (required)")
	tokenCmd.MarkFlagRequired("device")
}
