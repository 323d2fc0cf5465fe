package main

import (
	"os"

	"github.com/spf13/viper"

	"github.com/askiada/go-bootstrapper/internal/cli"
)

func main() {
	err := cli.NewRootCommand(viper.New()).Execute()
	if err != nil {
		os.Exit(1)
	}
}
