package main

import (
	"os"

	"StockForecast/cmd/stockdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
