package main

import (
	"github.com/hppdev/house-price-predictor/pkg/cli"
)

func main() {
	cli.Execute()
}
