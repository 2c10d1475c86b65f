package main

import (
	"log"

	"github.com/hppdev/house-price-predictor/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
