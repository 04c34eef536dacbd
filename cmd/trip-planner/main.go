package main

import (
	"os"

	"github.com/ronojoykumar/travel-itinerary-app/plannersvc"
)

func main() {
	if err := plannersvc.Run(); err != nil {
		os.Exit(1)
	}
}
