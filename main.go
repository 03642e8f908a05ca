package main

import (
	"fmt"
	"log"

	"github.com/meenmo/fixedincome/bond"
	"github.com/meenmo/fixedincome/instruments/bonds"
	"github.com/meenmo/fixedincome/marketdata"
)

func main() {
	b := bonds.SemiAnnualBullet(100, 2, 0.06)

	feed := marketdata.NewMapZeroRateFeed(map[float64]float64{
		0.5: 0.0450,
		1.0: 0.0480,
		1.5: 0.0505,
		2.0: 0.0525,
	})

	curve, err := marketdata.CurveFor(feed, b)
	if err != nil {
		log.Fatal(err)
	}

	curvePrice, err := bond.PriceFromCurve(b, curve)
	if err != nil {
		log.Fatal(err)
	}

	stats, err := bond.Statistics(b, 0.05)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Curve price: %.4f\n", curvePrice)
	fmt.Printf("Yield price: %.4f\n", stats.Price)
	fmt.Printf("Macaulay duration: %.4f\n", stats.MacaulayDuration)
	fmt.Printf("Modified duration: %.4f\n", stats.ModifiedDuration)
}
