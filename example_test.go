package granular_test

import (
	"fmt"
	"log"
	"math"

	granular "github.com/tphakala/go-granular"
)

func Example() {
	cfg := granular.DefaultConfig(granular.RateCD)
	cfg.TriggerFreq = 20
	cfg.GrainPeriod = 0.1

	e, err := granular.New(&cfg)
	if err != nil {
		log.Fatal(err)
	}

	tone := make([]float64, granular.RateCD)
	for i := range tone {
		tone[i] = math.Sin(2 * math.Pi * 220 * float64(i) / granular.RateCD)
	}
	if err := e.Load([][]float64{tone}, granular.RateCD); err != nil {
		log.Fatal(err)
	}

	out := make([]float64, granular.RateCD)
	e.Render(out)

	st := e.Stats()
	fmt.Println("spawned:", st.SpawnedGrains)
	fmt.Println("active:", st.ActiveGrains)
	// Output:
	// spawned: 20
	// active: 2
}

func ExampleEngine_SetGrainWindow() {
	e, err := granular.NewCD()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(e.SetGrainWindow("hann"), e.GrainWindow())
	fmt.Println(e.SetGrainWindow("square"), e.GrainWindow())
	// Output:
	// <nil> hanning
	// unknown grain window: "square" hanning
}
