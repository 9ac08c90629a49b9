package siteswap_test

import (
	"fmt"

	"github.com/katalvlaran/siteswap"
	"github.com/katalvlaran/siteswap/schedule"
)

// ExamplePattern_Orbits builds the two-hand pattern where each hand keeps
// its own ball (each throws a 1 to itself every beat) and splits it into
// one orbit per hand.
func ExamplePattern_Orbits() {
	self := func(hand int) schedule.Release {
		return schedule.Release{{Value: 1, From: hand, To: hand}}
	}
	throws := schedule.Schedule{
		{self(0), self(1)},
		{self(0), self(1)},
	}

	p, err := siteswap.New(throws, "(1,1)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	orbits, _ := p.Orbits()
	for k, o := range orbits {
		fmt.Printf("orbit %d of %v: %v\n", k, o.Notation(), o.Throws()[0])
	}

	// Output:
	// orbit 0 of (1,1): [[1(0→0)] [0(1→1)]]
	// orbit 1 of (1,1): [[0(0→0)] [1(1→1)]]
}
