package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pressure/core"
)

// ExampleNewGraph builds a three-valve corridor and inspects its flow slots.
func ExampleNewGraph() {
	g, err := core.NewGraph([]core.Declaration{
		{ID: "AA", Rate: 0, Tunnels: []string{"BB"}},
		{ID: "BB", Rate: 7, Tunnels: []string{"AA", "CC"}},
		{ID: "CC", Rate: 4, Tunnels: []string{"BB"}},
	}, "AA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, v := range g.Valves() {
		fmt.Printf("%s index=%d slot=%d tunnels=%v\n", v.ID, v.Index, v.Slot, v.Tunnels)
	}
	// Output:
	// AA index=0 slot=-1 tunnels=[BB]
	// BB index=1 slot=0 tunnels=[AA CC]
	// CC index=2 slot=1 tunnels=[BB]
}

// ExampleStructuralError shows how construction failures name the culprit.
func ExampleStructuralError() {
	_, err := core.NewGraph([]core.Declaration{
		{ID: "AA", Tunnels: []string{"QQ"}},
	}, "AA")

	var serr *core.StructuralError
	if errors.As(err, &serr) {
		fmt.Println(serr.ID, errors.Is(err, core.ErrUnknownTunnel))
	}
	fmt.Println(err)
	// Output:
	// QQ true
	// core: tunnel leads to undeclared valve: "QQ"
}
