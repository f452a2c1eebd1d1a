package builder_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/builder"
)

// ExampleBuildNetwork builds a zero-rate hub with three valued leaves.
func ExampleBuildNetwork() {
	net, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithZeroStart(), builder.WithConstantRate(10)},
		builder.Star(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < net.Len(); i++ {
		nd := net.Node(i)
		fmt.Println(nd.ID, nd.Rate, nd.Neighbors)
	}
	// Output:
	// AA 0 [AB AC AD]
	// AB 10 [AA]
	// AC 10 [AA]
	// AD 10 [AA]
}
