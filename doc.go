// Package valvenet is an in-memory toolkit for scheduling node activations
// on small networks with best-first branch-and-bound.
//
// What is inside
//
//	bitset/   - uint64 activation sets (≤ 64 nodes)
//	core/     - ordered, validating graph used to assemble networks
//	bfs/      - breadth-first sweep on index adjacency lists
//	distance/ - all-pairs hop table (BFS per source, Floyd–Warshall check)
//	network/  - immutable node arena + text parser and formatter
//	builder/  - seeded synthetic networks (path, cycle, star, grid, random)
//	search/   - generic best-first branch-and-bound driver
//	valve/    - the activation scheduler (hop and travel models)
//	cmd/valvenet - command-line front end
//
// Quick start
//
//	net, _ := network.Parse(f)
//	p, _ := valve.NewProblem(net, valve.WithHorizon(26), valve.WithAgents(2))
//	res, _ := valve.Solve(ctx, p, valve.WithTrace())
//	fmt.Println(res.Value)
//
// Libraries never log; observability comes from search.Stats, the
// improvement history and the optional schedule trace.
package valvenet
