package network

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Accepted line forms. Both capture (id, rate, neighbor list).
var (
	valveLine = regexp.MustCompile(`^Valve (\S+) has flow rate=(-?\d+); tunnels? leads? to valves?\s*(.*)$`)
	nodeLine  = regexp.MustCompile(`^node (\S+) has value (-?\d+);\s*connects to\s*(.*)$`)
)

// Parse reads a network description, one node per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	node AA has value 0; connects to DD, II, BB
//
// Blank lines and lines starting with '#' are skipped. The node order of
// the input becomes the dense index order, and neighbor order is kept.
//
// Errors are *ConfigError carrying the offending line.
func Parse(r io.Reader) (*Network, error) {
	var (
		nodes []Node
		lines []int
		no    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		no++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		nd, err := parseLine(line)
		if err != nil {
			return nil, &ConfigError{Line: no, Err: err}
		}
		nodes = append(nodes, nd)
		lines = append(lines, no)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("network: read: %w", err)
	}

	return build(nodes, lines)
}

// ParseString is Parse over an in-memory description.
func ParseString(s string) (*Network, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(line string) (Node, error) {
	m := valveLine.FindStringSubmatch(line)
	if m == nil {
		m = nodeLine.FindStringSubmatch(line)
	}
	if m == nil {
		return Node{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return Node{}, fmt.Errorf("%w: rate %q: %v", ErrSyntax, m[2], err)
	}
	nd := Node{ID: m[1], Rate: rate}
	if list := strings.TrimSpace(m[3]); list != "" {
		for _, nb := range strings.Split(list, ",") {
			nd.Neighbors = append(nd.Neighbors, strings.TrimSpace(nb))
		}
	}

	return nd, nil
}

// Format writes n in the Valve line form accepted by Parse.
func Format(w io.Writer, n *Network) error {
	bw := bufio.NewWriter(w)
	for _, nd := range n.nodes {
		plural := "s lead to valves"
		if len(nd.Neighbors) == 1 {
			plural = " leads to valve"
		}
		if _, err := fmt.Fprintf(bw, "Valve %s has flow rate=%d; tunnel%s %s\n",
			nd.ID, nd.Rate, plural, strings.Join(nd.Neighbors, ", ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
