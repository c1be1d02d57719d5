package aiger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MyskYko/fresub/aig"
)

type header struct {
	binary        bool
	m, i, l, o, a int
}

func parseHeader(line string) (header, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return header{}, ErrBadHeader
	}
	var h header
	switch fields[0] {
	case "aag":
		h.binary = false
	case "aig":
		h.binary = true
	default:
		return header{}, ErrBadHeader
	}
	nums := make([]int, 5)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return header{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
		nums[i] = n
	}
	h.m, h.i, h.l, h.o, h.a = nums[0], nums[1], nums[2], nums[3], nums[4]
	if h.l != 0 {
		return header{}, ErrLatchesUnsupported
	}
	return h, nil
}

// Read parses an AIGER file from r, ASCII or binary (auto-detected
// from the header keyword), and returns a populated graph with its PO
// list set, fanouts built, and levels computed.
func Read(r io.Reader) (*aig.Graph, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	h, err := parseHeader(strings.TrimRight(line, "\n"))
	if err != nil {
		return nil, err
	}

	g := aig.NewGraph(h.i)
	pos := make([]aig.Lit, h.o)
	for i := 0; i < h.o; i++ {
		l, err := readDecimalLine(br)
		if err != nil {
			return nil, err
		}
		pos[i] = aig.Lit(l)
	}

	if h.binary {
		err = readBinaryGates(br, g, h)
	} else {
		err = readASCIIGates(br, g, h)
	}
	if err != nil {
		return nil, err
	}

	for _, l := range pos {
		g.AddPO(l)
	}
	g.BuildFanouts()
	g.ComputeLevels()
	return g, nil
}

func readDecimalLine(br *bufio.Reader) (uint32, error) {
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, err
	}
	n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return uint32(n), nil
}

func readASCIIGates(br *bufio.Reader, g *aig.Graph, h header) error {
	for i := 0; i < h.a; i++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return ErrTruncated
		}
		var nums [3]uint64
		for j, f := range fields {
			n, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrTruncated, err)
			}
			nums[j] = n
		}
		if _, err := g.AppendGate(aig.Lit(nums[1]), aig.Lit(nums[2])); err != nil {
			return err
		}
	}
	return nil
}

// readBinaryGates decodes the i-th gate's fanins from two base-128,
// little-endian varints d0, d1: the gate's own literal is
// lhs = 2*v, d0 = lhs - f0, d1 = f0 - f1, where the writer orders f0
// and f1 descending (f0 >= f1) before computing the deltas, so d1 is
// always non-negative. AppendGate re-sorts f0/f1 back into the graph's
// own ascending canonical form; that re-sort is independent of, and
// happens after, this decoding.
func readBinaryGates(br *bufio.Reader, g *aig.Graph, h header) error {
	for i := 0; i < h.a; i++ {
		v := uint32(h.i + 1 + i)
		d0, err := readDelta(br)
		if err != nil {
			return err
		}
		d1, err := readDelta(br)
		if err != nil {
			return err
		}
		lhs := 2 * v
		f0 := lhs - d0
		f1 := f0 - d1
		if _, err := g.AppendGate(aig.Lit(f0), aig.Lit(f1)); err != nil {
			return err
		}
	}
	return nil
}

func readDelta(br *bufio.Reader) (uint32, error) {
	var x uint32
	var shift uint
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		x |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return x, nil
		}
		shift += 7
	}
}
