package ispd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/clocktree/geom"
)

type parseMode int

const (
	modeFloorplan parseMode = iota
	modeSource
	modeSink
	modeWire
	modeBuf
	modeSimul
	modeSlew
	modeCap
	modeBlockage
)

// Parse reads an ISPD benchmark file: floorplan, source, sinks, wires,
// buffers, simulation parameters, and trailing blockage records (see
// Blockage's doc comment). Blank lines are skipped, matching the
// original's line reader.
func Parse(r io.Reader) (InputParams, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var out InputParams
	mode := modeFloorplan
	remaining := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch mode {
		case modeFloorplan:
			if err := parseFloorplan(fields, &out); err != nil {
				return InputParams{}, err
			}
			mode = modeSource

		case modeSource:
			if err := parseSource(fields, &out); err != nil {
				return InputParams{}, err
			}
			mode = modeSink

		case modeSink:
			var done bool
			var err error
			remaining, done, err = readCountedRecord(fields, remaining, func(f []string) error {
				s, err := parseSink(f)
				if err != nil {
					return err
				}
				out.Sinks = append(out.Sinks, s)

				return nil
			})
			if err != nil {
				return InputParams{}, err
			}
			if done {
				mode = modeWire
			}

		case modeWire:
			var done bool
			var err error
			remaining, done, err = readCountedRecord(fields, remaining, func(f []string) error {
				w, err := parseWire(f)
				if err != nil {
					return err
				}
				out.Wires = append(out.Wires, w)

				return nil
			})
			if err != nil {
				return InputParams{}, err
			}
			if done {
				mode = modeBuf
			}

		case modeBuf:
			var done bool
			var err error
			remaining, done, err = readCountedRecord(fields, remaining, func(f []string) error {
				b, err := parseBuffer(f)
				if err != nil {
					return err
				}
				out.Buffers = append(out.Buffers, b)

				return nil
			})
			if err != nil {
				return InputParams{}, err
			}
			if done {
				mode = modeSimul
			}

		case modeSimul:
			if len(fields) < 4 {
				return InputParams{}, fmt.Errorf("%w: simulation record", ErrInvalidInput)
			}
			p1, err1 := strconv.ParseFloat(fields[len(fields)-2], 64)
			p2, err2 := strconv.ParseFloat(fields[len(fields)-1], 64)
			if err1 != nil || err2 != nil {
				return InputParams{}, fmt.Errorf("%w: simulation record", ErrInvalidInput)
			}
			out.Sim.VDDParam1, out.Sim.VDDParam2 = p1, p2
			mode = modeSlew

		case modeSlew:
			v, err := lastInt(fields)
			if err != nil {
				return InputParams{}, fmt.Errorf("%w: slew-limit record", ErrInvalidInput)
			}
			out.Sim.SlewLimit = v
			mode = modeCap

		case modeCap:
			v, err := lastInt(fields)
			if err != nil {
				return InputParams{}, fmt.Errorf("%w: cap-limit record", ErrInvalidInput)
			}
			out.Sim.CapLimit = v
			mode = modeBlockage

		case modeBlockage:
			blk, err := parseBlockage(fields)
			if err != nil {
				return InputParams{}, err
			}
			out.Blockages = append(out.Blockages, blk)
		}
	}
	if err := scanner.Err(); err != nil {
		return InputParams{}, err
	}

	return out, nil
}

// readCountedRecord implements the "num <kind> <N>" header followed by N
// records pattern shared by sinks, wires, and buffers. It returns the
// updated remaining count and whether the section is now complete. N=0 is
// handled correctly (unlike the original, which never leaves the section
// if its header count is zero).
func readCountedRecord(fields []string, remaining int, parseOne func([]string) error) (int, bool, error) {
	if remaining == 0 {
		if len(fields) == 0 {
			return 0, true, fmt.Errorf("%w: count header record", ErrInvalidInput)
		}
		n, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return 0, true, fmt.Errorf("%w: count header record", ErrInvalidInput)
		}
		if n < 0 {
			return 0, true, fmt.Errorf("%w: negative count in header record", ErrInvalidInput)
		}
		if n == 0 {
			return 0, true, nil
		}

		return n, false, nil
	}

	if err := parseOne(fields); err != nil {
		return remaining, false, err
	}
	remaining--

	return remaining, remaining == 0, nil
}

func parseFloorplan(fields []string, out *InputParams) error {
	if len(fields) < 4 {
		return fmt.Errorf("%w: floorplan record", ErrInvalidInput)
	}
	vals, err := parseInts(fields[:4])
	if err != nil {
		return fmt.Errorf("%w: floorplan record", ErrInvalidInput)
	}
	out.Floorplan = Floorplan{
		LL: geom.Point{X: vals[0], Y: vals[1]},
		UR: geom.Point{X: vals[2], Y: vals[3]},
	}

	return nil
}

func parseSource(fields []string, out *InputParams) error {
	if len(fields) < 5 {
		return fmt.Errorf("%w: source record", ErrInvalidInput)
	}
	vals, err := parseInts(fields[2:4])
	if err != nil {
		return fmt.Errorf("%w: source record", ErrInvalidInput)
	}
	out.Source = Source{
		Name:          fields[1],
		Point:         geom.Point{X: vals[0], Y: vals[1]},
		DefaultBuffer: fields[4],
	}

	return nil
}

func parseSink(fields []string) (Sink, error) {
	if len(fields) < 4 {
		return Sink{}, fmt.Errorf("%w: sink record", ErrInvalidInput)
	}
	coords, err := parseInts(fields[1:3])
	if err != nil {
		return Sink{}, fmt.Errorf("%w: sink record", ErrInvalidInput)
	}
	cap, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Sink{}, fmt.Errorf("%w: sink record", ErrInvalidInput)
	}

	return Sink{
		ID:    fields[0],
		Point: geom.Point{X: coords[0], Y: coords[1]},
		Cap:   cap,
	}, nil
}

func parseWire(fields []string) (WireSpec, error) {
	if len(fields) < 3 {
		return WireSpec{}, fmt.Errorf("%w: wire record", ErrInvalidInput)
	}
	typeID, err := strconv.Atoi(fields[0])
	if err != nil {
		return WireSpec{}, fmt.Errorf("%w: wire record", ErrInvalidInput)
	}
	c, err1 := strconv.ParseFloat(fields[1], 64)
	r, err2 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil {
		return WireSpec{}, fmt.Errorf("%w: wire record", ErrInvalidInput)
	}

	return WireSpec{TypeID: typeID, CapPerUnit: c, ResPerUnit: r}, nil
}

func parseBuffer(fields []string) (BufferSpec, error) {
	if len(fields) < 6 {
		return BufferSpec{}, fmt.Errorf("%w: buffer record", ErrInvalidInput)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return BufferSpec{}, fmt.Errorf("%w: buffer record", ErrInvalidInput)
	}
	invertedInt, err := strconv.Atoi(fields[2])
	if err != nil {
		return BufferSpec{}, fmt.Errorf("%w: buffer record", ErrInvalidInput)
	}
	inCap, err1 := strconv.ParseFloat(fields[3], 64)
	outCap, err2 := strconv.ParseFloat(fields[4], 64)
	res, err3 := strconv.ParseFloat(fields[5], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return BufferSpec{}, fmt.Errorf("%w: buffer record", ErrInvalidInput)
	}

	return BufferSpec{
		ID:         id,
		Name:       fields[1],
		Inverted:   invertedInt != 0,
		InCap:      inCap,
		OutCap:     outCap,
		Resistance: res,
	}, nil
}

func parseBlockage(fields []string) (Blockage, error) {
	if len(fields) < 5 || !strings.EqualFold(fields[0], "blockage") {
		return Blockage{}, fmt.Errorf("%w: blockage record", ErrInvalidInput)
	}
	vals, err := parseInts(fields[1:5])
	if err != nil {
		return Blockage{}, fmt.Errorf("%w: blockage record", ErrInvalidInput)
	}

	return Blockage{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, nil
}

func parseInts(fields []string) ([]int64, error) {
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func lastInt(fields []string) (int64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: expected trailing integer field", ErrInvalidInput)
	}

	return strconv.ParseInt(fields[len(fields)-1], 10, 64)
}
