package clocktree

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/clocktree/blockage"
	"github.com/katalvlaran/clocktree/dme"
	"github.com/katalvlaran/clocktree/geom"
	"github.com/katalvlaran/clocktree/ispd"
	"github.com/katalvlaran/clocktree/topology"
)

// Run executes the full pipeline: parse inPath, build the blockage index,
// synthesize a topology, embed it with DME, and write outPath. The output
// file is written via a temp-file-then-rename so a failure never leaves a
// partial file at outPath.
func Run(cfg Config, inPath, outPath string) error {
	log := cfg.loggerOrNop()

	in, err := parseInput(inPath)
	if err != nil {
		return err
	}
	log.Info("parsed input",
		zap.String("file", inPath),
		zap.Int("sinks", len(in.Sinks)),
		zap.Int("blockages", len(in.Blockages)),
	)

	if err := validateBounds(in); err != nil {
		return err
	}

	wire, err := selectWire(in.Wires, cfg.WireIndex)
	if err != nil {
		return err
	}

	blocks := blockage.NewIndex()
	for _, b := range in.Blockages {
		if err := blocks.Insert(b.X1, b.Y1, b.X2, b.Y2); err != nil {
			return fmt.Errorf("clocktree: building blockage index: %w", err)
		}
	}

	topo, err := synthesizeTopology(in, cfg, blocks)
	if err != nil {
		return err
	}
	log.Info("synthesized topology",
		zap.String("algorithm", cfg.Algorithm.String()),
		zap.Int("edges", len(topo.Edges)),
	)

	embedded, detours, err := dme.Embed(topo, dme.WireType{
		CapPerUnit: wire.CapPerUnit,
		ResPerUnit: wire.ResPerUnit,
	})
	if err != nil {
		return fmt.Errorf("clocktree: embedding: %w", err)
	}
	for _, idx := range detours {
		log.Warn("detour case in zero-skew merge", zap.Int32("node", idx))
	}

	rec := buildOutputRecord(topo, embedded, wire)

	if err := writeAtomic(outPath, rec); err != nil {
		return err
	}
	log.Info("wrote output", zap.String("file", outPath))

	return nil
}

func parseInput(inPath string) (ispd.InputParams, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return ispd.InputParams{}, fmt.Errorf("clocktree: opening input: %w", err)
	}
	defer f.Close()

	in, err := ispd.Parse(f)
	if err != nil {
		return ispd.InputParams{}, fmt.Errorf("clocktree: parsing input: %w", err)
	}

	return in, nil
}

// validateBounds checks that the source and every sink fall within the
// file's declared floorplan. This is a supplemental feature: the ISPD
// benchmark convention implies it, but the original parser never enforces
// it.
func validateBounds(in ispd.InputParams) error {
	if !in.Floorplan.Contains(in.Source.Point) {
		return fmt.Errorf("%w: source %q at (%d,%d)", ErrOutOfBounds, in.Source.Name, in.Source.Point.X, in.Source.Point.Y)
	}
	for _, s := range in.Sinks {
		if !in.Floorplan.Contains(s.Point) {
			return fmt.Errorf("%w: sink %q at (%d,%d)", ErrOutOfBounds, s.ID, s.Point.X, s.Point.Y)
		}
	}

	return nil
}

// selectWire resolves idx against the wire library, supporting negative
// indices counting back from the end (idx=-1 selects the last entry).
func selectWire(wires []ispd.WireSpec, idx int) (ispd.WireSpec, error) {
	if len(wires) == 0 {
		return ispd.WireSpec{}, ErrNoWires
	}

	resolved := idx
	if resolved < 0 {
		resolved += len(wires)
	}
	if resolved < 0 || resolved >= len(wires) {
		return ispd.WireSpec{}, fmt.Errorf("%w: index %d, library size %d", ErrBadWireIndex, idx, len(wires))
	}

	return wires[resolved], nil
}

func synthesizeTopology(in ispd.InputParams, cfg Config, blocks *blockage.Index) (topology.Result, error) {
	sinks := make([]topology.Sink, len(in.Sinks))
	for i, s := range in.Sinks {
		sinks[i] = topology.Sink{ID: s.ID, X: s.Point.X, Y: s.Point.Y, LdCap: s.Cap}
	}
	src := topology.Source{Name: in.Source.Name, X: in.Source.Point.X, Y: in.Source.Point.Y}

	topo, err := topology.Synthesize(src, sinks, cfg.topologySettings(), blocks)
	if err != nil {
		return topology.Result{}, fmt.Errorf("clocktree: synthesizing topology: %w", err)
	}

	return topo, nil
}

func buildOutputRecord(topo topology.Result, embedded map[int32]dme.Node, wire ispd.WireSpec) ispd.OutputRecord {
	rec := ispd.OutputRecord{
		SourceNode: 0,
		SourceName: topo.Tags[0],
	}

	for _, n := range topo.Nodes {
		switch n.Kind {
		case topology.InternalNode:
			x, y := coreCoords(embedded[n.Idx])
			rec.Nodes = append(rec.Nodes, ispd.OutputNode{Idx: n.Idx, X: x, Y: y})
		case topology.SinkNode:
			rec.SinkNodes = append(rec.SinkNodes, ispd.OutputSinkTag{Idx: n.Idx, Tag: topo.Tags[n.Idx]})
		}
	}

	for _, e := range topo.Edges {
		rec.Wires = append(rec.Wires, ispd.OutputWire{From: e[0], To: e[1], WireType: wire.TypeID})
	}

	return rec
}

// coreCoords picks a concrete output point from a node's merging region:
// the region itself when it is already a point, or the segment's midpoint
// when DME left a range of zero-skew-preserving candidates (the top-down
// concrete-point selection phase that classic DME performs is out of
// scope here; the midpoint is the simplest representative choice).
func coreCoords(n dme.Node) (int64, int64) {
	switch c := n.Core.(type) {
	case geom.Point:
		return c.X, c.Y
	case geom.Segment:
		return (c.P1.X + c.P2.X) / 2, (c.P1.Y + c.P2.Y) / 2
	default:
		return 0, 0
	}
}

func writeAtomic(outPath string, rec ispd.OutputRecord) error {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, ".clocktree-*.tmp")
	if err != nil {
		return fmt.Errorf("clocktree: creating temp output: %w", err)
	}
	tmpPath := tmp.Name()

	if err := ispd.WriteOutput(tmp, rec); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return fmt.Errorf("clocktree: writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("clocktree: closing temp output: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("clocktree: renaming temp output: %w", err)
	}

	return nil
}
