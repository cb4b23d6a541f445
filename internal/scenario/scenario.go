// Package scenario loads TOML scenario files that describe a buffer and
// an ordered list of operations to replay against it. The demo and the
// examples use scenarios to set up reproducible buffer states.
package scenario

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/sparsebuf/sparse"
)

// Scenario is a buffer size plus the operations applied to it, in order.
type Scenario struct {
	Size int64 `toml:"size"`
	Ops  []Op  `toml:"op"`
}

// Op is a single scripted operation. Kind selects the operation; the
// remaining fields are read depending on it:
//
//	load    offset + data (hex string), or offset + length [+ fill]
//	remove  start + end (inclusive)
//	seek    offset [+ whence: "start", "current", "end"]
//	resize  size
//	clear   no fields
type Op struct {
	Kind string `toml:"kind"`

	Offset int64  `toml:"offset"`
	Data   string `toml:"data"`
	Fill   int64  `toml:"fill"`
	Length int64  `toml:"length"`

	Start int64 `toml:"start"`
	End   int64 `toml:"end"`

	Whence string `toml:"whence"`

	Size int64 `toml:"size"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse parses and validates TOML scenario data.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", sc.Size)
	}
	for i, op := range sc.Ops {
		if err := op.validate(); err != nil {
			return fmt.Errorf("op %d: %w", i+1, err)
		}
	}
	return nil
}

func (op *Op) validate() error {
	switch op.Kind {
	case "load":
		if op.Data != "" && op.Length > 0 {
			return fmt.Errorf("load: data and length are mutually exclusive")
		}
		if op.Data == "" && op.Length <= 0 {
			return fmt.Errorf("load: need data or a positive length")
		}
		if op.Data != "" {
			if _, err := hex.DecodeString(op.Data); err != nil {
				return fmt.Errorf("load: bad hex data: %w", err)
			}
		}
		if op.Fill < 0 || op.Fill > 0xFF {
			return fmt.Errorf("load: fill %d out of byte range", op.Fill)
		}
	case "remove":
		// Bounds are checked by the buffer; only ordering is static.
		if op.End < op.Start {
			return fmt.Errorf("remove: end %d before start %d", op.End, op.Start)
		}
	case "seek":
		if _, err := parseWhence(op.Whence); err != nil {
			return fmt.Errorf("seek: %w", err)
		}
	case "resize":
		if op.Size <= 0 {
			return fmt.Errorf("resize: size must be positive, got %d", op.Size)
		}
	case "clear":
	case "":
		return fmt.Errorf("missing kind")
	default:
		return fmt.Errorf("unknown kind %q", op.Kind)
	}
	return nil
}

// Build creates a buffer of the scenario's size and replays the ops.
func (sc *Scenario) Build() (*sparse.Buffer, error) {
	b, err := sparse.New(sc.Size)
	if err != nil {
		return nil, err
	}
	if err := sc.Apply(b); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

// Apply replays the scenario's operations against b, stopping at the
// first failure.
func (sc *Scenario) Apply(b *sparse.Buffer) error {
	for i, op := range sc.Ops {
		if err := op.apply(b); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op.Kind, err)
		}
	}
	return nil
}

func (op *Op) apply(b *sparse.Buffer) error {
	switch op.Kind {
	case "load":
		return b.LoadRange(op.Offset, op.payload())
	case "remove":
		return b.RemoveRange(op.Start, op.End)
	case "seek":
		w, err := parseWhence(op.Whence)
		if err != nil {
			return err
		}
		_, err = b.Seek(op.Offset, w)
		return err
	case "resize":
		return b.Resize(op.Size)
	case "clear":
		b.Clear()
		return nil
	default:
		return fmt.Errorf("unknown kind %q", op.Kind)
	}
}

func (op *Op) payload() []byte {
	if op.Data != "" {
		p, _ := hex.DecodeString(op.Data)
		return p
	}
	p := make([]byte, op.Length)
	for i := range p {
		p[i] = byte(op.Fill)
	}
	return p
}

func parseWhence(s string) (sparse.Whence, error) {
	switch strings.ToLower(s) {
	case "", "start":
		return sparse.SeekStart, nil
	case "current":
		return sparse.SeekCurrent, nil
	case "end":
		return sparse.SeekEnd, nil
	default:
		return 0, fmt.Errorf("unknown whence %q", s)
	}
}
