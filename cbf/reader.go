// SPDX-License-Identifier: MIT

package cbf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/disco/cone"
)

// Block keywords.
const (
	kwVersion   = "VER"
	kwObjSense  = "OBJSENSE"
	kwVar       = "VAR"
	kwInt       = "INT"
	kwCon       = "CON"
	kwObjACoord = "OBJACOORD"
	kwObjBCoord = "OBJBCOORD"
	kwACoord    = "ACOORD"
	kwBCoord    = "BCOORD"
)

// SupportedVersion is the only accepted VER value.
const SupportedVersion = 1

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cbf: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read parses a conic-program description from r.
//
// Contracts:
//   - VER and VAR are required; CON absent means zero rows; INT, OBJACOORD,
//     OBJBCOORD, ACOORD, BCOORD absent mean empty.
//   - Each block appears at most once.
//   - Domain sizes are positive and sum to the declared counts.
//   - Every sparse index lies inside the declared columns/rows.
//   - Declared column and row counts are at most the WithMaxSize cap.
//
// Errors: the sentinels in errors.go, wrapped with the line number.
func Read(r io.Reader, opts ...Option) (*Instance, error) {
	o := gatherOptions(opts)
	p := &parser{sc: bufio.NewScanner(r), log: o.logger, maxSize: o.maxSize, seen: make(map[string]bool)}
	p.sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	p.in.Sense = Minimize

	var (
		line string
		ok   bool
		err  error
	)
	for {
		if line, ok = p.nextLine(); !ok {
			break
		}
		if !isKeyword(line) {
			continue
		}
		if p.seen[line] {
			return nil, p.errorf(ErrMalformed, "repeated %s block", line)
		}
		p.seen[line] = true
		if err = p.block(line); err != nil {
			return nil, err
		}
		p.pending = nil // rest of the last data line is ignored
		p.log.Debug("cbf block read", zap.String("block", line), zap.Int("line", p.lineNo))
	}
	if err = p.sc.Err(); err != nil {
		return nil, fmt.Errorf("cbf: read: %w", err)
	}

	if !p.seen[kwVersion] {
		return nil, fmt.Errorf("%w: %s", ErrMissingBlock, kwVersion)
	}
	if !p.seen[kwVar] {
		return nil, fmt.Errorf("%w: %s", ErrMissingBlock, kwVar)
	}
	p.fillDefaults()

	return &p.in, nil
}

func isKeyword(s string) bool {
	switch s {
	case kwVersion, kwObjSense, kwVar, kwInt, kwCon, kwObjACoord, kwObjBCoord, kwACoord, kwBCoord:
		return true
	}

	return false
}

// parser is a token reader over lines plus the instance under construction.
type parser struct {
	sc      *bufio.Scanner
	log     *zap.Logger
	maxSize int
	lineNo  int
	pending []string
	seen    map[string]bool
	in      Instance
}

// nextLine returns the next non-empty, non-comment line, trimmed.
func (p *parser) nextLine() (string, bool) {
	for p.sc.Scan() {
		p.lineNo++
		s := strings.TrimSpace(p.sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		return s, true
	}

	return "", false
}

// token returns the next whitespace-separated token, crossing lines.
func (p *parser) token() (string, error) {
	for len(p.pending) == 0 {
		s, ok := p.nextLine()
		if !ok {
			return "", p.errorf(ErrMalformed, "unexpected end of input")
		}
		p.pending = strings.Fields(s)
	}
	tok := p.pending[0]
	p.pending = p.pending[1:]

	return tok, nil
}

func (p *parser) int() (int, error) {
	tok, err := p.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, p.errorf(ErrMalformed, "integer expected, got %q", tok)
	}

	return v, nil
}

func (p *parser) count() (int, error) {
	v, err := p.int()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, p.errorf(ErrMalformed, "negative count %d", v)
	}

	return v, nil
}

func (p *parser) float() (float64, error) {
	tok, err := p.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.errorf(ErrMalformed, "number expected, got %q", tok)
	}

	return v, nil
}

func (p *parser) errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("cbf: line %d: %w: %s", p.lineNo, sentinel, fmt.Sprintf(format, args...))
}

// need fails with ErrMissingBlock unless every dependency was read already.
func (p *parser) need(block string, deps ...string) error {
	for _, d := range deps {
		if !p.seen[d] {
			return p.errorf(ErrMissingBlock, "%s used before %s", block, d)
		}
	}

	return nil
}

func (p *parser) block(kw string) error {
	switch kw {
	case kwVersion:
		return p.readVersion()
	case kwObjSense:
		return p.readSense()
	case kwVar:
		return p.readVar()
	case kwInt:
		return p.readInt()
	case kwCon:
		return p.readCon()
	case kwObjACoord:
		return p.readObjACoord()
	case kwObjBCoord:
		return p.readObjBCoord()
	case kwACoord:
		return p.readACoord()
	case kwBCoord:
		return p.readBCoord()
	}

	return nil
}

func (p *parser) readVersion() error {
	v, err := p.int()
	if err != nil {
		return err
	}
	if v != SupportedVersion {
		return p.errorf(ErrUnsupportedVersion, "got %d", v)
	}
	p.in.Version = v

	return nil
}

func (p *parser) readSense() error {
	tok, err := p.token()
	if err != nil {
		return err
	}
	p.in.Sense = Minimize
	if tok == "MAX" {
		p.in.Sense = Maximize
	}

	return nil
}

// readDomains reads "count numDomains" followed by (token size) pairs.
func (p *parser) readDomains() (int, []cone.Domain, error) {
	total, err := p.count()
	if err != nil {
		return 0, nil, err
	}
	if total > p.maxSize {
		return 0, nil, p.errorf(ErrMalformed, "count %d exceeds limit %d", total, p.maxSize)
	}
	n, err := p.count()
	if err != nil {
		return 0, nil, err
	}
	// every domain has at least one member
	if n > total {
		return 0, nil, p.errorf(ErrPartition, "%d domains for %d members", n, total)
	}

	var (
		kinds []cone.Kind
		sizes []int
		k     cone.Kind
		size  int
		tok   string
	)
	for i := 0; i < n; i++ {
		if tok, err = p.token(); err != nil {
			return 0, nil, err
		}
		if k, err = cone.ParseKind(tok); err != nil {
			return 0, nil, p.errorf(ErrUnknownDomain, "%q", tok)
		}
		if size, err = p.int(); err != nil {
			return 0, nil, err
		}
		if size > total {
			return 0, nil, p.errorf(ErrPartition, "domain %d has size %d of %d", i, size, total)
		}
		kinds, sizes = append(kinds, k), append(sizes, size)
	}
	domains, err := cone.Layout(kinds, sizes, total)
	if err != nil {
		return 0, nil, p.errorf(ErrPartition, "%v", err)
	}

	return total, domains, nil
}

func (p *parser) readVar() error {
	n, domains, err := p.readDomains()
	if err != nil {
		return err
	}
	p.in.NumCols, p.in.ColDomains = n, domains

	return nil
}

func (p *parser) readCon() error {
	n, domains, err := p.readDomains()
	if err != nil {
		return err
	}
	p.in.NumRows, p.in.RowDomains = n, domains

	return nil
}

func (p *parser) readInt() error {
	if err := p.need(kwInt, kwVar); err != nil {
		return err
	}
	n, err := p.count()
	if err != nil {
		return err
	}
	p.in.Integers = []int{}

	var j int
	for i := 0; i < n; i++ {
		if j, err = p.int(); err != nil {
			return err
		}
		if j < 0 || j >= p.in.NumCols {
			return p.errorf(ErrIndexOutOfRange, "integer column %d", j)
		}
		p.in.Integers = append(p.in.Integers, j)
	}

	return nil
}

func (p *parser) readObjACoord() error {
	if err := p.need(kwObjACoord, kwVar); err != nil {
		return err
	}
	n, err := p.count()
	if err != nil {
		return err
	}
	p.in.Objective = make([]float64, p.in.NumCols)

	var (
		j int
		v float64
	)
	for k := 0; k < n; k++ {
		if j, err = p.int(); err != nil {
			return err
		}
		if v, err = p.float(); err != nil {
			return err
		}
		if j < 0 || j >= p.in.NumCols {
			return p.errorf(ErrIndexOutOfRange, "objective column %d", j)
		}
		p.in.Objective[j] = v
	}

	return nil
}

func (p *parser) readObjBCoord() error {
	v, err := p.float()
	if err != nil {
		return err
	}
	p.in.ObjConstant = v

	return nil
}

func (p *parser) readACoord() error {
	if err := p.need(kwACoord, kwVar, kwCon); err != nil {
		return err
	}
	n, err := p.count()
	if err != nil {
		return err
	}
	var (
		i, j int
		v    float64
	)
	for k := 0; k < n; k++ {
		if i, err = p.int(); err != nil {
			return err
		}
		if j, err = p.int(); err != nil {
			return err
		}
		if v, err = p.float(); err != nil {
			return err
		}
		if i < 0 || i >= p.in.NumRows {
			return p.errorf(ErrIndexOutOfRange, "matrix row %d", i)
		}
		if j < 0 || j >= p.in.NumCols {
			return p.errorf(ErrIndexOutOfRange, "matrix column %d", j)
		}
		p.in.ARows = append(p.in.ARows, i)
		p.in.ACols = append(p.in.ACols, j)
		p.in.AVals = append(p.in.AVals, v)
	}

	return nil
}

func (p *parser) readBCoord() error {
	if err := p.need(kwBCoord, kwCon); err != nil {
		return err
	}
	n, err := p.count()
	if err != nil {
		return err
	}
	p.in.Constant = make([]float64, p.in.NumRows)

	var (
		i int
		v float64
	)
	for k := 0; k < n; k++ {
		if i, err = p.int(); err != nil {
			return err
		}
		if v, err = p.float(); err != nil {
			return err
		}
		if i < 0 || i >= p.in.NumRows {
			return p.errorf(ErrIndexOutOfRange, "constant row %d", i)
		}
		p.in.Constant[i] = v
	}

	return nil
}

// fillDefaults sizes the optional dense arrays that were not read.
func (p *parser) fillDefaults() {
	if p.in.Objective == nil {
		p.in.Objective = make([]float64, p.in.NumCols)
	}
	if p.in.Constant == nil {
		p.in.Constant = make([]float64, p.in.NumRows)
	}
	if p.in.Integers == nil {
		p.in.Integers = []int{}
	}
}
