package sinkgen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedTable is returned by ParseLookupTable for text it cannot read.
var ErrMalformedTable = errors.New("malformed lookup table")

// ParseLookupTable reads the @begin/@end blocks of lookup-table text. Lines
// outside a block are ignored; inside a block every non-blank line must be
// "name symbol attributes arity".
func ParseLookupTable(text []byte) ([]LookupTable, error) {
	var (
		tables  []LookupTable
		current *LookupTable
		lineNo  int
	)
	sc := bufio.NewScanner(bytes.NewReader(text))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "@begin"):
			if current != nil {
				return nil, fmt.Errorf("%w: line %d: @begin inside %s", ErrMalformedTable, lineNo, current.Name)
			}
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: @begin needs exactly one table name", ErrMalformedTable, lineNo)
			}
			current = &LookupTable{Name: fields[1]}
		case line == "@end":
			if current == nil {
				return nil, fmt.Errorf("%w: line %d: @end without @begin", ErrMalformedTable, lineNo)
			}
			tables = append(tables, *current)
			current = nil
		case current == nil || line == "":
			continue
		default:
			row, err := parseRow(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTable, lineNo, err)
			}
			current.Rows = append(current.Rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading lookup table: %w", err)
	}
	if current != nil {
		return nil, fmt.Errorf("%w: table %s is not terminated", ErrMalformedTable, current.Name)
	}
	return tables, nil
}

func parseRow(line string) (MethodBinding, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return MethodBinding{}, fmt.Errorf("expected 4 columns, got %d in %q", len(fields), line)
	}
	arity, err := strconv.Atoi(fields[3])
	if err != nil || arity < 0 {
		return MethodBinding{}, fmt.Errorf("invalid arity %q", fields[3])
	}
	return MethodBinding{Name: fields[0], Symbol: fields[1], Attributes: fields[2], Arity: arity}, nil
}

// VerifyLookupTable checks that parsed tables match the schema exactly:
// same tables in the same order, same rows.
func VerifyLookupTable(s *Schema, tables []LookupTable) error {
	want := s.Tables()
	if len(tables) != len(want) {
		return fmt.Errorf("%w: expected %d tables, found %d", ErrMalformedTable, len(want), len(tables))
	}
	for i := range want {
		if tables[i].Name != want[i].Name {
			return fmt.Errorf("%w: table %d is %s, expected %s", ErrMalformedTable, i, tables[i].Name, want[i].Name)
		}
		if !slices.Equal(tables[i].Rows, want[i].Rows) {
			return fmt.Errorf("%w: rows of %s do not match the schema", ErrMalformedTable, want[i].Name)
		}
	}
	return nil
}
