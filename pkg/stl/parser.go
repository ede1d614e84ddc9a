package stl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/stlmark/pkg/geometry"
)

// ParseError reports a malformed facet block. The facet index and line
// number locate the offending block in the source text.
type ParseError struct {
	Line   int
	Facet  int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stl: facet %d (line %d): %s", e.Facet, e.Line, e.Reason)
}

// ParseFile reads an ASCII STL file and returns a Model
func ParseFile(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := Parse(file)
	if err != nil {
		return nil, err
	}
	return model, nil
}

// Parse reads an ASCII STL solid from a reader. Every facet block must
// contain exactly one normal and exactly three vertices; anything else
// aborts the parse with a ParseError and no partial facet is kept.
func Parse(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	vertices := make([]geometry.Vector3, 0, 3)
	lineNo := 0
	facetNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) < 5 || fields[1] != "normal" {
				return nil, &ParseError{Line: lineNo, Facet: facetNo, Reason: "malformed facet normal line"}
			}
			x, _ := strconv.ParseFloat(fields[2], 64)
			y, _ := strconv.ParseFloat(fields[3], 64)
			z, _ := strconv.ParseFloat(fields[4], 64)
			currentNormal = geometry.NewVector3(x, y, z)

		case "vertex":
			if len(fields) < 4 {
				return nil, &ParseError{Line: lineNo, Facet: facetNo, Reason: "malformed vertex line"}
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			vertices = append(vertices, geometry.NewVector3(x, y, z))

		case "endloop":
			if len(vertices) != 3 {
				return nil, &ParseError{
					Line:   lineNo,
					Facet:  facetNo,
					Reason: fmt.Sprintf("facet loop has %d vertices, want 3", len(vertices)),
				}
			}

		case "endfacet":
			if len(vertices) != 3 {
				return nil, &ParseError{
					Line:   lineNo,
					Facet:  facetNo,
					Reason: fmt.Sprintf("facet has %d vertices, want 3", len(vertices)),
				}
			}
			model.AddFacet(geometry.NewTriangle(
				currentNormal,
				vertices[0],
				vertices[1],
				vertices[2],
			))
			facetNo++
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}
