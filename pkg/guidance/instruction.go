package guidance

import (
	"fmt"
	"strings"

	"lintang/hospitalnav/pkg/datastructure"
)

const NoRoadsAvailable = "No roads available."

const (
	START = iota
	CONTINUE_ON_STREET
	FINISH
)

// Instruction satu langkah navigasi: ambil jalan Name.
type Instruction struct {
	Sign int
	Name string
}

func (instr Instruction) GetTurnDescription() string {
	switch instr.Sign {
	case START:
		return fmt.Sprintf("Start by taking %s road", instr.Name)
	case FINISH:
		return fmt.Sprintf("and finally, take %s road to reach your destination.", instr.Name)
	default:
		return fmt.Sprintf("then continue on %s road", instr.Name)
	}
}

// NewInstructions road-name sequence -> instructions. index 0 selalu START, jadi path 1 jalan tidak pernah dapat FINISH.
func NewInstructions(roadSequence []string) []Instruction {
	instructions := make([]Instruction, 0, len(roadSequence))
	for i, road := range roadSequence {
		sign := CONTINUE_ON_STREET
		if i == 0 {
			sign = START
		} else if i == len(roadSequence)-1 {
			sign = FINISH
		}
		instructions = append(instructions, Instruction{Sign: sign, Name: road})
	}
	return instructions
}

// FormatPath render road-name sequence jadi satu kalimat petunjuk arah.
func FormatPath(roadSequence []string) string {
	if len(roadSequence) == 0 {
		return NoRoadsAvailable
	}

	descriptions := make([]string, 0, len(roadSequence))
	for _, ins := range NewInstructions(roadSequence) {
		descriptions = append(descriptions, ins.GetTurnDescription())
	}
	return strings.Join(descriptions, " ")
}

type RoadGraph interface {
	EdgeData(u, v int64) (datastructure.Edge, bool)
}

// PathRoadNames nama jalan untuk setiap edge di path. edge multi-name di-expand satu entry per nama.
// kalau ada parallel edge, yang dipakai edge key 0. pasangan node tanpa edge di-skip.
func PathRoadNames(g RoadGraph, path []int64) []string {
	names := []string{}
	for i := 0; i+1 < len(path); i++ {
		edge, ok := g.EdgeData(path[i], path[i+1])
		if !ok {
			continue
		}
		names = append(names, edge.RoadNames()...)
	}
	return names
}

// SimplifyPath gabung nama jalan yang sama & bersebelahan. duplikat yang tidak bersebelahan tetap ada.
func SimplifyPath(edges []string) []string {
	simplified := []string{}
	for i, edge := range edges {
		if i == 0 || edge != edges[i-1] {
			simplified = append(simplified, edge)
		}
	}
	return simplified
}

// Directions path -> instruksi teks lengkap.
func Directions(g RoadGraph, path []int64) (string, []string) {
	roads := SimplifyPath(PathRoadNames(g, path))
	return FormatPath(roads), roads
}
