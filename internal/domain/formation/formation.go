package formation

import (
	"fmt"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

// SlotCoordinate is a normalized on-field position for one starting
// slot: x and y are fractions of the pitch width/height, goal line at
// the bottom.
type SlotCoordinate struct {
	X float64
	Y float64
}

// Formation is a named, immutable starting-XI template: an ordered
// list of 11 required positions plus the pitch coordinates for each
// slot index.
type Formation struct {
	Name        string
	Positions   []player.Position
	Coordinates []SlotCoordinate
}

var formations = []Formation{
	{
		Name: "4-4-2",
		Positions: []player.Position{
			player.PositionGoalkeeper,
			player.PositionDefender, player.PositionDefender, player.PositionDefender, player.PositionDefender,
			player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder,
			player.PositionForward, player.PositionForward,
		},
		Coordinates: []SlotCoordinate{
			{0.5, 0.95},
			{0.15, 0.75}, {0.35, 0.75}, {0.65, 0.75}, {0.85, 0.75},
			{0.15, 0.50}, {0.35, 0.50}, {0.65, 0.50}, {0.85, 0.50},
			{0.35, 0.25}, {0.65, 0.25},
		},
	},
	{
		Name: "4-3-3",
		Positions: []player.Position{
			player.PositionGoalkeeper,
			player.PositionDefender, player.PositionDefender, player.PositionDefender, player.PositionDefender,
			player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder,
			player.PositionForward, player.PositionForward, player.PositionForward,
		},
		Coordinates: []SlotCoordinate{
			{0.5, 0.95},
			{0.15, 0.75}, {0.35, 0.75}, {0.65, 0.75}, {0.85, 0.75},
			{0.25, 0.50}, {0.5, 0.50}, {0.75, 0.50},
			{0.20, 0.25}, {0.5, 0.15}, {0.80, 0.25},
		},
	},
	{
		Name: "3-5-2",
		Positions: []player.Position{
			player.PositionGoalkeeper,
			player.PositionDefender, player.PositionDefender, player.PositionDefender,
			player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder,
			player.PositionForward, player.PositionForward,
		},
		Coordinates: []SlotCoordinate{
			{0.5, 0.95},
			{0.25, 0.75}, {0.5, 0.75}, {0.75, 0.75},
			{0.10, 0.50}, {0.30, 0.50}, {0.5, 0.50}, {0.70, 0.50}, {0.90, 0.50},
			{0.35, 0.25}, {0.65, 0.25},
		},
	},
	{
		Name: "5-3-1",
		Positions: []player.Position{
			player.PositionGoalkeeper,
			player.PositionDefender, player.PositionDefender, player.PositionDefender, player.PositionDefender, player.PositionDefender,
			player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder,
			player.PositionForward,
		},
		Coordinates: []SlotCoordinate{
			{0.5, 0.95},
			{0.10, 0.75}, {0.30, 0.75}, {0.5, 0.75}, {0.70, 0.75}, {0.90, 0.75},
			{0.25, 0.50}, {0.5, 0.50}, {0.75, 0.50},
			{0.5, 0.20},
		},
	},
}

// All returns the fixed formation catalog in declaration order.
func All() []Formation {
	out := make([]Formation, len(formations))
	copy(out, formations)
	return out
}

// ByName looks a formation up by its label, e.g. "4-3-3".
func ByName(name string) (Formation, error) {
	for _, f := range formations {
		if f.Name == name {
			return f, nil
		}
	}

	return Formation{}, fmt.Errorf("unknown formation: %s", name)
}
