package domain

import "fmt"

// Seat is a fixed table position. Turn order follows the declaration order
// South, West, North, East.
type Seat int

const (
	South Seat = iota
	West
	North
	East

	// NoSeat marks an unset seat reference, e.g. before the first trick.
	NoSeat Seat = -1
)

// Seats lists all positions in turn order.
var Seats = [...]Seat{South, West, North, East}

// Next returns the seat to the left, which acts after s.
func (s Seat) Next() Seat {
	return (s + 1) % 4
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % 4
}

// Team returns the partnership s belongs to.
func (s Seat) Team() Team {
	if s == South || s == North {
		return NorthSouth
	}
	return EastWest
}

// Valid reports whether s names a real seat.
func (s Seat) Valid() bool {
	return s >= South && s <= East
}

func (s Seat) String() string {
	switch s {
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	case East:
		return "east"
	default:
		return fmt.Sprintf("seat(%d)", int(s))
	}
}

// ParseSeat converts a lowercase seat name to a Seat.
func ParseSeat(name string) (Seat, error) {
	for _, s := range Seats {
		if s.String() == name {
			return s, nil
		}
	}
	return NoSeat, fmt.Errorf("unknown seat %q", name)
}

// Team identifies one of the two fixed partnerships.
type Team int

const (
	NorthSouth Team = iota
	EastWest

	// NoTeam is returned when no partnership can be named, e.g. a tied game.
	NoTeam Team = -1
)

// Seats returns both members of the team.
func (t Team) Seats() [2]Seat {
	if t == NorthSouth {
		return [2]Seat{South, North}
	}
	return [2]Seat{West, East}
}

// Opponent returns the other partnership.
func (t Team) Opponent() Team {
	if t == NorthSouth {
		return EastWest
	}
	return NorthSouth
}

func (t Team) String() string {
	switch t {
	case NorthSouth:
		return "north_south"
	case EastWest:
		return "east_west"
	default:
		return "none"
	}
}
