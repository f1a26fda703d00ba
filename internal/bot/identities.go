package bot

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/brentlaster/spades/internal/domain"
)

// SeatIdentity describes who sits at a seat. An empty Difficulty inherits the
// table default.
type SeatIdentity struct {
	Seat       string `json:"seat"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty,omitempty"`
	Human      bool   `json:"human"`
}

// Lineup is the resolved identity of every seat, indexed by domain.Seat.
type Lineup [4]SeatIdentity

// DefaultLineup seats a human at South and AI players elsewhere.
func DefaultLineup(level Difficulty) Lineup {
	var l Lineup
	for _, s := range domain.Seats {
		l[s] = SeatIdentity{
			Seat:       s.String(),
			Name:       domain.DefaultNames[s],
			Difficulty: string(level),
			Human:      s == domain.South,
		}
	}
	return l
}

// AllBots returns the lineup with every seat played by the AI.
func (l Lineup) AllBots() Lineup {
	for i := range l {
		l[i].Human = false
	}
	return l
}

// LoadLineup reads seat overrides from a JSON array. Seats missing from the
// file keep their defaults. An empty path returns the default lineup.
func LoadLineup(path string, level Difficulty) (Lineup, error) {
	lineup := DefaultLineup(level)
	if path == "" {
		return lineup, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return lineup, fmt.Errorf("failed to read seat identities: %w", err)
	}
	var entries []SeatIdentity
	if err := json.Unmarshal(data, &entries); err != nil {
		return lineup, fmt.Errorf("failed to unmarshal seat identities: %w", err)
	}

	for _, e := range entries {
		seat, err := domain.ParseSeat(e.Seat)
		if err != nil {
			return lineup, err
		}
		if e.Difficulty != "" {
			if _, err := ParseDifficulty(e.Difficulty); err != nil {
				return lineup, fmt.Errorf("seat %s: %w", seat, err)
			}
		} else {
			e.Difficulty = string(level)
		}
		if e.Name == "" {
			e.Name = domain.DefaultNames[seat]
		}
		e.Seat = seat.String()
		lineup[seat] = e
	}
	return lineup, nil
}

// Names returns the display name of each seat.
func (l Lineup) Names() [4]string {
	var out [4]string
	for i, id := range l {
		out[i] = id.Name
	}
	return out
}

// Agents builds an agent for every non-human seat. Each agent draws from its
// own source seeded from rng so agents never share a generator.
func (l Lineup) Agents(rng *rand.Rand) ([4]*Agent, error) {
	var agents [4]*Agent
	for _, s := range domain.Seats {
		id := l[s]
		if id.Human {
			continue
		}
		level, err := ParseDifficulty(id.Difficulty)
		if err != nil {
			return agents, fmt.Errorf("seat %s: %w", s, err)
		}
		brain, err := NewBrain(level, rand.New(rand.NewSource(rng.Int63())))
		if err != nil {
			return agents, err
		}
		agents[s] = NewAgent(s, id.Name, level, brain)
	}
	return agents, nil
}
