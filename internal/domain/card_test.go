package domain

import (
	"errors"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"AS", Card{Spades, Ace}},
		{"10h", Card{Hearts, Ten}},
		{"th", Card{Hearts, Ten}},
		{"Q♦", Card{Diamonds, Queen}},
		{" 2c ", Card{Clubs, Two}},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if err != nil {
			t.Fatalf("ParseCard(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "1S", "AX", "11H", "S"} {
		if _, err := ParseCard(bad); !errors.Is(err, ErrInvalidCard) {
			t.Errorf("ParseCard(%q) error = %v, want ErrInvalidCard", bad, err)
		}
	}
}

func TestCardString(t *testing.T) {
	if got := (Card{Spades, Ace}).String(); got != "A♠" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Card{Clubs, Ten}).String(); got != "10♣" {
		t.Fatalf("String() = %q", got)
	}
}

func TestSeatRelations(t *testing.T) {
	tests := []struct {
		seat    Seat
		next    Seat
		partner Seat
		team    Team
	}{
		{South, West, North, NorthSouth},
		{West, North, East, EastWest},
		{North, East, South, NorthSouth},
		{East, South, West, EastWest},
	}
	for _, tt := range tests {
		if tt.seat.Next() != tt.next || tt.seat.Partner() != tt.partner || tt.seat.Team() != tt.team {
			t.Errorf("%v: next %v partner %v team %v", tt.seat, tt.seat.Next(), tt.seat.Partner(), tt.seat.Team())
		}
	}
}
