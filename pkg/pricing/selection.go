package pricing

import (
	"fmt"
	"strings"
)

// Channel is the way an order is placed
type Channel int

const (
	WalkIn Channel = iota + 1
	Online
)

// Channels lists every valid channel
var Channels = []Channel{WalkIn, Online}

// String returns the canonical channel name
func (c Channel) String() string {
	switch c {
	case WalkIn:
		return "walk-in"
	case Online:
		return "online"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel parses a channel name ("walk-in", "walkin" or "online")
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walk-in", "walkin", "walk_in":
		return WalkIn, nil
	case "online":
		return Online, nil
	default:
		return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidSelection, s)
	}
}

// Set implements pflag.Value
func (c *Channel) Set(s string) error {
	v, err := ParseChannel(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Type implements pflag.Value
func (c *Channel) Type() string {
	return "channel"
}

// Tier is the requester category
type Tier int

const (
	Student Tier = iota + 1
	Faculty
	General
)

// Tiers lists every valid tier
var Tiers = []Tier{Student, Faculty, General}

// String returns the canonical tier name
func (t Tier) String() string {
	switch t {
	case Student:
		return "student"
	case Faculty:
		return "faculty"
	case General:
		return "general"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier parses a tier name
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return Student, nil
	case "faculty":
		return Faculty, nil
	case "general":
		return General, nil
	default:
		return 0, fmt.Errorf("%w: unknown tier %q", ErrInvalidSelection, s)
	}
}

// Set implements pflag.Value
func (t *Tier) Set(s string) error {
	v, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Type implements pflag.Value
func (t *Tier) Type() string {
	return "tier"
}

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Selection holds everything a user picks for a quote
type Selection struct {
	Channel       Channel
	Tier          Tier
	InfillPercent uint8
	Quantity      int
}

// DefaultSelection is the starting point of a new session
func DefaultSelection() Selection {
	return Selection{
		Channel:       WalkIn,
		Tier:          Student,
		InfillPercent: 20,
		Quantity:      1,
	}
}

// Validate checks the selection against the closed enumerations and ranges
func (s Selection) Validate() error {
	if s.Channel != WalkIn && s.Channel != Online {
		return fmt.Errorf("%w: unknown channel %v", ErrInvalidSelection, s.Channel)
	}
	if s.Tier < Student || s.Tier > General {
		return fmt.Errorf("%w: unknown tier %v", ErrInvalidSelection, s.Tier)
	}
	if s.InfillPercent > 100 {
		return fmt.Errorf("%w: infill %d%% is above 100%%", ErrInvalidSelection, s.InfillPercent)
	}
	if s.Quantity < MinQuantity || s.Quantity > MaxQuantity {
		return fmt.Errorf("%w: quantity %d outside %d..%d", ErrInvalidSelection, s.Quantity, MinQuantity, MaxQuantity)
	}
	return nil
}
