package model

import (
	"fmt"
	"strings"
	"time"
)

type Player struct {
	ID        int32
	TeamID    int32
	FirstName string
	LastName  string
	Number    int
	Position  Position
	Created   time.Time
}

// FullName joins the first and last name, skipping whichever is missing.
// Single-name players (common in Brazilian squads) only have a LastName.
func (p *Player) FullName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
}

func (p *Player) String() string {
	if p.Number > 0 {
		return fmt.Sprintf("%s (#%d)", p.FullName(), p.Number)
	}
	return p.FullName()
}
