package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_GK      Position = "GK"
	POS_DF      Position = "DF"
	POS_MF      Position = "MF"
	POS_FW      Position = "FW"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "gk", "goalkeeper", "keeper":
		return POS_GK
	case "df", "defender", "cb", "lb", "rb":
		return POS_DF
	case "mf", "midfielder", "cm", "dm", "am":
		return POS_MF
	case "fw", "forward", "striker", "st":
		return POS_FW
	default:
		return POS_UNKNOWN
	}
}
