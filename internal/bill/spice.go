package bill

import "errors"

// SpiceLevel tags the exported order with a preparation preference.
// It never affects pricing.
type SpiceLevel string

const (
	SpiceNone   SpiceLevel = "none"
	SpiceMild   SpiceLevel = "mild"
	SpiceNormal SpiceLevel = "normal"
	SpiceHot    SpiceLevel = "hot"
)

// DefaultSpice is applied when the visitor never picks a level.
const DefaultSpice = SpiceNormal

var ErrUnknownSpice = errors.New("unknown spice level")

var spiceLabels = map[SpiceLevel]string{
	SpiceNone:   "不辣",
	SpiceMild:   "微辣",
	SpiceNormal: "正常辣",
	SpiceHot:    "特辣",
}

// ParseSpice validates a level coming in off the wire.
func ParseSpice(s string) (SpiceLevel, error) {
	level := SpiceLevel(s)
	if _, ok := spiceLabels[level]; !ok {
		return "", ErrUnknownSpice
	}
	return level, nil
}

// Label returns the human-facing tag printed on the export.
func (s SpiceLevel) Label() string {
	return spiceLabels[s]
}
