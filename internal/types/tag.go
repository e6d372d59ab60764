package types

// Tag identifies which marker introduced the frame.
type Tag uint8

const (
	// TagXing marks a frame written for a variable bitrate stream.
	TagXing Tag = iota + 1
	// TagInfo marks a frame written for a constant bitrate stream.
	TagInfo
)

// ParseTag maps the four marker bytes to a Tag. It reports false for
// anything other than "Xing" or "Info".
func ParseTag(b []byte) (Tag, bool) {
	switch string(b) {
	case "Xing":
		return TagXing, true
	case "Info":
		return TagInfo, true
	}
	return 0, false
}

func (t Tag) String() string {
	switch t {
	case TagXing:
		return "Xing"
	case TagInfo:
		return "Info"
	default:
		return "none"
	}
}
