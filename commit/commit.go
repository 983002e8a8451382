// Package commit contains code for parsing merge commit subjects and
// rendering changelog entries from pull request metadata.
package commit

type ChangeType int

const (
	_ ChangeType = iota

	ChangeUnknown
	ChangeFixed
)

// Placeholder is the change type used when an entry couldn't be classified.
const Placeholder = "???"

func (t ChangeType) String() string {
	switch t {
	case ChangeUnknown:
		return Placeholder
	case ChangeFixed:
		return "Fixed"
	case 0:
		return "<INVALID>"
	default:
		return "<UNKNOWN>"
	}
}

func ChangeTypeFromString(s string) ChangeType {
	switch s {
	case Placeholder:
		return ChangeUnknown
	case "Fixed":
		return ChangeFixed
	}
	panic("unknown change type: " + s)
}
