package state

// TagKind enumerates the status tags shown for the input buffer.
type TagKind int

const (
	MODIFIED TagKind = iota // input differs from the last evaluated snapshot
	ADDED                   // runes inserted since the snapshot
	REMOVED                 // runes deleted since the snapshot
	LEN                     // current input length
)

// Tag is a status chip with an optional numeric value.
type Tag struct {
	Kind  TagKind
	Value int
}
