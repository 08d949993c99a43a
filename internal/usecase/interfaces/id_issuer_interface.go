package interfaces

// IIDIssuer hands out process-unique PREFIX-N identifiers.
type IIDIssuer interface {
	NextID(prefix string) (string, error)
}
