package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}

var (
	_ StringID = (*UUID)(nil)
	_ StringID = (*SnowflakeString)(nil)
	_ StringID = StringIDFunc(nil)
	_ NumberID = (*Snowflake)(nil)
)

// StringIDFunc lets a plain function serve as a StringID.
type StringIDFunc func() string

// Generate calls f.
func (f StringIDFunc) Generate() string {
	return f()
}
