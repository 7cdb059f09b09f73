package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// file errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
	ErrorAppendFile = Error("could not append to the file")
)

// config errors
const ErrInvalidBaseURL = Error("invalid base url")
