package marc

// Wire constants shared with the record assembler.
const (
	SubfieldDelimiter byte = 0x1F
	FieldTerminator   byte = 0x1E
	RecordTerminator  byte = 0x1D // written by the record assembler only

	LeaderLen         = 24
	DirectoryEntryLen = 12
	TagLen            = 3
)

const (
	blankUnit = " "
	zeroUnit  = "0"

	// displayBlank replaces spaces in MARCMaker text.
	displayBlank = `\`

	subjectTagPrefix byte = '6'
	linkageCode           = "6"
	subjectSeparator      = " -- "
)

// subjectSubdivisionCodes are the codes joined with subjectSeparator in
// subject fields.
var subjectSubdivisionCodes = map[string]bool{
	"v": true, // form subdivision
	"x": true, // general subdivision
	"y": true, // chronological subdivision
	"z": true, // geographic subdivision
}
