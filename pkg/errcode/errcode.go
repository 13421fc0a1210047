package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigurationError
	NoTargetSamplesError

	// Data shape errors
	MissingColumnError
	AlignmentShapeError
	InsufficientSequencesError
	FastaFormatError

	// Parse errors
	PartialParseError

	// No candidate errors
	EmptyInputError
	NoSpecificGeneError
	NoConservedRegionError
	NoPrimerPairError

	// Store errors
	StoreOpenError
	StoreInitError
	StoreSaveError
	StoreBackendError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	SchemaGORMConnectionError
	SchemaCreateError
)
