package metsgen

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // All requested documents were written
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or flags
	ExitFetchFailed      = 11 // Repository unreachable or returned an error status
	ExitMalformedInput   = 12 // Node or members JSON could not be interpreted
	ExitCredentialsError = 13 // Credentials unavailable or prompt cancelled
	ExitOutputFailed     = 14 // METS document could not be written
)

// METS vocabulary.
const (
	// NamespaceMETS is the METS schema namespace, registered under the "mets" prefix.
	NamespaceMETS = "http://www.loc.gov/METS/"

	// NamespaceXLink is the XLink namespace, registered under the "xlink" prefix.
	NamespaceXLink = "http://www.w3.org/1999/xlink"

	// StructMapTypeLogical is the TYPE of the single structMap we emit.
	StructMapTypeLogical = "logical"

	// DivTypeHasPart marks the division listing the object's members.
	DivTypeHasPart = "http://purl.org/dc/terms/hasPart"

	// DivTypeIsPartOf marks the division listing the object's parents.
	DivTypeIsPartOf = "http://purl.org/dc/terms/isPartOf"

	// LocTypeARK is the LOCTYPE of every FLocat.
	LocTypeARK = "ARK"
)

const (
	// DefaultNamingAuthority is the ARK naming authority number (NAAN).
	DefaultNamingAuthority = "19837"

	// InvalidModel is substituted for a model that could not be resolved
	// when running in best-effort mode.
	InvalidModel = "invalid url"

	// LocalIDPrefix prefixes element identifiers in local-file mode.
	LocalIDPrefix = "id-"

	// FetchIDPrefix prefixes element identifiers in live-fetch mode.
	FetchIDPrefix = "uuid_"

	// LocalOutputFileName is the file written in local-file mode.
	LocalOutputFileName = "mets.xml"

	// FetchOutputSuffix is appended to the node ID in live-fetch mode.
	FetchOutputSuffix = "_mets.xml"

	// NodeFileName and MembersFileName are the metadata files read in local-file mode.
	NodeFileName    = "node.json"
	MembersFileName = "members.json"

	// JSONFormatQuery is appended to every repository URL.
	JSONFormatQuery = "?_format=json"
)

const (
	// DefaultTimeout leaves a run unbounded. A non-zero --timeout sets a
	// deadline for the whole run, starting once credentials are known.
	DefaultTimeout time.Duration = 0

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 250 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 10 * time.Second

	// DefaultRetryMaxAttempts is zero: the repository is queried once per URL.
	DefaultRetryMaxAttempts = 0

	// MaxRetryAfter caps how long a Retry-After header can delay a retry.
	MaxRetryAfter = time.Minute

	// MaxErrorBodyPreview limits how much of an error response body is echoed in logs.
	MaxErrorBodyPreview = 200
)
