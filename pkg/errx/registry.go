package errx

// Kind identifies a named error kind in the taxonomy.
// The set of kinds is closed: classification is an exhaustive table
// lookup, not a type-hierarchy walk.
type Kind int

const (
	// KindGeneric is the catch-all domain kind.
	KindGeneric Kind = iota
	KindAuthentication
	KindBuild
	KindConfiguration
	KindCrawlerOp
	KindDataExtraction
	KindNetwork
	KindPublish
	KindResourceNotFound

	// KindTransport and KindMCP are recognized by name but sit outside
	// the domain hierarchy: the classifier treats them as unexpected.
	KindTransport
	KindMCP

	// KindUsage marks malformed command-line invocations. Always exit 2.
	KindUsage
)

// DefaultExitCode is used for any kind (or foreign error) that carries
// no explicit exit code of its own.
const DefaultExitCode = 1

// UsageExitCode is the fixed exit code for invocation mistakes.
const UsageExitCode = 2

// KindInfo describes a registered error kind.
// ExitCode zero means "unspecified" and resolves to DefaultExitCode.
// Domain marks membership in the known-domain hierarchy; kinds with
// Domain=false are classified as unexpected even though they are named.
type KindInfo struct {
	Kind        Kind   `yaml:"-"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	ExitCode    int    `yaml:"exit_code"`
	Domain      bool   `yaml:"domain"`
}

var kindInfos = []KindInfo{
	{Kind: KindGeneric, Name: "GenericError", Description: "Generic failure", Domain: true},
	{Kind: KindAuthentication, Name: "AuthenticationError", Description: "Authentication failure", Domain: true},
	{Kind: KindBuild, Name: "BuildError", Description: "Build failure", ExitCode: 7, Domain: true},
	{Kind: KindConfiguration, Name: "ConfigurationError", Description: "Configuration failure", Domain: true},
	{Kind: KindCrawlerOp, Name: "CrawlerOpError", Description: "Crawler operation failure", Domain: true},
	{Kind: KindDataExtraction, Name: "DataExtractionError", Description: "Data extraction failure", Domain: true},
	{Kind: KindNetwork, Name: "NetworkError", Description: "Network failure", ExitCode: 2, Domain: true},
	{Kind: KindPublish, Name: "PublishError", Description: "Publish failure", Domain: true},
	{Kind: KindResourceNotFound, Name: "ResourceNotFoundError", Description: "Resource not found", Domain: true},
	{Kind: KindTransport, Name: "TransportError", Description: "Transport failure"},
	{Kind: KindMCP, Name: "MCPError", Description: "MCP failure"},
	{Kind: KindUsage, Name: "UsageError", Description: "Invalid command-line usage", ExitCode: UsageExitCode},
}

var kindMap = func() map[Kind]KindInfo {
	m := make(map[Kind]KindInfo, len(kindInfos))
	for _, info := range kindInfos {
		m[info.Kind] = info
	}
	return m
}()

// KindRegistry returns the kind table in deterministic order.
func KindRegistry() []KindInfo {
	infos := make([]KindInfo, len(kindInfos))
	copy(infos, kindInfos)
	return infos
}

// InfoFor returns the registry record for a kind.
func InfoFor(kind Kind) (KindInfo, bool) {
	info, ok := kindMap[kind]
	return info, ok
}

// ExitCodeFor resolves a kind's exit code, falling back to
// DefaultExitCode when the kind carries none or is unknown.
func ExitCodeFor(kind Kind) int {
	info, ok := kindMap[kind]
	if !ok || info.ExitCode == 0 {
		return DefaultExitCode
	}
	return info.ExitCode
}

// IsDomain reports whether the kind belongs to the known-domain
// hierarchy consulted by Classify.
func IsDomain(kind Kind) bool {
	info, ok := kindMap[kind]
	return ok && info.Domain
}

// String returns the kind's registered name, e.g. "NetworkError".
func (k Kind) String() string {
	if info, ok := kindMap[k]; ok {
		return info.Name
	}
	return "UnknownError"
}
