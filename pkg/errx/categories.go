package errx

// Generic creates a generic domain error.
func Generic(message string) *Error {
	return New(KindGeneric, message)
}

// WrapGeneric wraps a cause with a generic domain error.
func WrapGeneric(message string, cause error) *Error {
	return Wrap(KindGeneric, message, cause)
}

// Authentication creates an authentication error.
func Authentication(message string) *Error {
	return New(KindAuthentication, message)
}

// WrapAuthentication wraps a cause with an authentication error.
func WrapAuthentication(message string, cause error) *Error {
	return Wrap(KindAuthentication, message, cause)
}

// Build creates a build error. Exit code 7.
func Build(message string) *Error {
	return New(KindBuild, message)
}

// WrapBuild wraps a cause with a build error.
func WrapBuild(message string, cause error) *Error {
	return Wrap(KindBuild, message, cause)
}

// Configuration creates a configuration error.
func Configuration(message string) *Error {
	return New(KindConfiguration, message)
}

// WrapConfiguration wraps a cause with a configuration error.
func WrapConfiguration(message string, cause error) *Error {
	return Wrap(KindConfiguration, message, cause)
}

// CrawlerOp creates a crawler operation error.
func CrawlerOp(message string) *Error {
	return New(KindCrawlerOp, message)
}

// WrapCrawlerOp wraps a cause with a crawler operation error.
func WrapCrawlerOp(message string, cause error) *Error {
	return Wrap(KindCrawlerOp, message, cause)
}

// DataExtraction creates a data extraction error.
func DataExtraction(message string) *Error {
	return New(KindDataExtraction, message)
}

// WrapDataExtraction wraps a cause with a data extraction error.
func WrapDataExtraction(message string, cause error) *Error {
	return Wrap(KindDataExtraction, message, cause)
}

// Network creates a network error. Exit code 2.
func Network(message string) *Error {
	return New(KindNetwork, message)
}

// WrapNetwork wraps a cause with a network error.
func WrapNetwork(message string, cause error) *Error {
	return Wrap(KindNetwork, message, cause)
}

// Publish creates a publish error.
func Publish(message string) *Error {
	return New(KindPublish, message)
}

// WrapPublish wraps a cause with a publish error.
func WrapPublish(message string, cause error) *Error {
	return Wrap(KindPublish, message, cause)
}

// ResourceNotFound creates a resource-not-found error.
func ResourceNotFound(message string) *Error {
	return New(KindResourceNotFound, message)
}

// WrapResourceNotFound wraps a cause with a resource-not-found error.
func WrapResourceNotFound(message string, cause error) *Error {
	return Wrap(KindResourceNotFound, message, cause)
}

// Transport creates a transport error. Not part of the domain
// hierarchy: Classify treats it as unexpected with exit code 1.
func Transport(message string) *Error {
	return New(KindTransport, message)
}

// MCP creates an MCP error. Not part of the domain hierarchy:
// Classify treats it as unexpected with exit code 1.
func MCP(message string) *Error {
	return New(KindMCP, message)
}

// Usage creates a usage error for malformed command-line invocations.
// Usage errors win classification priority over every other bucket and
// always carry exit code 2.
func Usage(message string) *Error {
	return New(KindUsage, message)
}
