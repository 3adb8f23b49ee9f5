package common

// UnknownStr is the name reported for enum values outside their declared range.
const UnknownStr = "unknown"
