package cache

import "strings"

const (
	GlobalKeyPrefix = "surveyconsole"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// StructureSessionKey is the key of the structuring editor session of a survey.
func StructureSessionKey(surveyID string) string {
	return GenerateCacheKey("structure", "session", surveyID)
}
