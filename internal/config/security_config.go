// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Verified caller identity required
)

// RouteSecurityConfig maps route templates to their required security level
var RouteSecurityConfig = map[string]SecurityLevel{
	"/health":  SecurityPublic,
	"/metrics": SecurityPublic,

	"/api/db/{action}":      SecurityAccess,
	"/api/matcher/{action}": SecurityAccess,
}

// GetSecurityLevel returns the security level for a route template
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := RouteSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown routes
	return SecurityAccess
}
