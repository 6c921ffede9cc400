package domain

import "strings"

const sessionKeyPrefix = "expert_session_"

// SessionKey is the storage key holding the session id for scope.
func SessionKey(scope ExpertID) string {
	return sessionKeyPrefix + strings.TrimSpace(string(scope))
}
