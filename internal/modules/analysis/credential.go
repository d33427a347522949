package analysis

import "strings"

// credentialPrefix is the key format the completion endpoint issues.
const credentialPrefix = "xai-"

// CredentialStatus classifies the configured model-API credential once per
// request; the three-way analysis branch dispatches on it.
type CredentialStatus int

const (
	CredentialValid CredentialStatus = iota
	CredentialMissing
	CredentialMalformed
)

// CheckCredential inspects the configured credential.
func CheckCredential(key string) CredentialStatus {
	key = strings.TrimSpace(key)
	if key == "" {
		return CredentialMissing
	}
	if !strings.HasPrefix(key, credentialPrefix) {
		return CredentialMalformed
	}
	return CredentialValid
}
