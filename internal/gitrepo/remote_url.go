package gitrepo

import (
	"fmt"
	"strings"
)

const (
	sshProtocolPrefixConstant           = "ssh://"
	httpsProtocolPrefixConstant         = "https://"
	scpUserPrefixConstant               = "git@"
	scpPathDelimiterConstant            = ":"
	userDelimiterConstant               = "@"
	pathSeparatorConstant               = "/"
	absolutePathPrefixConstant          = "/"
	relativePathPrefixConstant          = "./"
	parentPathPrefixConstant            = "../"
	remoteURLParseErrorTemplateConstant = "%s: %s"
	requiredValueMessageConstant        = "value is required"
	invalidRemoteURLMessageConstant     = "invalid remote url"
)

// RemoteProtocol identifies the transport a remote URL addresses.
type RemoteProtocol string

// Transports the consolidation accepts for its remotes.
const (
	RemoteProtocolSSH        RemoteProtocol = RemoteProtocol("ssh")
	RemoteProtocolHTTPS      RemoteProtocol = RemoteProtocol("https")
	RemoteProtocolFilesystem RemoteProtocol = RemoteProtocol("file")
)

// RemoteEndpoint classifies how git reaches a remote. Host stays empty for
// filesystem endpoints.
type RemoteEndpoint struct {
	Protocol RemoteProtocol
	Host     string
}

// RemoteURLParseError indicates a remote string could not be classified.
type RemoteURLParseError struct {
	Input   string
	Message string
}

// Error describes the classification failure.
func (parseError RemoteURLParseError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplateConstant, parseError.Input, parseError.Message)
}

// ClassifyRemoteURL determines the transport behind a remote URL. Filesystem
// paths are accepted as-is so local bare repositories can serve as remotes;
// anything else must be an ssh, scp-style, or https git URL.
func ClassifyRemoteURL(remote string) (RemoteEndpoint, error) {
	trimmedRemote := strings.TrimSpace(remote)
	if len(trimmedRemote) == 0 {
		return RemoteEndpoint{}, RemoteURLParseError{Input: remote, Message: requiredValueMessageConstant}
	}

	if strings.HasPrefix(trimmedRemote, absolutePathPrefixConstant) ||
		strings.HasPrefix(trimmedRemote, relativePathPrefixConstant) ||
		strings.HasPrefix(trimmedRemote, parentPathPrefixConstant) {
		return RemoteEndpoint{Protocol: RemoteProtocolFilesystem}, nil
	}
	if strings.HasPrefix(trimmedRemote, sshProtocolPrefixConstant) {
		return classifySchemeRemote(trimmedRemote, RemoteProtocolSSH, strings.TrimPrefix(trimmedRemote, sshProtocolPrefixConstant))
	}
	if strings.HasPrefix(trimmedRemote, scpUserPrefixConstant) {
		return classifySCPRemote(trimmedRemote)
	}
	if strings.HasPrefix(trimmedRemote, httpsProtocolPrefixConstant) {
		return classifySchemeRemote(trimmedRemote, RemoteProtocolHTTPS, strings.TrimPrefix(trimmedRemote, httpsProtocolPrefixConstant))
	}

	return RemoteEndpoint{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
}

func classifySchemeRemote(originalRemote string, protocol RemoteProtocol, hostAndPath string) (RemoteEndpoint, error) {
	separatorIndex := strings.Index(hostAndPath, pathSeparatorConstant)
	if separatorIndex <= 0 || separatorIndex == len(hostAndPath)-1 {
		return RemoteEndpoint{}, RemoteURLParseError{Input: originalRemote, Message: invalidRemoteURLMessageConstant}
	}
	host := hostAndPath[:separatorIndex]
	if userIndex := strings.Index(host, userDelimiterConstant); userIndex != -1 {
		host = host[userIndex+1:]
	}
	if len(host) == 0 {
		return RemoteEndpoint{}, RemoteURLParseError{Input: originalRemote, Message: invalidRemoteURLMessageConstant}
	}
	return RemoteEndpoint{Protocol: protocol, Host: host}, nil
}

func classifySCPRemote(originalRemote string) (RemoteEndpoint, error) {
	hostAndPath := strings.TrimPrefix(originalRemote, scpUserPrefixConstant)
	delimiterIndex := strings.Index(hostAndPath, scpPathDelimiterConstant)
	if delimiterIndex <= 0 || delimiterIndex == len(hostAndPath)-1 {
		return RemoteEndpoint{}, RemoteURLParseError{Input: originalRemote, Message: invalidRemoteURLMessageConstant}
	}
	return RemoteEndpoint{Protocol: RemoteProtocolSSH, Host: hostAndPath[:delimiterIndex]}, nil
}
