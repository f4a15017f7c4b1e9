package domain

import "errors"

// DockerUnavailableMessage is reported when the container CLI fails without a diagnostic.
const DockerUnavailableMessage = "docker not available (expected unless mounted)"

// Domain errors represent business-level errors that can occur in the system.
var (
	ErrInvalidDockerSource = errors.New("invalid docker source")
	ErrEngineUnreachable   = errors.New("container engine unreachable")
)
