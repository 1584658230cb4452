package model

// Scope carries the caller's identity through use cases.
type Scope struct {
	UserID         string
	ConversationID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
