package config

import "time"

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, channelID string) *Slack {
	return &Slack{
		botToken:  botToken,
		channelID: channelID,
	}
}

// NewNotionForTest creates a Notion config for testing purposes
func NewNotionForTest(token, databaseID string) *Notion {
	return &Notion{
		token:      token,
		databaseID: databaseID,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewGatewayForTest creates a Gateway config for testing purposes
func NewGatewayForTest(endpoint string, timeout time.Duration) *Gateway {
	return &Gateway{
		endpoint: endpoint,
		timeout:  timeout,
	}
}

// NewAuditForTest creates an Audit config for testing purposes
func NewAuditForTest(bankPath string, delay, ttl time.Duration) *Audit {
	return &Audit{
		bankPath: bankPath,
		delay:    delay,
		ttl:      ttl,
	}
}
