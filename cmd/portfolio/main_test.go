package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicArg(t *testing.T) {
	assert.Equal(t, "Swarm Robotics", topicArg([]string{"Swarm", "Robotics"}))
	assert.Equal(t, "", topicArg([]string{"  "}))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "portfolio dev (built unknown)\n", out.String())
}
